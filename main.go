// Command scramble 显示带有指针扰动效果的标题页
//
// Usage:
//
//	go run . [flags]
//
// Flags:
//
//	--verbose          Enable verbose logging
//	--config <yaml>    Page config on disk (default: embedded data/page.yaml)
//	--text <string>    Override the heading text
//	--mode <mode>      Line animation: none, static or shooting-star
//
// Controls:
//
//	F11  - Toggle fullscreen
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/scramble/pkg/app"
	"github.com/decker502/scramble/pkg/embedded"
)

var (
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging")
	configFlag  = flag.String("config", "", "Page config YAML on disk (default: embedded data/page.yaml)")
	textFlag    = flag.String("text", "", "Override the heading text")
	modeFlag    = flag.String("mode", "", "Line animation: none, static or shooting-star")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源
	embedded.Init(dataFS)

	a, err := app.NewApp(app.Config{
		Verbose:    *verboseFlag,
		ConfigPath: *configFlag,
		Text:       *textFlag,
		Mode:       *modeFlag,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化失败: %v\n", err)
		os.Exit(1)
	}
	defer a.Close()

	w, h := a.WindowSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(a.WindowTitle())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
