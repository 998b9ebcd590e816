// Package main provides a verification tool for the shooting-star line animation.
//
// Usage:
//
//	go run ./cmd/verify_shooting_star [flags]
//
// Flags:
//
//	--text <string>      Text to animate (default: "STRADDLER")
//	--period <seconds>   Loop period T (default: 5)
//	--width <pixels>     Minimum container width (default: 500)
//	--verbose            Enable verbose logging
//
// Controls:
//
//	Space  - Pause / resume
//	Right  - Step one frame while paused
//	R      - Restart timeline
//	Q      - Quit
//
// Purpose:
//   - Check wave stagger and trail travel against the loop period
//   - Inspect trail left / opacity values at known timestamps (0.7T, T)
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"io"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/scramble/pkg/anim"
	"github.com/decker502/scramble/pkg/components"
	"github.com/decker502/scramble/pkg/config"
	"github.com/decker502/scramble/pkg/ecs"
	"github.com/decker502/scramble/pkg/entities"
	"github.com/decker502/scramble/pkg/game"
	"github.com/decker502/scramble/pkg/systems"
)

const (
	screenWidth  = 800
	screenHeight = 400
)

var (
	textFlag    = flag.String("text", "STRADDLER", "Text to animate")
	periodFlag  = flag.Float64("period", config.DefaultLineAnimationDuration, "Loop period in seconds")
	widthFlag   = flag.Float64("width", 500, "Minimum container width in pixels")
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging")
)

var errQuit = errors.New("quit")

// verifyGame implements ebiten.Game for shooting-star verification
type verifyGame struct {
	entityManager *ecs.EntityManager
	container     *entities.TextContainer
	scheduler     *anim.FrameScheduler
	timeline      *anim.Timeline
	trail         ecs.EntityID

	fonts      *game.FontLoader
	layout     *systems.FlowLayout
	textRender *systems.TextRenderSystem
	lineRender *systems.LineRenderSystem

	paused bool
}

func newVerifyGame(fonts *game.FontLoader) *verifyGame {
	g := &verifyGame{
		entityManager: ecs.NewEntityManager(),
		container:     entities.NewTextContainer(*textFlag),
		scheduler:     anim.NewFrameScheduler(),
		fonts:         fonts,
	}

	cells := entities.SplitText(g.entityManager, g.container)
	measurer := systems.TextFaceMeasurer{Face: fonts.Face}

	g.layout = systems.NewFlowLayout(g.entityManager, g.container, measurer)
	g.layout.OriginX, g.layout.OriginY = 100, 120
	g.layout.MinWidth = *widthFlag
	g.layout.LineGap = config.DefaultLineGap
	g.layout.LineHeight = systems.TrailHeight

	palette := config.DefaultPalette()
	g.textRender = systems.NewTextRenderSystem(g.entityManager, g.container, g.layout, fonts.Face)
	g.textRender.Color = palette.ResolveOr("colour4", color.White)
	g.lineRender = systems.NewLineRenderSystem(g.entityManager, g.layout, config.LineAnimationShootingStar)
	g.lineRender.Color = palette.ResolveOr("colour3", color.White)
	g.lineRender.Opacity = systems.DefaultTrailOpacity

	g.trail = entities.NewTrailEntity(g.entityManager, systems.TrailWidth, systems.TrailHeight)
	g.lineRender.Trail = g.trail
	g.timeline = systems.BuildShootingStar(g.entityManager, g.scheduler, cells, g.trail, *periodFlag, g.layout.ContainerWidth())
	return g
}

// Update updates the verifier state
func (g *verifyGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return errQuit
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		log.Println("Restarting timeline...")
		*g = *newVerifyGame(g.fonts)
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}

	dt := 1.0 / 60.0
	if g.paused && !inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		return nil
	}
	g.scheduler.Update(dt)
	return nil
}

// Draw renders text, trail and timeline values
func (g *verifyGame) Draw(screen *ebiten.Image) {
	screen.Fill(config.DefaultPalette().ResolveOr("colour1", color.Black))
	g.textRender.Draw(screen, 1)
	g.lineRender.Draw(screen, 1)

	tc, _ := ecs.GetComponent[*components.TrailComponent](g.entityManager, g.trail)
	period := *periodFlag
	debugText := fmt.Sprintf(
		"Shooting Star Verifier\n"+
			"t = %.3fs / T = %.2fs (iteration %d)\n"+
			"trail left = %.1f (target %.1f at %.2fs)\n"+
			"trail opacity = %.3f\n"+
			"Space pause | Right step | R restart | Q quit",
		g.timeline.Time(), period, g.timeline.Iteration(),
		tc.Left, g.layout.ContainerWidth()-systems.TrailMargin, 0.7*period,
		tc.Opacity,
	)
	ebitenutil.DebugPrint(screen, debugText)
}

// Layout returns the screen dimensions
func (g *verifyGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	flag.Parse()

	if !*verboseFlag {
		log.SetOutput(io.Discard)
	}

	log.Println("=== Shooting Star Verifier ===")
	log.Printf("Text: %q, period: %.2fs, width: %.0f", *textFlag, *periodFlag, *widthFlag)

	fonts := game.NewFontLoader()
	fonts.Load("", 64)

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Shooting Star Verifier")

	if err := ebiten.RunGame(newVerifyGame(fonts)); err != nil && !errors.Is(err, errQuit) {
		fmt.Fprintf(os.Stderr, "verifier failed: %v\n", err)
		os.Exit(1)
	}
}
