package scenes

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/scramble/pkg/anim"
	"github.com/decker502/scramble/pkg/config"
	"github.com/decker502/scramble/pkg/event"
	"github.com/decker502/scramble/pkg/game"
	"github.com/decker502/scramble/pkg/scrambled"
	"github.com/decker502/scramble/pkg/utils"
)

// PageSceneName 落地页场景名（SceneFactory 使用）
const PageSceneName = "page"

// PageScene 落地页
//
// 页面中央偏上显示一段扰动文字，入场时淡入并从下方滑入。
type PageScene struct {
	cfg        *config.PageConfig
	palette    config.Palette
	background color.Color

	scheduler *anim.FrameScheduler
	heading   *scrambled.ScrambledText

	screenWidth float64

	// 入场动画的当前值
	introOpacity float64
	introOffset  float64
}

// NewPageScene 创建落地页并挂载标题
func NewPageScene(cfg *config.PageConfig, palette config.Palette, fonts *game.FontLoader, bus *event.Bus) *PageScene {
	s := &PageScene{
		cfg:          cfg,
		palette:      palette,
		background:   palette.ResolveOr(cfg.Background, color.Black),
		scheduler:    anim.NewFrameScheduler(),
		screenWidth:  float64(cfg.Window.Width),
		introOpacity: 0,
		introOffset:  cfg.Intro.OffsetY,
	}

	s.heading = scrambled.New(scrambled.Options{
		Text:       cfg.Heading.Text,
		Config:     cfg.Scramble,
		Stylesheet: cfg.Stylesheet,
		Palette:    palette,
		Face:       fonts.Face,
		FontReady:  fonts.Ready(),
		Scheduler:  s.scheduler,
		Bus:        bus,
	})
	s.heading.Mount()

	e := cfg.Intro.Easing
	ease := utils.CubicBezier(e[0], e[1], e[2], e[3])
	s.scheduler.To(&s.introOpacity, 1, cfg.Intro.Duration, ease)
	s.scheduler.To(&s.introOffset, 0, cfg.Intro.Duration, ease)

	s.layoutHeading()
	log.Printf("[PageScene] Created with heading %q", cfg.Heading.Text)
	return s
}

// Update 推进入场动画与标题组件
func (s *PageScene) Update(deltaTime float64) {
	s.scheduler.Update(deltaTime)
	s.heading.Update(deltaTime)
	s.layoutHeading()
}

// Draw 绘制背景和标题
func (s *PageScene) Draw(screen *ebiten.Image) {
	screen.Fill(s.background)
	s.heading.Draw(screen)
}

// OnExit 卸载标题并停止所有动画
func (s *PageScene) OnExit() {
	s.heading.Unmount()
	s.scheduler.KillAll()
	log.Printf("[PageScene] Exited")
}

// Heading 返回标题组件
func (s *PageScene) Heading() *scrambled.ScrambledText {
	return s.heading
}

// layoutHeading 水平居中标题，并应用入场动画的位移和透明度
func (s *PageScene) layoutHeading() {
	w, _ := s.heading.Size()
	s.heading.SetPosition((s.screenWidth-w)/2, s.cfg.Heading.Top)
	s.heading.SetOffset(0, s.introOffset)
	s.heading.SetOpacity(s.introOpacity)
}
