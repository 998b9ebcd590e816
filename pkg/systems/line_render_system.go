package systems

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/decker502/scramble/pkg/components"
	"github.com/decker502/scramble/pkg/config"
	"github.com/decker502/scramble/pkg/ecs"
	"github.com/decker502/scramble/pkg/utils"
)

// DefaultTrailOpacity 拖尾的默认不透明度（可被线条样式覆盖）
const DefaultTrailOpacity = 0.6

// trailFadeStop 渐变中完全透明部分的比例
const trailFadeStop = 0.33

// TrailGradientAlpha 拖尾渐变在横向位置 u（0 - 1）处的不透明度
// 前 33% 完全透明，之后线性过渡到不透明
func TrailGradientAlpha(u float64) float64 {
	if u <= trailFadeStop {
		return 0
	}
	if u >= 1 {
		return 1
	}
	return (u - trailFadeStop) / (1 - trailFadeStop)
}

// LineRenderSystem 装饰线渲染系统
//
// static 模式在文本下方绘制一条实线；shooting-star 模式绘制在线条区域内移动的渐变拖尾，
// 拖尾超出线条区域的部分被裁掉。
type LineRenderSystem struct {
	entityManager *ecs.EntityManager
	layout        *FlowLayout

	Mode  config.LineAnimation
	Color color.Color

	// Opacity 线条样式不透明度
	Opacity float64

	// Trail 拖尾实体，仅 shooting-star 模式使用
	Trail ecs.EntityID
}

// NewLineRenderSystem 创建装饰线渲染系统
func NewLineRenderSystem(em *ecs.EntityManager, layout *FlowLayout, mode config.LineAnimation) *LineRenderSystem {
	return &LineRenderSystem{
		entityManager: em,
		layout:        layout,
		Mode:          mode,
		Color:         color.White,
		Opacity:       1,
	}
}

// Draw 绘制装饰线
func (s *LineRenderSystem) Draw(screen *ebiten.Image, alpha float64) {
	box := s.layout.LineBox()
	if box.Width <= 0 || box.Height <= 0 || alpha <= 0 {
		return
	}

	switch s.Mode {
	case config.LineAnimationStatic:
		c := scaleAlpha(s.Color, s.Opacity*alpha)
		vector.DrawFilledRect(screen, float32(box.X), float32(box.Y), float32(box.Width), float32(box.Height), c, false)
	case config.LineAnimationShootingStar:
		s.drawTrail(screen, box.X, box.Y, box.Width, box.Height, alpha)
	}
}

func (s *LineRenderSystem) drawTrail(screen *ebiten.Image, x, y, w, h, alpha float64) {
	trail, ok := ecs.GetComponent[*components.TrailComponent](s.entityManager, s.Trail)
	if !ok || trail.Opacity <= 0 {
		return
	}

	rect := image.Rect(
		int(math.Floor(x)), int(math.Floor(y)),
		int(math.Ceil(x+w)), int(math.Ceil(y+h)),
	).Intersect(screen.Bounds())
	if rect.Empty() {
		return
	}
	dst := screen.SubImage(rect).(*ebiten.Image)

	base := s.Opacity * trail.Opacity * alpha
	left := x + trail.Left
	steps := int(math.Ceil(trail.Width))
	for i := 0; i < steps; i++ {
		a := TrailGradientAlpha((float64(i) + 0.5) / trail.Width)
		if a <= 0 {
			continue
		}
		c := scaleAlpha(s.Color, base*a)
		vector.DrawFilledRect(dst, float32(left+float64(i)), float32(y), 1, float32(trail.Height), c, false)
	}
}

// scaleAlpha 返回带指定不透明度的颜色
func scaleAlpha(c color.Color, alpha float64) color.Color {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		// 完全透明的颜色无法还原 RGB
		return color.Transparent
	}
	r, g, b := cf.Clamped().RGB255()
	_, _, _, a := c.RGBA()
	alpha *= float64(a) / 0xffff
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(utils.Clamp01(alpha) * 255))}
}
