package systems

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/decker502/scramble/pkg/components"
	"github.com/decker502/scramble/pkg/ecs"
	"github.com/decker502/scramble/pkg/entities"
)

// TextRenderSystem 文本渲染系统
// 未拆分时整段绘制；拆分后逐个字符单元绘制，已锁定的单元裁剪到锁定宽度
type TextRenderSystem struct {
	entityManager *ecs.EntityManager
	container     *entities.TextContainer
	layout        *FlowLayout
	face          FaceSource

	Color color.Color
}

// NewTextRenderSystem 创建文本渲染系统
func NewTextRenderSystem(em *ecs.EntityManager, container *entities.TextContainer, layout *FlowLayout, face FaceSource) *TextRenderSystem {
	return &TextRenderSystem{
		entityManager: em,
		container:     container,
		layout:        layout,
		face:          face,
		Color:         color.White,
	}
}

// Draw 绘制文本
// 参数：
//   - screen: 目标图像
//   - alpha: 整体不透明度（样式不透明度 × 页面入场动画）
func (s *TextRenderSystem) Draw(screen *ebiten.Image, alpha float64) {
	if s.face == nil || alpha <= 0 {
		return
	}
	face := s.face()
	if face == nil {
		return
	}

	if !s.container.Segmented() {
		s.drawString(screen, face, s.container.Text(), s.layout.OriginX, s.layout.OriginY, alpha)
		return
	}

	boxes := s.layout.CellBoxes()
	for i, id := range s.container.Cells() {
		cell, ok := ecs.GetComponent[*components.CharCellComponent](s.entityManager, id)
		if !ok {
			continue
		}
		box := boxes[i]
		dst := screen
		if cell.Locked {
			// 宽于锁定宽度的替换字符被裁掉，不会盖住相邻字符
			rect := image.Rect(
				int(math.Floor(box.X)),
				int(math.Floor(box.Y)),
				int(math.Ceil(box.X+box.Width)),
				int(math.Ceil(box.Y+box.Height)),
			).Intersect(screen.Bounds())
			if rect.Empty() {
				continue
			}
			dst = screen.SubImage(rect).(*ebiten.Image)
		}
		s.drawString(dst, face, cell.Display, box.X, box.Y, alpha)
	}
}

func (s *TextRenderSystem) drawString(dst *ebiten.Image, face text.Face, str string, x, y, alpha float64) {
	if str == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(s.Color)
	op.ColorScale.ScaleAlpha(float32(alpha))
	text.Draw(dst, str, face, op)
}
