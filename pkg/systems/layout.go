package systems

import (
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/decker502/scramble/pkg/components"
	"github.com/decker502/scramble/pkg/ecs"
	"github.com/decker502/scramble/pkg/entities"
	"github.com/decker502/scramble/pkg/utils"
)

// LayoutProvider 字符单元的布局测量能力
// 返回值为屏幕空间包围盒，包含波浪等视觉偏移
type LayoutProvider interface {
	Measure(id ecs.EntityID) utils.BoundingBox
}

// CellBoxesProvider 可一次性给出全部字符单元包围盒的布局
// 返回切片与 container.Cells() 一一对应
type CellBoxesProvider interface {
	LayoutProvider
	CellBoxes() []utils.BoundingBox
}

// GlyphMeasurer 文本固有尺寸测量能力
type GlyphMeasurer interface {
	MeasureString(s string) (width, height float64)
}

// FaceSource 返回当前使用的字体
// 字体加载完成前后返回值可能不同
type FaceSource func() text.Face

// TextFaceMeasurer 基于 ebiten text/v2 的测量实现
type TextFaceMeasurer struct {
	Face FaceSource
}

// MeasureString 测量文本尺寸
func (m TextFaceMeasurer) MeasureString(s string) (float64, float64) {
	if m.Face == nil {
		return 0, 0
	}
	return utils.MeasureText(s, m.Face())
}

// FlowLayout 单行从左到右的排版
//
// 已锁定的单元使用锁定尺寸；未锁定的单元按当前显示内容的固有宽度排版，
// 因此锁定之前替换字符会引起后续字符位移。
type FlowLayout struct {
	entityManager *ecs.EntityManager
	container     *entities.TextContainer
	measurer      GlyphMeasurer

	// OriginX / OriginY 文本左上角（屏幕坐标）
	OriginX, OriginY float64

	// MinWidth 容器最小宽度（样式 width），0 表示按文本宽度
	MinWidth float64

	// LineGap / LineHeight 装饰线间距与高度；LineHeight 为 0 表示没有装饰线
	LineGap    float64
	LineHeight float64
}

// NewFlowLayout 创建排版器
func NewFlowLayout(em *ecs.EntityManager, container *entities.TextContainer, measurer GlyphMeasurer) *FlowLayout {
	return &FlowLayout{
		entityManager: em,
		container:     container,
		measurer:      measurer,
	}
}

// Measure 返回字符单元的包围盒；未知实体返回零值
func (l *FlowLayout) Measure(id ecs.EntityID) utils.BoundingBox {
	x := l.OriginX
	for _, cellID := range l.container.Cells() {
		cell, ok := ecs.GetComponent[*components.CharCellComponent](l.entityManager, cellID)
		if !ok {
			continue
		}
		w, h := l.cellSize(cell)
		if cellID == id {
			return l.cellBox(cellID, x, w, h)
		}
		x += w
	}
	return utils.BoundingBox{}
}

// CellBoxes 一次遍历算出全部字符单元的包围盒，每个单元只测量一次
// 缺少字符组件的单元对应零值
func (l *FlowLayout) CellBoxes() []utils.BoundingBox {
	cells := l.container.Cells()
	boxes := make([]utils.BoundingBox, len(cells))
	x := l.OriginX
	for i, cellID := range cells {
		cell, ok := ecs.GetComponent[*components.CharCellComponent](l.entityManager, cellID)
		if !ok {
			continue
		}
		w, h := l.cellSize(cell)
		boxes[i] = l.cellBox(cellID, x, w, h)
		x += w
	}
	return boxes
}

func (l *FlowLayout) cellBox(id ecs.EntityID, x, w, h float64) utils.BoundingBox {
	return utils.BoundingBox{
		X:      x,
		Y:      l.OriginY + l.waveOffset(id, h),
		Width:  w,
		Height: h,
	}
}

// TextBox 返回文本区域（不含波浪偏移）
func (l *FlowLayout) TextBox() utils.BoundingBox {
	if !l.container.Segmented() {
		w, h := l.measurer.MeasureString(l.container.Text())
		return utils.BoundingBox{X: l.OriginX, Y: l.OriginY, Width: w, Height: h}
	}

	width, height := 0.0, 0.0
	for _, cellID := range l.container.Cells() {
		cell, ok := ecs.GetComponent[*components.CharCellComponent](l.entityManager, cellID)
		if !ok {
			continue
		}
		w, h := l.cellSize(cell)
		width += w
		if h > height {
			height = h
		}
	}
	return utils.BoundingBox{X: l.OriginX, Y: l.OriginY, Width: width, Height: height}
}

// ContainerWidth 容器宽度：样式宽度与文本宽度取大者
func (l *FlowLayout) ContainerWidth() float64 {
	w := l.TextBox().Width
	if l.MinWidth > w {
		return l.MinWidth
	}
	return w
}

// LineBox 返回装饰线区域；没有装饰线时返回零值
func (l *FlowLayout) LineBox() utils.BoundingBox {
	if l.LineHeight <= 0 {
		return utils.BoundingBox{}
	}
	tb := l.TextBox()
	return utils.BoundingBox{
		X:      l.OriginX,
		Y:      tb.Y + tb.Height + l.LineGap,
		Width:  l.ContainerWidth(),
		Height: l.LineHeight,
	}
}

// ContainerBox 返回整个容器（文本 + 装饰线）的区域，用于指针命中测试
func (l *FlowLayout) ContainerBox() utils.BoundingBox {
	tb := l.TextBox()
	tb.Width = l.ContainerWidth()
	return tb.Union(l.LineBox())
}

func (l *FlowLayout) cellSize(cell *components.CharCellComponent) (float64, float64) {
	if cell.Locked {
		return cell.LockedWidth, cell.LockedHeight
	}
	return l.measurer.MeasureString(cell.Display)
}

func (l *FlowLayout) waveOffset(id ecs.EntityID, height float64) float64 {
	wave, ok := ecs.GetComponent[*components.WaveComponent](l.entityManager, id)
	if !ok {
		return 0
	}
	return wave.YPercent / 100 * height
}
