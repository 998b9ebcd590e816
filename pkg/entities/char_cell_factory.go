package entities

import (
	"github.com/decker502/scramble/pkg/components"
	"github.com/decker502/scramble/pkg/ecs"
	"github.com/decker502/scramble/pkg/utils"
)

// TextNode 容器中的单个文本节点
type TextNode struct {
	Text string
}

// TextContainer 承载文本的容器
//
// 未拆分时只包含一个文本节点；拆分后文本节点保持不变，
// 渲染改由各个字符单元负责，恢复时销毁字符单元即可回到拆分前的状态。
type TextContainer struct {
	// Node 为 nil 表示容器内没有可拆分的文本
	Node *TextNode

	cells []ecs.EntityID
}

// NewTextContainer 创建包含一个文本节点的容器
func NewTextContainer(s string) *TextContainer {
	return &TextContainer{Node: &TextNode{Text: s}}
}

// Segmented 是否处于拆分状态
func (c *TextContainer) Segmented() bool {
	return c != nil && c.cells != nil
}

// Cells 返回拆分出的字符单元（按原文顺序）
func (c *TextContainer) Cells() []ecs.EntityID {
	if c == nil {
		return nil
	}
	return c.cells
}

// Text 返回容器当前的源文本；没有文本节点时返回空字符串
func (c *TextContainer) Text() string {
	if c == nil || c.Node == nil {
		return ""
	}
	return c.Node.Text
}

// SplitText 将容器中的文本拆分为字符单元实体
//
// 每个字形簇对应一个实体，挂载：
//   - CharCellComponent（Original == Display）
//   - ScrambleComponent（Idle）
//   - WaveComponent（0 偏移）
//
// 已拆分的容器会先恢复再重新拆分。容器为 nil、没有文本节点或文本为空时
// 返回空切片，不做任何修改。
//
// 返回：
//   - []ecs.EntityID: 按原文顺序排列的字符单元
func SplitText(em *ecs.EntityManager, container *TextContainer) []ecs.EntityID {
	if em == nil || container == nil || container.Node == nil {
		return []ecs.EntityID{}
	}
	if container.Segmented() {
		RevertSplit(em, container)
	}

	graphemes := utils.SplitGraphemes(container.Node.Text)
	cells := make([]ecs.EntityID, 0, len(graphemes))
	for i, g := range graphemes {
		id := em.CreateEntity()
		ecs.AddComponent(em, id, &components.CharCellComponent{
			Index:    i,
			Original: g,
			Display:  g,
		})
		ecs.AddComponent(em, id, &components.ScrambleComponent{})
		ecs.AddComponent(em, id, &components.WaveComponent{})
		cells = append(cells, id)
	}

	container.cells = cells
	return cells
}

// RevertSplit 标记销毁所有字符单元，容器回到单一文本节点状态
// 未拆分的容器调用无副作用
// 单元只被标记，由调用方统一调用 RemoveMarkedEntities 清理
func RevertSplit(em *ecs.EntityManager, container *TextContainer) {
	if em == nil || container == nil || container.cells == nil {
		return
	}
	for _, id := range container.cells {
		em.DestroyEntity(id)
	}
	container.cells = nil
}

// NewTrailEntity 创建流星拖尾实体
// 初始位置在容器左边缘，完全不透明
func NewTrailEntity(em *ecs.EntityManager, width, height float64) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.TrailComponent{
		Left:    0,
		Opacity: 1,
		Width:   width,
		Height:  height,
	})
	return id
}
