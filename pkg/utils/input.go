// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// GetPointerPosition 获取当前指针位置（触摸或鼠标）
// 优先返回触摸位置，如果没有触摸则返回鼠标位置
func GetPointerPosition() (int, int) {
	// 检查触摸
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		return ebiten.TouchPosition(touchIDs[0])
	}

	// 返回鼠标位置
	return ebiten.CursorPosition()
}

// PointerTracker 记录上一帧的指针位置，用于把轮询式输入转换为"移动"事件
type PointerTracker struct {
	lastX, lastY int
	seen         bool
}

// Observe 记录本帧的指针位置
// 返回：
//   - moved: 与上一帧相比位置是否变化（第一次观察总是视为移动）
func (p *PointerTracker) Observe(x, y int) (moved bool) {
	moved = !p.seen || x != p.lastX || y != p.lastY
	p.lastX, p.lastY = x, y
	p.seen = true
	return moved
}

// Poll 读取当前指针位置并返回是否发生移动
func (p *PointerTracker) Poll() (x, y int, moved bool) {
	x, y = GetPointerPosition()
	return x, y, p.Observe(x, y)
}
