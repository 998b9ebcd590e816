package systems

import (
	"log"

	"github.com/decker502/scramble/pkg/components"
	"github.com/decker502/scramble/pkg/ecs"
	"github.com/decker502/scramble/pkg/entities"
)

// LockFrameDelay 锁定尺寸前等待的帧数
// 等待两帧，确保首次排版（含字体回退）已经完成
const LockFrameDelay = 2

// DimensionLockSystem 字符尺寸锁定系统
//
// 替换字符的固有宽度可能与原字符不同，锁定后排版不再随显示内容变化。
// 锁定按原始内容测量，锁定之前发生的扰动不会把错误的宽度固定下来。
// 若提供了字体就绪信号，字体加载完成后会按新字体重新锁定一次；
// 信号为 nil 表示宿主无法提供该信号，只做首次锁定。
type DimensionLockSystem struct {
	entityManager *ecs.EntityManager
	container     *entities.TextContainer
	measurer      GlyphMeasurer

	countdown int // 剩余帧数；<= 0 表示没有待执行的锁定
	fontReady <-chan struct{}

	// Passes 已完成的锁定次数
	Passes int
}

// NewDimensionLockSystem 创建尺寸锁定系统
func NewDimensionLockSystem(em *ecs.EntityManager, container *entities.TextContainer, measurer GlyphMeasurer, fontReady <-chan struct{}) *DimensionLockSystem {
	return &DimensionLockSystem{
		entityManager: em,
		container:     container,
		measurer:      measurer,
		fontReady:     fontReady,
	}
}

// Schedule 安排在 LockFrameDelay 帧之后锁定
func (s *DimensionLockSystem) Schedule() {
	s.countdown = LockFrameDelay
}

// Pending 是否有待执行的锁定
func (s *DimensionLockSystem) Pending() bool {
	return s.countdown > 0 || s.fontReady != nil
}

// Cancel 取消待执行的锁定并停止等待字体
func (s *DimensionLockSystem) Cancel() {
	s.countdown = 0
	s.fontReady = nil
}

// Update 每帧调用一次
func (s *DimensionLockSystem) Update() {
	if s.fontReady != nil {
		select {
		case <-s.fontReady:
			s.fontReady = nil
			log.Printf("[DimensionLockSystem] Fonts ready, re-locking %d cells", len(s.container.Cells()))
			s.Schedule()
		default:
		}
	}

	if s.countdown <= 0 {
		return
	}
	s.countdown--
	if s.countdown == 0 {
		s.LockNow()
	}
}

// LockNow 立即按当前字体锁定所有字符单元
func (s *DimensionLockSystem) LockNow() {
	for _, id := range s.container.Cells() {
		cell, ok := ecs.GetComponent[*components.CharCellComponent](s.entityManager, id)
		if !ok {
			continue
		}
		w, h := s.measurer.MeasureString(cell.Original)
		cell.LockedWidth = w
		cell.LockedHeight = h
		cell.Locked = true
	}
	s.Passes++
}
