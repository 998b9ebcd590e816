package systems

import (
	"log"
	"math/rand/v2"

	"github.com/decker502/scramble/pkg/anim"
	"github.com/decker502/scramble/pkg/components"
	"github.com/decker502/scramble/pkg/config"
	"github.com/decker502/scramble/pkg/ecs"
	"github.com/decker502/scramble/pkg/entities"
	"github.com/decker502/scramble/pkg/event"
	"github.com/decker502/scramble/pkg/utils"
)

// ScrambleDuration 按指针距离计算扰动时长
//
//	duration = base · (1 - dist/radius)，dist ∈ [0, radius)
//
// dist >= radius 或 radius <= 0 时返回 0（不触发）。
func ScrambleDuration(dist, radius, base float64) float64 {
	if radius <= 0 || dist >= radius || dist < 0 {
		return 0
	}
	return base * (1 - dist/radius)
}

// ScrambleSystem 指针邻近扰动驱动
//
// 每个指针移动事件遍历所有字符单元：距离小于半径的单元（重新）开始扰动，
// 其余单元不受影响，正在进行的扰动自然播放完毕。
type ScrambleSystem struct {
	entityManager *ecs.EntityManager
	container     *entities.TextContainer
	layout        LayoutProvider
	scheduler     anim.Scheduler
	rng           *rand.Rand

	radius   float64
	duration float64
	speed    float64
	pool     []string
}

// NewScrambleSystem 创建扰动系统
// rng 为 nil 时使用随机种子
func NewScrambleSystem(em *ecs.EntityManager, container *entities.TextContainer, layout LayoutProvider, scheduler anim.Scheduler, cfg config.ScrambleConfig, rng *rand.Rand) *ScrambleSystem {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &ScrambleSystem{
		entityManager: em,
		container:     container,
		layout:        layout,
		scheduler:     scheduler,
		rng:           rng,
		radius:        cfg.Radius,
		duration:      cfg.Duration,
		speed:         cfg.Speed,
		pool:          utils.SplitGraphemes(cfg.ScrambleCharPool()),
	}
}

// HandlePointerMoved 处理指针移动事件
// 返回：本次触发扰动的单元数量
func (s *ScrambleSystem) HandlePointerMoved(ev event.PointerMoved) int {
	triggered := 0
	cells := s.container.Cells()
	boxes := s.cellBoxes(cells)
	for i, id := range cells {
		dist := boxes[i].DistanceToCenter(ev.X, ev.Y)
		if dist >= s.radius {
			continue
		}
		s.Trigger(id, ScrambleDuration(dist, s.radius, s.duration))
		triggered++
	}
	return triggered
}

// cellBoxes 在触发任何扰动之前取得全部单元的位置
func (s *ScrambleSystem) cellBoxes(cells []ecs.EntityID) []utils.BoundingBox {
	if bp, ok := s.layout.(CellBoxesProvider); ok {
		return bp.CellBoxes()
	}
	boxes := make([]utils.BoundingBox, len(cells))
	for i, id := range cells {
		boxes[i] = s.layout.Measure(id)
	}
	return boxes
}

// Trigger 在单元上开始扰动，先取消该单元正在进行的扰动
func (s *ScrambleSystem) Trigger(id ecs.EntityID, duration float64) {
	cell, ok := ecs.GetComponent[*components.CharCellComponent](s.entityManager, id)
	if !ok {
		return
	}
	state, ok := ecs.GetComponent[*components.ScrambleComponent](s.entityManager, id)
	if !ok {
		return
	}

	if state.Handle != 0 {
		s.scheduler.Cancel(state.Handle)
		state.Handle = 0
	}

	tween := NewScrambleTween(cell, state, s.pool, duration, s.speed, s.rng)
	state.State = components.ScrambleScrambling
	state.StartTime = s.scheduler.Now()
	state.Duration = duration
	state.Handle = s.scheduler.Tween(tween)
	state.Triggers++
}

// Update 回收已结束的扰动（Settling → Idle）
func (s *ScrambleSystem) Update() {
	for _, id := range s.container.Cells() {
		state, ok := ecs.GetComponent[*components.ScrambleComponent](s.entityManager, id)
		if !ok || state.State != components.ScrambleSettling {
			continue
		}
		state.State = components.ScrambleIdle
		state.Handle = 0
	}
}

// ActiveCount 返回处于 Scrambling 状态的单元数量
func (s *ScrambleSystem) ActiveCount() int {
	n := 0
	for _, id := range s.container.Cells() {
		state, ok := ecs.GetComponent[*components.ScrambleComponent](s.entityManager, id)
		if ok && state.State == components.ScrambleScrambling {
			n++
		}
	}
	return n
}

// CancelAll 取消所有扰动并恢复原始内容
func (s *ScrambleSystem) CancelAll() {
	cancelled := 0
	for _, id := range s.container.Cells() {
		state, ok := ecs.GetComponent[*components.ScrambleComponent](s.entityManager, id)
		if ok {
			if state.Handle != 0 {
				s.scheduler.Cancel(state.Handle)
				cancelled++
			}
			state.Handle = 0
			state.State = components.ScrambleIdle
		}
		if cell, ok := ecs.GetComponent[*components.CharCellComponent](s.entityManager, id); ok {
			cell.Restore()
		}
	}
	if cancelled > 0 {
		log.Printf("[ScrambleSystem] Cancelled %d in-flight scrambles", cancelled)
	}
}
