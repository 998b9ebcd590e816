// Package anim 提供按帧推进的补间与时间轴调度
//
// 所有方法都应在同一个 goroutine（Ebitengine 的 Update 循环）中调用；
// 调度器不做任何加锁。
package anim

import (
	"github.com/decker502/scramble/pkg/utils"
)

// Handle 补间句柄，0 表示无效句柄
type Handle uint64

// Tween 可被调度器推进的补间
type Tween interface {
	// Advance 推进 dt 秒，返回 true 表示补间已结束
	Advance(dt float64) bool
}

// Scheduler 动画调度能力接口
//
// 扰动与波浪逻辑只依赖此接口，测试中可以替换为手动推进的实现。
type Scheduler interface {
	// Now 返回调度器时钟（秒）
	Now() float64
	// Tween 注册补间并返回句柄
	Tween(tw Tween) Handle
	// To 将 *target 从当前值补间到 to
	To(target *float64, to, duration float64, ease utils.EasingFunc) Handle
	// Cancel 立即取消补间；对已结束或无效的句柄无副作用
	Cancel(h Handle)
	// Timeline 创建并注册时间轴
	Timeline(loop bool) *Timeline
}

// FrameScheduler 由宿主每帧调用 Update(dt) 推进的调度器
type FrameScheduler struct {
	now       float64
	nextID    Handle
	tweens    map[Handle]Tween
	order     []Handle // 注册顺序，保证推进顺序确定
	timelines []*Timeline
}

// NewFrameScheduler 创建调度器
func NewFrameScheduler() *FrameScheduler {
	return &FrameScheduler{
		nextID: 1,
		tweens: make(map[Handle]Tween),
	}
}

// Now 返回调度器时钟（秒）
func (s *FrameScheduler) Now() float64 {
	return s.now
}

// Tween 注册补间
func (s *FrameScheduler) Tween(tw Tween) Handle {
	if tw == nil {
		return 0
	}
	h := s.nextID
	s.nextID++
	s.tweens[h] = tw
	s.order = append(s.order, h)
	return h
}

// To 创建属性补间；起始值在第一次推进时读取
func (s *FrameScheduler) To(target *float64, to, duration float64, ease utils.EasingFunc) Handle {
	if target == nil {
		return 0
	}
	if ease == nil {
		ease = utils.EaseLinear
	}
	return s.Tween(&propertyTween{target: target, to: to, duration: duration, ease: ease})
}

// Cancel 取消补间
func (s *FrameScheduler) Cancel(h Handle) {
	delete(s.tweens, h)
}

// IsActive 检查句柄对应的补间是否仍在运行
func (s *FrameScheduler) IsActive(h Handle) bool {
	_, ok := s.tweens[h]
	return ok
}

// Timeline 创建并注册时间轴
func (s *FrameScheduler) Timeline(loop bool) *Timeline {
	tl := NewTimeline(loop)
	s.timelines = append(s.timelines, tl)
	return tl
}

// ActiveCount 返回运行中的补间数量（不含时间轴）
func (s *FrameScheduler) ActiveCount() int {
	return len(s.tweens)
}

// TimelineCount 返回运行中的时间轴数量
func (s *FrameScheduler) TimelineCount() int {
	n := 0
	for _, tl := range s.timelines {
		if !tl.Killed() {
			n++
		}
	}
	return n
}

// KillAll 取消所有补间和时间轴
func (s *FrameScheduler) KillAll() {
	s.tweens = make(map[Handle]Tween)
	s.order = s.order[:0]
	for _, tl := range s.timelines {
		tl.Kill()
	}
	s.timelines = s.timelines[:0]
}

// Update 推进所有补间和时间轴
// 参数：
//   - dt: 时间增量（秒）
func (s *FrameScheduler) Update(dt float64) {
	s.now += dt

	// 推进过程中补间可能被取消或新注册，遍历快照
	snapshot := append([]Handle(nil), s.order...)
	for _, h := range snapshot {
		tw, ok := s.tweens[h]
		if !ok {
			continue
		}
		if tw.Advance(dt) {
			delete(s.tweens, h)
		}
	}

	alive := s.order[:0]
	for _, h := range s.order {
		if _, ok := s.tweens[h]; ok {
			alive = append(alive, h)
		}
	}
	s.order = alive

	timelines := append([]*Timeline(nil), s.timelines...)
	for _, tl := range timelines {
		if tl.Killed() {
			continue
		}
		if tl.Advance(dt) {
			tl.Kill()
		}
	}

	live := s.timelines[:0]
	for _, tl := range s.timelines {
		if !tl.Killed() {
			live = append(live, tl)
		}
	}
	s.timelines = live
}

// propertyTween 单属性补间
type propertyTween struct {
	target   *float64
	from, to float64
	duration float64
	elapsed  float64
	ease     utils.EasingFunc
	started  bool
}

func (p *propertyTween) Advance(dt float64) bool {
	if !p.started {
		p.from = *p.target
		p.started = true
	}
	p.elapsed += dt
	if p.duration <= 0 {
		*p.target = p.to
		return true
	}
	progress := utils.Clamp01(p.elapsed / p.duration)
	*p.target = utils.Lerp(p.from, p.to, p.ease(progress))
	return progress >= 1
}
