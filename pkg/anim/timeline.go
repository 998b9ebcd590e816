package anim

import (
	"math"

	"github.com/decker502/scramble/pkg/utils"
)

// Track 时间轴上的关键值轨道
//
// Keys 中相邻两个值构成一段，每段时长均为 Leg。
// 同一个 Target 只应挂一条轨道。
type Track struct {
	Target *float64
	Keys   []float64
	Start  float64
	Leg    float64
	Ease   utils.EasingFunc
}

// End 返回轨道结束时间
func (tr Track) End() float64 {
	if len(tr.Keys) < 2 {
		return tr.Start
	}
	return tr.Start + tr.Leg*float64(len(tr.Keys)-1)
}

// ValueAt 返回时间轴时间 t 处的轨道取值
func (tr Track) ValueAt(t float64) float64 {
	switch len(tr.Keys) {
	case 0:
		return 0
	case 1:
		return tr.Keys[0]
	}

	if t <= tr.Start {
		return tr.Keys[0]
	}
	last := tr.Keys[len(tr.Keys)-1]
	if tr.Leg <= 0 || t >= tr.End() {
		return last
	}

	ease := tr.Ease
	if ease == nil {
		ease = utils.EaseLinear
	}

	local := (t - tr.Start) / tr.Leg
	idx := int(math.Floor(local))
	if idx >= len(tr.Keys)-1 {
		return last
	}
	return utils.Lerp(tr.Keys[idx], tr.Keys[idx+1], ease(local-float64(idx)))
}

type timelineCall struct {
	at float64
	fn func()
}

// Timeline 由多条轨道和定时回调组成的时间轴
//
// 循环时间轴按周期取模：末尾超出周期的轨道会在下一轮开头继续播放，
// 因此跨周期的波浪不会在循环点被截断。
type Timeline struct {
	loop      bool
	period    float64
	time      float64
	iteration int
	started   bool
	killed    bool
	tracks    []Track
	calls     []timelineCall
}

// NewTimeline 创建时间轴
func NewTimeline(loop bool) *Timeline {
	return &Timeline{loop: loop}
}

// Add 添加轨道
func (tl *Timeline) Add(tr Track) *Timeline {
	if tr.Target != nil && len(tr.Keys) > 0 {
		tl.tracks = append(tl.tracks, tr)
	}
	return tl
}

// Call 在时间轴时间 at 处执行回调（每轮一次）
func (tl *Timeline) Call(at float64, fn func()) *Timeline {
	if fn != nil {
		tl.calls = append(tl.calls, timelineCall{at: at, fn: fn})
	}
	return tl
}

// SetPeriod 显式设置周期；不设置时取所有轨道和回调的最晚时间
func (tl *Timeline) SetPeriod(period float64) *Timeline {
	tl.period = period
	return tl
}

// Period 返回周期（秒）
func (tl *Timeline) Period() float64 {
	if tl.period > 0 {
		return tl.period
	}
	p := 0.0
	for _, tr := range tl.tracks {
		p = math.Max(p, tr.End())
	}
	for _, c := range tl.calls {
		p = math.Max(p, c.at)
	}
	return p
}

// Time 返回当前轮内的播放头位置
func (tl *Timeline) Time() float64 {
	return tl.time
}

// Iteration 返回已完成的轮数
func (tl *Timeline) Iteration() int {
	return tl.iteration
}

// TrackCount 返回轨道数量
func (tl *Timeline) TrackCount() int {
	return len(tl.tracks)
}

// Kill 停止时间轴，之后不会再写入任何目标或执行回调
func (tl *Timeline) Kill() {
	tl.killed = true
}

// Killed 时间轴是否已停止
func (tl *Timeline) Killed() bool {
	return tl.killed
}

// Advance 推进 dt 秒并写入所有轨道目标
// 返回 true 表示非循环时间轴已播放完毕
func (tl *Timeline) Advance(dt float64) bool {
	if tl.killed {
		return true
	}

	from := tl.time
	if !tl.started {
		// 第一帧包含 t=0 处的回调
		from = math.Inf(-1)
		tl.started = true
	}
	to := tl.time + dt
	period := tl.Period()

	if !tl.loop || period <= 0 {
		tl.fire(from, to)
		if tl.killed {
			return true
		}
		tl.time = to
		tl.render(to)
		return !tl.loop && to >= period
	}

	for to >= period {
		tl.fire(from, period)
		if tl.killed {
			return true
		}
		to -= period
		tl.iteration++
		from = math.Inf(-1)
	}

	tl.fire(from, to)
	if tl.killed {
		return true
	}
	tl.time = to
	tl.render(to)
	return false
}

// fire 执行 (from, to] 区间内的回调
func (tl *Timeline) fire(from, to float64) {
	for _, c := range tl.calls {
		if c.at > from && c.at <= to {
			c.fn()
			if tl.killed {
				return
			}
		}
	}
}

func (tl *Timeline) render(t float64) {
	period := tl.Period()
	for _, tr := range tl.tracks {
		local := t
		// 上一轮溢出的尾巴
		if tl.loop && tl.iteration > 0 && tr.End() > period && t+period <= tr.End() {
			local = t + period
		}
		*tr.Target = tr.ValueAt(local)
	}
}
