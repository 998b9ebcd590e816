package systems

import (
	"log"

	"github.com/decker502/scramble/pkg/anim"
	"github.com/decker502/scramble/pkg/components"
	"github.com/decker502/scramble/pkg/ecs"
	"github.com/decker502/scramble/pkg/utils"
)

// 流星动画参数（相对于周期 T 的比例）
const (
	// TrailMargin 拖尾终点距容器右边缘的距离（像素）
	TrailMargin = 40.0
	// TrailWidth / TrailHeight 拖尾尺寸（像素）
	TrailWidth  = 60.0
	TrailHeight = 2.0

	// WaveAmplitude 波浪振幅（自身高度的百分比）
	WaveAmplitude = 6.0

	waveLengthRatio  = 0.36
	waveStaggerRatio = 0.6
	trailTravelRatio = 0.7
)

// BuildShootingStar 构建流星时间轴
//
// 周期为 period 的循环时间轴：
//   - 第 i 个字符在 i·(0.6T/n) 处开始一次 0 → +6% → −6% → 0 的波浪，每段 0.18T
//   - 拖尾在 0 ~ 0.7T 内从左边缘移动到 containerWidth − 40
//   - 拖尾在 0.7T ~ T 内淡出
//   - 每轮结束时拖尾回到左边缘并恢复不透明
//
// period <= 0 时不创建时间轴，返回 nil。
func BuildShootingStar(em *ecs.EntityManager, sched anim.Scheduler, cells []ecs.EntityID, trail ecs.EntityID, period, containerWidth float64) *anim.Timeline {
	if sched == nil || period <= 0 {
		return nil
	}

	tl := sched.Timeline(true).SetPeriod(period)

	n := len(cells)
	stagger := 0.0
	if n > 0 {
		stagger = waveStaggerRatio * period / float64(n)
	}
	leg := waveLengthRatio * period / 2

	for i, id := range cells {
		wave, ok := ecs.GetComponent[*components.WaveComponent](em, id)
		if !ok {
			continue
		}
		tl.Add(anim.Track{
			Target: &wave.YPercent,
			Keys:   []float64{0, WaveAmplitude, -WaveAmplitude, 0},
			Start:  float64(i) * stagger,
			Leg:    leg,
			Ease:   utils.EaseInOutSine,
		})
	}

	tc, ok := ecs.GetComponent[*components.TrailComponent](em, trail)
	if !ok {
		log.Printf("[ShootingStar] Trail entity %d missing TrailComponent, wave only", trail)
		return tl
	}

	travel := containerWidth - TrailMargin
	if travel < 0 {
		travel = 0
	}
	tl.Add(anim.Track{
		Target: &tc.Left,
		Keys:   []float64{0, travel},
		Start:  0,
		Leg:    trailTravelRatio * period,
		Ease:   utils.EaseInOutQuad,
	})
	tl.Add(anim.Track{
		Target: &tc.Opacity,
		Keys:   []float64{1, 0},
		Start:  trailTravelRatio * period,
		Leg:    (1 - trailTravelRatio) * period,
		Ease:   utils.EaseInQuad,
	})
	tl.Call(period, func() {
		tc.Left = 0
		tc.Opacity = 1
	})

	log.Printf("[ShootingStar] Timeline built: %d cells, period=%.2fs, travel=%.1fpx", n, period, travel)
	return tl
}
