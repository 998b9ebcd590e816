package systems

import (
	"math/rand/v2"
	"strings"

	"github.com/decker502/scramble/pkg/components"
	"github.com/decker502/scramble/pkg/utils"
)

// ScrambleRefreshInterval speed = 1 时随机字符的刷新间隔（秒）
const ScrambleRefreshInterval = 0.05

// ScrambleTween 单个字符单元的扰动补间
//
// 进度 p 时，原始内容的前 floor(p·n) 个字形簇已揭示，其余位置显示字符池中的随机字符。
// 随机字符每 ScrambleRefreshInterval/speed 秒刷新一次（speed <= 0 时每帧刷新）。
// 结束时显示内容一定等于原始内容。
type ScrambleTween struct {
	cell  *components.CharCellComponent
	state *components.ScrambleComponent

	target []string
	pool   []string
	rng    *rand.Rand

	duration float64
	elapsed  float64

	refreshInterval float64
	sinceRefresh    float64
	scrambled       []string
}

// NewScrambleTween 创建扰动补间
// pool 为空时使用原始内容作为字符池（相当于不扰动）
func NewScrambleTween(cell *components.CharCellComponent, state *components.ScrambleComponent, pool []string, duration, speed float64, rng *rand.Rand) *ScrambleTween {
	interval := 0.0
	if speed > 0 {
		interval = ScrambleRefreshInterval / speed
	}
	if len(pool) == 0 {
		pool = utils.SplitGraphemes(cell.Original)
	}
	return &ScrambleTween{
		cell:            cell,
		state:           state,
		target:          utils.SplitGraphemes(cell.Original),
		pool:            pool,
		rng:             rng,
		duration:        duration,
		refreshInterval: interval,
	}
}

// Advance 实现 anim.Tween
func (t *ScrambleTween) Advance(dt float64) bool {
	t.elapsed += dt
	if t.duration <= 0 || t.elapsed >= t.duration {
		t.cell.Restore()
		if t.state != nil {
			t.state.State = components.ScrambleSettling
		}
		return true
	}

	t.sinceRefresh += dt
	if t.scrambled == nil || t.sinceRefresh >= t.refreshInterval {
		t.reshuffle()
		t.sinceRefresh = 0
	}

	revealed := int(t.elapsed / t.duration * float64(len(t.target)))
	var b strings.Builder
	for i := range t.target {
		if i < revealed {
			b.WriteString(t.target[i])
		} else {
			b.WriteString(t.scrambled[i])
		}
	}
	t.cell.Display = b.String()
	return false
}

// Progress 返回当前进度（0 - 1）
func (t *ScrambleTween) Progress() float64 {
	if t.duration <= 0 {
		return 1
	}
	return utils.Clamp01(t.elapsed / t.duration)
}

func (t *ScrambleTween) reshuffle() {
	if t.scrambled == nil {
		t.scrambled = make([]string, len(t.target))
	}
	for i := range t.scrambled {
		if len(t.pool) == 0 {
			t.scrambled[i] = t.target[i]
			continue
		}
		t.scrambled[i] = t.pool[t.rng.IntN(len(t.pool))]
	}
}
