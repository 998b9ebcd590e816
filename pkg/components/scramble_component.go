package components

import "github.com/decker502/scramble/pkg/anim"

// ScrambleState 字符单元的扰动状态
type ScrambleState int

const (
	// ScrambleIdle 空闲，显示原始内容
	ScrambleIdle ScrambleState = iota
	// ScrambleScrambling 正在显示随机字符
	ScrambleScrambling
	// ScrambleSettling 补间已结束、原始内容已写回，等待系统回收句柄
	ScrambleSettling
)

// String 返回状态名（日志用）
func (s ScrambleState) String() string {
	switch s {
	case ScrambleIdle:
		return "Idle"
	case ScrambleScrambling:
		return "Scrambling"
	case ScrambleSettling:
		return "Settling"
	default:
		return "Unknown"
	}
}

// ScrambleComponent 扰动状态机组件
//
// 状态转换：
//   - Idle/Scrambling/Settling → Scrambling：新的触发（先取消旧补间）
//   - Scrambling → Settling：补间自然结束
//   - Settling → Idle：ScrambleSystem.Update 回收句柄
//
// 每个字符单元同一时刻最多只有一个补间（Handle）。
type ScrambleComponent struct {
	State ScrambleState

	// StartTime 本次扰动开始时的调度器时间（秒）
	StartTime float64

	// Duration 本次扰动时长（秒）
	Duration float64

	// Handle 当前补间句柄，0 表示没有
	Handle anim.Handle

	// Triggers 累计触发次数（调试用）
	Triggers int
}
