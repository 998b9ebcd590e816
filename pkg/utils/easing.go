package utils

import "math"

// Easing Functions (缓动函数)
//
// 所有函数接受一个进度值 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。
// 命名沿用 easings.net；注释中给出对应的 GSAP 名称，便于对照原始动画参数。
//
// 参考：https://easings.net/

// EasingFunc 缓动函数类型
type EasingFunc func(t float64) float64

// EaseLinear 线性缓动（GSAP "none"）
func EaseLinear(t float64) float64 {
	return t
}

// EaseInQuad 二次方缓入（GSAP "power2.in"）
// 公式：f(t) = t²
func EaseInQuad(t float64) float64 {
	return t * t
}

// EaseOutQuad 二次方缓出（GSAP "power2.out"）
// 公式：f(t) = 1 - (1-t)²
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// EaseInOutQuad 二次方缓入缓出（GSAP "power2.inOut"）
// 特点：先加速后减速，用于流星拖尾的横向扫过
//
//	t < 0.5: f(t) = 2t²
//	t >= 0.5: f(t) = 1 - (-2t + 2)² / 2
func EaseInOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - math.Pow(-2*t+2, 2)/2
}

// EaseInOutSine 正弦缓入缓出（GSAP "sine.inOut"）
// 用于字符波浪的每一段
// 公式：f(t) = -(cos(πt) - 1) / 2
func EaseInOutSine(t float64) float64 {
	return -(math.Cos(math.Pi*t) - 1) / 2
}

// CubicBezier 返回 CSS cubic-bezier(x1, y1, x2, y2) 对应的缓动函数
//
// 端点固定为 (0,0) 与 (1,1)。先用牛顿迭代由 x 反解参数 s，
// 迭代不收敛时退回二分法。
func CubicBezier(x1, y1, x2, y2 float64) EasingFunc {
	bezier := func(s, p1, p2 float64) float64 {
		inv := 1 - s
		return 3*inv*inv*s*p1 + 3*inv*s*s*p2 + s*s*s
	}
	slope := func(s, p1, p2 float64) float64 {
		inv := 1 - s
		return 3*inv*inv*p1 + 6*inv*s*(p2-p1) + 3*s*s*(1-p2)
	}

	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}

		s := t
		for i := 0; i < 8; i++ {
			dx := bezier(s, x1, x2) - t
			if math.Abs(dx) < 1e-7 {
				return bezier(s, y1, y2)
			}
			d := slope(s, x1, x2)
			if math.Abs(d) < 1e-6 {
				break
			}
			s -= dx / d
		}

		lo, hi := 0.0, 1.0
		s = t
		for i := 0; i < 32; i++ {
			x := bezier(s, x1, x2)
			if math.Abs(x-t) < 1e-7 {
				break
			}
			if x < t {
				lo = s
			} else {
				hi = s
			}
			s = (lo + hi) / 2
		}
		return bezier(s, y1, y2)
	}
}

// Lerp 线性插值
// 在 a 和 b 之间根据 t 插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 将值限制在 [0, 1]
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
