package components

// WaveComponent 字符波浪偏移组件
// YPercent 为相对自身高度的纵向偏移百分比（正值向下）
type WaveComponent struct {
	YPercent float64
}

// TrailComponent 流星拖尾组件
type TrailComponent struct {
	// Left 距容器左边缘的偏移（像素）
	Left float64

	// Opacity 不透明度（0.0 - 1.0），与样式不透明度相乘
	Opacity float64

	// Width / Height 拖尾尺寸（像素）
	Width  float64
	Height float64
}
