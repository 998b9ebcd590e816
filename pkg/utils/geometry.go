package utils

import "math"

// BoundingBox 屏幕空间的轴对齐矩形（左上角 + 尺寸，单位像素）
type BoundingBox struct {
	X, Y          float64
	Width, Height float64
}

// Center 返回矩形中心点
func (b BoundingBox) Center() (float64, float64) {
	return b.X + b.Width/2, b.Y + b.Height/2
}

// Contains 判断点是否落在矩形内（左、上边界包含，右、下边界不包含）
func (b BoundingBox) Contains(x, y float64) bool {
	return x >= b.X && x < b.X+b.Width && y >= b.Y && y < b.Y+b.Height
}

// Union 返回同时包含两个矩形的最小矩形
// 空矩形（宽高均为 0）不参与合并
func (b BoundingBox) Union(o BoundingBox) BoundingBox {
	if b.Width == 0 && b.Height == 0 {
		return o
	}
	if o.Width == 0 && o.Height == 0 {
		return b
	}
	minX := math.Min(b.X, o.X)
	minY := math.Min(b.Y, o.Y)
	maxX := math.Max(b.X+b.Width, o.X+o.Width)
	maxY := math.Max(b.Y+b.Height, o.Y+o.Height)
	return BoundingBox{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// DistanceToCenter 返回点 (x, y) 到矩形中心的欧氏距离
func (b BoundingBox) DistanceToCenter(x, y float64) float64 {
	cx, cy := b.Center()
	return math.Hypot(x-cx, y-cy)
}
