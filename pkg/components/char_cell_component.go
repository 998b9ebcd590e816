package components

// CharCellComponent 字符单元组件
// 代表被拆分出来的一个字符（字形簇）
//
// Original 在拆分时写入，之后不再修改，是扰动结束后恢复内容的唯一依据；
// Display 是当前显示的内容，扰动期间会被随机字符替换。
type CharCellComponent struct {
	// Index 在原文中的序号（从 0 开始）
	Index int

	// Original 原始内容（不可变）
	Original string

	// Display 当前显示内容
	Display string

	// LockedWidth / LockedHeight 锁定后的尺寸（像素）
	// 锁定后替换字符的宽度变化不会再影响排版
	LockedWidth  float64
	LockedHeight float64

	// Locked 尺寸是否已锁定
	Locked bool
}

// IsGarbled 当前显示内容是否与原始内容不同
func (c *CharCellComponent) IsGarbled() bool {
	return c.Display != c.Original
}

// Restore 恢复原始内容
func (c *CharCellComponent) Restore() {
	c.Display = c.Original
}
