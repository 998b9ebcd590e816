package utils

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/rivo/uniseg"
)

// SplitGraphemes 将文本拆分为用户可感知的字符（扩展字形簇）
//
// 组合字符、emoji 序列等会作为一个整体返回，与浏览器渲染时的"一个字符"一致。
// 空字符串返回空切片（非 nil）。
func SplitGraphemes(s string) []string {
	result := make([]string, 0, len(s))
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		result = append(result, g.Str())
	}
	return result
}

// GraphemeCount 返回文本中的字形簇数量
func GraphemeCount(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// JoinGraphemes 拼接字形簇
func JoinGraphemes(parts []string) string {
	return strings.Join(parts, "")
}

// MeasureText 测量文本宽高（像素）
// font 为 nil 或文本为空时返回 0
func MeasureText(textStr string, font text.Face) (float64, float64) {
	if textStr == "" || font == nil {
		return 0, 0
	}

	// 行距取 0：单行文本
	return text.Measure(textStr, font, 0)
}
