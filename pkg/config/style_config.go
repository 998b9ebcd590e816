package config

import "strings"

// Style 内联样式，字段零值表示"未设置"
type Style struct {
	// Color 调色板名（colour1..colour4）、"transparent" 或十六进制颜色
	Color    string  `yaml:"color"`
	FontSize float64 `yaml:"fontSize"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	// Opacity 为 nil 时视为 1
	Opacity *float64 `yaml:"opacity"`
}

// Merge 返回 s 被 over 中已设置字段覆盖后的样式
func (s Style) Merge(over Style) Style {
	if over.Color != "" {
		s.Color = over.Color
	}
	if over.FontSize != 0 {
		s.FontSize = over.FontSize
	}
	if over.Width != 0 {
		s.Width = over.Width
	}
	if over.Height != 0 {
		s.Height = over.Height
	}
	if over.Opacity != nil {
		v := *over.Opacity
		s.Opacity = &v
	}
	return s
}

// OpacityOr 返回不透明度，未设置时返回 def
func (s Style) OpacityOr(def float64) float64 {
	if s.Opacity == nil {
		return def
	}
	return *s.Opacity
}

// Stylesheet 类名 → 样式
type Stylesheet map[string]Style

// Resolve 按顺序应用 className 中以空格分隔的各个类，最后应用内联样式
// 未知类名被忽略
func (ss Stylesheet) Resolve(className string, inline Style) Style {
	var out Style
	for _, name := range strings.Fields(className) {
		if cls, ok := ss[name]; ok {
			out = out.Merge(cls)
		}
	}
	return out.Merge(inline)
}
