package config

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// RootFontSize 换算 rem 使用的根字号（像素）
const RootFontSize = 16.0

// Length CSS 风格的长度值
//
// YAML 中既可以写数字（视为像素），也可以写带单位的字符串：
//
//	lineGap: 4
//	lineGap: "0.25rem"
type Length struct {
	Value float64
	Unit  string // "px" | "rem" | "em"；空字符串表示未设置
}

// Px 构造像素长度
func Px(v float64) Length {
	return Length{Value: v, Unit: "px"}
}

// IsZero 是否未设置
func (l Length) IsZero() bool {
	return l.Unit == ""
}

// Pixels 换算为像素；em 相对于 fontSize
func (l Length) Pixels(fontSize float64) float64 {
	switch l.Unit {
	case "rem":
		return l.Value * RootFontSize
	case "em":
		return l.Value * fontSize
	default:
		return l.Value
	}
}

// String 实现 fmt.Stringer
func (l Length) String() string {
	if l.IsZero() {
		return ""
	}
	return strconv.FormatFloat(l.Value, 'f', -1, 64) + l.Unit
}

// ParseLength 解析 "4"、"4px"、"0.25rem"、"1.5em"
func ParseLength(s string) (Length, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Length{}, fmt.Errorf("empty length")
	}

	unit := "px"
	num := s
	for _, u := range []string{"rem", "em", "px"} {
		if strings.HasSuffix(s, u) {
			unit = u
			num = strings.TrimSpace(strings.TrimSuffix(s, u))
			break
		}
	}

	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return Length{}, fmt.Errorf("invalid length %q: %w", s, err)
	}
	return Length{Value: v, Unit: unit}, nil
}

// UnmarshalYAML 支持数字与字符串两种写法
func (l *Length) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: length must be a scalar", node.Line)
	}

	switch node.Tag {
	case "!!int", "!!float":
		var v float64
		if err := node.Decode(&v); err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		*l = Px(v)
		return nil
	case "!!null":
		*l = Length{}
		return nil
	}

	parsed, err := ParseLength(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*l = parsed
	return nil
}

// MarshalYAML 像素值输出为数字，其余输出为字符串
func (l Length) MarshalYAML() (interface{}, error) {
	if l.IsZero() {
		return nil, nil
	}
	if l.Unit == "px" {
		return l.Value, nil
	}
	return l.String(), nil
}
