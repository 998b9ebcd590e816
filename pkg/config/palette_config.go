package config

import (
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// Palette 项目调色板，所有颜色的唯一来源
//
// 样式中通过名字引用（color: colour3），修改 data/colours.yaml 即全局生效。
type Palette struct {
	Colour1 string `yaml:"colour1"`
	Colour2 string `yaml:"colour2"`
	Colour3 string `yaml:"colour3"`
	Colour4 string `yaml:"colour4"`
}

// DefaultPalette 内置调色板（配置缺失时使用）
func DefaultPalette() Palette {
	return Palette{
		Colour1: "#0b0b0f",
		Colour2: "#1c1c24",
		Colour3: "#d4af37",
		Colour4: "#f5f0e6",
	}
}

// ParsePalette 解析调色板 YAML，缺失的颜色使用默认值
func ParsePalette(data []byte) (*Palette, error) {
	p := DefaultPalette()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse palette YAML: %w", err)
	}
	for _, token := range []string{"colour1", "colour2", "colour3", "colour4"} {
		if _, err := p.Resolve(token); err != nil {
			return nil, fmt.Errorf("invalid palette: %w", err)
		}
	}
	return &p, nil
}

// LoadPalette 从文件加载调色板
func LoadPalette(filepath string) (*Palette, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read palette file %s: %w", filepath, err)
	}
	return ParsePalette(data)
}

// Resolve 将颜色引用解析为颜色值
//
// 支持：colour1..colour4、"var(--colour3)" 写法、"transparent"、十六进制颜色。
func (p Palette) Resolve(token string) (color.Color, error) {
	token = strings.TrimSpace(token)
	if strings.HasPrefix(token, "var(--") && strings.HasSuffix(token, ")") {
		token = strings.TrimSuffix(strings.TrimPrefix(token, "var(--"), ")")
		token = strings.TrimPrefix(token, "color-")
	}

	switch token {
	case "transparent":
		return color.Transparent, nil
	case "colour1":
		token = p.Colour1
	case "colour2":
		token = p.Colour2
	case "colour3":
		token = p.Colour3
	case "colour4":
		token = p.Colour4
	}

	c, err := colorful.Hex(token)
	if err != nil {
		return nil, fmt.Errorf("invalid colour %q: %w", token, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// ResolveOr 解析失败或为空时返回 fallback
func (p Palette) ResolveOr(token string, fallback color.Color) color.Color {
	if token == "" {
		return fallback
	}
	c, err := p.Resolve(token)
	if err != nil {
		return fallback
	}
	return c
}
