package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// 窗口默认尺寸（逻辑像素）
const (
	DefaultWindowWidth  = 1024
	DefaultWindowHeight = 480
)

// 页面默认文字
const (
	DefaultTitle   = "Poker | High Stakes Online"
	DefaultHeading = "STRADDLER"
)

// PageConfig 页面配置：窗口、字体、标题文字与入场动画
type PageConfig struct {
	Title      string         `yaml:"title"`
	Window     WindowConfig   `yaml:"window"`
	Background string         `yaml:"background"`
	Font       FontConfig     `yaml:"font"`
	Heading    HeadingConfig  `yaml:"heading"`
	Intro      IntroConfig    `yaml:"intro"`
	Stylesheet Stylesheet     `yaml:"stylesheet"`
	Scramble   ScrambleConfig `yaml:"scrambledText"`
}

// WindowConfig 窗口尺寸
type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// FontConfig 展示字体
type FontConfig struct {
	// Path 为空时使用内置 Go Bold Italic
	Path string  `yaml:"path"`
	Size float64 `yaml:"size"`
}

// HeadingConfig 标题文字及位置（水平居中，Top 为距窗口顶部的距离）
type HeadingConfig struct {
	Text string  `yaml:"text"`
	Top  float64 `yaml:"top"`
}

// IntroConfig 入场动画：透明度 0→1，纵向偏移 OffsetY→0
type IntroConfig struct {
	Duration float64    `yaml:"duration"`
	OffsetY  float64    `yaml:"offsetY"`
	Easing   [4]float64 `yaml:"easing"` // cubic-bezier 控制点
}

// ParsePageConfig 解析页面配置并应用默认值
func ParsePageConfig(data []byte) (*PageConfig, error) {
	var cfg PageConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse page config YAML: %w", err)
	}

	applyPageDefaults(&cfg)

	if err := validatePageConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid page config: %w", err)
	}
	return &cfg, nil
}

// LoadPageConfig 从文件加载页面配置
func LoadPageConfig(filepath string) (*PageConfig, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read page config file %s: %w", filepath, err)
	}
	cfg, err := ParsePageConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath, err)
	}
	return cfg, nil
}

// applyPageDefaults 为缺失的可选字段设置默认值
func applyPageDefaults(cfg *PageConfig) {
	if cfg.Title == "" {
		cfg.Title = DefaultTitle
	}
	if cfg.Heading.Text == "" {
		cfg.Heading.Text = DefaultHeading
	}
	if cfg.Window.Width == 0 {
		cfg.Window.Width = DefaultWindowWidth
	}
	if cfg.Window.Height == 0 {
		cfg.Window.Height = DefaultWindowHeight
	}
	if cfg.Background == "" {
		cfg.Background = "colour1"
	}
	if cfg.Font.Size == 0 {
		cfg.Font.Size = 100
	}
	if cfg.Heading.Top == 0 {
		cfg.Heading.Top = 150
	}
	if cfg.Intro.Duration == 0 {
		cfg.Intro.Duration = 1.8
	}
	if cfg.Intro.OffsetY == 0 {
		cfg.Intro.OffsetY = 24
	}
	// 原页面使用 cubic-bezier(0.25, 0.46, 0.45, 0.94)
	if cfg.Intro.Easing == [4]float64{} {
		cfg.Intro.Easing = [4]float64{0.25, 0.46, 0.45, 0.94}
	}
	if cfg.Stylesheet == nil {
		cfg.Stylesheet = Stylesheet{}
	}
	cfg.Scramble = cfg.Scramble.WithDefaults()
}

// validatePageConfig 验证页面配置
func validatePageConfig(cfg *PageConfig) error {
	if cfg.Window.Width < 0 || cfg.Window.Height < 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Font.Size < 0 {
		return fmt.Errorf("font size must be positive, got %v", cfg.Font.Size)
	}
	if cfg.Intro.Duration < 0 {
		return fmt.Errorf("intro duration must be non-negative, got %v", cfg.Intro.Duration)
	}
	for i, x := range []float64{cfg.Intro.Easing[0], cfg.Intro.Easing[2]} {
		if x < 0 || x > 1 {
			return fmt.Errorf("intro easing x%d must be within [0, 1], got %v", i+1, x)
		}
	}
	if err := cfg.Scramble.Validate(); err != nil {
		return fmt.Errorf("scrambledText: %w", err)
	}
	return nil
}
