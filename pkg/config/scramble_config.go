package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LineAnimation 文字下方装饰线的动画模式
type LineAnimation string

const (
	// LineAnimationNone 不绘制装饰线
	LineAnimationNone LineAnimation = "none"
	// LineAnimationStatic 静态装饰线（默认）
	LineAnimationStatic LineAnimation = "static"
	// LineAnimationShootingStar 流星拖尾 + 字符波浪
	LineAnimationShootingStar LineAnimation = "shooting-star"
)

// 默认值
const (
	DefaultRadius                = 100.0
	DefaultDuration              = 1.2
	DefaultSpeed                 = 0.5
	DefaultScrambleChars         = "X"
	DefaultLineGap               = 4.0
	DefaultLineAnimationDuration = 5.0
)

// 扰动字符集的预设名称，与 GSAP ScrambleTextPlugin 的 chars 取值一致
var scrambleCharPresets = map[string]string{
	"upperCase":         "ABCDEFGHIJKLMNOPQRSTUVWXYZ",
	"lowerCase":         "abcdefghijklmnopqrstuvwxyz",
	"upperAndLowerCase": "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz",
}

// ScrambleConfig 扰动文字组件的配置（只读，由调用方提供）
type ScrambleConfig struct {
	// Radius 激活半径（像素）
	Radius float64 `yaml:"radius"`
	// Duration 指针位于字符中心时的扰动时长（秒）
	Duration float64 `yaml:"duration"`
	// Speed 随机字符刷新速度（1 = 每 0.05 秒刷新一次）
	Speed float64 `yaml:"speed"`
	// ScrambleChars 替换字符池，或预设名 upperCase / lowerCase / upperAndLowerCase
	ScrambleChars string `yaml:"scrambleChars"`

	ClassName string `yaml:"className"`
	Style     Style  `yaml:"style"`

	// LineClassName / LineStyle 任一非 nil 时才绘制装饰线
	LineClassName *string `yaml:"lineClassName"`
	LineStyle     *Style  `yaml:"lineStyle"`
	// LineGap 文字与装饰线的间距：数字（像素）或长度字符串（"4px"、"0.25rem"）
	LineGap Length `yaml:"lineGap"`

	LineAnimation LineAnimation `yaml:"lineAnimation"`
	// LineAnimationDuration 流星模式的循环周期（秒）
	LineAnimationDuration float64 `yaml:"lineAnimationDuration"`
}

// DefaultScrambleConfig 返回全部使用默认值的配置
func DefaultScrambleConfig() ScrambleConfig {
	return ScrambleConfig{}.WithDefaults()
}

// WithDefaults 返回填充了缺省字段的副本
func (c ScrambleConfig) WithDefaults() ScrambleConfig {
	if c.Radius == 0 {
		c.Radius = DefaultRadius
	}
	if c.Duration == 0 {
		c.Duration = DefaultDuration
	}
	if c.Speed == 0 {
		c.Speed = DefaultSpeed
	}
	if c.ScrambleChars == "" {
		c.ScrambleChars = DefaultScrambleChars
	}
	if c.LineGap.IsZero() {
		c.LineGap = Px(DefaultLineGap)
	}
	if c.LineAnimation == "" {
		c.LineAnimation = LineAnimationStatic
	}
	if c.LineAnimationDuration == 0 {
		c.LineAnimationDuration = DefaultLineAnimationDuration
	}
	return c
}

// Validate 检查配置合法性
func (c ScrambleConfig) Validate() error {
	if c.Radius < 0 {
		return fmt.Errorf("radius must be non-negative, got %v", c.Radius)
	}
	if c.Duration < 0 {
		return fmt.Errorf("duration must be non-negative, got %v", c.Duration)
	}
	if c.Speed < 0 {
		return fmt.Errorf("speed must be non-negative, got %v", c.Speed)
	}
	if c.LineAnimationDuration < 0 {
		return fmt.Errorf("lineAnimationDuration must be non-negative, got %v", c.LineAnimationDuration)
	}
	switch c.LineAnimation {
	case "", LineAnimationNone, LineAnimationStatic, LineAnimationShootingStar:
	default:
		return fmt.Errorf("unknown lineAnimation %q (want none, static or shooting-star)", c.LineAnimation)
	}
	return nil
}

// ScrambleCharPool 返回实际使用的替换字符池（展开预设名）
func (c ScrambleConfig) ScrambleCharPool() string {
	if preset, ok := scrambleCharPresets[c.ScrambleChars]; ok {
		return preset
	}
	if c.ScrambleChars == "" {
		return DefaultScrambleChars
	}
	return c.ScrambleChars
}

// HasLine 是否绘制装饰线
func (c ScrambleConfig) HasLine() bool {
	if c.LineAnimation == LineAnimationNone {
		return false
	}
	return c.LineClassName != nil || c.LineStyle != nil
}

// ShootingStarActive 流星模式是否生效（需要装饰线存在）
func (c ScrambleConfig) ShootingStarActive() bool {
	return c.HasLine() && c.LineAnimation == LineAnimationShootingStar
}

// NeedsResegment 判断从 c 切换到 next 是否需要重新拆分字符
//
// 与动画相关的字段变化都需要拆除后重建；纯样式变化只影响绘制。
// 增删装饰线会改变流星模式是否生效，拖尾实体和时间轴只在挂载时创建。
func (c ScrambleConfig) NeedsResegment(next ScrambleConfig) bool {
	return c.Radius != next.Radius ||
		c.ShootingStarActive() != next.ShootingStarActive() ||
		c.Duration != next.Duration ||
		c.Speed != next.Speed ||
		c.ScrambleChars != next.ScrambleChars ||
		c.LineAnimation != next.LineAnimation ||
		c.LineAnimationDuration != next.LineAnimationDuration
}

// ParseScrambleConfig 从 YAML 数据解析配置并应用默认值
func ParseScrambleConfig(data []byte) (*ScrambleConfig, error) {
	var cfg ScrambleConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scramble config YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scramble config: %w", err)
	}
	cfg = cfg.WithDefaults()
	return &cfg, nil
}

// LoadScrambleConfig 从YAML文件加载扰动文字配置
// 参数：
//
//	filepath - 配置文件路径
//
// 返回：
//
//	*ScrambleConfig - 解析并填充默认值后的配置
//	error - 读取、解析或验证失败时返回错误
func LoadScrambleConfig(filepath string) (*ScrambleConfig, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read scramble config file %s: %w", filepath, err)
	}
	cfg, err := ParseScrambleConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath, err)
	}
	return cfg, nil
}
