package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultScrambleConfig(t *testing.T) {
	cfg := DefaultScrambleConfig()

	if cfg.Radius != 100 || cfg.Duration != 1.2 || cfg.Speed != 0.5 {
		t.Errorf("默认值错误: radius=%v duration=%v speed=%v", cfg.Radius, cfg.Duration, cfg.Speed)
	}
	if cfg.ScrambleChars != "X" {
		t.Errorf("默认字符池 = %q, 期望 X", cfg.ScrambleChars)
	}
	if cfg.LineAnimation != LineAnimationStatic {
		t.Errorf("默认线条模式 = %q, 期望 static", cfg.LineAnimation)
	}
	if cfg.LineAnimationDuration != 5 {
		t.Errorf("默认循环周期 = %v, 期望 5", cfg.LineAnimationDuration)
	}
	if cfg.LineGap.Pixels(16) != 4 {
		t.Errorf("默认线间距 = %v, 期望 4px", cfg.LineGap)
	}
	if cfg.HasLine() {
		t.Error("未提供线条样式时不应绘制装饰线")
	}
}

func TestParseScrambleConfig(t *testing.T) {
	data := []byte(`
radius: 80
scrambleChars: "01"
lineStyle:
  color: colour3
lineGap: "0.25rem"
lineAnimation: shooting-star
`)
	cfg, err := ParseScrambleConfig(data)
	if err != nil {
		t.Fatalf("ParseScrambleConfig 失败: %v", err)
	}

	if cfg.Radius != 80 {
		t.Errorf("Radius = %v, 期望 80", cfg.Radius)
	}
	if cfg.Duration != DefaultDuration {
		t.Errorf("未配置的 Duration 应使用默认值, got %v", cfg.Duration)
	}
	if cfg.LineGap.Pixels(100) != 4 {
		t.Errorf("0.25rem 应换算为 4px, got %v", cfg.LineGap.Pixels(100))
	}
	if !cfg.ShootingStarActive() {
		t.Error("有线条样式且模式为 shooting-star 时流星应生效")
	}
}

func TestScrambleConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"负半径", "radius: -1", "radius"},
		{"负时长", "duration: -0.5", "duration"},
		{"负速度", "speed: -2", "speed"},
		{"负周期", "lineAnimationDuration: -5", "lineAnimationDuration"},
		{"未知模式", "lineAnimation: comet", "lineAnimation"},
		{"非法长度", "lineGap: wide", "invalid length"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScrambleConfig([]byte(tt.yaml))
			if err == nil {
				t.Fatal("期望返回错误")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("错误信息 %q 应包含 %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestScrambleCharPool(t *testing.T) {
	tests := []struct {
		chars    string
		expected string
	}{
		{"", "X"},
		{"X", "X"},
		{"!@#", "!@#"},
		{"upperCase", "ABCDEFGHIJKLMNOPQRSTUVWXYZ"},
		{"lowerCase", "abcdefghijklmnopqrstuvwxyz"},
	}
	for _, tt := range tests {
		cfg := ScrambleConfig{ScrambleChars: tt.chars}
		if got := cfg.ScrambleCharPool(); got != tt.expected {
			t.Errorf("ScrambleCharPool(%q) = %q, 期望 %q", tt.chars, got, tt.expected)
		}
	}
}

func TestHasLine(t *testing.T) {
	cls := "accent-line"
	tests := []struct {
		name         string
		cfg          ScrambleConfig
		hasLine      bool
		shootingStar bool
	}{
		{"无样式", ScrambleConfig{LineAnimation: LineAnimationShootingStar}, false, false},
		{"静态线", ScrambleConfig{LineClassName: &cls, LineAnimation: LineAnimationStatic}, true, false},
		{"流星", ScrambleConfig{LineStyle: &Style{}, LineAnimation: LineAnimationShootingStar}, true, true},
		{"none 模式", ScrambleConfig{LineClassName: &cls, LineAnimation: LineAnimationNone}, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.cfg.HasLine() != tt.hasLine {
				t.Errorf("HasLine = %v, 期望 %v", tt.cfg.HasLine(), tt.hasLine)
			}
			if tt.cfg.ShootingStarActive() != tt.shootingStar {
				t.Errorf("ShootingStarActive = %v, 期望 %v", tt.cfg.ShootingStarActive(), tt.shootingStar)
			}
		})
	}
}

func TestNeedsResegment(t *testing.T) {
	base := DefaultScrambleConfig()

	styled := base
	styled.Style.Color = "colour2"
	if base.NeedsResegment(styled) {
		t.Error("纯样式变化不应触发重新拆分")
	}

	faster := base
	faster.Speed = 1
	if !base.NeedsResegment(faster) {
		t.Error("速度变化应触发重新拆分")
	}

	mode := base
	mode.LineAnimation = LineAnimationShootingStar
	if !base.NeedsResegment(mode) {
		t.Error("线条模式变化应触发重新拆分")
	}

	cls := "accent-line"
	withLine := mode
	withLine.LineClassName = &cls
	if !mode.NeedsResegment(withLine) {
		t.Error("流星模式下增加装饰线应触发重新拆分")
	}
	if !withLine.NeedsResegment(mode) {
		t.Error("流星模式下移除装饰线应触发重新拆分")
	}

	restyled := withLine
	restyled.LineStyle = &Style{Color: "colour2"}
	if withLine.NeedsResegment(restyled) {
		t.Error("已有装饰线时仅修改线条样式不应触发重新拆分")
	}
}

func TestLoadScrambleConfigMissingFile(t *testing.T) {
	_, err := LoadScrambleConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("文件不存在时应返回错误")
	}
}

func TestLoadScrambleConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scramble.yaml")
	if err := os.WriteFile(path, []byte("radius: 42\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadScrambleConfig(path)
	if err != nil {
		t.Fatalf("LoadScrambleConfig 失败: %v", err)
	}
	if cfg.Radius != 42 {
		t.Errorf("Radius = %v, 期望 42", cfg.Radius)
	}
}
