package config

import (
	"os"
	"strings"
	"testing"
)

func TestParsePageConfigDefaults(t *testing.T) {
	cfg, err := ParsePageConfig([]byte("heading:\n  text: STRADDLER\n"))
	if err != nil {
		t.Fatalf("ParsePageConfig 失败: %v", err)
	}

	if cfg.Window.Width != DefaultWindowWidth || cfg.Window.Height != DefaultWindowHeight {
		t.Errorf("窗口默认尺寸错误: %+v", cfg.Window)
	}
	if cfg.Heading.Top != 150 || cfg.Font.Size != 100 {
		t.Errorf("标题默认位置/字号错误: top=%v size=%v", cfg.Heading.Top, cfg.Font.Size)
	}
	if cfg.Intro.Duration != 1.8 || cfg.Intro.Easing != [4]float64{0.25, 0.46, 0.45, 0.94} {
		t.Errorf("入场动画默认值错误: %+v", cfg.Intro)
	}
	if cfg.Title != DefaultTitle {
		t.Errorf("窗口标题默认值错误: %q", cfg.Title)
	}
	if cfg.Scramble.Radius != DefaultRadius {
		t.Errorf("内嵌扰动配置应填充默认值, radius=%v", cfg.Scramble.Radius)
	}
}

func TestParsePageConfigInvalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"负字号", "font:\n  size: -1\n", "font size"},
		{"非法贝塞尔", "intro:\n  easing: [1.5, 0, 0.5, 1]\n", "easing"},
		{"非法扰动配置", "scrambledText:\n  radius: -3\n", "scrambledText"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePageConfig([]byte(tt.yaml))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("错误 = %v, 期望包含 %q", err, tt.wantErr)
			}
		})
	}
}

// TestBundledPageConfig 验证仓库自带的 data/page.yaml
func TestBundledPageConfig(t *testing.T) {
	data, err := os.ReadFile("../../data/page.yaml")
	if err != nil {
		t.Skipf("无法读取 data/page.yaml: %v", err)
	}
	cfg, err := ParsePageConfig(data)
	if err != nil {
		t.Fatalf("data/page.yaml 无效: %v", err)
	}
	if cfg.Heading.Text != "STRADDLER" {
		t.Errorf("标题 = %q, 期望 STRADDLER", cfg.Heading.Text)
	}
	if !cfg.Scramble.ShootingStarActive() {
		t.Error("自带配置应启用流星模式")
	}
	style := cfg.Stylesheet.Resolve(cfg.Scramble.ClassName, cfg.Scramble.Style)
	if style.FontSize != 100 {
		t.Errorf("display 类字号 = %v, 期望 100", style.FontSize)
	}

	palette, err := LoadPalette("../../data/colours.yaml")
	if err != nil {
		t.Fatalf("data/colours.yaml 无效: %v", err)
	}
	if _, err := palette.Resolve(style.Color); err != nil {
		t.Errorf("标题颜色 %q 无法解析: %v", style.Color, err)
	}
}
