package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/decker502/scramble/pkg/config"
	"github.com/decker502/scramble/pkg/embedded"
	"github.com/decker502/scramble/pkg/scenes"
)

func initTestData(t *testing.T) {
	t.Helper()
	page, err := os.ReadFile("../../data/page.yaml")
	if err != nil {
		t.Skipf("无法读取 data/page.yaml: %v", err)
	}
	colours, err := os.ReadFile("../../data/colours.yaml")
	if err != nil {
		t.Skipf("无法读取 data/colours.yaml: %v", err)
	}
	embedded.Init(fstest.MapFS{
		DefaultPageConfigPath: {Data: page},
		DefaultPalettePath:    {Data: colours},
	})
	t.Cleanup(func() { embedded.Init(nil) })
}

func TestNewAppDefaults(t *testing.T) {
	initTestData(t)

	a, err := NewApp(Config{})
	if err != nil {
		t.Fatalf("NewApp 失败: %v", err)
	}
	defer a.Close()

	if a.WindowTitle() != "Poker | High Stakes Online" {
		t.Errorf("WindowTitle = %q", a.WindowTitle())
	}
	if w, h := a.Layout(0, 0); w != config.DefaultWindowWidth || h != config.DefaultWindowHeight {
		t.Errorf("Layout = %dx%d", w, h)
	}

	page, ok := a.GetSceneManager().GetCurrentScene().(*scenes.PageScene)
	if !ok {
		t.Fatalf("当前场景应为 PageScene, got %T", a.GetSceneManager().GetCurrentScene())
	}
	if page.Heading().Text() != "STRADDLER" {
		t.Errorf("标题 = %q", page.Heading().Text())
	}
	if a.bus.ListenerCount() != 1 {
		t.Errorf("ListenerCount = %d, 期望 1", a.bus.ListenerCount())
	}
}

func TestNewAppOverrides(t *testing.T) {
	initTestData(t)

	a, err := NewApp(Config{Text: "HELLO", Mode: "none"})
	if err != nil {
		t.Fatalf("NewApp 失败: %v", err)
	}
	defer a.Close()

	page := a.GetSceneManager().GetCurrentScene().(*scenes.PageScene)
	if page.Heading().Text() != "HELLO" {
		t.Errorf("标题 = %q, 期望 HELLO", page.Heading().Text())
	}
	if page.Heading().Config().LineAnimation != config.LineAnimationNone {
		t.Errorf("LineAnimation = %q", page.Heading().Config().LineAnimation)
	}
}

func TestNewAppErrors(t *testing.T) {
	initTestData(t)

	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"非法模式", Config{Mode: "sparkle"}, "--mode"},
		{"配置文件不存在", Config{ConfigPath: filepath.Join(t.TempDir(), "missing.yaml")}, "页面配置加载失败"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewApp(tt.cfg)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("错误 = %v, 期望包含 %q", err, tt.wantErr)
			}
		})
	}
}

func TestNewAppNotInitialized(t *testing.T) {
	embedded.Init(nil)
	if _, err := NewApp(Config{}); err == nil {
		t.Error("未初始化嵌入资源时应返回错误")
	}
}

func TestAppCloseReleasesListeners(t *testing.T) {
	initTestData(t)

	a, err := NewApp(Config{})
	if err != nil {
		t.Fatalf("NewApp 失败: %v", err)
	}
	a.Close()
	if a.bus.ListenerCount() != 0 {
		t.Errorf("Close 后 ListenerCount = %d", a.bus.ListenerCount())
	}
}
