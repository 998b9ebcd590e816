// Package app 提供应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/scramble/pkg/config"
	"github.com/decker502/scramble/pkg/embedded"
	"github.com/decker502/scramble/pkg/event"
	"github.com/decker502/scramble/pkg/game"
	"github.com/decker502/scramble/pkg/scenes"
	"github.com/decker502/scramble/pkg/utils"
)

// 嵌入的默认配置
const (
	DefaultPageConfigPath = "data/page.yaml"
	DefaultPalettePath    = "data/colours.yaml"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 磁盘上的页面配置，为空则使用嵌入的 data/page.yaml
	ConfigPath string
	// Text 覆盖标题文字
	Text string
	// Mode 覆盖装饰线模式（none / static / shooting-star）
	Mode string
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	bus          *event.Bus
	pointer      utils.PointerTracker
	fonts        *game.FontLoader
	pageConfig   *config.PageConfig
	verbose      bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	pageConfig, err := loadPageConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("页面配置加载失败: %w", err)
	}

	palette, err := loadPalette()
	if err != nil {
		return nil, fmt.Errorf("调色板加载失败: %w", err)
	}

	// 字体在后台加载，加载完成前使用位图字体
	fonts := game.NewFontLoader()
	fonts.Load(pageConfig.Font.Path, pageConfig.Font.Size)

	bus := event.NewBus(event.DefaultQueueSize)

	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(func(name string) game.Scene {
		switch name {
		case scenes.PageSceneName:
			return scenes.NewPageScene(pageConfig, *palette, fonts, bus)
		default:
			return nil
		}
	})
	sceneManager.LoadScene(scenes.PageSceneName)

	log.Printf("[App] Started: %q (%dx%d)", pageConfig.Title, pageConfig.Window.Width, pageConfig.Window.Height)

	return &App{
		sceneManager: sceneManager,
		bus:          bus,
		fonts:        fonts,
		pageConfig:   pageConfig,
		verbose:      cfg.Verbose,
	}, nil
}

// loadPageConfig 读取页面配置并应用命令行覆盖
func loadPageConfig(cfg Config) (*config.PageConfig, error) {
	var (
		pageConfig *config.PageConfig
		err        error
	)
	if cfg.ConfigPath != "" {
		pageConfig, err = config.LoadPageConfig(cfg.ConfigPath)
		log.Printf("[Config] 加载页面配置: %s", cfg.ConfigPath)
	} else {
		var data []byte
		data, err = embedded.ReadFile(DefaultPageConfigPath)
		if err != nil {
			return nil, err
		}
		pageConfig, err = config.ParsePageConfig(data)
		log.Printf("[Config] 加载嵌入页面配置: %s", DefaultPageConfigPath)
	}
	if err != nil {
		return nil, err
	}

	if cfg.Text != "" {
		pageConfig.Heading.Text = cfg.Text
	}
	if cfg.Mode != "" {
		pageConfig.Scramble.LineAnimation = config.LineAnimation(cfg.Mode)
		if err := pageConfig.Scramble.Validate(); err != nil {
			return nil, fmt.Errorf("--mode: %w", err)
		}
	}
	return pageConfig, nil
}

// loadPalette 读取嵌入的调色板，缺失时使用默认值
func loadPalette() (*config.Palette, error) {
	data, err := embedded.ReadFile(DefaultPalettePath)
	if err != nil {
		log.Printf("[Config] 调色板不可用，使用默认值: %v", err)
		p := config.DefaultPalette()
		return &p, nil
	}
	return config.ParsePalette(data)
}

// Update 更新应用逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	if !utils.IsMobile() {
		a.updateWindow()
	}

	// 指针位置变化时才产生移动事件
	if x, y, moved := a.pointer.Poll(); moved {
		a.bus.Publish(event.PointerMoved{X: float64(x), Y: float64(y)})
	}
	a.bus.Dispatch()

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// updateWindow 处理全屏切换
func (a *App) updateWindow() {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.pageConfig.Window.Width, a.pageConfig.Window.Height)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.pageConfig.Window.Width, a.pageConfig.Window.Height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear // 使用线性滤波减少锯齿和模糊
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.pageConfig.Window.Width, a.pageConfig.Window.Height
}

// WindowTitle 返回窗口标题
func (a *App) WindowTitle() string {
	return a.pageConfig.Title
}

// WindowSize 返回窗口尺寸
func (a *App) WindowSize() (int, int) {
	return a.pageConfig.Window.Width, a.pageConfig.Window.Height
}

// Close 退出当前场景，取消所有订阅和动画
func (a *App) Close() {
	a.sceneManager.Close()
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
