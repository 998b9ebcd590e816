package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a page scene (e.g., the landing page).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	// screen is the target image where the scene should be drawn.
	Draw(screen *ebiten.Image)
}

// Exiter 是一个可选接口，用于场景在被替换或程序退出时释放资源
//
// 实现此接口的场景会在以下时机被调用 OnExit()：
//   - SceneManager 切换到其他场景
//   - 窗口关闭
//
// 场景在 OnExit 中应取消事件订阅、停止动画，之后不再有回调执行。
type Exiter interface {
	OnExit()
}
