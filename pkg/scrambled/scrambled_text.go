// Package scrambled 提供可嵌入场景的扰动文字组件
//
// 组件把一段文字拆分为字符单元，指针在附近移动时按距离扰动字符，
// 并可在文字下方绘制静态装饰线或流星拖尾。
package scrambled

import (
	"image/color"
	"log"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/scramble/pkg/anim"
	"github.com/decker502/scramble/pkg/components"
	"github.com/decker502/scramble/pkg/config"
	"github.com/decker502/scramble/pkg/ecs"
	"github.com/decker502/scramble/pkg/entities"
	"github.com/decker502/scramble/pkg/event"
	"github.com/decker502/scramble/pkg/systems"
	"github.com/decker502/scramble/pkg/utils"
)

// Options 组件创建参数
type Options struct {
	Text   string
	Config config.ScrambleConfig

	Stylesheet config.Stylesheet
	Palette    config.Palette

	// Face 当前字体；Measurer 为 nil 时也用于测量
	Face     systems.FaceSource
	Measurer systems.GlyphMeasurer

	// FontReady 字体加载完成信号，可为 nil
	FontReady <-chan struct{}

	// Scheduler 为 nil 时组件自建调度器并在 Update 中推进
	Scheduler anim.Scheduler

	// Bus 指针事件来源，为 nil 时组件不响应指针
	Bus *event.Bus

	// Rand 随机字符来源，为 nil 时使用随机种子
	Rand *rand.Rand
}

// ScrambledText 扰动文字组件
type ScrambledText struct {
	opts Options
	cfg  config.ScrambleConfig

	entityManager *ecs.EntityManager
	container     *entities.TextContainer
	scheduler     anim.Scheduler
	ownScheduler  *anim.FrameScheduler

	layout     *systems.FlowLayout
	lock       *systems.DimensionLockSystem
	scramble   *systems.ScrambleSystem
	textRender *systems.TextRenderSystem
	lineRender *systems.LineRenderSystem

	trail    ecs.EntityID
	timeline *anim.Timeline
	sub      event.SubscriptionID

	mounted bool
	mounts  int

	x, y             float64
	offsetX, offsetY float64
	opacity          float64
	textOpacity      float64
}

// New 创建组件（未挂载）
func New(opts Options) *ScrambledText {
	st := &ScrambledText{
		opts:          opts,
		cfg:           opts.Config.WithDefaults(),
		entityManager: ecs.NewEntityManager(),
		container:     entities.NewTextContainer(opts.Text),
		scheduler:     opts.Scheduler,
		opacity:       1,
		textOpacity:   1,
	}
	if st.scheduler == nil {
		st.ownScheduler = anim.NewFrameScheduler()
		st.scheduler = st.ownScheduler
	}
	if st.opts.Stylesheet == nil {
		st.opts.Stylesheet = config.Stylesheet{}
	}

	measurer := opts.Measurer
	if measurer == nil {
		measurer = systems.TextFaceMeasurer{Face: opts.Face}
	}
	st.layout = systems.NewFlowLayout(st.entityManager, st.container, measurer)
	st.textRender = systems.NewTextRenderSystem(st.entityManager, st.container, st.layout, opts.Face)
	st.lineRender = systems.NewLineRenderSystem(st.entityManager, st.layout, config.LineAnimationNone)
	return st
}

// Mount 拆分文字、安排尺寸锁定、订阅指针事件，并按需启动流星时间轴
func (st *ScrambledText) Mount() {
	if st.mounted {
		return
	}

	cells := entities.SplitText(st.entityManager, st.container)
	st.applyStyle()

	measurer := st.opts.Measurer
	if measurer == nil {
		measurer = systems.TextFaceMeasurer{Face: st.opts.Face}
	}
	st.lock = systems.NewDimensionLockSystem(st.entityManager, st.container, measurer, st.opts.FontReady)
	st.lock.Schedule()

	st.scramble = systems.NewScrambleSystem(st.entityManager, st.container, st.layout, st.scheduler, st.cfg, st.opts.Rand)

	if st.opts.Bus != nil {
		st.sub = st.opts.Bus.Subscribe(st.hitTest, st.onPointerMoved)
	} else {
		log.Printf("[ScrambledText] No event bus, pointer scrambling disabled")
	}

	if st.cfg.ShootingStarActive() {
		st.trail = entities.NewTrailEntity(st.entityManager, systems.TrailWidth, systems.TrailHeight)
		st.lineRender.Trail = st.trail
		st.timeline = systems.BuildShootingStar(st.entityManager, st.scheduler, cells, st.trail,
			st.cfg.LineAnimationDuration, st.layout.ContainerWidth())
	}

	st.mounted = true
	st.mounts++
	log.Printf("[ScrambledText] Mounted %q: %d cells, line=%s", st.container.Text(), len(cells), st.lineRender.Mode)
}

// Unmount 撤销 Mount 的全部效果：取消订阅、停止时间轴和补间、恢复文本
// 之后不会再有任何回调写入组件状态
func (st *ScrambledText) Unmount() {
	if !st.mounted {
		return
	}

	if st.opts.Bus != nil && st.sub != 0 {
		st.opts.Bus.Unsubscribe(st.sub)
	}
	st.sub = 0

	if st.timeline != nil {
		st.timeline.Kill()
		st.timeline = nil
	}
	if st.scramble != nil {
		st.scramble.CancelAll()
		st.scramble = nil
	}
	if st.lock != nil {
		st.lock.Cancel()
		st.lock = nil
	}
	if st.trail != 0 {
		st.entityManager.DestroyEntity(st.trail)
		st.trail = 0
		st.lineRender.Trail = 0
	}

	entities.RevertSplit(st.entityManager, st.container)
	st.entityManager.RemoveMarkedEntities()
	st.mounted = false
	log.Printf("[ScrambledText] Unmounted %q", st.container.Text())
}

// Mounted 是否已挂载
func (st *ScrambledText) Mounted() bool {
	return st.mounted
}

// Update 推进组件状态
// 参数：
//   - dt: 时间增量（秒）
func (st *ScrambledText) Update(dt float64) {
	if st.ownScheduler != nil {
		st.ownScheduler.Update(dt)
	}
	if !st.mounted {
		return
	}
	st.lock.Update()
	st.scramble.Update()
}

// Draw 绘制文字与装饰线
func (st *ScrambledText) Draw(screen *ebiten.Image) {
	alpha := st.opacity * st.textOpacity
	st.textRender.Draw(screen, alpha)
	st.lineRender.Draw(screen, st.opacity)
}

// SetConfig 更新配置
// 与动画相关的字段变化时重新挂载，仅样式变化时只更新绘制参数
func (st *ScrambledText) SetConfig(cfg config.ScrambleConfig) {
	if err := cfg.Validate(); err != nil {
		log.Printf("[ScrambledText] Ignoring invalid config: %v", err)
		return
	}
	next := cfg.WithDefaults()
	remount := st.mounted && st.cfg.NeedsResegment(next)

	if remount {
		st.Unmount()
	}
	st.cfg = next
	if remount {
		st.Mount()
		return
	}
	st.applyStyle()
}

// Config 返回当前配置
func (st *ScrambledText) Config() config.ScrambleConfig {
	return st.cfg
}

// SetText 替换文字；已挂载时重新拆分
func (st *ScrambledText) SetText(s string) {
	if st.container.Node != nil && st.container.Node.Text == s {
		return
	}
	wasMounted := st.mounted
	if wasMounted {
		st.Unmount()
	}
	st.container.Node = &entities.TextNode{Text: s}
	if wasMounted {
		st.Mount()
	}
}

// Text 返回源文字
func (st *ScrambledText) Text() string {
	return st.container.Text()
}

// DisplayText 返回当前显示的文字（包含扰动中的随机字符）
func (st *ScrambledText) DisplayText() string {
	if !st.container.Segmented() {
		return st.container.Text()
	}
	parts := make([]string, 0, len(st.container.Cells()))
	for _, id := range st.container.Cells() {
		if cell, ok := ecs.GetComponent[*components.CharCellComponent](st.entityManager, id); ok {
			parts = append(parts, cell.Display)
		}
	}
	return utils.JoinGraphemes(parts)
}

// SetPosition 设置组件左上角（屏幕坐标）
func (st *ScrambledText) SetPosition(x, y float64) {
	st.x, st.y = x, y
	st.syncOrigin()
}

// SetOffset 设置页面动画附加的平移
func (st *ScrambledText) SetOffset(dx, dy float64) {
	st.offsetX, st.offsetY = dx, dy
	st.syncOrigin()
}

// SetOpacity 设置页面动画附加的不透明度
func (st *ScrambledText) SetOpacity(a float64) {
	st.opacity = utils.Clamp01(a)
}

// Bounds 返回组件区域（文字 + 装饰线）
func (st *ScrambledText) Bounds() utils.BoundingBox {
	return st.layout.ContainerBox()
}

// Size 返回组件尺寸，用于居中布局
func (st *ScrambledText) Size() (float64, float64) {
	b := st.layout.ContainerBox()
	return b.Width, b.Height
}

func (st *ScrambledText) syncOrigin() {
	st.layout.OriginX = st.x + st.offsetX
	st.layout.OriginY = st.y + st.offsetY
}

// applyStyle 按类名和内联样式设置颜色、宽度和装饰线参数
func (st *ScrambledText) applyStyle() {
	ss := st.opts.Stylesheet
	textStyle := ss.Resolve(st.cfg.ClassName, st.cfg.Style)
	st.textRender.Color = st.opts.Palette.ResolveOr(textStyle.Color, color.White)
	st.textOpacity = textStyle.OpacityOr(1)
	st.layout.MinWidth = textStyle.Width

	fontSize := textStyle.FontSize
	if fontSize == 0 {
		fontSize = config.RootFontSize
	}
	st.layout.LineGap = st.cfg.LineGap.Pixels(fontSize)

	if !st.cfg.HasLine() {
		st.lineRender.Mode = config.LineAnimationNone
		st.layout.LineHeight = 0
		return
	}

	lineClass := ""
	if st.cfg.LineClassName != nil {
		lineClass = *st.cfg.LineClassName
	}
	inline := config.Style{}
	if st.cfg.LineStyle != nil {
		inline = *st.cfg.LineStyle
	}
	lineStyle := ss.Resolve(lineClass, inline)

	st.lineRender.Color = st.opts.Palette.ResolveOr(lineStyle.Color, st.opts.Palette.ResolveOr("colour3", color.White))
	st.lineRender.Mode = st.cfg.LineAnimation
	if st.cfg.ShootingStarActive() {
		// 拖尾轨道固定 2px 高，默认不透明度 0.6
		st.layout.LineHeight = systems.TrailHeight
		st.lineRender.Opacity = lineStyle.OpacityOr(systems.DefaultTrailOpacity)
		return
	}
	st.layout.LineHeight = lineStyle.Height
	if st.layout.LineHeight == 0 {
		st.layout.LineHeight = 1
	}
	st.lineRender.Opacity = lineStyle.OpacityOr(1)
}

func (st *ScrambledText) hitTest(x, y float64) bool {
	return st.layout.ContainerBox().Contains(x, y)
}

func (st *ScrambledText) onPointerMoved(ev event.PointerMoved) {
	if !st.mounted || st.scramble == nil {
		return
	}
	st.scramble.HandlePointerMoved(ev)
}
