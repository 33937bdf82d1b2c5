package game

import (
	"log"

	"github.com/decker502/squarepart/pkg/config"
	"github.com/decker502/squarepart/pkg/squarepart"
	"github.com/decker502/squarepart/pkg/surface"
	"github.com/decker502/squarepart/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// SquarePartScene 刻度线场景
//
// 场景自身不保存动画状态，只负责：
//   - 把主指针点击转交给 Renderer.HandleTap
//   - 用 RedrawScheduler 推进时间
//   - 只在有到期重绘请求时调用 Renderer.Render
type SquarePartScene struct {
	renderer  *squarepart.Renderer
	scheduler *squarepart.RedrawScheduler
	audio     *AudioManager // 可为 nil

	// tapped 每帧调用一次，返回本帧是否有点击
	tapped func() bool

	showHUD       bool
	width, height int // 上一次绘制的屏幕尺寸
}

// NewSquarePartScene 创建刻度线场景
//
// 参数：
//   - cfg: 视图配置，nil 表示使用默认值
//   - showHUD: 是否在画面左上角显示调试信息
func NewSquarePartScene(cfg *config.SquarePartConfig, showHUD bool) (*SquarePartScene, error) {
	if cfg == nil {
		cfg = config.DefaultSquarePartConfig()
	}
	opts, err := cfg.RendererOptions()
	if err != nil {
		return nil, err
	}

	scheduler := squarepart.NewRedrawScheduler()
	scene := &SquarePartScene{
		renderer:  squarepart.NewRenderer(scheduler, opts),
		scheduler: scheduler,
		tapped:    utils.IsPrimaryJustPressed,
		showHUD:   showHUD,
	}
	scene.renderer.OnComplete(func(index int, scale float64) {
		log.Printf("[SquarePartScene] %s", scene.renderer.Snapshot())
		if scene.audio != nil {
			scene.audio.PlayClick(index)
		}
	})

	// 第一帧需要绘制初始布局
	scheduler.RequestRedraw()

	log.Printf("[SquarePartScene] created: nodes=%d boundary=%s tick=%v", opts.Count, opts.Boundary, opts.TickDelay)
	return scene, nil
}

// SetAudioManager 设置节点完成时播放提示音的音频管理器
func (s *SquarePartScene) SetAudioManager(am *AudioManager) {
	s.audio = am
}

// SetTapSource 替换点击检测函数
func (s *SquarePartScene) SetTapSource(tapped func() bool) {
	if tapped != nil {
		s.tapped = tapped
	}
}

// Renderer 返回场景使用的 Renderer
func (s *SquarePartScene) Renderer() *squarepart.Renderer {
	return s.renderer
}

// Scheduler 返回场景使用的重绘调度器
func (s *SquarePartScene) Scheduler() *squarepart.RedrawScheduler {
	return s.scheduler
}

// Update 处理输入并推进时间
func (s *SquarePartScene) Update(deltaTime float64) {
	if s.tapped() {
		x, y := utils.GetPointerPosition()
		log.Printf("[SquarePartScene] tap at (%d, %d)", x, y)
		s.renderer.HandleTap()
	}
	s.scheduler.Update(deltaTime)
}

// Draw 在有到期重绘请求时绘制一帧
//
// 屏幕不会每帧清空，所以没有重绘请求时保留上一帧内容。
func (s *SquarePartScene) Draw(screen *ebiten.Image) {
	bounds := screen.Bounds()
	if bounds.Dx() != s.width || bounds.Dy() != s.height {
		s.width, s.height = bounds.Dx(), bounds.Dy()
		s.scheduler.RequestRedraw()
	}

	if !s.scheduler.Consume() {
		return
	}

	s.renderer.Render(surface.NewEbitenSurface(screen))

	if s.showHUD {
		ebitenutil.DebugPrint(screen, s.renderer.Snapshot().String())
	}
}
