package squarepart

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"strings"
	"time"
)

// 默认配色
var (
	DefaultStrokeColor     = color.RGBA{R: 0x4C, G: 0xAF, B: 0x50, A: 0xFF} // #4CAF50
	DefaultBackgroundColor = color.RGBA{R: 0xBD, G: 0xBD, B: 0xBD, A: 0xFF} // #BDBDBD
)

// DefaultNodeCount 默认节点数量
const DefaultNodeCount = 4

// DefaultStrokeDivisor 线宽 = min(width, height) / DefaultStrokeDivisor
const DefaultStrokeDivisor = 60.0

// Options Renderer 的构造参数
type Options struct {
	Count         int
	Motion        Motion
	TickDelay     time.Duration
	Boundary      BoundaryMode
	Stroke        color.Color
	Background    color.Color
	StrokeDivisor float64
}

// DefaultOptions 返回默认参数
func DefaultOptions() Options {
	return Options{
		Count:         DefaultNodeCount,
		Motion:        DefaultMotion,
		TickDelay:     DefaultTickDelay,
		Boundary:      BoundaryReflect,
		Stroke:        DefaultStrokeColor,
		Background:    DefaultBackgroundColor,
		StrokeDivisor: DefaultStrokeDivisor,
	}
}

// Renderer 将节点链和动画循环组合到绘制表面上
type Renderer struct {
	chain      *Chain
	animator   *Animator
	opts       Options
	onComplete func(index int, scale float64)
}

// NewRenderer 创建 Renderer
//
// 初始状态：所有节点空闲，动画循环未激活，活动节点为 0。
// 零值或非正的 Count、Motion、TickDelay 使用默认值，否则动画永远不会完成。
func NewRenderer(inv Invalidator, opts Options) *Renderer {
	if opts.Count < 1 {
		opts.Count = DefaultNodeCount
	}
	if opts.Motion.Step <= 0 || opts.Motion.Threshold <= 0 {
		opts.Motion = DefaultMotion
	}
	if opts.TickDelay <= 0 {
		opts.TickDelay = DefaultTickDelay
	}
	if opts.Stroke == nil {
		opts.Stroke = DefaultStrokeColor
	}
	if opts.Background == nil {
		opts.Background = DefaultBackgroundColor
	}
	return &Renderer{
		chain:    NewChain(opts.Count, opts.Motion, opts.Boundary),
		animator: NewAnimator(inv, opts.TickDelay),
		opts:     opts,
	}
}

// OnComplete 设置节点完成动画时的回调
func (r *Renderer) OnComplete(fn func(index int, scale float64)) {
	r.onComplete = fn
}

// Chain 返回节点链
func (r *Renderer) Chain() *Chain {
	return r.chain
}

// Animator 返回动画循环
func (r *Renderer) Animator() *Animator {
	return r.animator
}

// Render 绘制一帧
//
// 先清屏并绘制整条链；若动画循环激活则推进活动节点一个 tick，
// 节点完成时停止循环，等待下一次点击。
func (r *Renderer) Render(s Surface) {
	s.Clear(r.opts.Background)
	r.chain.Draw(s, r.style(s))
	r.animator.Animate(func() {
		r.chain.Update(func(index int, scale float64) {
			r.animator.Stop()
			log.Printf("[Renderer] node %d settled at %.0f, next active node %d", index, scale, r.chain.Current())
			if r.onComplete != nil {
				r.onComplete(index, scale)
			}
		})
	})
}

// HandleTap 处理一次主指针按下
func (r *Renderer) HandleTap() {
	r.chain.StartUpdating(r.animator.Start)
}

func (r *Renderer) style(s Surface) Style {
	width := 1.0
	if r.opts.StrokeDivisor > 0 {
		width = math.Max(math.Min(s.Width(), s.Height())/r.opts.StrokeDivisor, 1)
	}
	return Style{Color: r.opts.Stroke, StrokeWidth: width}
}

// Snapshot 当前状态的只读副本
type Snapshot struct {
	Active    int
	Direction int
	Animating bool
	Scales    []float64
}

// Snapshot 返回当前状态
func (r *Renderer) Snapshot() Snapshot {
	scales := make([]float64, r.chain.Len())
	for i := range scales {
		scales[i] = r.chain.Node(i).State.Scale
	}
	return Snapshot{
		Active:    r.chain.Current(),
		Direction: r.chain.Direction(),
		Animating: r.animator.IsActive(),
		Scales:    scales,
	}
}

// String 返回单行调试文本
func (s Snapshot) String() string {
	parts := make([]string, len(s.Scales))
	for i, v := range s.Scales {
		parts[i] = fmt.Sprintf("%.1f", v)
	}
	return fmt.Sprintf("active=%d dir=%+d animating=%t scales=[%s]",
		s.Active, s.Direction, s.Animating, strings.Join(parts, " "))
}
