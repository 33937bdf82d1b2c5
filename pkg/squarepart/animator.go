package squarepart

import "time"

// DefaultTickDelay 两个动画 tick 之间的重绘间隔
const DefaultTickDelay = 50 * time.Millisecond

// Animator 动画循环的开关
//
// 激活期间每次 Animate 都会执行一次回调并预约下一次重绘，
// 因此循环由宿主的重绘回调驱动，本身从不阻塞。
type Animator struct {
	active      bool
	delay       time.Duration
	invalidator Invalidator
}

// NewAnimator 创建动画循环，inv 不能为 nil
func NewAnimator(inv Invalidator, delay time.Duration) *Animator {
	return &Animator{
		invalidator: inv,
		delay:       delay,
	}
}

// IsActive 返回动画循环是否激活
func (a *Animator) IsActive() bool {
	return a.active
}

// Delay 返回 tick 间隔
func (a *Animator) Delay() time.Duration {
	return a.delay
}

// Start 激活循环并立即请求重绘，已激活时无效
func (a *Animator) Start() {
	if a.active {
		return
	}
	a.active = true
	a.invalidator.RequestRedraw()
}

// Stop 停止循环
func (a *Animator) Stop() {
	a.active = false
}

// Animate 激活时执行 cb，然后预约 delay 之后的重绘
//
// cb 内部调用 Stop 时仍会预约一次重绘，用于绘制完成后的最终状态。
func (a *Animator) Animate(cb func()) {
	if !a.active {
		return
	}
	if cb != nil {
		cb()
	}
	a.invalidator.RequestRedrawAfter(a.delay)
}
