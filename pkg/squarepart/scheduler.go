package squarepart

import (
	"math"
	"time"
)

// RedrawScheduler 非阻塞的单次重绘计时器
//
// 时间由宿主每帧通过 Update(deltaTime) 推进，不依赖真实时钟，也从不休眠。
// 同一时刻只保留最早的一个截止时间：多个请求合并为一次重绘。
type RedrawScheduler struct {
	now      time.Duration // 累计运行时间
	deadline time.Duration // 下一次重绘时间
	pending  bool
	redraws  int // 已触发的重绘次数
}

// NewRedrawScheduler 创建调度器
func NewRedrawScheduler() *RedrawScheduler {
	return &RedrawScheduler{}
}

// RequestRedraw 请求在下一帧重绘
func (s *RedrawScheduler) RequestRedraw() {
	s.schedule(s.now)
}

// RequestRedrawAfter 请求在 delay 之后重绘
func (s *RedrawScheduler) RequestRedrawAfter(delay time.Duration) {
	if delay < 0 {
		delay = 0
	}
	s.schedule(s.now + delay)
}

func (s *RedrawScheduler) schedule(at time.Duration) {
	if !s.pending || at < s.deadline {
		s.deadline = at
		s.pending = true
	}
}

// Update 推进时间
// deltaTime 是距离上一次更新的秒数
func (s *RedrawScheduler) Update(deltaTime float64) {
	if deltaTime <= 0 {
		return
	}
	s.now += time.Duration(math.Round(deltaTime * float64(time.Second)))
}

// Due 返回是否有到期的重绘请求
func (s *RedrawScheduler) Due() bool {
	return s.pending && s.now >= s.deadline
}

// Consume 若有到期请求则清除并返回 true，宿主据此执行一次重绘
func (s *RedrawScheduler) Consume() bool {
	if !s.Due() {
		return false
	}
	s.pending = false
	s.redraws++
	return true
}

// Pending 返回是否有未处理的请求（不论是否到期）
func (s *RedrawScheduler) Pending() bool {
	return s.pending
}

// Redraws 返回已触发的重绘次数
func (s *RedrawScheduler) Redraws() int {
	return s.redraws
}

var _ Invalidator = (*RedrawScheduler)(nil)
