package main

import (
	"log"
	"time"

	"github.com/decker502/squarepart/pkg/squarepart"
	"github.com/decker502/squarepart/pkg/surface"
	"github.com/gdamore/tcell/v2"
)

// frameInterval 终端刷新间隔（约 60 FPS）
const frameInterval = 16 * time.Millisecond

// host 在 tcell 屏幕上运行刻度线视图
//
// 所有状态只在 run 的主循环中修改；PollEvent 协程只负责转发事件。
type host struct {
	screen    tcell.Screen
	renderer  *squarepart.Renderer
	scheduler *squarepart.RedrawScheduler
	buttons   tcell.ButtonMask // 上一次鼠标事件的按键状态
}

func newHost(screen tcell.Screen, opts squarepart.Options) *host {
	scheduler := squarepart.NewRedrawScheduler()
	h := &host{
		screen:    screen,
		renderer:  squarepart.NewRenderer(scheduler, opts),
		scheduler: scheduler,
	}
	scheduler.RequestRedraw()
	return h
}

// handleEvent 处理一个终端事件，返回 false 表示退出
func (h *host) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return false
		case ev.Key() == tcell.KeyEnter, ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
			h.renderer.HandleTap()
		}

	case *tcell.EventMouse:
		// 只在 Button1 按下的边沿触发，拖动和释放不算点击
		buttons := ev.Buttons()
		if buttons&tcell.Button1 != 0 && h.buttons&tcell.Button1 == 0 {
			h.renderer.HandleTap()
		}
		h.buttons = buttons

	case *tcell.EventResize:
		h.screen.Sync()
		h.scheduler.RequestRedraw()

	case nil:
		// 屏幕已关闭
		return false
	}
	return true
}

// frame 推进时间并在有到期请求时重绘，返回本帧是否重绘
func (h *host) frame(elapsed time.Duration) bool {
	h.scheduler.Update(elapsed.Seconds())
	if !h.scheduler.Consume() {
		return false
	}
	h.renderer.Render(surface.NewTermSurface(h.screen))
	h.screen.Show()
	return true
}

// run 运行主循环直到用户退出
func (h *host) run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go forwardEvents(h.screen.PollEvent, events, done)

	last := time.Now()
	h.frame(0)
	for {
		select {
		case ev := <-events:
			if !h.handleEvent(ev) {
				log.Printf("[Term] quit")
				return
			}

		case now := <-ticker.C:
			h.frame(now.Sub(last))
			last = now
		}
	}
}

// forwardEvents 把 poll 读到的事件转发到 events
//
// poll 返回 nil（屏幕关闭）或 done 关闭后返回。
func forwardEvents(poll func() tcell.Event, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := poll()
		select {
		case events <- ev:
		case <-done:
			return
		}
		if ev == nil {
			return
		}
	}
}
