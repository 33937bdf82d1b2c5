package main

import (
	"fmt"
	"math"
	"time"

	"github.com/decker502/squarepart/pkg/squarepart"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	clickSampleRate = beep.SampleRate(44100)
	clickDuration   = 40 * time.Millisecond
)

// clicker 节点完成时播放的短音
// 初始化失败时所有方法都是空操作
type clicker struct {
	ready  bool
	volume float64
}

// newClicker 初始化扬声器
//
// 返回的 clicker 总是可用；error 只用于记录日志
func newClicker(volume float64) (*clicker, error) {
	c := &clicker{volume: math.Min(volume, 1)}
	if volume <= 0 {
		return c, nil
	}
	if err := speaker.Init(clickSampleRate, clickSampleRate.N(time.Second/10)); err != nil {
		return c, fmt.Errorf("speaker init: %w", err)
	}
	c.ready = true
	return c, nil
}

// play 播放节点 index 对应音高的短音
func (c *clicker) play(index int) {
	if !c.ready {
		return
	}
	sine, err := generators.SineTone(clickSampleRate, squarepart.ToneFrequency(index))
	if err != nil {
		return
	}
	tone := beep.Take(clickSampleRate.N(clickDuration), sine)
	speaker.Play(&effects.Volume{Streamer: tone, Base: 2, Volume: math.Log2(c.volume)})
}

func (c *clicker) close() {
	if c.ready {
		speaker.Close()
		c.ready = false
	}
}
