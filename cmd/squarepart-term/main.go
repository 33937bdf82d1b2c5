// squarepart-term 在终端中运行刻度线视图
//
// 用法:
//
//	squarepart-term [-config squarepart.yaml] [-volume 0.5] [-verbose]
//
// 空格、回车或鼠标左键触发点击；Esc、Ctrl-C 或 q 退出。
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/decker502/squarepart/pkg/config"
	"github.com/gdamore/tcell/v2"
)

func main() {
	configPath := flag.String("config", "", "YAML 配置文件路径（默认使用内置配置）")
	volume := flag.Float64("volume", -1, "完成提示音音量 0..1（0 表示静音，负数使用配置）")
	verbose := flag.Bool("verbose", false, "把日志写入 -log 指定的文件")
	logPath := flag.String("log", "squarepart-term.log", "verbose 模式下的日志文件")
	flag.Parse()

	// 终端被 tcell 接管，日志不能写到 stderr
	log.SetOutput(io.Discard)
	if *verbose {
		f, err := os.Create(*logPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "无法创建日志文件: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	cfg := config.DefaultSquarePartConfig()
	if *configPath != "" {
		loaded, err := config.LoadSquarePartConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "配置加载失败: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	opts, err := cfg.RendererOptions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "配置无效: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()
	screen.HideCursor()
	defer screen.Fini()

	if *volume < 0 {
		*volume = cfg.SoundVolume()
	}
	click, err := newClicker(*volume)
	if err != nil {
		// 没有声音也能运行
		log.Printf("[Term] audio disabled: %v", err)
	}
	defer click.close()

	h := newHost(screen, opts)
	h.renderer.OnComplete(func(index int, scale float64) {
		click.play(index)
	})

	log.Printf("[Term] started: nodes=%d boundary=%s", opts.Count, opts.Boundary)
	h.run()
}
