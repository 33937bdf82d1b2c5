package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/decker502/squarepart/pkg/app"
	"github.com/decker502/squarepart/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志和调试 HUD")
	configPath := flag.String("config", "", "YAML 配置文件路径（默认使用已保存的设置或内置配置）")
	saveConfig := flag.Bool("save-config", false, "把生效的配置保存为用户设置")
	width := flag.Int("width", 0, "窗口宽度（覆盖配置）")
	height := flag.Int("height", 0, "窗口高度（覆盖配置）")
	flag.Parse()

	// 初始化嵌入资源
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		SaveConfig: *saveConfig,
		Width:      *width,
		Height:     *height,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化失败: %v\n", err)
		os.Exit(1)
	}

	settings := gameApp.Settings()
	ebiten.SetWindowSize(settings.Window.Width, settings.Window.Height)
	ebiten.SetWindowTitle(settings.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(settings.Window.Fullscreen)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
