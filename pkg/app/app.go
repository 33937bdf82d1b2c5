// Package app 提供刻度线视图应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"io"
	"log"

	"github.com/decker502/squarepart/pkg/config"
	"github.com/decker502/squarepart/pkg/embedded"
	"github.com/decker502/squarepart/pkg/game"
	"github.com/decker502/squarepart/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出和调试 HUD
	Verbose bool
	// ConfigPath 指定 YAML 配置文件，为空则使用已保存的设置或嵌入的默认配置
	ConfigPath string
	// SaveConfig 把最终生效的配置保存为用户设置
	SaveConfig bool
	// Width, Height 覆盖配置中的窗口尺寸（0 表示不覆盖）
	Width, Height int
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager    *game.SceneManager
	settingsManager *game.SettingsManager
	settings        *config.SquarePartConfig

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	settingsManager, err := game.NewSettingsManager(game.OpenGdataManager(game.AppName))
	if err != nil {
		return nil, fmt.Errorf("设置管理器初始化失败: %w", err)
	}

	settings, err := loadSettings(cfg, settingsManager)
	if err != nil {
		return nil, err
	}

	scene, err := game.NewSquarePartScene(settings, cfg.Verbose)
	if err != nil {
		return nil, fmt.Errorf("场景创建失败: %w", err)
	}

	// 初始化音频上下文
	audioContext := audio.NewContext(game.AudioSampleRate)
	scene.SetAudioManager(game.NewAudioManager(audioContext, settingsManager))
	log.Printf("[App] AudioManager initialized")

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scene)

	// 屏幕只在有重绘请求时更新
	ebiten.SetScreenClearedEveryFrame(false)

	log.Printf("[App] Started: nodes=%d window=%dx%d", settings.Chain.Nodes, settings.Window.Width, settings.Window.Height)

	return &App{
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		settings:        settings,
	}, nil
}

// loadSettings 确定生效的配置并写入 SettingsManager
//
// 命令行的窗口尺寸覆盖配置中的值；SaveConfig 为 true 时持久化最终结果。
func loadSettings(cfg Config, sm *game.SettingsManager) (*config.SquarePartConfig, error) {
	settings, err := resolveConfig(cfg, sm)
	if err != nil {
		return nil, err
	}

	if cfg.Width > 0 {
		settings.Window.Width = cfg.Width
	}
	if cfg.Height > 0 {
		settings.Window.Height = cfg.Height
	}

	if err := sm.SetSettings(settings); err != nil {
		return nil, fmt.Errorf("配置无效: %w", err)
	}
	if cfg.SaveConfig {
		if err := sm.Save(); err != nil {
			log.Printf("[App] Warning: failed to save settings: %v", err)
		}
	}
	return settings, nil
}

// resolveConfig 按优先级确定配置来源
//
// 优先级：-config 指定的文件 > 已保存的用户设置 > 嵌入的默认配置 > 内置默认值
func resolveConfig(cfg Config, sm *game.SettingsManager) (*config.SquarePartConfig, error) {
	if cfg.ConfigPath != "" {
		c, err := config.LoadSquarePartConfig(cfg.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("配置文件加载失败: %w", err)
		}
		log.Printf("[Config] 加载配置文件: %s", cfg.ConfigPath)
		return c, nil
	}

	if sm.HasSavedSettings() {
		log.Printf("[Config] 使用已保存的用户设置")
		return sm.GetSettings(), nil
	}

	if embedded.Exists(embedded.DefaultConfigPath) {
		data, err := embedded.ReadFile(embedded.DefaultConfigPath)
		if err != nil {
			return nil, fmt.Errorf("嵌入配置读取失败: %w", err)
		}
		c, err := config.ParseSquarePartConfig(data)
		if err != nil {
			return nil, fmt.Errorf("嵌入配置解析失败: %w", err)
		}
		log.Printf("[Config] 加载嵌入配置: %s", embedded.DefaultConfigPath)
		return c, nil
	}

	log.Printf("[Config] 未找到配置，使用内置默认值")
	return config.DefaultSquarePartConfig(), nil
}

// Settings 返回当前生效的配置
func (a *App) Settings() *config.SquarePartConfig {
	return a.settings
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.settings.Window.Width, a.settings.Window.Height)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.settings.Window.Width, a.settings.Window.Height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏（移动端没有窗口）
	if !utils.IsMobile() && inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

func (a *App) toggleFullscreen() {
	enable := !ebiten.IsFullscreen()
	if !enable {
		// 退出全屏
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	} else {
		ebiten.SetFullscreen(true)
	}

	// 全屏偏好写入用户设置
	a.settingsManager.SetFullscreen(enable)
	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: failed to save fullscreen preference: %v", err)
	}
}

// Draw 绘制画面
// 每帧调用一次，是否真正重绘由场景决定
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// Layout 返回逻辑屏幕尺寸
// 刻度线布局随窗口尺寸变化，所以直接使用外部尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
