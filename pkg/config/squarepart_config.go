package config

import (
	"fmt"
	"image/color"
	"os"
	"strings"
	"time"

	"github.com/decker502/squarepart/pkg/squarepart"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// 默认值
//
// 这些常量构成刻度线视图的视觉约定，修改时需要同步 data/squarepart.yaml。
const (
	DefaultWindowWidth   = 800
	DefaultWindowHeight  = 320
	DefaultWindowTitle   = "Square Parts"
	DefaultNodes         = 4
	MaxNodes             = 8
	DefaultBoundary      = "reflect"
	DefaultStep          = 0.1
	DefaultThreshold     = 1.0
	DefaultTickDelayMs   = 50
	DefaultStrokeColor   = "#4CAF50"
	DefaultBgColor       = "#BDBDBD"
	DefaultStrokeDivisor = 60.0
	DefaultSoundVolume   = 0.3
)

// SquarePartConfig 刻度线视图的完整配置
//
// 配置文件位置: data/squarepart.yaml（嵌入默认值），也可以通过 -config 指定
type SquarePartConfig struct {
	Window    WindowConfig    `yaml:"window"`
	Chain     ChainConfig     `yaml:"chain"`
	Animation AnimationConfig `yaml:"animation"`
	Style     StyleConfig     `yaml:"style"`
	Sound     SoundConfig     `yaml:"sound"`
}

// WindowConfig 窗口配置（仅桌面宿主使用）
type WindowConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Title      string `yaml:"title"`
	Fullscreen bool   `yaml:"fullscreen"` // 启动时是否全屏
}

// ChainConfig 节点链配置
type ChainConfig struct {
	// Nodes 节点数量 1..MaxNodes
	Nodes int `yaml:"nodes"`
	// Boundary 到达链端时的行为: "reflect" 或 "hold"
	Boundary string `yaml:"boundary"`
}

// AnimationConfig 动画参数
type AnimationConfig struct {
	Step        float64 `yaml:"step"`
	Threshold   float64 `yaml:"threshold"`
	TickDelayMs int     `yaml:"tickDelayMs"`
}

// StyleConfig 颜色和线宽
type StyleConfig struct {
	Stroke     string `yaml:"stroke"`
	Background string `yaml:"background"`
	// StrokeDivisor 线宽 = min(width, height) / StrokeDivisor
	StrokeDivisor float64 `yaml:"strokeDivisor"`
}

// SoundConfig 节点完成提示音
type SoundConfig struct {
	Muted  bool    `yaml:"muted"`
	Volume float64 `yaml:"volume"` // 0..1
}

// DefaultSquarePartConfig 返回默认配置
func DefaultSquarePartConfig() *SquarePartConfig {
	return &SquarePartConfig{
		Window: WindowConfig{
			Width:  DefaultWindowWidth,
			Height: DefaultWindowHeight,
			Title:  DefaultWindowTitle,
		},
		Chain: ChainConfig{
			Nodes:    DefaultNodes,
			Boundary: DefaultBoundary,
		},
		Animation: AnimationConfig{
			Step:        DefaultStep,
			Threshold:   DefaultThreshold,
			TickDelayMs: DefaultTickDelayMs,
		},
		Style: StyleConfig{
			Stroke:        DefaultStrokeColor,
			Background:    DefaultBgColor,
			StrokeDivisor: DefaultStrokeDivisor,
		},
		Sound: SoundConfig{
			Volume: DefaultSoundVolume,
		},
	}
}

// LoadSquarePartConfig 从文件加载配置
//
// 参数:
//   - path: 配置文件路径
//
// 返回:
//   - *SquarePartConfig: 缺省字段已填充默认值并通过校验的配置
//   - error: 读取、解析或校验失败时返回错误
func LoadSquarePartConfig(path string) (*SquarePartConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read squarepart config: %w", err)
	}
	return ParseSquarePartConfig(data)
}

// ParseSquarePartConfig 解析 YAML 配置数据
//
// 数据解析到默认配置之上：文件中没有出现的字段保留默认值，
// 显式写出的值（包括 0）原样保留，因此 Marshal 后再解析得到相同的配置。
func ParseSquarePartConfig(data []byte) (*SquarePartConfig, error) {
	config := DefaultSquarePartConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse squarepart config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid squarepart config: %w", err)
	}

	return config, nil
}

// Marshal 序列化为 YAML
func (c *SquarePartConfig) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal squarepart config: %w", err)
	}
	return data, nil
}

// Validate 验证配置有效性
func (c *SquarePartConfig) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}

	if c.Chain.Nodes < 1 || c.Chain.Nodes > MaxNodes {
		return fmt.Errorf("chain.nodes must be in [1, %d], got %d", MaxNodes, c.Chain.Nodes)
	}

	switch strings.ToLower(strings.TrimSpace(c.Chain.Boundary)) {
	case "reflect", "hold":
	default:
		return fmt.Errorf("chain.boundary must be 'reflect' or 'hold', got '%s'", c.Chain.Boundary)
	}

	if c.Animation.Step <= 0 {
		return fmt.Errorf("animation.step must be positive, got %.3f", c.Animation.Step)
	}
	if c.Animation.Threshold <= 0 {
		return fmt.Errorf("animation.threshold must be positive, got %.3f", c.Animation.Threshold)
	}
	// 0 会让动画循环每帧都立即重绘
	if c.Animation.TickDelayMs <= 0 {
		return fmt.Errorf("animation.tickDelayMs must be positive, got %d", c.Animation.TickDelayMs)
	}

	if _, err := ParseHexColor(c.Style.Stroke); err != nil {
		return fmt.Errorf("style.stroke: %w", err)
	}
	if _, err := ParseHexColor(c.Style.Background); err != nil {
		return fmt.Errorf("style.background: %w", err)
	}
	if c.Style.StrokeDivisor <= 0 {
		return fmt.Errorf("style.strokeDivisor must be positive, got %.1f", c.Style.StrokeDivisor)
	}

	if c.Sound.Volume < 0 || c.Sound.Volume > 1 {
		return fmt.Errorf("sound.volume must be in [0, 1], got %.2f", c.Sound.Volume)
	}

	return nil
}

// SoundVolume 返回实际音量，静音时为 0
func (c *SquarePartConfig) SoundVolume() float64 {
	if c.Sound.Muted {
		return 0
	}
	return c.Sound.Volume
}

// TickDelay 返回 tick 间隔
func (c *SquarePartConfig) TickDelay() time.Duration {
	return time.Duration(c.Animation.TickDelayMs) * time.Millisecond
}

// StrokeColor 返回线段颜色，配置无效时返回默认颜色
func (c *SquarePartConfig) StrokeColor() color.RGBA {
	return parseColorOr(c.Style.Stroke, DefaultStrokeColor)
}

// BackgroundColor 返回背景颜色，配置无效时返回默认颜色
func (c *SquarePartConfig) BackgroundColor() color.RGBA {
	return parseColorOr(c.Style.Background, DefaultBgColor)
}

// RendererOptions 将配置转换为 Renderer 参数
func (c *SquarePartConfig) RendererOptions() (squarepart.Options, error) {
	boundary, err := squarepart.ParseBoundaryMode(c.Chain.Boundary)
	if err != nil {
		return squarepart.Options{}, fmt.Errorf("chain.boundary: %w", err)
	}

	return squarepart.Options{
		Count: c.Chain.Nodes,
		Motion: squarepart.Motion{
			Step:      c.Animation.Step,
			Threshold: c.Animation.Threshold,
		},
		TickDelay:     c.TickDelay(),
		Boundary:      boundary,
		Stroke:        c.StrokeColor(),
		Background:    c.BackgroundColor(),
		StrokeDivisor: c.Style.StrokeDivisor,
	}, nil
}

// ParseHexColor 解析 "#RRGGBB" 或 "#RGB" 格式的颜色
func ParseHexColor(s string) (color.RGBA, error) {
	c, err := colorful.Hex(strings.TrimSpace(s))
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid colour '%s': %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}, nil
}

func parseColorOr(s, fallback string) color.RGBA {
	if c, err := ParseHexColor(s); err == nil {
		return c
	}
	c, _ := ParseHexColor(fallback)
	return c
}
