package config

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/decker502/squarepart/pkg/squarepart"
)

// TestDefaultSquarePartConfig 测试默认配置与视觉约定一致
func TestDefaultSquarePartConfig(t *testing.T) {
	c := DefaultSquarePartConfig()

	if c.Chain.Nodes != 4 {
		t.Errorf("Chain.Nodes = %d, want 4", c.Chain.Nodes)
	}
	if c.Chain.Boundary != "reflect" {
		t.Errorf("Chain.Boundary = %q, want reflect", c.Chain.Boundary)
	}
	if c.Animation.Step != 0.1 || c.Animation.Threshold != 1.0 {
		t.Errorf("Animation = %+v, want step 0.1 threshold 1.0", c.Animation)
	}
	if c.TickDelay() != 50*time.Millisecond {
		t.Errorf("TickDelay() = %v, want 50ms", c.TickDelay())
	}
	if got := c.StrokeColor(); got != (color.RGBA{R: 0x4C, G: 0xAF, B: 0x50, A: 0xFF}) {
		t.Errorf("StrokeColor() = %v", got)
	}
	if got := c.BackgroundColor(); got != (color.RGBA{R: 0xBD, G: 0xBD, B: 0xBD, A: 0xFF}) {
		t.Errorf("BackgroundColor() = %v", got)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

// TestParseSquarePartConfigPartial 测试部分字段的配置使用默认值补全
func TestParseSquarePartConfigPartial(t *testing.T) {
	data := []byte(`
chain:
  nodes: 6
  boundary: hold
animation:
  tickDelayMs: 30
style:
  stroke: "#FF5722"
`)
	c, err := ParseSquarePartConfig(data)
	if err != nil {
		t.Fatalf("ParseSquarePartConfig() error = %v", err)
	}

	if c.Chain.Nodes != 6 || c.Chain.Boundary != "hold" {
		t.Errorf("Chain = %+v, want 6 nodes hold", c.Chain)
	}
	if c.TickDelay() != 30*time.Millisecond {
		t.Errorf("TickDelay() = %v, want 30ms", c.TickDelay())
	}
	if c.Animation.Step != DefaultStep {
		t.Errorf("Animation.Step = %v, want default %v", c.Animation.Step, DefaultStep)
	}
	if c.Style.Background != DefaultBgColor {
		t.Errorf("Style.Background = %q, want default", c.Style.Background)
	}
	if got := c.StrokeColor(); got != (color.RGBA{R: 0xFF, G: 0x57, B: 0x22, A: 0xFF}) {
		t.Errorf("StrokeColor() = %v", got)
	}
	if c.Window.Width != DefaultWindowWidth || c.Window.Title != DefaultWindowTitle {
		t.Errorf("Window = %+v, want defaults", c.Window)
	}
}

// TestParseSquarePartConfigInvalid 测试非法配置
func TestParseSquarePartConfigInvalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"节点过多", "chain:\n  nodes: 9\n", "chain.nodes"},
		{"节点为负", "chain:\n  nodes: -1\n", "chain.nodes"},
		{"未知边界", "chain:\n  boundary: wrap\n", "chain.boundary"},
		{"负步长", "animation:\n  step: -0.1\n", "animation.step"},
		{"负阈值", "animation:\n  threshold: -1\n", "animation.threshold"},
		{"负延迟", "animation:\n  tickDelayMs: -5\n", "animation.tickDelayMs"},
		{"零延迟", "animation:\n  tickDelayMs: 0\n", "animation.tickDelayMs"},
		{"零节点", "chain:\n  nodes: 0\n", "chain.nodes"},
		{"非法颜色", "style:\n  stroke: green\n", "style.stroke"},
		{"非法背景", "style:\n  background: \"#12\"\n", "style.background"},
		{"负线宽系数", "style:\n  strokeDivisor: -2\n", "style.strokeDivisor"},
		{"负窗口", "window:\n  width: -1\n", "window size"},
		{"零窗口", "window:\n  height: 0\n", "window size"},
		{"音量过大", "sound:\n  volume: 1.5\n", "sound.volume"},
		{"负音量", "sound:\n  volume: -0.2\n", "sound.volume"},
		{"YAML 语法错误", "chain: [", "failed to parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSquarePartConfig([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

// TestLoadSquarePartConfig 测试从文件加载
func TestLoadSquarePartConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "squarepart.yaml")
	if err := os.WriteFile(path, []byte("window:\n  title: Ticks\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadSquarePartConfig(path)
	if err != nil {
		t.Fatalf("LoadSquarePartConfig() error = %v", err)
	}
	if c.Window.Title != "Ticks" {
		t.Errorf("Window.Title = %q, want Ticks", c.Window.Title)
	}

	if _, err := LoadSquarePartConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

// TestSquarePartConfigMarshalRoundTrip 测试序列化后可以重新加载
func TestSquarePartConfigMarshalRoundTrip(t *testing.T) {
	c := DefaultSquarePartConfig()
	c.Chain.Nodes = 5
	c.Style.Background = "#FFFFFF"

	data, err := c.Marshal()
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	got, err := ParseSquarePartConfig(data)
	if err != nil {
		t.Fatalf("ParseSquarePartConfig() error = %v", err)
	}
	if *got != *c {
		t.Errorf("round trip = %+v, want %+v", got, c)
	}
}

// TestParseHexColor 测试颜色解析
func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"#4CAF50", color.RGBA{0x4C, 0xAF, 0x50, 0xFF}, false},
		{"#bdbdbd", color.RGBA{0xBD, 0xBD, 0xBD, 0xFF}, false},
		{" #000000 ", color.RGBA{0, 0, 0, 0xFF}, false},
		{"#fff", color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}, false},
		{"4CAF50", color.RGBA{}, true},
		{"", color.RGBA{}, true},
	}

	for _, tt := range tests {
		got, err := ParseHexColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseHexColor(%q) error = %v, wantErr %t", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

// TestColorFallback 测试非法颜色回退到默认值
func TestColorFallback(t *testing.T) {
	c := DefaultSquarePartConfig()
	c.Style.Stroke = "not-a-colour"
	if got := c.StrokeColor(); got != (color.RGBA{0x4C, 0xAF, 0x50, 0xFF}) {
		t.Errorf("StrokeColor() fallback = %v", got)
	}
}
// TestRendererOptions 测试配置到 Renderer 参数的转换
func TestRendererOptions(t *testing.T) {
	cfg := DefaultSquarePartConfig()
	cfg.Chain.Nodes = 6
	cfg.Chain.Boundary = "Hold"
	cfg.Animation.TickDelayMs = 20

	opts, err := cfg.RendererOptions()
	if err != nil {
		t.Fatalf("RendererOptions() error: %v", err)
	}
	if opts.Count != 6 {
		t.Errorf("Count = %d, want 6", opts.Count)
	}
	if opts.Boundary != squarepart.BoundaryHold {
		t.Errorf("Boundary = %v, want hold", opts.Boundary)
	}
	if opts.TickDelay != 20*time.Millisecond {
		t.Errorf("TickDelay = %v, want 20ms", opts.TickDelay)
	}
	if opts.Motion != squarepart.DefaultMotion {
		t.Errorf("Motion = %+v, want %+v", opts.Motion, squarepart.DefaultMotion)
	}
	if opts.Stroke != squarepart.DefaultStrokeColor || opts.Background != squarepart.DefaultBackgroundColor {
		t.Errorf("colours = %v / %v, want defaults", opts.Stroke, opts.Background)
	}

	cfg.Chain.Boundary = "wrap"
	if _, err := cfg.RendererOptions(); err == nil {
		t.Error("RendererOptions() accepted an unknown boundary mode")
	}
}

// TestSoundVolume 测试静音和默认音量
func TestSoundVolume(t *testing.T) {
	c, err := ParseSquarePartConfig([]byte("sound:\n  volume: 0.8\n"))
	if err != nil {
		t.Fatalf("ParseSquarePartConfig() error: %v", err)
	}
	if c.SoundVolume() != 0.8 {
		t.Errorf("SoundVolume() = %v, want 0.8", c.SoundVolume())
	}

	c.Sound.Muted = true
	if c.SoundVolume() != 0 {
		t.Errorf("muted SoundVolume() = %v, want 0", c.SoundVolume())
	}

	if d := DefaultSquarePartConfig(); d.SoundVolume() != DefaultSoundVolume {
		t.Errorf("default SoundVolume() = %v, want %v", d.SoundVolume(), DefaultSoundVolume)
	}
}

// TestParseSquarePartConfigExplicitZero 测试显式写出的 0 不会被默认值覆盖
func TestParseSquarePartConfigExplicitZero(t *testing.T) {
	c, err := ParseSquarePartConfig([]byte("sound:\n  volume: 0\n"))
	if err != nil {
		t.Fatalf("ParseSquarePartConfig() error: %v", err)
	}
	if c.Sound.Volume != 0 {
		t.Errorf("Sound.Volume = %v, want 0", c.Sound.Volume)
	}
	if c.SoundVolume() != 0 {
		t.Errorf("SoundVolume() = %v, want 0", c.SoundVolume())
	}
	// 同一个小节里没写的字段仍然是默认值
	if c.Sound.Muted {
		t.Error("Sound.Muted = true, want default false")
	}
	if c.Chain.Nodes != DefaultNodes {
		t.Errorf("Chain.Nodes = %d, want default %d", c.Chain.Nodes, DefaultNodes)
	}
}

// TestSquarePartConfigZeroVolumeRoundTrip 测试音量 0 在保存后重新加载时保持为 0
func TestSquarePartConfigZeroVolumeRoundTrip(t *testing.T) {
	c := DefaultSquarePartConfig()
	c.Sound.Volume = 0

	data, err := c.Marshal()
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	got, err := ParseSquarePartConfig(data)
	if err != nil {
		t.Fatalf("ParseSquarePartConfig() error = %v", err)
	}
	if *got != *c {
		t.Errorf("round trip = %+v, want %+v", got, c)
	}
}

// TestParseSquarePartConfigEmpty 测试空文件得到默认配置
func TestParseSquarePartConfigEmpty(t *testing.T) {
	c, err := ParseSquarePartConfig(nil)
	if err != nil {
		t.Fatalf("ParseSquarePartConfig(nil) error: %v", err)
	}
	if *c != *DefaultSquarePartConfig() {
		t.Errorf("empty config = %+v, want defaults", c)
	}
}
