package game

import (
	"fmt"
	"log"

	"github.com/decker502/squarepart/pkg/config"
	"github.com/decker502/squarepart/pkg/utils"
	"github.com/quasilyte/gdata/v2"
)

// AppName gdata 存储使用的应用名
const AppName = "squarepart"

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "view"
)

// SettingsManager 设置管理器
// 负责视图配置的加载、保存和内存管理
//
// 只保存配置（颜色、节点数、动画参数、全屏偏好），从不保存动画状态。
type SettingsManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *config.SquarePartConfig
	loaded       bool // 是否从存储中加载到了配置
}

// OpenGdataManager 打开 gdata 存储
//
// 打开失败不是致命错误，返回 nil 让 SettingsManager 进入降级模式
func OpenGdataManager(appName string) *gdata.Manager {
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[SettingsManager] Warning: %v", err)
	}

	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Printf("[SettingsManager] Warning: gdata unavailable: %v (settings will not persist)", err)
		return nil
	}
	return m
}

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//
// 返回：
//   - *SettingsManager: 设置管理器实例
//   - error: 如果加载设置失败返回错误（不影响创建）
func NewSettingsManager(gdataManager *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     config.DefaultSquarePartConfig(),
	}

	// 尝试加载已保存的设置
	if err := sm.Load(); err != nil {
		// 加载失败不是致命错误，使用默认设置
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return sm, nil
}

// Load 从 gdata 加载设置
//
// 如果 gdataManager 为 nil 或文件不存在，使用默认设置
//
// 返回：
//   - error: 如果反序列化或校验失败返回错误
func (sm *SettingsManager) Load() error {
	sm.loaded = false

	// 降级模式：无法持久化，使用默认设置
	if sm.gdataManager == nil {
		sm.settings = config.DefaultSquarePartConfig()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = config.DefaultSquarePartConfig()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = config.DefaultSquarePartConfig()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	loaded, err := config.ParseSquarePartConfig(data)
	if err != nil {
		sm.settings = config.DefaultSquarePartConfig()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	sm.settings = loaded
	sm.loaded = true
	log.Printf("[SettingsManager] Settings loaded successfully")
	return nil
}

// Save 保存设置到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := sm.settings.Marshal()
	if err != nil {
		return err
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved successfully")
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *config.SquarePartConfig {
	return sm.settings
}

// HasSavedSettings 返回当前设置是否来自存储
func (sm *SettingsManager) HasSavedSettings() bool {
	return sm.loaded
}

// SetSettings 替换当前设置
//
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetSettings(c *config.SquarePartConfig) error {
	if c == nil {
		return fmt.Errorf("settings must not be nil")
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	sm.settings = c
	return nil
}

// SetFullscreen 设置全屏偏好
//
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Window.Fullscreen = enabled
}
