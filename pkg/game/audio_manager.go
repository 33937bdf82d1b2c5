package game

import (
	"encoding/binary"
	"log"
	"math"
	"time"

	"github.com/decker502/squarepart/pkg/squarepart"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioSampleRate 音频上下文采样率
const AudioSampleRate = 48000

// clickDuration 提示音时长
const clickDuration = 40 * time.Millisecond

// AudioManager 音频管理器
// 职责：
//   - 节点完成时播放对应音高的提示音
//   - 从 SettingsManager 读取音量和静音设置
//
// context 为 nil 时所有播放调用都是空操作（降级模式）
type AudioManager struct {
	context         *audio.Context
	settingsManager *SettingsManager       // 设置管理器（用于读取音量设置，可为 nil）
	clickPlayers    map[int]*audio.Player // 提示音播放器缓存（节点序号 -> 播放器）
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - ctx: ebiten 音频上下文，可为 nil
//   - sm: SettingsManager 实例（用于读取音量设置，可为 nil）
func NewAudioManager(ctx *audio.Context, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		context:         ctx,
		settingsManager: sm,
		clickPlayers:    make(map[int]*audio.Player),
	}
}

// PlayClick 播放节点 index 的完成提示音
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlayClick(index int) bool {
	if am.context == nil {
		return false
	}

	volume := am.getClickVolume()
	if volume <= 0 {
		return false // 静音
	}

	player := am.getClickPlayer(index)
	volume = math.Min(volume, 1)
	player.SetVolume(volume)

	// 重置并播放
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind click %d: %v", index, err)
	}
	player.Play()
	return true
}

// getClickPlayer 获取或创建提示音播放器
func (am *AudioManager) getClickPlayer(index int) *audio.Player {
	if player, ok := am.clickPlayers[index]; ok {
		return player
	}
	pcm := sineClickPCM(AudioSampleRate, squarepart.ToneFrequency(index), clickDuration)
	player := am.context.NewPlayerFromBytes(pcm)
	am.clickPlayers[index] = player
	log.Printf("[AudioManager] click %d prepared (%.1f Hz)", index, squarepart.ToneFrequency(index))
	return player
}

// getClickVolume 获取提示音音量（0.0 - 1.0）
func (am *AudioManager) getClickVolume() float64 {
	if am.settingsManager == nil {
		return 0
	}
	return am.settingsManager.GetSettings().SoundVolume()
}

// sineClickPCM 生成 16 位小端立体声正弦波
// 最后四分之一线性淡出，避免结尾爆音
func sineClickPCM(sampleRate int, freq float64, d time.Duration) []byte {
	n := int(math.Round(float64(sampleRate) * d.Seconds()))
	if n <= 0 {
		return nil
	}
	fade := n / 4

	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		amp := 1.0
		if remaining := n - i; fade > 0 && remaining <= fade {
			amp = float64(remaining-1) / float64(fade)
		}
		v := int16(math.Sin(2*math.Pi*freq*float64(i)/float64(sampleRate)) * amp * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(v))
	}
	return buf
}
