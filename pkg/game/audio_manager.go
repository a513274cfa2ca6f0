package game

import (
	"encoding/binary"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SampleRate 音频采样率
const SampleRate = 48000

// 音效ID
const (
	SoundPop      = "SOUND_POP"      // 气泡击破
	SoundLaunch   = "SOUND_LAUNCH"   // 箭头发射
	SoundComplete = "SOUND_COMPLETE" // 全部击破
)

// toneSpec 合成音效的参数
type toneSpec struct {
	startFreq float64 // 起始频率 (Hz)
	endFreq   float64 // 结束频率 (Hz)，线性滑音
	duration  float64 // 时长（秒）
}

// soundTones 各音效的合成参数
// 没有音频资源文件，所有音效都在启动时合成
var soundTones = map[string]toneSpec{
	SoundPop:      {startFreq: 880, endFreq: 220, duration: 0.12},
	SoundLaunch:   {startFreq: 330, endFreq: 660, duration: 0.06},
	SoundComplete: {startFreq: 523, endFreq: 1046, duration: 0.35},
}

// AudioManager 音频管理器
// 职责：
//   - 统一管理游戏中所有音效的播放
//   - 实现音量控制（从 SettingsManager 读取设置）
//
// audio.Context 为 nil 时（无头验证、测试环境）所有播放调用都是空操作。
type AudioManager struct {
	context         *audio.Context
	settingsManager *SettingsManager         // 设置管理器（用于读取音量设置，可为 nil）
	soundPlayers    map[string]*audio.Player // 音效播放器缓存（音效ID -> 播放器）
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - ctx: 音频上下文，可为 nil（静音模式）
//   - sm: SettingsManager 实例（可为 nil）
func NewAudioManager(ctx *audio.Context, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		context:         ctx,
		settingsManager: sm,
		soundPlayers:    make(map[string]*audio.Player),
	}
}

// PlaySound 播放音效
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlaySound(soundID string) bool {
	if am == nil || am.context == nil {
		return false
	}

	if am.settingsManager != nil && !am.settingsManager.GetSettings().SoundEnabled {
		return false // 音效已禁用
	}

	player := am.getSoundPlayer(soundID)
	if player == nil {
		return false
	}

	player.SetVolume(am.getSoundVolume())

	// 重置并播放
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", soundID, err)
	}
	player.Play()

	return true
}

// PreloadSounds 预先合成所有音效，避免首次播放时的延迟
func (am *AudioManager) PreloadSounds() {
	if am == nil || am.context == nil {
		return
	}
	for soundID := range soundTones {
		am.getSoundPlayer(soundID)
	}
	log.Printf("[AudioManager] Preloaded %d sounds", len(soundTones))
}

// getSoundPlayer 获取或合成音效播放器
func (am *AudioManager) getSoundPlayer(soundID string) *audio.Player {
	if player, exists := am.soundPlayers[soundID]; exists {
		return player
	}

	spec, ok := soundTones[soundID]
	if !ok {
		log.Printf("[AudioManager] Warning: Sound not found: %s", soundID)
		return nil
	}

	player := am.context.NewPlayerFromBytes(synthesizeTone(spec, am.context.SampleRate()))
	am.soundPlayers[soundID] = player
	return player
}

// getSoundVolume 获取音效音量设置
func (am *AudioManager) getSoundVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().SoundVolume
	}
	return 0.8 // 默认值
}

// synthesizeTone 合成一段带指数衰减包络的正弦滑音
// 输出格式为 16-bit 小端立体声 PCM（Ebitengine 音频的标准格式）
func synthesizeTone(spec toneSpec, sampleRate int) []byte {
	samples := int(spec.duration * float64(sampleRate))
	buf := make([]byte, samples*4)

	phase := 0.0
	for i := 0; i < samples; i++ {
		progress := float64(i) / float64(samples)
		freq := spec.startFreq + (spec.endFreq-spec.startFreq)*progress
		phase += 2 * math.Pi * freq / float64(sampleRate)

		envelope := math.Exp(-4 * progress)
		v := int16(math.Sin(phase) * envelope * 0.3 * math.MaxInt16)

		binary.LittleEndian.PutUint16(buf[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(v))
	}

	return buf
}
