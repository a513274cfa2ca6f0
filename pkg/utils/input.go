// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState 存储当前帧的指针输入状态
// 用于统一处理鼠标和触摸输入，坐标为窗口坐标
type InputState struct {
	// 是否有点击/触摸事件刚刚发生
	JustPressed bool
	// 指针位置
	X, Y int
	// 是否来自触摸
	IsTouching bool
}

// GetInputState 获取当前帧的输入状态
// 同时支持鼠标点击和触摸输入，优先检测触摸
func GetInputState() InputState {
	state := InputState{}

	// 首先检查触摸输入（移动设备）
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		state.JustPressed = true
		state.X, state.Y = ebiten.TouchPosition(touchIDs[0])
		state.IsTouching = true
		return state
	}

	// 检查是否有活动的触摸（用于悬停检测）
	allTouchIDs := ebiten.AppendTouchIDs(nil)
	if len(allTouchIDs) > 0 {
		state.X, state.Y = ebiten.TouchPosition(allTouchIDs[0])
		state.IsTouching = true
		return state
	}

	// 其次检查鼠标输入（桌面设备）
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		state.JustPressed = true
		state.X, state.Y = ebiten.CursorPosition()
		return state
	}

	// 获取鼠标位置用于悬停检测
	state.X, state.Y = ebiten.CursorPosition()
	return state
}

// KeyAction 键盘动作
type KeyAction int

const (
	// KeyActionNone 无动作（其他按键一律忽略）
	KeyActionNone KeyAction = iota
	// KeyActionLaunch Enter/Space：向第一个可发射的目标发射
	KeyActionLaunch
	// KeyActionReset R：重置场景
	KeyActionReset
	// KeyActionToggleSound M：切换音效
	KeyActionToggleSound
	// KeyActionToggleScore S：显示/隐藏分数栏
	KeyActionToggleScore
)

// GetKeyAction 读取本帧刚按下的键盘动作
// 同一帧有多个按键时，重置优先于发射
func GetKeyAction() KeyAction {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		return KeyActionReset
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		return KeyActionLaunch
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		return KeyActionToggleSound
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		return KeyActionToggleScore
	default:
		return KeyActionNone
	}
}
