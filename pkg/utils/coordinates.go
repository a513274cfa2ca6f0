// Package utils 提供游戏开发中常用的工具函数
//
// coordinates.go 提供坐标转换工具，用于把窗口坐标映射到绘制表面的场景坐标。
//
// # 坐标系统概述
//
// 本项目使用以下坐标系统：
//   - **窗口坐标**：相对于游戏窗口左上角（指针事件由 Ebitengine 以此坐标给出）
//   - **场景坐标**：相对于绘制表面左上角的逻辑坐标（默认 800x400），所有实体都使用此坐标
//
// 绘制表面在窗口中的显示位置和大小由 SurfaceRect 描述，窗口尺寸改变时
// 显示大小随之改变，因此每个事件都必须用当前的 SurfaceRect 重新换算。
//
// # 核心转换公式
//
//	sceneX = (windowX - rect.X) * logicalW / rect.Width
//	sceneY = (windowY - rect.Y) * logicalH / rect.Height
//
// 两个轴的缩放比例相互独立。
package utils

import "math"

// SurfaceRect 绘制表面在窗口中的显示区域（窗口像素）
type SurfaceRect struct {
	X, Y          float64 // 左上角
	Width, Height float64 // 显示尺寸
}

// Empty 显示区域是否退化（窗口过小时）
func (r SurfaceRect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains 判断窗口坐标是否落在显示区域内
func (r SurfaceRect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// FitSurface 计算绘制表面在窗口中的显示区域
//
// 显示宽度 = min(logicalW, windowW - 2*margin)，高度按逻辑宽高比换算；
// 如果高度超出窗口，则改为按高度约束。结果在窗口中居中。
//
// # 参数
//
//   - windowW, windowH: 当前窗口尺寸（像素）
//   - logicalW, logicalH: 绘制表面的逻辑尺寸
//   - margin: 表面与窗口边缘的最小间距
//
// # 返回值
//
//   - SurfaceRect: 显示区域；窗口过小时 Width/Height 可能为 0
func FitSurface(windowW, windowH, logicalW, logicalH, margin float64) SurfaceRect {
	if logicalW <= 0 || logicalH <= 0 {
		return SurfaceRect{}
	}

	aspect := logicalH / logicalW

	width := math.Min(logicalW, windowW-2*margin)
	height := width * aspect

	// 高度受限时按高度反推宽度
	if maxHeight := windowH - 2*margin; height > maxHeight {
		height = maxHeight
		width = height / aspect
	}

	if width <= 0 || height <= 0 {
		return SurfaceRect{X: windowW / 2, Y: windowH / 2}
	}

	return SurfaceRect{
		X:      (windowW - width) / 2,
		Y:      (windowH - height) / 2,
		Width:  width,
		Height: height,
	}
}

// WindowToScene 将窗口坐标转换为场景坐标
//
// 先减去显示区域左上角偏移，再按 (逻辑尺寸 / 显示尺寸) 分别缩放两个轴。
// 显示区域退化时返回 ok=false。
//
// # 使用示例
//
//	rect := FitSurface(float64(w), float64(h), 800, 400, 20)
//	sx, sy, ok := WindowToScene(float64(cx), float64(cy), rect, 800, 400)
//	if !ok {
//	    return
//	}
func WindowToScene(windowX, windowY float64, rect SurfaceRect, logicalW, logicalH float64) (sceneX, sceneY float64, ok bool) {
	if rect.Empty() {
		return 0, 0, false
	}

	scaleX := logicalW / rect.Width
	scaleY := logicalH / rect.Height

	sceneX = (windowX - rect.X) * scaleX
	sceneY = (windowY - rect.Y) * scaleY
	return sceneX, sceneY, true
}
