package config

import "image/color"

// 布局配置常量
// 本文件定义了气泡场景的逻辑尺寸、窗口参数以及渲染用的固定颜色

// Scene Surface Configuration (绘制表面配置)
// 所有坐标使用"场景坐标系"（相对于绘制表面左上角，单位为逻辑像素）
const (
	// SceneWidth 绘制表面的逻辑宽度
	SceneWidth = 800

	// SceneHeight 绘制表面的逻辑高度
	SceneHeight = 400

	// SurfaceMargin 绘制表面与窗口边缘的最小间距（窗口像素）
	// 表面显示宽度 = min(SceneWidth, 窗口宽度 - 2*SurfaceMargin)
	SurfaceMargin = 20

	// GameWindowWidth 桌面端初始窗口宽度
	GameWindowWidth = SceneWidth + 2*SurfaceMargin

	// GameWindowHeight 桌面端初始窗口高度（底部留出分数栏）
	GameWindowHeight = SceneHeight + 2*SurfaceMargin + 40

	// WindowTitle 窗口标题
	WindowTitle = "Bubble Pop"
)

// Projectile Configuration (箭头配置)
const (
	// DefaultProjectileOriginX 箭头默认起点X
	DefaultProjectileOriginX = 650.0

	// DefaultProjectileStep 箭头每帧移动距离（像素/帧）
	DefaultProjectileStep = 3.0

	// DefaultArrivalClearance 抵达判定在半径之外额外留出的距离
	// 0 表示箭头尖端到达气泡右边缘即判定命中
	DefaultArrivalClearance = 0.0

	// ArrowHeadLength 箭头三角形的长度
	ArrowHeadLength = 8.0

	// ArrowHeadHalfWidth 箭头三角形的半宽
	ArrowHeadHalfWidth = 4.0

	// ArrowShaftLength 箭杆长度（从箭头尖端向右延伸）
	ArrowShaftLength = 40.0
)

// Stroke Configuration (描边配置)
const (
	// BorderWidth 气泡描边宽度
	BorderWidth = 2.0

	// HoverOutlineWidth 悬停外框宽度
	HoverOutlineWidth = 3.0

	// ArrowShaftWidth 箭杆宽度
	ArrowShaftWidth = 2.0

	// PoppedMarkWidth 击破后交叉标记的线宽
	PoppedMarkWidth = 2.0
)

// 固定颜色（与气泡自身颜色无关）
var (
	// ColorBackground 绘制表面背景色
	ColorBackground = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

	// ColorWindow 窗口底色（绘制表面之外的区域）
	ColorWindow = color.RGBA{R: 0xf0, G: 0xf0, B: 0xf5, A: 0xff}

	// ColorPoppedFill 击破后的中性填充色 (#d3d3d3)
	ColorPoppedFill = color.RGBA{R: 0xd3, G: 0xd3, B: 0xd3, A: 0xff}

	// ColorPoppedBorder 击破后的描边色 (#aaa)
	ColorPoppedBorder = color.RGBA{R: 0xaa, G: 0xaa, B: 0xaa, A: 0xff}

	// ColorHoverOutline 悬停外框颜色 (#666)
	ColorHoverOutline = color.RGBA{R: 0x66, G: 0x66, B: 0x66, A: 0xff}

	// ColorArrow 箭头颜色 (#555)
	ColorArrow = color.RGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff}
)
