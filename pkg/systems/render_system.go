package systems

import (
	"image"
	"image/color"

	"github.com/decker502/bubblepop/pkg/components"
	"github.com/decker502/bubblepop/pkg/config"
	"github.com/decker502/bubblepop/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DrawKind 绘制指令类型
type DrawKind int

const (
	// DrawFillCircle 实心圆
	DrawFillCircle DrawKind = iota
	// DrawStrokeCircle 圆形描边
	DrawStrokeCircle
	// DrawLine 线段
	DrawLine
	// DrawTriangle 实心三角形
	DrawTriangle
)

// DrawCommand 一条绘制指令（场景坐标）
//
// 圆: (X, Y) 为圆心，Radius 为半径
// 线段: (X, Y) -> (X2, Y2)
// 三角形: Points 三个顶点
type DrawCommand struct {
	Kind        DrawKind
	Slot        int
	X, Y        float64
	X2, Y2      float64
	Radius      float64
	Points      [3][2]float64
	StrokeWidth float32
	Color       color.RGBA
}

// RenderSystem 根据槽位状态生成并光栅化绘制指令
//
// 每次绘制都会清空表面并重新生成完整的指令列表，不做增量更新。
type RenderSystem struct {
	entityManager *ecs.EntityManager

	// 三角形填充使用的 1x1 白色纹理
	whiteSubImage *ebiten.Image
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
	}
}

// Commands 生成当前状态下的绘制指令
// 先画全部目标，再画飞行中的箭头，保证箭头位于气泡之上
func (s *RenderSystem) Commands() []DrawCommand {
	slots := querySlots(s.entityManager)
	cmds := make([]DrawCommand, 0, len(slots)*4)

	for _, slot := range slots {
		cmds = appendTargetCommands(cmds, slot.index, slot.pos, slot.target, s.hoverStrength(slot.id))
	}

	for _, slot := range slots {
		if !slot.proj.Active {
			continue
		}
		cmds = appendArrowCommands(cmds, slot.index, slot.proj)
	}

	return cmds
}

// hoverStrength 返回悬停高亮强度，未悬停为 0
func (s *RenderSystem) hoverStrength(id ecs.EntityID) float64 {
	hl, ok := ecs.GetComponent[*components.HoverHighlightComponent](s.entityManager, id)
	if !ok || !hl.IsActive {
		return 0
	}
	return hl.Intensity
}

func appendTargetCommands(cmds []DrawCommand, slot int, pos *components.PositionComponent, target *components.TargetComponent, hover float64) []DrawCommand {
	fill, border := target.FillColor, target.BorderColor
	if target.Popped {
		fill, border = config.ColorPoppedFill, config.ColorPoppedBorder
	}

	cmds = append(cmds,
		DrawCommand{Kind: DrawFillCircle, Slot: slot, X: pos.X, Y: pos.Y, Radius: target.Radius, Color: fill},
		DrawCommand{Kind: DrawStrokeCircle, Slot: slot, X: pos.X, Y: pos.Y, Radius: target.Radius, StrokeWidth: config.BorderWidth, Color: border},
	)

	if target.Popped {
		// 交叉标记
		d := target.Radius * 0.4
		cmds = append(cmds,
			DrawCommand{Kind: DrawLine, Slot: slot, X: pos.X - d, Y: pos.Y - d, X2: pos.X + d, Y2: pos.Y + d, StrokeWidth: config.PoppedMarkWidth, Color: config.ColorPoppedBorder},
			DrawCommand{Kind: DrawLine, Slot: slot, X: pos.X - d, Y: pos.Y + d, X2: pos.X + d, Y2: pos.Y - d, StrokeWidth: config.PoppedMarkWidth, Color: config.ColorPoppedBorder},
		)
		return cmds
	}

	if hover > 0 {
		cmds = append(cmds, DrawCommand{
			Kind: DrawStrokeCircle, Slot: slot,
			X: pos.X, Y: pos.Y, Radius: target.Radius,
			StrokeWidth: config.HoverOutlineWidth, Color: scaleAlpha(config.ColorHoverOutline, hover),
		})
	}
	return cmds
}

// appendArrowCommands 箭头朝左：尖端在 CurrentX，箭杆向右延伸
func appendArrowCommands(cmds []DrawCommand, slot int, proj *components.ProjectileComponent) []DrawCommand {
	tipX, y := proj.CurrentX, proj.OriginY
	baseX := tipX + config.ArrowHeadLength

	return append(cmds,
		DrawCommand{
			Kind: DrawLine, Slot: slot,
			X: baseX, Y: y, X2: tipX + config.ArrowShaftLength, Y2: y,
			StrokeWidth: config.ArrowShaftWidth, Color: config.ColorArrow,
		},
		DrawCommand{
			Kind: DrawTriangle, Slot: slot,
			Points: [3][2]float64{
				{tipX, y},
				{baseX, y - config.ArrowHeadHalfWidth},
				{baseX, y + config.ArrowHeadHalfWidth},
			},
			Color: config.ColorArrow,
		},
	)
}

// Draw 清空表面并绘制全部指令
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	screen.Fill(config.ColorBackground)
	for _, cmd := range s.Commands() {
		s.rasterize(screen, cmd)
	}
}

func (s *RenderSystem) rasterize(screen *ebiten.Image, cmd DrawCommand) {
	switch cmd.Kind {
	case DrawFillCircle:
		vector.DrawFilledCircle(screen, float32(cmd.X), float32(cmd.Y), float32(cmd.Radius), cmd.Color, true)
	case DrawStrokeCircle:
		vector.StrokeCircle(screen, float32(cmd.X), float32(cmd.Y), float32(cmd.Radius), cmd.StrokeWidth, cmd.Color, true)
	case DrawLine:
		vector.StrokeLine(screen, float32(cmd.X), float32(cmd.Y), float32(cmd.X2), float32(cmd.Y2), cmd.StrokeWidth, cmd.Color, true)
	case DrawTriangle:
		s.fillTriangle(screen, cmd.Points, cmd.Color)
	}
}

func (s *RenderSystem) fillTriangle(screen *ebiten.Image, pts [3][2]float64, c color.RGBA) {
	if s.whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		s.whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}

	r, g, b, a := float32(c.R)/0xff, float32(c.G)/0xff, float32(c.B)/0xff, float32(c.A)/0xff
	vs := make([]ebiten.Vertex, 0, 3)
	for _, p := range pts {
		vs = append(vs, ebiten.Vertex{
			DstX: float32(p[0]), DstY: float32(p[1]),
			SrcX: 1, SrcY: 1,
			ColorR: r, ColorG: g, ColorB: b, ColorA: a,
		})
	}
	screen.DrawTriangles(vs, []uint16{0, 1, 2}, s.whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// scaleAlpha 按强度缩放预乘颜色
func scaleAlpha(c color.RGBA, k float64) color.RGBA {
	if k >= 1 {
		return c
	}
	if k <= 0 {
		return color.RGBA{}
	}
	return color.RGBA{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
		A: uint8(float64(c.A) * k),
	}
}
