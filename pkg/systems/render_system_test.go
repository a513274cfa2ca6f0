package systems

import (
	"testing"

	"github.com/decker502/bubblepop/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// countKind 统计指定槽位某类指令的数量
func countKind(cmds []DrawCommand, slot int, kind DrawKind) int {
	n := 0
	for _, c := range cmds {
		if c.Slot == slot && c.Kind == kind {
			n++
		}
	}
	return n
}

func TestRenderCommandsIdle(t *testing.T) {
	w := newTestWorld(t)
	cmds := w.render.Commands()

	for i := range w.slots {
		if countKind(cmds, i, DrawFillCircle) != 1 {
			t.Errorf("slot %d: expected one filled disk", i)
		}
		if countKind(cmds, i, DrawStrokeCircle) != 1 {
			t.Errorf("slot %d: expected only the border stroke", i)
		}
		if countKind(cmds, i, DrawTriangle) != 0 {
			t.Errorf("slot %d: idle projectile must not be drawn", i)
		}
	}

	fill := cmds[0]
	want, _ := config.ParseHexColor(w.cfg.Targets[0].Fill)
	if fill.Color != want {
		t.Errorf("fill color = %v, want %v", fill.Color, want)
	}
}

func TestRenderCommandsInFlight(t *testing.T) {
	w := newTestWorld(t)
	w.projectiles.Launch(1)
	w.projectiles.Step()

	cmds := w.render.Commands()
	if countKind(cmds, 1, DrawTriangle) != 1 || countKind(cmds, 1, DrawLine) != 1 {
		t.Fatal("in-flight projectile should draw one head and one shaft")
	}

	for _, c := range cmds {
		if c.Slot == 1 && c.Kind == DrawTriangle {
			tip := c.Points[0]
			if tip[0] != 647 || tip[1] != 160 {
				t.Errorf("arrow tip = %v, want (647, 160)", tip)
			}
		}
	}

	// 箭头绘制在所有目标之后
	last := cmds[len(cmds)-1]
	if last.Kind != DrawTriangle {
		t.Errorf("last command kind = %v, want arrow head", last.Kind)
	}
}

func TestRenderCommandsPopped(t *testing.T) {
	w := newTestWorld(t)
	w.projectiles.Launch(0)
	w.stepUntilIdle(t, 1000)

	cmds := w.render.Commands()
	for _, c := range cmds {
		if c.Slot != 0 {
			continue
		}
		switch c.Kind {
		case DrawFillCircle:
			if c.Color != config.ColorPoppedFill {
				t.Errorf("popped fill = %v, want neutral", c.Color)
			}
		case DrawTriangle:
			t.Error("projectile of a popped target must not be drawn")
		}
	}
	if countKind(cmds, 0, DrawLine) != 2 {
		t.Error("popped target should carry a crossed mark")
	}
}

func TestRenderCommandsHover(t *testing.T) {
	w := newTestWorld(t)
	w.input.UpdateHover(120, 320)

	cmds := w.render.Commands()
	if countKind(cmds, 3, DrawStrokeCircle) != 2 {
		t.Fatal("hovered target should get an extra outline")
	}
	for _, c := range cmds {
		if c.Slot == 3 && c.Kind == DrawStrokeCircle && c.StrokeWidth == config.HoverOutlineWidth {
			if c.Color != config.ColorHoverOutline {
				t.Errorf("hover outline color = %v", c.Color)
			}
		}
	}
	if countKind(cmds, 0, DrawStrokeCircle) != 1 {
		t.Error("non-hovered target should not be outlined")
	}
}

func TestRenderCommandsDeterministic(t *testing.T) {
	w := newTestWorld(t)
	w.projectiles.Launch(2)
	w.projectiles.Step()

	a := w.render.Commands()
	b := w.render.Commands()
	if len(a) != len(b) {
		t.Fatalf("command count differs: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("command %d differs between calls", i)
		}
	}
}

func TestRenderSystemDraw(t *testing.T) {
	w := newTestWorld(t)
	w.projectiles.Launch(0)
	w.projectiles.Step()

	// Draw 应该不会崩溃
	screen := ebiten.NewImage(config.SceneWidth, config.SceneHeight)
	w.render.Draw(screen)
}
