package utils

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

// TestFitSurface 测试绘制表面在窗口中的布局
func TestFitSurface(t *testing.T) {
	tests := []struct {
		name             string
		windowW, windowH float64
		wantX, wantY     float64
		wantW, wantH     float64
	}{
		{
			name:    "窗口足够大-保持逻辑尺寸并居中",
			windowW: 1000, windowH: 600,
			wantX: 100, wantY: 100, wantW: 800, wantH: 400,
		},
		{
			name:    "窗口较窄-按宽度缩小",
			windowW: 440, windowH: 600,
			wantX: 20, wantY: 200, wantW: 400, wantH: 200,
		},
		{
			name:    "窗口较矮-按高度缩小",
			windowW: 1000, windowH: 240,
			wantX: 300, wantY: 20, wantW: 400, wantH: 200,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FitSurface(tt.windowW, tt.windowH, 800, 400, 20)
			if !almostEqual(got.X, tt.wantX) || !almostEqual(got.Y, tt.wantY) ||
				!almostEqual(got.Width, tt.wantW) || !almostEqual(got.Height, tt.wantH) {
				t.Errorf("FitSurface() = %+v, want {X:%v Y:%v Width:%v Height:%v}",
					got, tt.wantX, tt.wantY, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestFitSurfaceTinyWindow(t *testing.T) {
	got := FitSurface(30, 30, 800, 400, 20)
	if !got.Empty() {
		t.Errorf("window smaller than margins should give an empty rect, got %+v", got)
	}
	if _, _, ok := WindowToScene(15, 15, got, 800, 400); ok {
		t.Error("WindowToScene should fail on an empty rect")
	}
}

// TestWindowToScene 测试窗口坐标到场景坐标的转换
func TestWindowToScene(t *testing.T) {
	tests := []struct {
		name           string
		rect           SurfaceRect
		wx, wy         float64
		wantSX, wantSY float64
	}{
		{
			name: "未缩放-只减去偏移",
			rect: SurfaceRect{X: 20, Y: 20, Width: 800, Height: 400},
			wx:   140, wy: 100,
			wantSX: 120, wantSY: 80,
		},
		{
			name: "半尺寸显示-坐标放大两倍",
			rect: SurfaceRect{X: 20, Y: 200, Width: 400, Height: 200},
			wx:   80, wy: 240,
			wantSX: 120, wantSY: 80, // (80-20)*2, (240-200)*2
		},
		{
			name: "两轴独立缩放",
			rect: SurfaceRect{X: 0, Y: 0, Width: 400, Height: 100},
			wx:   100, wy: 50,
			wantSX: 200, wantSY: 200, // 100*2, 50*4
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sx, sy, ok := WindowToScene(tt.wx, tt.wy, tt.rect, 800, 400)
			if !ok {
				t.Fatal("WindowToScene() returned ok=false")
			}
			if !almostEqual(sx, tt.wantSX) || !almostEqual(sy, tt.wantSY) {
				t.Errorf("WindowToScene() = (%v, %v), want (%v, %v)", sx, sy, tt.wantSX, tt.wantSY)
			}
		})
	}
}

// TestWindowToSceneRecomputedAfterResize 同一窗口点在缩放前后映射到不同场景点
func TestWindowToSceneRecomputedAfterResize(t *testing.T) {
	before := FitSurface(840, 480, 800, 400, 20)
	after := FitSurface(440, 480, 800, 400, 20)

	sx1, _, _ := WindowToScene(220, 240, before, 800, 400)
	sx2, _, _ := WindowToScene(220, 240, after, 800, 400)

	if almostEqual(sx1, sx2) {
		t.Errorf("resize should change the mapping, both gave %v", sx1)
	}
}

func TestSurfaceRectContains(t *testing.T) {
	r := SurfaceRect{X: 10, Y: 10, Width: 100, Height: 50}
	if !r.Contains(10, 10) {
		t.Error("top-left corner should be inside")
	}
	if r.Contains(110, 30) {
		t.Error("right edge should be outside")
	}
}
