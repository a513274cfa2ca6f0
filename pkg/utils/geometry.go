package utils

import "math"

// Distance 返回两点之间的欧几里得距离
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// PointInCircle 判断点是否在圆内（开圆盘）
//
// 距离严格小于半径才算命中；恰好落在圆周上不算。
func PointInCircle(px, py, cx, cy, radius float64) bool {
	return Distance(px, py, cx, cy) < radius
}
