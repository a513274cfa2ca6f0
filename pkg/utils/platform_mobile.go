//go:build mobile

package utils

// IsMobile 移动端编译时总是 true
func IsMobile() bool {
	return true
}
