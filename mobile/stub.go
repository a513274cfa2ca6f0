//go:build !mobile

// 普通构建时 mobile 包只有这个占位函数，
// 绑定入口和 data/ 嵌入仅在 -tags mobile 下编译。
package mobile

// Dummy 占位导出，保证 ./... 构建时包不为空
func Dummy() {}
