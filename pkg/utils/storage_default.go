//go:build !android

package utils

// EnsureStorageDir 在非 Android 平台上什么也不做
// gdata 会自行创建设置目录
func EnsureStorageDir() error {
	return nil
}
