//go:build !windows

package wallpaper

// RegisterMenu is only supported on Windows.
func RegisterMenu(string) error { return nil }
