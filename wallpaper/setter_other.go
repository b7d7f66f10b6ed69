//go:build !darwin && !windows

package wallpaper

type unsupportedSetter struct{}

// NewSetter returns the setter for this OS.
func NewSetter(style string) Setter {
	return unsupportedSetter{}
}

func (unsupportedSetter) SetWallpaper(string) error {
	return ErrUnsupportedOS
}
