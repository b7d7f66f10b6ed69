package wallpaper

import (
	"fmt"
	"os/exec"
)

type finderSetter struct{}

// NewSetter returns the setter for this OS. style is ignored on macOS.
func NewSetter(style string) Setter {
	return &finderSetter{}
}

func (finderSetter) SetWallpaper(path string) error {
	script := fmt.Sprintf("tell application %q to set desktop picture to POSIX file %q", "Finder", path)
	out, err := exec.Command("/usr/bin/osascript", "-e", script).CombinedOutput()
	if err != nil {
		return fmt.Errorf("osascript: %w: %s", err, out)
	}
	return nil
}
