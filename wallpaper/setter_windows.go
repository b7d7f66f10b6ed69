package wallpaper

import (
	"fmt"
	"log"
	"unsafe"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
)

const (
	spiSetDeskWallpaper = 0x0014
	spifUpdateIniFile   = 0x01
	spifSendChange      = 0x02
)

var (
	user32               = windows.NewLazySystemDLL("user32.dll")
	systemParametersInfo = user32.NewProc("SystemParametersInfoW")
)

// WallpaperStyle / TileWallpaper values under HKCU\Control Panel\Desktop
var styles = map[string][2]string{
	"fill":    {"10", "0"},
	"fit":     {"6", "0"},
	"stretch": {"2", "0"},
	"tile":    {"0", "1"},
	"center":  {"0", "0"},
	"span":    {"22", "0"},
}

type windowsSetter struct {
	style string
}

// NewSetter returns the setter for this OS.
func NewSetter(style string) Setter {
	return &windowsSetter{style: style}
}

func (w *windowsSetter) SetWallpaper(path string) error {
	if err := w.applyStyle(); err != nil {
		log.Println("[err applyStyle] \n", err)
	}
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return err
	}
	r, _, err := systemParametersInfo.Call(
		uintptr(spiSetDeskWallpaper),
		0,
		uintptr(unsafe.Pointer(p)),
		uintptr(spifUpdateIniFile|spifSendChange),
	)
	if r == 0 {
		return fmt.Errorf("SystemParametersInfoW: %w", err)
	}
	return nil
}

func (w *windowsSetter) applyStyle() error {
	v, ok := styles[w.style]
	if !ok {
		return nil
	}
	k, err := registry.OpenKey(registry.CURRENT_USER, `Control Panel\Desktop`, registry.SET_VALUE)
	if err != nil {
		return err
	}
	defer k.Close()
	if err = k.SetStringValue("WallpaperStyle", v[0]); err != nil {
		return err
	}
	return k.SetStringValue("TileWallpaper", v[1])
}
