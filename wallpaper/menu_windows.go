package wallpaper

import (
	"fmt"
	"log"

	"golang.org/x/sys/windows/registry"
)

const menuKey = `DesktopBackground\Shell\Refresh daily wallpaper\command`

// RegisterMenu adds a desktop context-menu entry that runs one cycle.
func RegisterMenu(exe string) error {
	nk, exist, err := registry.CreateKey(registry.CLASSES_ROOT, menuKey, registry.ALL_ACCESS)
	if err != nil {
		return fmt.Errorf("create key: %w", err)
	}
	defer nk.Close()
	if exist {
		return nil
	}
	// 键入值运行程序
	if err = nk.SetStringValue("", fmt.Sprintf("\"%s\" -once", exe)); err != nil {
		return err
	}
	log.Println("[info] context menu registered \n", menuKey)
	return nil
}
