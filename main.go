package main

import (
	"flag"
	"log"
	"os"
	"os/exec"
	"path/filepath"

	"dailypaper/wallpaper"
)

type Daily struct {
	// 程序引擎
	Engines map[string]Engineface
}
type Engineface interface {
	Run() error
}

func main() {
	var loop, once bool
	var cfgPath string
	flag.BoolVar(&loop, "d", false, "keep running, change the wallpaper every interval")
	flag.BoolVar(&once, "once", false, "change the wallpaper once and exit")
	flag.StringVar(&cfgPath, "c", "", "config file (default config.ini next to the executable)")
	flag.Parse()

	cfg, err := wallpaper.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalln("[err LoadConfig] \n", err)
	}
	if err = wallpaper.SetupLog(cfg.LogFile); err != nil {
		log.Fatalln("[err SetupLog] \n", err)
	}

	w := wallpaper.New(cfg)
	if loop {
		w.Loop = true
	}
	if once {
		w.Loop = false
	}
	if cfg.ContextMenu && !once {
		file, _ := exec.LookPath(os.Args[0])
		exe, _ := filepath.Abs(file)
		if err = wallpaper.RegisterMenu(exe); err != nil {
			log.Println("[err RegisterMenu] \n", err)
		}
	}

	d := &Daily{}
	// 载入壁纸引擎
	d.Engines = map[string]Engineface{"wallpaper": w}
	for name, v := range d.Engines {
		if err = v.Run(); err != nil {
			log.Fatalf("[err %s] \n%v\n", name, err)
		}
	}
}
