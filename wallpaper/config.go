package wallpaper

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"gopkg.in/ini.v1"
)

const (
	DefaultInterval  = 24 * time.Hour
	DefaultTimeout   = 30 * time.Second
	DefaultUserAgent = "desktop:dailypaper:v1 (daily r/aww wallpaper)"
	minInterval      = time.Minute
)

// DefaultPlaceholders are image sources that stand in for gifs, videos or
// removed posts on the image host.
var DefaultPlaceholders = []string{
	"s.imgur.com/images/",
	"placeholder",
}

type Config struct {
	Path         string
	Dir          string
	ImgSavePath  string
	Loop         bool
	Interval     time.Duration
	UserAgent    string
	Timeout      time.Duration
	Rate         float64
	Burst        int
	Placeholders []string
	Style        string
	LogFile      string
	ContextMenu  bool
}

// ExecDir returns the directory holding the running executable.
func ExecDir() string {
	file, _ := exec.LookPath(os.Args[0])
	path, err := filepath.Abs(file)
	if err != nil {
		return "."
	}
	return filepath.Dir(path)
}

// LoadConfig reads the [wallpaper] section of path. A missing file yields
// the defaults. An empty path means config.ini next to the executable.
func LoadConfig(path string) (*Config, error) {
	c := &Config{Path: path}
	if c.Path == "" {
		c.Path = filepath.Join(ExecDir(), "config.ini")
	}
	c.Dir = filepath.Dir(c.Path)

	cfg, err := ini.LooseLoad(c.Path)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", c.Path, err)
	}
	sec := cfg.Section("wallpaper")

	c.Loop = sec.Key("loop").MustBool(false)
	c.Interval = sec.Key("interval").MustDuration(DefaultInterval)
	if c.Interval < minInterval {
		log.Printf("[info LoadConfig] interval %s too short, using %s\n", c.Interval, minInterval)
		c.Interval = minInterval
	}
	c.UserAgent = sec.Key("userAgent").MustString(DefaultUserAgent)
	c.Timeout = sec.Key("timeout").MustDuration(DefaultTimeout)
	c.Rate = sec.Key("rate").MustFloat64(1)
	c.Burst = sec.Key("burst").RangeInt(3, 1, 20)
	c.Placeholders = sec.Key("placeholders").Strings(",")
	if len(c.Placeholders) == 0 {
		c.Placeholders = DefaultPlaceholders
	}
	c.Style = sec.Key("style").In("fill", []string{"fill", "fit", "stretch", "tile", "center", "span"})
	c.LogFile = sec.Key("logFile").String()
	c.ContextMenu = sec.Key("contextMenu").MustBool(false)

	// 图片保存路径必须为绝对路径
	c.ImgSavePath = sec.Key("imgSavePath").String()
	if !filepath.IsAbs(c.ImgSavePath) {
		log.Println("[info LoadConfig] imgSavePath is not Abs\n", c.ImgSavePath)
		c.ImgSavePath = filepath.Join(c.Dir, "wallpapers")
		sec.Key("imgSavePath").SetValue(c.ImgSavePath)
		if err = cfg.SaveTo(c.Path); err != nil {
			log.Println("[err save new abs path] \n", err)
		}
	}
	return c, nil
}
