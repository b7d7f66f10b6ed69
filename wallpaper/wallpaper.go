package wallpaper

import (
	"errors"
	"log"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Wallpaper fetches the top image of the feed and sets it as the desktop
// background, once or every Interval.
type Wallpaper struct {
	Engine     engineface
	Resolver   *Resolver
	Downloader *Downloader
	Setter     Setter
	Loop       bool
	Interval   time.Duration
	Sleep      func(time.Duration)

	// stops the loop after this many cycles when > 0
	maxCycles int
}

// New wires a Wallpaper from cfg using the OS setter.
func New(cfg *Config) *Wallpaper {
	return newWallpaper(cfg, FeedURL, NewSetter(cfg.Style))
}

func newWallpaper(cfg *Config, feedURL string, setter Setter) *Wallpaper {
	client := NewClient(cfg.UserAgent, cfg.Timeout, cfg.Rate, cfg.Burst)
	return &Wallpaper{
		Engine: &redditTop{Client: client, URL: feedURL},
		Resolver: &Resolver{
			Client:     client,
			Classifier: &PlaceholderClassifier{Markers: cfg.Placeholders},
		},
		Downloader: &Downloader{Client: client, Dir: cfg.ImgSavePath},
		Setter:     setter,
		Loop:       cfg.Loop,
		Interval:   cfg.Interval,
		Sleep:      time.Sleep,
	}
}

// RunCycle runs fetch, resolve, download and set once. It returns the
// stored file path whenever the image was saved, even if the OS call then
// failed with a *SetterError.
func (w *Wallpaper) RunCycle() (string, error) {
	id := uuid.NewString()
	log.Println("[start cycle] \n", id)

	cs, err := w.Engine.GetCandidates()
	if err != nil {
		return "", err
	}
	img, c, err := Walk(cs, w.Resolver.Resolve)
	if err != nil {
		return "", err
	}
	log.Printf("[info] candidate %d resolved\n%s\n", c.Rank, img.URL)

	imgName, err := w.Downloader.Download(img.URL)
	if err != nil {
		return "", err
	}
	if abs, err := filepath.Abs(imgName); err == nil {
		imgName = abs
	}

	log.Println("[info] change wallpaper start \n", imgName)
	if err = w.Setter.SetWallpaper(imgName); err != nil {
		return imgName, &SetterError{Path: imgName, Err: err}
	}
	log.Println("[end cycle] \n", id)
	return imgName, nil
}

// Run runs a single cycle, or loops forever when Loop is set. In loop mode
// a failed cycle is logged and the next one still runs.
func (w *Wallpaper) Run() error {
	if !w.Loop {
		_, err := w.RunCycle()
		return err
	}
	for n := 1; ; n++ {
		if _, err := w.RunCycle(); err != nil {
			logCycleErr(err)
		}
		if w.maxCycles > 0 && n >= w.maxCycles {
			return nil
		}
		log.Printf("[info] next cycle in %s\n", w.Interval)
		w.Sleep(w.Interval)
	}
}

func logCycleErr(err error) {
	var se *SetterError
	var fe *FileError
	switch {
	case errors.As(err, &se):
		log.Println("[err set wallpaper] image kept \n", err)
	case errors.Is(err, ErrExhausted):
		log.Println("[err no image this cycle] \n", err)
	case errors.As(err, &fe):
		log.Println("[err save image] \n", err)
	default:
		log.Println("[err cycle] \n", err)
	}
}
