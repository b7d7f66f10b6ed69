package wallpaper

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

const chunkSize = 100000

// Downloader stores the resolved image under Dir, one file per local day.
type Downloader struct {
	Client *http.Client
	Dir    string
	Now    func() time.Time
}

// FileName is the date-derived name of the day's wallpaper.
func FileName(t time.Time) string {
	return t.Format("2006-01-02")
}

// Download streams imgURL into Dir/<date>. The body is written to a temp
// file that replaces the day's file only once fully written.
func (d *Downloader) Download(imgURL string) (string, error) {
	if err := os.MkdirAll(d.Dir, 0755); err != nil {
		return "", &FileError{Op: "mkdir", Path: d.Dir, Err: err}
	}
	now := time.Now
	if d.Now != nil {
		now = d.Now
	}
	imgName := filepath.Join(d.Dir, FileName(now()))

	res, err := get(d.Client, imgURL)
	if err != nil {
		return "", fmt.Errorf("download image: %w", err)
	}
	defer res.Body.Close()

	f, err := os.CreateTemp(d.Dir, ".download-*")
	if err != nil {
		return "", &FileError{Op: "create", Path: d.Dir, Err: err}
	}
	tmp := f.Name()
	ok := false
	defer func() {
		if !ok {
			f.Close()
			os.Remove(tmp)
		}
	}()

	// 按固定大小分块写入
	n, err := io.CopyBuffer(struct{ io.Writer }{f}, res.Body, make([]byte, chunkSize))
	if err != nil {
		return "", fmt.Errorf("copy image: %w", err)
	}
	if err = f.Sync(); err != nil {
		return "", &FileError{Op: "sync", Path: tmp, Err: err}
	}
	if err = f.Close(); err != nil {
		return "", &FileError{Op: "close", Path: tmp, Err: err}
	}
	if err = os.Rename(tmp, imgName); err != nil {
		return "", &FileError{Op: "rename", Path: imgName, Err: err}
	}
	ok = true

	log.Printf("[info] download img %d bytes\n%s\n", n, imgName)
	return imgName, nil
}
