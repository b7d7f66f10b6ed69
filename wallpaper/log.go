package wallpaper

import (
	"log"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// SetupLog sends the standard logger to a rotating file, or to stderr when
// file is empty.
func SetupLog(file string) error {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	if file == "" {
		log.SetOutput(os.Stderr)
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(file), 0755); err != nil {
		return &FileError{Op: "mkdir", Path: filepath.Dir(file), Err: err}
	}
	log.SetOutput(&lumberjack.Logger{
		Filename:   file,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	})
	return nil
}
