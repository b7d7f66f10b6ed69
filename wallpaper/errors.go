package wallpaper

import (
	"errors"
	"fmt"
)

var (
	// ErrExhausted means no candidate yielded a still image this cycle.
	ErrExhausted = errors.New("no usable image in listing")

	// ErrNoCandidates is returned for a listing without any post links.
	ErrNoCandidates = fmt.Errorf("listing has no candidates: %w", ErrExhausted)

	ErrUnsupportedOS = errors.New("setting the wallpaper is not supported on this OS")
)

// StatusError is a non-2xx HTTP response.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: status %d", e.URL, e.Code)
}

// FileError wraps a filesystem failure while storing the image.
type FileError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

// SetterError reports that the image was stored but the OS call failed.
type SetterError struct {
	Path string
	Err  error
}

func (e *SetterError) Error() string {
	return fmt.Sprintf("set wallpaper %s: %v", e.Path, e.Err)
}

func (e *SetterError) Unwrap() error { return e.Err }
