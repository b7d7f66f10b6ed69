package wallpaper

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/ini.v1"
)

func TestLoadConfig_MissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.ini")

	c, err := LoadConfig(path)
	require.NoError(t, err)
	assert.False(t, c.Loop)
	assert.Equal(t, DefaultInterval, c.Interval)
	assert.Equal(t, DefaultTimeout, c.Timeout)
	assert.Equal(t, DefaultUserAgent, c.UserAgent)
	assert.Equal(t, DefaultPlaceholders, c.Placeholders)
	assert.Equal(t, "fill", c.Style)
	assert.Equal(t, 3, c.Burst)
	assert.Equal(t, filepath.Join(dir, "wallpapers"), c.ImgSavePath)

	// the absolute save path is written back
	saved, err := ini.Load(path)
	require.NoError(t, err)
	assert.Equal(t, c.ImgSavePath, saved.Section("wallpaper").Key("imgSavePath").String())
}

func TestLoadConfig_Values(t *testing.T) {
	dir := t.TempDir()
	save := filepath.Join(dir, "pics")
	path := filepath.Join(dir, "config.ini")
	require.NoError(t, os.WriteFile(path, []byte(`[wallpaper]
imgSavePath = `+save+`
loop = true
interval = 12h
userAgent = test agent
timeout = 5s
rate = 0.5
burst = 50
placeholders = blank.png, /icons/
style = fit
logFile = `+filepath.Join(dir, "log", "daily.log")+`
contextMenu = true
`), 0644))

	c, err := LoadConfig(path)
	require.NoError(t, err)
	assert.True(t, c.Loop)
	assert.Equal(t, 12*time.Hour, c.Interval)
	assert.Equal(t, "test agent", c.UserAgent)
	assert.Equal(t, 5*time.Second, c.Timeout)
	assert.Equal(t, 0.5, c.Rate)
	assert.Equal(t, 3, c.Burst)
	assert.Equal(t, []string{"blank.png", "/icons/"}, c.Placeholders)
	assert.Equal(t, "fit", c.Style)
	assert.Equal(t, save, c.ImgSavePath)
	assert.True(t, c.ContextMenu)
	assert.Equal(t, filepath.Join(dir, "log", "daily.log"), c.LogFile)
}

func TestLoadConfig_Clamps(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.ini")
	require.NoError(t, os.WriteFile(path, []byte("[wallpaper]\ninterval = 5s\nstyle = wobble\n"), 0644))

	c, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, time.Minute, c.Interval)
	assert.Equal(t, "fill", c.Style)
}

func TestSetupLog(t *testing.T) {
	file := filepath.Join(t.TempDir(), "logs", "daily.log")
	require.NoError(t, SetupLog(file))
	defer SetupLog("")

	_, err := os.Stat(filepath.Dir(file))
	assert.NoError(t, err)
}
