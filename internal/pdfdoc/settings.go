package pdfdoc

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// Settings are shared by the receipt and report renderers.
type Settings struct {
	Theme   Theme
	FontDir string
	// Now is used for report dates and timestamped file names. Defaults to time.Now.
	Now func() time.Time
}

// DefaultSettings uses the default theme, core fonts and the wall clock.
func DefaultSettings() Settings {
	return Settings{Theme: DefaultTheme(), Now: time.Now}
}

// Clock returns the current time according to s.
func (s Settings) Clock() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

// Saver is the host mechanism that receives a finished document.
type Saver interface {
	Save(name string, data []byte) error
}

// SaverFunc adapts a function to Saver.
type SaverFunc func(name string, data []byte) error

func (f SaverFunc) Save(name string, data []byte) error { return f(name, data) }

var (
	spaces     = regexp.MustCompile(`[\s\p{Z}]+`)
	separators = strings.NewReplacer("/", "_", "\\", "_")
)

// NamePart makes s usable inside a single file name: runs of whitespace,
// Unicode spaces included, become one underscore and path separators
// become underscores.
func NamePart(s string) string {
	return separators.Replace(spaces.ReplaceAllString(s, "_"))
}

// DirSaver writes documents into a directory, creating it when missing.
type DirSaver struct {
	Dir string
}

func (s DirSaver) Save(name string, data []byte) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(s.Dir, filepath.Base(name))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
