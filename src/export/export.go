// Package export writes finished itineraries to markdown files.
package export

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"
)

// Exporter writes itinerary markdown into a directory on an abstract
// filesystem.
type Exporter struct {
	fs  afero.Fs
	dir string
}

// New creates an exporter writing into dir on the OS filesystem.
func New(dir string) *Exporter {
	return NewWithFs(afero.NewOsFs(), dir)
}

// NewWithFs creates an exporter on an explicit filesystem.
func NewWithFs(fs afero.Fs, dir string) *Exporter {
	return &Exporter{fs: fs, dir: dir}
}

// Write saves an itinerary and returns the file path. The filename is
// built from the destination and start date plus the plan ID prefix so
// repeat runs for the same trip never collide.
func (e *Exporter) Write(planID, destination, startDate, itinerary string) (string, error) {
	if strings.TrimSpace(itinerary) == "" {
		return "", fmt.Errorf("itinerary is empty")
	}

	if err := e.fs.MkdirAll(e.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	name := fmt.Sprintf("%s-%s-%s.md", slugify(destination), startDate, shortID(planID))
	path := filepath.Join(e.dir, name)

	content := itinerary
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}

	if err := afero.WriteFile(e.fs, path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write itinerary: %w", err)
	}

	return path, nil
}

func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	lastDash := true
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	out := strings.TrimSuffix(b.String(), "-")
	if out == "" {
		return "trip"
	}
	return out
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	if id == "" {
		return fmt.Sprintf("%d", time.Now().Unix())
	}
	return id
}
