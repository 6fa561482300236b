package radalbum

import (
	"io"
	"strings"

	"github.com/go-logr/logr"
)

var (
	markerKeys     = []string{"gpx", "distance", "time"}
	markerHeadings = []string{"tag", "day", "chapter"}
)

// IsChapterMarker reports whether a lone photo marks a day of travel rather than
// being an ordinary full page photo.
func IsChapterMarker(p Photo) bool {
	for _, line := range captionLines(p.caption) {
		key, _, _ := strings.Cut(line, ":")
		key = strings.ToLower(strings.TrimSpace(key))
		for _, k := range markerKeys {
			if key == k {
				return true
			}
		}
	}

	fs := strings.Fields(p.heading)
	if len(fs) == 0 {
		return false
	}
	first := strings.ToLower(fs[0])
	for _, h := range markerHeadings {
		if first == h {
			return true
		}
	}
	return false
}

// ChapterMarker is the header of a day of travel, with trip statistics.
type ChapterMarker struct {
	Title string

	GPXFile    string
	Distance   string
	Ascent     string
	Descent    string
	MovingTime string
	AvgSpeed   string
	From       string
	To         string

	// Photo is nil for markers without an image.
	Photo *Photo
}

// NewChapterMarker builds a marker from a photo, parsing "key: value" lines of its caption.
func NewChapterMarker(p Photo, log logr.Logger) *ChapterMarker {
	m := &ChapterMarker{Title: p.Title()}

	for _, line := range captionLines(p.Text()) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		parts := []string{}
		for _, s := range strings.Split(line, ":") {
			if s = strings.TrimSpace(s); s != "" {
				parts = append(parts, s)
			}
		}
		if len(parts) != 2 {
			log.V(1).Info("unmatched line in day header", "line", line, "title", m.Title)
			continue
		}

		val := parts[1]
		switch strings.ToLower(parts[0]) {
		case "gpx":
			m.GPXFile = val
		case "distance":
			m.Distance = stripUnit(val, "km")
		case "ascent":
			m.Ascent = stripUnit(val, "m")
		case "descent":
			m.Descent = stripUnit(val, "m")
		case "moving time":
			m.MovingTime = val
		case "avg":
			m.AvgSpeed = stripUnit(val, "km/h")
		case "from":
			m.From = val
		case "to":
			m.To = val
		default:
			log.Info("unmatched field in day header", "key", parts[0], "title", m.Title)
		}
	}

	m.Photo = &p
	return m
}

// captionLines splits a caption on CR or LF.
func captionLines(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool { return r == '\r' || r == '\n' })
}

// stripUnit removes a trailing unit, ignoring case. Values without the unit are returned as-is.
func stripUnit(s string, unit string) string {
	lower := strings.ToLower(s)
	if !strings.HasSuffix(lower, unit) {
		return s
	}
	return strings.TrimSpace(strings.TrimSuffix(lower, unit))
}

func (m *ChapterMarker) Kind() Kind { return KindChapter }

func (m *ChapterMarker) Photos() []Photo {
	if m.Photo == nil {
		return nil
	}
	return []Photo{*m.Photo}
}

func (m *ChapterMarker) Relocate(outDir string) (Block, error) {
	c := *m
	if m.Photo == nil {
		return &c, nil
	}

	p, err := m.Photo.Relocate(outDir)
	if err != nil {
		return nil, err
	}
	c.Photo = &p
	return &c, nil
}

func (m *ChapterMarker) Render(w io.Writer) error {
	return renderBlock(w, "chapter", m)
}
