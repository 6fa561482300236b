package radalbum

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/otiai10/copy"
)

// imgDir is the subdirectory of the output directory that holds photos.
const imgDir = "img"

var (
	// ErrInvalidPhoto is returned for photo locations that are not files.
	ErrInvalidPhoto = errors.New("invalid photo location")
	// ErrPathEncoding is returned when a relative path can not be represented as text.
	ErrPathEncoding = errors.New("path is not valid UTF-8")
)

// Photo is a single image along with its heading and caption.
// Photos are values: relocating one returns a new Photo.
type Photo struct {
	heading  string
	caption  string
	location string
}

// NewPhoto returns a photo found at location.
func NewPhoto(heading string, caption string, location string) Photo {
	return Photo{heading: heading, caption: caption, location: location}
}

// Heading is the short heading stored in the image metadata.
func (p Photo) Heading() string { return p.heading }

// Caption is the free-text caption stored in the image metadata.
func (p Photo) Caption() string { return p.caption }

// Location is the current path of the image file.
func (p Photo) Location() string { return p.location }

// Title is the trimmed heading, as rendered.
func (p Photo) Title() string { return strings.TrimSpace(p.heading) }

// Text is the trimmed caption, as rendered.
func (p Photo) Text() string { return strings.TrimSpace(p.caption) }

// RelPath returns {parent folder}/{file name} of the current location.
func (p Photo) RelPath() (string, error) {
	base := filepath.Base(p.location)
	if p.location == "" || base == "." || base == string(filepath.Separator) {
		return "", fmt.Errorf("%q has no file name: %w", p.location, ErrInvalidPhoto)
	}

	parent := filepath.Base(filepath.Dir(p.location))
	if parent == "." || parent == string(filepath.Separator) {
		return "", fmt.Errorf("%q has no parent directory: %w", p.location, ErrInvalidPhoto)
	}

	return filepath.Join(parent, base), nil
}

// ImageRef returns the markup line referencing this photo.
func (p Photo) ImageRef() (string, error) {
	rel, err := p.RelPath()
	if err != nil {
		return "", err
	}
	if !utf8.ValidString(rel) {
		return "", fmt.Errorf("%q: %w", rel, ErrPathEncoding)
	}
	rel = filepath.ToSlash(rel)
	return fmt.Sprintf("![Missing Image: %s](%s)", rel, rel), nil
}

// Relocate copies the photo into the img subdirectory of outDir, returning
// a photo that points at the copy. The source file is left in place.
func (p Photo) Relocate(outDir string) (Photo, error) {
	st, err := os.Stat(p.location)
	if err != nil {
		return p, fmt.Errorf("stat: %w", err)
	}
	if st.IsDir() {
		return p, fmt.Errorf("%q is a directory: %w", p.location, ErrInvalidPhoto)
	}

	name := NormalizeFilename(filepath.Base(p.location))
	if name == "" || name == "." || name == ".." || strings.ContainsRune(name, filepath.Separator) {
		return p, fmt.Errorf("%q normalizes to %q: %w", p.location, name, ErrInvalidPhoto)
	}

	dest := filepath.Join(outDir, imgDir, name)
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return p, fmt.Errorf("mkdir: %w", err)
	}

	if samePath(p.location, dest) {
		return NewPhoto(p.heading, p.caption, dest), nil
	}

	if err := copy.Copy(p.location, dest); err != nil {
		return p, fmt.Errorf("copy: %w", err)
	}

	return NewPhoto(p.heading, p.caption, dest), nil
}

// String is the diagnostic summary of a photo.
func (p Photo) String() string {
	return fmt.Sprintf("%q\n%s\n%s", p.location, p.heading, p.caption)
}

// samePath reports whether two paths name the same file.
func samePath(a string, b string) bool {
	sa, err := os.Stat(a)
	if err != nil {
		return false
	}
	sb, err := os.Stat(b)
	if err != nil {
		return false
	}
	return os.SameFile(sa, sb)
}
