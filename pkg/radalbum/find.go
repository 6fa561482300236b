package radalbum

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/barasher/go-exiftool"
	"github.com/go-logr/logr"
	"github.com/karrick/godirwalk"
	"k8s.io/klog/v2"
)

// photoExts are the extensions of files imported as photos. Matching is case-sensitive.
var photoExts = map[string]bool{".jpg": true, ".png": true}

// MetadataReader returns the heading and caption stored in an image.
// Missing fields are returned as empty strings.
type MetadataReader interface {
	Read(path string) (heading string, caption string, err error)
}

// ExifReader reads IPTC metadata using exiftool.
type ExifReader struct {
	et *exiftool.Exiftool
}

// NewExifReader starts an exiftool process. Callers must Close it.
func NewExifReader() (*ExifReader, error) {
	et, err := exiftool.NewExiftool()
	if err != nil {
		return nil, fmt.Errorf("exiftool: %w", err)
	}
	return &ExifReader{et: et}, nil
}

// Read returns the IPTC object name and caption of path.
func (r *ExifReader) Read(path string) (string, string, error) {
	fis := r.et.ExtractMetadata(path)
	fi := fis[0]
	if fi.Err != nil {
		return "", "", fmt.Errorf("extract fail for %q: %w", path, fi.Err)
	}

	for k, v := range fi.Fields {
		klog.V(2).Infof("%q=%v", k, v)
	}

	heading, err := fi.GetString("ObjectName")
	if err != nil && !errors.Is(err, exiftool.ErrKeyNotFound) {
		return "", "", fmt.Errorf("get ObjectName: %w", err)
	}

	caption, err := fi.GetString("Caption-Abstract")
	if err != nil && !errors.Is(err, exiftool.ErrKeyNotFound) {
		return "", "", fmt.Errorf("get Caption-Abstract: %w", err)
	}

	return heading, caption, nil
}

// Close stops the exiftool process.
func (r *ExifReader) Close() error {
	return r.et.Close()
}

// Find returns the photos directly inside root, sorted by path. Files that
// can not be read are logged and skipped; an unreadable root is an error.
func Find(root string, r MetadataReader, log logr.Logger) ([]Photo, error) {
	des, err := godirwalk.ReadDirents(root, nil)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}

	paths := []string{}
	for _, de := range des {
		if de.IsDir() || !photoExts[filepath.Ext(de.Name())] {
			continue
		}
		paths = append(paths, filepath.Join(root, de.Name()))
	}
	sort.Strings(paths)

	found := []Photo{}
	for _, path := range paths {
		log.V(1).Info("loading photo", "path", path)
		heading, caption, err := r.Read(path)
		if err != nil {
			log.Error(err, "skipping unreadable photo", "path", path)
			continue
		}
		found = append(found, NewPhoto(heading, caption, path))
	}

	return found, nil
}

// Import returns an ungrouped album of the photos in c.InDir.
func Import(c *Config, r MetadataReader, opts ...Option) (*Album, error) {
	opts = append([]Option{WithTitle(c.Title)}, opts...)
	a := New(nil, opts...)

	a.log.Info("importing photos", "dir", c.InDir)
	ps, err := Find(c.InDir, r, a.log)
	if err != nil {
		return nil, fmt.Errorf("find: %w", err)
	}
	a.photos = ps
	return a, nil
}
