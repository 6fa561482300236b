// Package radalbum turns a directory of captioned photos into a Markdown album page.
package radalbum

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-logr/logr"
	"k8s.io/klog/v2"
)

// ErrNotCollected is returned when rendering an album that has not been grouped yet.
var ErrNotCollected = errors.New("album photos have not been collected into blocks")

// DefaultTitle is the page title used when none is configured.
const DefaultTitle = "Album"

// Album is an ordered set of photos, and after Collect, the blocks they were grouped into.
type Album struct {
	Title string

	photos    []Photo
	blocks    []Block
	collected bool
	log       logr.Logger
}

// Option configures an Album.
type Option func(*Album)

// WithLogger sets the diagnostic sink. The default is klog.
func WithLogger(l logr.Logger) Option {
	return func(a *Album) {
		a.log = l
	}
}

// WithTitle sets the page title. Empty titles are ignored.
func WithTitle(t string) Option {
	return func(a *Album) {
		if t != "" {
			a.Title = t
		}
	}
}

// New returns an ungrouped album of photos, in display order.
func New(photos []Photo, opts ...Option) *Album {
	a := &Album{
		Title:  DefaultTitle,
		photos: photos,
		log:    klog.Background(),
	}
	for _, o := range opts {
		o(a)
	}
	return a
}

// Photos returns the photos that have not been grouped yet.
func (a *Album) Photos() []Photo {
	return a.photos
}

// Blocks returns the grouped blocks.
func (a *Album) Blocks() []Block {
	return a.blocks
}

// Collect groups the pending photos into blocks, appending them to any
// existing blocks. Collecting an album without pending photos changes nothing
// other than marking it collected.
func (a *Album) Collect() {
	if len(a.photos) > 0 {
		a.blocks = append(a.blocks, Group(a.photos, a.log)...)
		a.photos = nil
	}
	a.collected = true
}

// Render writes the page markup: a title heading followed by every block.
func (a *Album) Render(w io.Writer) error {
	if !a.collected {
		return ErrNotCollected
	}

	if err := renderHeader(w, a.Title); err != nil {
		return err
	}
	for _, b := range a.blocks {
		if err := b.Render(w); err != nil {
			return err
		}
	}
	return nil
}

// WriteToDisk writes the assets, photos and page into outDir. An empty
// assetsDir looks for assets next to the executable and in the working
// directory before falling back to built-in copies. Failures of
// single assets, photos or blocks are logged and skipped; only a failure to
// write the page is returned.
func (a *Album) WriteToDisk(outDir string, assetsDir string) error {
	if err := copyAssets(findAssetsDir(assetsDir), outDir); err != nil {
		a.log.Error(err, "unable to copy assets", "dir", assetsDir)
	}

	for i, p := range a.photos {
		np, err := p.Relocate(outDir)
		if err != nil {
			a.log.Error(err, "unable to write photo", "photo", p.Location())
			continue
		}
		a.log.V(1).Info("wrote photo", "photo", np.String())
		a.photos[i] = np
	}

	a.Collect()

	for i, b := range a.blocks {
		nb, err := b.Relocate(outDir)
		if err != nil {
			a.log.Error(err, "unable to write block", "index", i, "kind", b.Kind())
			continue
		}
		a.blocks[i] = nb
	}

	return a.writePage(filepath.Join(outDir, pageName))
}

func (a *Album) writePage(path string) (err error) {
	a.log.Info("writing page", "blocks", len(a.blocks), "path", path)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close: %w", cerr)
		}
	}()

	w := bufio.NewWriter(f)
	if err := a.Render(w); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return nil
}
