// radalbum creates a photo album page from the metadata stored inside image files.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fsnotify/fsnotify"
	"k8s.io/klog/v2"

	"github.com/tstromberg/radalbum/pkg/radalbum"
)

var (
	outDir    = flag.String("out", "", "Location of output directory. If unset, photos are only listed")
	title     = flag.String("title", "", "Title of the album page (default from album.yaml, or \"Album\")")
	assetsDir = flag.String("assets", "", "Directory holding Makefile and Album.css to copy next to the page")
	watchFlag = flag.Bool("watch", false, "watch the input directory for changes and rebuild")
)

func main() {
	klog.InitFlags(nil)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <input directory>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		klog.Exitf("exactly one input directory is required, got %d", flag.NArg())
	}

	c := &radalbum.Config{
		InDir:     flag.Arg(0),
		OutDir:    *outDir,
		Title:     *title,
		AssetsDir: *assetsDir,
	}
	if err := radalbum.LoadConfig(c); err != nil {
		klog.Exitf("config: %v", err)
	}
	klog.Infof("input directory: %s", c.InDir)

	r, err := radalbum.NewExifReader()
	if err != nil {
		klog.Exitf("metadata reader: %v", err)
	}
	defer func() {
		if err := r.Close(); err != nil {
			klog.Errorf("Failed to close exiftool: %v", err)
		}
	}()

	if c.OutDir == "" {
		if err := list(c, r); err != nil {
			klog.Exitf("list failed: %v", err)
		}
		return
	}

	klog.Infof("output directory: %s", c.OutDir)
	if err := build(c, r); err != nil {
		klog.Exitf("build failed: %v", err)
	}

	if *watchFlag {
		if err := watch(c, r); err != nil {
			klog.Exitf("watch failed: %v", err)
		}
	}
}

// list prints the diagnostic summary of every photo.
func list(c *radalbum.Config, r radalbum.MetadataReader) error {
	ps, err := radalbum.Find(c.InDir, r, klog.Background())
	if err != nil {
		return err
	}
	for _, p := range ps {
		fmt.Println(p)
	}
	return nil
}

// build imports the input directory and writes the album.
func build(c *radalbum.Config, r radalbum.MetadataReader) error {
	a, err := radalbum.Import(c, r)
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}

	if err := os.MkdirAll(c.OutDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	if err := a.WriteToDisk(c.OutDir, c.AssetsDir); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// watch watches the input directory for changes and rebuilds
func watch(c *radalbum.Config, r radalbum.MetadataReader) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("new watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(c.InDir); err != nil {
		return fmt.Errorf("watch %s: %w", c.InDir, err)
	}

	klog.Infof("watching %s ...", c.InDir)
	for {
		select {
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			klog.V(1).Infof("event: %v", event)
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) || event.Has(fsnotify.Remove) {
				if err := build(c, r); err != nil {
					klog.Errorf("rebuild failed: %v", err)
				}
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			klog.Errorf("watch error: %v", err)
		}
	}
}
