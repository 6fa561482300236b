package radalbum

import (
	"embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/template"

	"github.com/otiai10/copy"
	"k8s.io/klog/v2"
)

//go:embed templates/blocks.tmpl
var blocksTmpl string

//go:embed assets/Makefile assets/Album.css
var defaultAssets embed.FS

// assetNames are the auxiliary files copied next to the page.
var assetNames = []string{"Makefile", "Album.css"}

// pageName is the name of the rendered markup file.
const pageName = "Album.md"

var blockTemplates = template.Must(template.New("blocks").Parse(blocksTmpl))

func renderBlock(w io.Writer, name string, data any) error {
	if err := blockTemplates.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	return nil
}

func renderHeader(w io.Writer, title string) error {
	return renderBlock(w, "page", title)
}

// copyAssets copies the auxiliary assets into outDir. An empty inDir uses the
// copies built into the binary.
func copyAssets(inDir string, outDir string) error {
	klog.V(1).Infof("copying %d assets from %q to %s", len(assetNames), inDir, outDir)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	for _, name := range assetNames {
		dest := filepath.Join(outDir, name)
		if inDir != "" {
			if err := copy.Copy(filepath.Join(inDir, name), dest); err != nil {
				return fmt.Errorf("copy %s: %w", name, err)
			}
			continue
		}

		bs, err := defaultAssets.ReadFile("assets/" + name)
		if err != nil {
			return fmt.Errorf("read embedded %s: %w", name, err)
		}
		if err := os.WriteFile(dest, bs, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
	}
	return nil
}

// findAssetsDir returns the first directory holding every asset: dir if given,
// then "assets" next to the executable, then "assets" in the working directory.
// An empty result means the embedded assets should be used.
func findAssetsDir(dir string) string {
	if dir != "" {
		return dir
	}

	candidates := []string{}
	if exe, err := os.Executable(); err == nil {
		candidates = append(candidates, filepath.Join(filepath.Dir(exe), "assets"))
	}
	candidates = append(candidates, "assets")

	for _, c := range candidates {
		if hasAssets(c) {
			return c
		}
	}
	return ""
}

func hasAssets(dir string) bool {
	for _, name := range assetNames {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			return false
		}
	}
	return true
}
