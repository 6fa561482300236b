package radalbum

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
)

// logLines collects the output of a funcr logger.
type logLines struct {
	mu    sync.Mutex
	lines []string
}

func (l *logLines) contains(s string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, line := range l.lines {
		if strings.Contains(line, s) {
			return true
		}
	}
	return false
}

func (l *logLines) len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.lines)
}

func testLogger(t *testing.T) (logr.Logger, *logLines) {
	t.Helper()
	ll := &logLines{}
	l := funcr.New(func(prefix, args string) {
		ll.mu.Lock()
		defer ll.mu.Unlock()
		ll.lines = append(ll.lines, args)
		t.Logf("%s %s", prefix, args)
	}, funcr.Options{Verbosity: 1})
	return l, ll
}

func writeFile(t *testing.T, path string, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	bs, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	return string(bs)
}

// locations returns the location of every photo in every block.
func locations(bs []Block) [][]string {
	out := [][]string{}
	for _, b := range bs {
		ls := []string{}
		for _, p := range b.Photos() {
			ls = append(ls, p.Location())
		}
		out = append(out, ls)
	}
	return out
}

func kinds(bs []Block) []Kind {
	out := []Kind{}
	for _, b := range bs {
		out = append(out, b.Kind())
	}
	return out
}
