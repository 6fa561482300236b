package radalbum

import (
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name       string
		yaml       string
		c          Config
		wantTitle  string
		wantAssets string
		wantErr    bool
	}{
		{
			name:       "from file",
			yaml:       "title: Danube Trip\nassets: site\n",
			wantTitle:  "Danube Trip",
			wantAssets: "site",
		},
		{
			name:       "flags win",
			yaml:       "title: Danube Trip\nassets: site\n",
			c:          Config{Title: "Flag", AssetsDir: "/flag"},
			wantTitle:  "Flag",
			wantAssets: "/flag",
		},
		{
			name:       "absolute assets",
			yaml:       "assets: /opt/radalbum\n",
			wantAssets: "/opt/radalbum",
		},
		{
			name:    "invalid",
			yaml:    "title: [unterminated\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, filepath.Join(dir, ConfigFile), tt.yaml)

			c := tt.c
			c.InDir = dir
			err := LoadConfig(&c)
			if tt.wantErr {
				if err == nil {
					t.Errorf("LoadConfig() succeeded, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadConfig: %v", err)
			}

			if c.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", c.Title, tt.wantTitle)
			}
			wantAssets := tt.wantAssets
			if wantAssets != "" && !filepath.IsAbs(wantAssets) {
				wantAssets = filepath.Join(dir, wantAssets)
			}
			if c.AssetsDir != wantAssets {
				t.Errorf("AssetsDir = %q, want %q", c.AssetsDir, wantAssets)
			}
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	c := Config{InDir: t.TempDir(), Title: "Kept"}
	if err := LoadConfig(&c); err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if c.Title != "Kept" || c.AssetsDir != "" {
		t.Errorf("LoadConfig() changed config: %+v", c)
	}
}
