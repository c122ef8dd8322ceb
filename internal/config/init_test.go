package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitializeCreatesDefaultLocation(t *testing.T) {
	homeDir := t.TempDir()
	t.Setenv("HOME", homeDir)
	t.Setenv("USERPROFILE", homeDir)

	path, err := Initialize(InitOptions{})
	if err != nil {
		t.Fatalf("Initialize error: %v", err)
	}
	expectedPath := filepath.Join(homeDir, ".config", "chezmoi", "chezmoi-files.toml")
	if path != expectedPath {
		t.Fatalf("expected path %s, got %s", expectedPath, path)
	}
	content, readErr := os.ReadFile(path)
	if readErr != nil {
		t.Fatalf("read config: %v", readErr)
	}
	if string(content) != DefaultTemplate() {
		t.Fatalf("unexpected configuration content: %s", string(content))
	}
}

func TestInitializePreventsOverwriteWithoutForce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "existing.toml")
	if err := os.WriteFile(path, []byte("# existing config"), 0o600); err != nil {
		t.Fatalf("write seed config: %v", err)
	}

	_, err := Initialize(InitOptions{Path: path})
	if !errors.Is(err, ErrConfigurationExists) {
		t.Fatalf("expected ErrConfigurationExists, got %v", err)
	}
	content, _ := os.ReadFile(path)
	if string(content) != "# existing config" {
		t.Fatalf("existing configuration was modified")
	}

	if _, err := Initialize(InitOptions{Path: path, Force: true}); err != nil {
		t.Fatalf("Initialize with force error: %v", err)
	}
	content, _ = os.ReadFile(path)
	if !strings.Contains(string(content), "[excluded-files]") {
		t.Fatalf("expected template after forced overwrite, got %s", string(content))
	}
}

func TestDefaultTemplateDecodesToDefaults(t *testing.T) {
	decoded, err := decode([]byte(DefaultTemplate()))
	if err != nil {
		t.Fatalf("decode template: %v", err)
	}
	defaults := Default()
	if strings.Join(decoded.ExcludedFiles.Files, ",") != strings.Join(defaults.ExcludedFiles.Files, ",") {
		t.Fatalf("template exclusions %v differ from defaults %v", decoded.ExcludedFiles.Files, defaults.ExcludedFiles.Files)
	}
	if !decoded.Colors.Enabled {
		t.Fatalf("template must enable colors")
	}
	for _, section := range []string{"[excluded-files]", "[included-files]", "[colors]", "DS_Store"} {
		if !strings.Contains(DefaultTemplate(), section) {
			t.Fatalf("template missing %s", section)
		}
	}
}
