package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/okapiworks/roster/internal/org"
)

func TestNewDefaultsWhenConfigMissing(t *testing.T) {
	rootDir := t.TempDir()
	cfg, err := New(rootDir)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if cfg.Workspace.Version != 1 {
		t.Fatalf("expected default version == 1, got %d", cfg.Workspace.Version)
	}
	if got, want := cfg.TreeRoot(), filepath.Join(rootDir, defaultTreeDir); got != want {
		t.Fatalf("TreeRoot() = %q, want %q", got, want)
	}
}

func TestNewParsesWorkspaceYaml(t *testing.T) {
	rootDir := t.TempDir()
	workspace := filepath.Join(rootDir, WorkspaceDir)
	if err := os.MkdirAll(workspace, 0o755); err != nil {
		t.Fatal(err)
	}
	configYAML := strings.TrimSpace(`
version: 1
tree: staff/tree
`)
	if err := os.WriteFile(filepath.Join(workspace, configFilename), []byte(configYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := New(rootDir)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if got, want := cfg.TreeRoot(), filepath.Join(rootDir, "staff", "tree"); got != want {
		t.Fatalf("TreeRoot() = %q, want %q", got, want)
	}
}

func TestNewParsesDefaultAgentOverride(t *testing.T) {
	rootDir := t.TempDir()
	workspace := filepath.Join(rootDir, WorkspaceDir)
	if err := os.MkdirAll(workspace, 0o755); err != nil {
		t.Fatal(err)
	}
	configYAML := "version: 1\ntree: company\ndefault_agent: Codex\n"
	if err := os.WriteFile(filepath.Join(workspace, configFilename), []byte(configYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := New(rootDir)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if got := cfg.DefaultAgentType(); got != org.AgentCodex {
		t.Fatalf("DefaultAgentType() = %q, want codex", got)
	}
}

func TestDefaultAgentTypeFallsBackWhenUnset(t *testing.T) {
	cfg, err := New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if got := cfg.DefaultAgentType(); got != org.DefaultAgentType {
		t.Fatalf("DefaultAgentType() = %q, want %q", got, org.DefaultAgentType)
	}
}

func TestNewRejectsUnknownDefaultAgent(t *testing.T) {
	rootDir := t.TempDir()
	workspace := filepath.Join(rootDir, WorkspaceDir)
	if err := os.MkdirAll(workspace, 0o755); err != nil {
		t.Fatal(err)
	}
	configYAML := "version: 1\ntree: company\ndefault_agent: hal9000\n"
	if err := os.WriteFile(filepath.Join(workspace, configFilename), []byte(configYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := New(rootDir); err == nil {
		t.Fatal("expected error for unknown default_agent")
	}
}

func TestNewRejectsInvalidVersion(t *testing.T) {
	rootDir := t.TempDir()
	workspace := filepath.Join(rootDir, WorkspaceDir)
	if err := os.MkdirAll(workspace, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(workspace, configFilename), []byte("version: -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := New(rootDir); err == nil {
		t.Fatal("expected error for invalid version")
	}
}

func TestInitWorkspaceCreatesStructure(t *testing.T) {
	rootDir := t.TempDir()
	if err := InitWorkspace(rootDir); err != nil {
		t.Fatalf("InitWorkspace returned error: %v", err)
	}
	for _, path := range []string{
		filepath.Join(rootDir, WorkspaceDir, "logs"),
		filepath.Join(rootDir, WorkspaceDir, configFilename),
	} {
		if _, err := os.Stat(path); err != nil {
			t.Fatalf("expected %s to exist: %v", path, err)
		}
	}
	// A second init must not overwrite an edited config.
	custom := []byte("version: 1\ntree: elsewhere\n")
	if err := os.WriteFile(filepath.Join(rootDir, WorkspaceDir, configFilename), custom, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := InitWorkspace(rootDir); err != nil {
		t.Fatalf("second InitWorkspace returned error: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(rootDir, WorkspaceDir, configFilename))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != string(custom) {
		t.Fatal("InitWorkspace overwrote an existing config file")
	}
}

func TestPathHelpers(t *testing.T) {
	rootDir := t.TempDir()
	cfg, err := New(rootDir)
	if err != nil {
		t.Fatal(err)
	}
	workspace := filepath.Join(rootDir, WorkspaceDir)
	if got, want := cfg.RosterPath(), filepath.Join(workspace, rosterFilename); got != want {
		t.Fatalf("RosterPath() = %q, want %q", got, want)
	}
	if got, want := cfg.LockPath(), filepath.Join(workspace, lockFilename); got != want {
		t.Fatalf("LockPath() = %q, want %q", got, want)
	}
	if got, want := cfg.LogPath(), filepath.Join(workspace, "logs", logFilename); got != want {
		t.Fatalf("LogPath() = %q, want %q", got, want)
	}
}
