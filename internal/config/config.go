// internal/config/config.go
//
// This package handles configuration and the .roster workspace directory.
// Every directory managed with roster gets a .roster/ folder created in
// its root, holding the config file, the roster file, and logs.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/okapiworks/roster/internal/org"
)

const (
	// WorkspaceDir is the name of the directory we create in each
	// managed root.
	WorkspaceDir = ".roster"

	defaultTreeDir = "company"

	configFilename = "config.yaml"
	rosterFilename = "roster.yaml"
	lockFilename   = "roster.lock"
	logFilename    = "roster.log"
)

const defaultConfigYAML = `# roster workspace configuration
version: 1

# Directory (relative to the workspace root) holding the staff tree:
# <tree>/<project>/<department>/people/<employee>.md
tree: company

# Agent type assumed when a record does not declare one
# (claude, codex, gemini, copilot, aider).
# default_agent: claude
`

// WorkspaceConfig models .roster/config.yaml.
type WorkspaceConfig struct {
	Version      int    `yaml:"version"`
	Tree         string `yaml:"tree"`
	DefaultAgent string `yaml:"default_agent,omitempty"`
}

// Config holds the runtime configuration for one workspace.
type Config struct {
	// RootDir is the directory the user ran roster from.
	RootDir string

	// WorkspacePath is RootDir/.roster.
	WorkspacePath string

	Workspace WorkspaceConfig
}

// InitWorkspace creates the .roster directory structure in the given
// root directory and seeds a commented default config file.
//
// Structure created:
// .roster/
// ├── config.yaml   <- Workspace settings
// ├── logs/         <- Reconciliation activity log
// └── roster.yaml   <- Written on first scan
func InitWorkspace(rootDir string) error {
	workspace := filepath.Join(rootDir, WorkspaceDir)
	if err := os.MkdirAll(filepath.Join(workspace, "logs"), 0o755); err != nil {
		return fmt.Errorf("config: ensure workspace dirs: %w", err)
	}
	return ensureConfigFile(filepath.Join(workspace, configFilename))
}

// New creates a Config for the given root directory, loading the
// workspace config file when present. A missing file means defaults.
func New(rootDir string) (*Config, error) {
	cfg := &Config{
		RootDir:       rootDir,
		WorkspacePath: filepath.Join(rootDir, WorkspaceDir),
		Workspace:     defaultWorkspaceConfig(),
	}
	if err := cfg.loadWorkspaceConfig(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// TreeRoot returns the absolute path of the staff tree to scan.
func (c *Config) TreeRoot() string {
	tree := c.Workspace.Tree
	if filepath.IsAbs(tree) {
		return filepath.Clean(tree)
	}
	return filepath.Join(c.RootDir, tree)
}

// RosterPath returns the on-disk location of the roster file.
func (c *Config) RosterPath() string {
	return filepath.Join(c.WorkspacePath, rosterFilename)
}

// LockPath returns the lock file guarding reconciliation passes.
func (c *Config) LockPath() string {
	return filepath.Join(c.WorkspacePath, lockFilename)
}

// LogsDir returns the path to the logs directory.
func (c *Config) LogsDir() string {
	return filepath.Join(c.WorkspacePath, "logs")
}

// LogPath returns the reconciliation activity log file.
func (c *Config) LogPath() string {
	return filepath.Join(c.LogsDir(), logFilename)
}

// ConfigPath returns the on-disk location of the workspace config file.
func (c *Config) ConfigPath() string {
	return filepath.Join(c.WorkspacePath, configFilename)
}

// DefaultAgentType returns the agent type assumed for records that do
// not declare one, honoring the default_agent override when configured.
func (c *Config) DefaultAgentType() org.AgentType {
	if tag, ok := org.ParseAgentType(c.Workspace.DefaultAgent); ok {
		return tag
	}
	return org.DefaultAgentType
}

func (c *Config) loadWorkspaceConfig() error {
	path := c.ConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	var parsed WorkspaceConfig
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	parsed.applyDefaults()
	parsed.normalize()
	if err := parsed.validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	c.Workspace = parsed
	return nil
}

func defaultWorkspaceConfig() WorkspaceConfig {
	return WorkspaceConfig{
		Version: 1,
		Tree:    defaultTreeDir,
	}
}

func (wc *WorkspaceConfig) applyDefaults() {
	if wc.Version == 0 {
		wc.Version = 1
	}
	if strings.TrimSpace(wc.Tree) == "" {
		wc.Tree = defaultTreeDir
	}
}

func (wc *WorkspaceConfig) normalize() {
	wc.Tree = filepath.Clean(filepath.FromSlash(strings.TrimSpace(wc.Tree)))
	wc.DefaultAgent = strings.ToLower(strings.TrimSpace(wc.DefaultAgent))
}

func (wc *WorkspaceConfig) validate() error {
	if wc.Version < 1 {
		return fmt.Errorf("version must be >= 1")
	}
	if wc.Tree == "" || wc.Tree == "." {
		return fmt.Errorf("tree is required")
	}
	if wc.DefaultAgent != "" {
		if _, ok := org.ParseAgentType(wc.DefaultAgent); !ok {
			return fmt.Errorf("default_agent %q is not a known agent type", wc.DefaultAgent)
		}
	}
	return nil
}

func ensureConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
