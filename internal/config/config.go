// internal/config/config.go
//
// This package handles configuration and the .bistro directory structure.
// Every dining room that runs bistro gets a .bistro/ folder in its working
// directory holding config.yaml and the journal.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// BistroDir is the name of the directory we create in each project
	BistroDir = ".bistro"

	defaultMenuFile   = "menu.json"
	defaultOrdersFile = "orders.json"

	// EnvMenuFile overrides menu_file from config.yaml.
	EnvMenuFile = "BISTRO_MENU_FILE"
	// EnvOrdersFile overrides orders_file from config.yaml.
	EnvOrdersFile = "BISTRO_ORDERS_FILE"
)

const defaultProjectConfigYAML = `# bistro configuration
version: 1

# Table numbers served by this dining room.
tables: [1, 2, 3, 4, 5]

# Relative paths resolve against the directory bistro runs in.
menu_file: menu.json
orders_file: orders.json
`

// ProjectConfig models .bistro/config.yaml.
type ProjectConfig struct {
	Version    int    `yaml:"version"`
	Tables     []int  `yaml:"tables"`
	MenuFile   string `yaml:"menu_file"`
	OrdersFile string `yaml:"orders_file"`
}

// Config holds the runtime configuration for bistro.
type Config struct {
	// ProjectDir is the directory where the user ran bistro from
	ProjectDir string

	// BistroProjectDir is ProjectDir/.bistro
	BistroProjectDir string

	Project ProjectConfig
}

// InitBistroDir creates the .bistro directory structure in the given project directory.
//
// Structure created:
// .bistro/
// ├── config.yaml
// └── logs/        <- journal.log
func InitBistroDir(projectDir string) error {
	bistroDir := filepath.Join(projectDir, BistroDir)
	if err := os.MkdirAll(filepath.Join(bistroDir, "logs"), 0o755); err != nil {
		return err
	}
	return ensureProjectConfig(filepath.Join(bistroDir, "config.yaml"))
}

// NewConfig creates a new Config instance populated with project settings.
// A .env file in projectDir, when present, is loaded before the environment
// overrides are applied.
func NewConfig(projectDir string) (*Config, error) {
	cfg := &Config{
		ProjectDir:       projectDir,
		BistroProjectDir: filepath.Join(projectDir, BistroDir),
		Project:          defaultProjectConfig(),
	}

	if err := cfg.loadProjectConfig(); err != nil {
		return nil, err
	}
	if err := loadDotEnv(filepath.Join(projectDir, ".env")); err != nil {
		return nil, err
	}
	cfg.applyEnv()
	return cfg, nil
}

// LogsDir returns the path to the logs directory
func (c *Config) LogsDir() string {
	return filepath.Join(c.BistroProjectDir, "logs")
}

// JournalPath returns the path to the journal file
func (c *Config) JournalPath() string {
	return filepath.Join(c.LogsDir(), "journal.log")
}

// ProjectConfigPath returns the on-disk location for the project config file.
func (c *Config) ProjectConfigPath() string {
	return filepath.Join(c.BistroProjectDir, "config.yaml")
}

// Tables returns the configured table universe.
func (c *Config) Tables() []int {
	return append([]int(nil), c.Project.Tables...)
}

// MenuPath returns the absolute path of the menu file.
func (c *Config) MenuPath() string {
	return c.Project.MenuFile
}

// OrdersPath returns the absolute path of the orders file.
func (c *Config) OrdersPath() string {
	return c.Project.OrdersFile
}

func (c *Config) loadProjectConfig() error {
	path := c.ProjectConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			c.Project.normalize(c.ProjectDir)
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	var parsed ProjectConfig
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	parsed.applyDefaults()
	if err := parsed.validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	parsed.normalize(c.ProjectDir)

	c.Project = parsed
	return nil
}

func (c *Config) applyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvMenuFile)); v != "" {
		c.Project.MenuFile = resolvePath(c.ProjectDir, v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvOrdersFile)); v != "" {
		c.Project.OrdersFile = resolvePath(c.ProjectDir, v)
	}
}

func loadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: stat %s: %w", path, err)
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("config: load %s: %w", path, err)
	}
	return nil
}

func defaultProjectConfig() ProjectConfig {
	return ProjectConfig{
		Version:    1,
		Tables:     []int{1, 2, 3, 4, 5},
		MenuFile:   defaultMenuFile,
		OrdersFile: defaultOrdersFile,
	}
}

func (pc *ProjectConfig) applyDefaults() {
	if pc.Version == 0 {
		pc.Version = 1
	}
	if len(pc.Tables) == 0 {
		pc.Tables = []int{1, 2, 3, 4, 5}
	}
	if strings.TrimSpace(pc.MenuFile) == "" {
		pc.MenuFile = defaultMenuFile
	}
	if strings.TrimSpace(pc.OrdersFile) == "" {
		pc.OrdersFile = defaultOrdersFile
	}
}

func (pc *ProjectConfig) normalize(base string) {
	tables := append([]int(nil), pc.Tables...)
	sort.Ints(tables)
	pc.Tables = tables
	pc.MenuFile = resolvePath(base, pc.MenuFile)
	pc.OrdersFile = resolvePath(base, pc.OrdersFile)
}

func (pc *ProjectConfig) validate() error {
	if pc.Version < 1 {
		return fmt.Errorf("config version must be >= 1")
	}
	seen := make(map[int]struct{}, len(pc.Tables))
	for i, t := range pc.Tables {
		if t < 1 {
			return fmt.Errorf("tables[%d]: table number must be positive, got %d", i, t)
		}
		if _, dup := seen[t]; dup {
			return fmt.Errorf("tables[%d]: duplicate table number %d", i, t)
		}
		seen[t] = struct{}{}
	}
	return nil
}

func resolvePath(base, candidate string) string {
	trimmed := strings.TrimSpace(candidate)
	if trimmed == "" {
		return ""
	}
	if filepath.IsAbs(trimmed) {
		return filepath.Clean(trimmed)
	}
	return filepath.Clean(filepath.Join(base, trimmed))
}

func ensureProjectConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return os.WriteFile(path, []byte(defaultProjectConfigYAML), 0644)
}
