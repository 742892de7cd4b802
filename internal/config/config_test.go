package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestInitBistroDirWritesDefaultConfig(t *testing.T) {
	projectDir := t.TempDir()
	if err := InitBistroDir(projectDir); err != nil {
		t.Fatalf("InitBistroDir: %v", err)
	}
	if _, err := os.Stat(filepath.Join(projectDir, BistroDir, "logs")); err != nil {
		t.Fatalf("logs dir missing: %v", err)
	}
	c, err := NewConfig(projectDir)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	if got, want := c.Tables(), []int{1, 2, 3, 4, 5}; !reflect.DeepEqual(got, want) {
		t.Fatalf("tables = %v, want %v", got, want)
	}
	if c.MenuPath() != filepath.Join(projectDir, "menu.json") {
		t.Fatalf("menu path = %s", c.MenuPath())
	}
	if c.OrdersPath() != filepath.Join(projectDir, "orders.json") {
		t.Fatalf("orders path = %s", c.OrdersPath())
	}
}

func TestInitBistroDirKeepsExistingConfig(t *testing.T) {
	projectDir := t.TempDir()
	bistroDir := filepath.Join(projectDir, BistroDir)
	if err := os.MkdirAll(bistroDir, 0755); err != nil {
		t.Fatal(err)
	}
	custom := "version: 1\ntables: [7]\n"
	if err := os.WriteFile(filepath.Join(bistroDir, "config.yaml"), []byte(custom), 0644); err != nil {
		t.Fatal(err)
	}
	if err := InitBistroDir(projectDir); err != nil {
		t.Fatalf("InitBistroDir: %v", err)
	}
	data, _ := os.ReadFile(filepath.Join(bistroDir, "config.yaml"))
	if string(data) != custom {
		t.Fatalf("existing config overwritten: %s", data)
	}
}

func TestLoadProjectConfigDefaultsWhenMissing(t *testing.T) {
	projectDir := t.TempDir()
	bistroDir := filepath.Join(projectDir, BistroDir)
	c := &Config{ProjectDir: projectDir, BistroProjectDir: bistroDir, Project: defaultProjectConfig()}
	if err := c.loadProjectConfig(); err != nil {
		t.Fatalf("loadProjectConfig returned error: %v", err)
	}
	if c.Project.Version != 1 {
		t.Fatalf("expected default version == 1, got %d", c.Project.Version)
	}
	if !strings.HasPrefix(c.OrdersPath(), projectDir) {
		t.Fatalf("expected orders path to be resolved, got %s", c.OrdersPath())
	}
}

func TestLoadProjectConfigParsesYaml(t *testing.T) {
	projectDir := t.TempDir()
	bistroDir := filepath.Join(projectDir, BistroDir)
	if err := os.MkdirAll(bistroDir, 0755); err != nil {
		t.Fatal(err)
	}
	configYAML := strings.TrimSpace(`
version: 1
tables: [12, 10, 11]
menu_file: data/menu.json
orders_file: /var/lib/bistro/orders.json
`)
	if err := os.WriteFile(filepath.Join(bistroDir, "config.yaml"), []byte(configYAML), 0644); err != nil {
		t.Fatal(err)
	}
	c := &Config{ProjectDir: projectDir, BistroProjectDir: bistroDir, Project: defaultProjectConfig()}
	if err := c.loadProjectConfig(); err != nil {
		t.Fatalf("loadProjectConfig returned error: %v", err)
	}
	if got, want := c.Tables(), []int{10, 11, 12}; !reflect.DeepEqual(got, want) {
		t.Fatalf("tables = %v, want %v", got, want)
	}
	if c.MenuPath() != filepath.Join(projectDir, "data", "menu.json") {
		t.Fatalf("menu path = %s", c.MenuPath())
	}
	if c.OrdersPath() != "/var/lib/bistro/orders.json" {
		t.Fatalf("orders path = %s", c.OrdersPath())
	}
}

func TestLoadProjectConfigValidation(t *testing.T) {
	for name, body := range map[string]string{
		"duplicate": "version: 1\ntables: [1, 2, 2]\n",
		"negative":  "version: 1\ntables: [0, 1]\n",
		"malformed": "version: [\n",
	} {
		t.Run(name, func(t *testing.T) {
			projectDir := t.TempDir()
			bistroDir := filepath.Join(projectDir, BistroDir)
			if err := os.MkdirAll(bistroDir, 0755); err != nil {
				t.Fatal(err)
			}
			if err := os.WriteFile(filepath.Join(bistroDir, "config.yaml"), []byte(body), 0644); err != nil {
				t.Fatal(err)
			}
			c := &Config{ProjectDir: projectDir, BistroProjectDir: bistroDir, Project: defaultProjectConfig()}
			if err := c.loadProjectConfig(); err == nil {
				t.Fatalf("expected validation error but got none")
			}
		})
	}
}

func TestEnvOverridesFiles(t *testing.T) {
	projectDir := t.TempDir()
	if err := InitBistroDir(projectDir); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvOrdersFile, "shift/orders.json")
	c, err := NewConfig(projectDir)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	if want := filepath.Join(projectDir, "shift", "orders.json"); c.OrdersPath() != want {
		t.Fatalf("orders path = %s, want %s", c.OrdersPath(), want)
	}
}

func TestDotEnvOverridesFiles(t *testing.T) {
	projectDir := t.TempDir()
	if err := InitBistroDir(projectDir); err != nil {
		t.Fatal(err)
	}
	os.Unsetenv(EnvMenuFile)
	t.Cleanup(func() { os.Unsetenv(EnvMenuFile) })
	if err := os.WriteFile(filepath.Join(projectDir, ".env"), []byte(EnvMenuFile+"=menus/dinner.json\n"), 0644); err != nil {
		t.Fatal(err)
	}
	c, err := NewConfig(projectDir)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	if want := filepath.Join(projectDir, "menus", "dinner.json"); c.MenuPath() != want {
		t.Fatalf("menu path = %s, want %s", c.MenuPath(), want)
	}
}
