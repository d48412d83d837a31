package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mnove/voidui/internal/lock"
)

// Standard file names at the project root.
const (
	ConfigFileName = ".voidui.yaml"
	LockFileName   = "voidui.lock.json"
)

// Context holds the resolved paths and loaded state for a project.
type Context struct {
	Root       string
	ConfigPath string
	LockPath   string
	Config     Config
	Lock       lock.Store
	HasLock    bool
}

// Load resolves project paths and loads the config (and lock if present).
func Load(root string) (*Context, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving project root: %w", err)
	}

	configPath := filepath.Join(root, ConfigFileName)
	lockPath := filepath.Join(root, LockFileName)

	cfg, err := LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	ctx := &Context{
		Root:       root,
		ConfigPath: configPath,
		LockPath:   lockPath,
		Config:     cfg,
		Lock:       lock.NewStore(),
	}

	if _, statErr := os.Stat(lockPath); statErr == nil {
		s, err := lock.Load(lockPath)
		if err != nil {
			return nil, err
		}
		ctx.Lock = s
		ctx.HasLock = true
	}

	return ctx, nil
}

// SaveLock persists a new lock snapshot and adopts it as current.
func (c *Context) SaveLock(s lock.Store) error {
	if err := lock.Save(c.LockPath, s); err != nil {
		return err
	}
	c.Lock = s
	c.HasLock = true
	return nil
}

// ComponentPath returns the absolute path of a component's source file.
func (c *Context) ComponentPath(name string) string {
	return filepath.Join(c.Root, c.Config.ComponentsDir, name+c.Config.Extension)
}

// ChangelogPath returns the absolute path of a component's changelog file.
func (c *Context) ChangelogPath(name string) string {
	dir := c.Config.ChangelogDir
	if dir == "" {
		dir = "changelogs"
	}
	return filepath.Join(c.Root, dir, name+".changelog.json")
}

// ReadComponent reads the current on-disk content of a component.
func (c *Context) ReadComponent(name string) (string, error) {
	data, err := os.ReadFile(c.ComponentPath(name))
	if err != nil {
		return "", fmt.Errorf("reading component %s: %w", name, err)
	}
	return string(data), nil
}

// WriteComponent writes component content, creating directories as needed.
func (c *Context) WriteComponent(name, content string) error {
	path := c.ComponentPath(name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating component directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing component %s: %w", name, err)
	}
	return nil
}

// RegistryURL returns the registry to use for a component, preferring
// the per-record override captured at install time.
func (c *Context) RegistryURL(name string) string {
	if r, ok := c.Lock.Get(name); ok && r.RegistryURL != "" {
		return r.RegistryURL
	}
	return c.Config.RegistryURL
}
