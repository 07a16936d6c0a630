package context

import (
	"bytes"
	stdcontext "context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/halbind/halbind/config"
	"github.com/halbind/halbind/faults"
)

var _ config.ContextService = (*DefaultContextManager)(nil)

// DefaultContextManager persists the context catalog as a YAML file. The
// catalog path comes from the explicit field, the HALBIND_CONTEXTS_FILE
// environment variable, or the default under the home directory.
type DefaultContextManager struct {
	CatalogPath string

	mu sync.Mutex
}

func (m *DefaultContextManager) Create(_ stdcontext.Context, cfg config.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	name := strings.TrimSpace(cfg.Name)
	if name == "" {
		return faults.NewTypedError(faults.ValidationError, "context name is required", nil)
	}
	cfg.Name = name

	catalog, err := m.loadCatalog()
	if err != nil {
		return err
	}
	if _, ok := lookupContext(catalog, name); ok {
		return faults.NewTypedError(faults.ValidationError, fmt.Sprintf("context %q already exists", name), nil)
	}

	catalog.Contexts = append(catalog.Contexts, cfg)
	if catalog.CurrentCtx == "" {
		catalog.CurrentCtx = name
	}
	return m.saveCatalog(catalog)
}

func (m *DefaultContextManager) Delete(_ stdcontext.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	catalog, err := m.loadCatalog()
	if err != nil {
		return err
	}

	kept := catalog.Contexts[:0]
	found := false
	for _, entry := range catalog.Contexts {
		if entry.Name == name {
			found = true
			continue
		}
		kept = append(kept, entry)
	}
	if !found {
		return faults.NewTypedError(faults.NotFoundError, fmt.Sprintf("context %q is missing", name), nil)
	}
	catalog.Contexts = kept
	if catalog.CurrentCtx == name {
		catalog.CurrentCtx = ""
	}
	return m.saveCatalog(catalog)
}

func (m *DefaultContextManager) SetCurrent(_ stdcontext.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	catalog, err := m.loadCatalog()
	if err != nil {
		return err
	}
	if _, ok := lookupContext(catalog, name); !ok {
		return faults.NewTypedError(faults.NotFoundError, fmt.Sprintf("context %q is missing", name), nil)
	}
	catalog.CurrentCtx = name
	return m.saveCatalog(catalog)
}

func (m *DefaultContextManager) List(_ stdcontext.Context) ([]config.Context, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	catalog, err := m.loadCatalog()
	if err != nil {
		return nil, err
	}

	contexts := append([]config.Context(nil), catalog.Contexts...)
	sort.Slice(contexts, func(i, j int) bool { return contexts[i].Name < contexts[j].Name })
	return contexts, nil
}

func (m *DefaultContextManager) GetCurrent(ctx stdcontext.Context) (config.Context, error) {
	return m.ResolveContext(ctx, config.ContextSelection{})
}

// ResolveContext returns the selected (or current) context with environment
// overrides applied. HALBIND_API_KEY always wins over the stored credential.
func (m *DefaultContextManager) ResolveContext(_ stdcontext.Context, selection config.ContextSelection) (config.Context, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	catalog, err := m.loadCatalog()
	if err != nil {
		return config.Context{}, err
	}

	name := strings.TrimSpace(selection.Name)
	if name == "" {
		name = catalog.CurrentCtx
	}
	if name == "" {
		return config.Context{}, faults.NewTypedError(faults.ValidationError, "no context selected and no current context configured", nil)
	}

	cfg, ok := lookupContext(catalog, name)
	if !ok {
		return config.Context{}, faults.NewTypedError(faults.NotFoundError, fmt.Sprintf("context %q is missing", name), nil)
	}

	if apiKey := strings.TrimSpace(os.Getenv(config.APIKeyEnvVar)); apiKey != "" {
		cfg.API.APIKey = apiKey
	}
	return cfg, nil
}

func (m *DefaultContextManager) catalogPath() (string, error) {
	if strings.TrimSpace(m.CatalogPath) != "" {
		return m.CatalogPath, nil
	}
	if fromEnv := strings.TrimSpace(os.Getenv(config.ContextFileEnvVar)); fromEnv != "" {
		return fromEnv, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(config.DefaultContextCatalogPath, "~/")), nil
}

func (m *DefaultContextManager) loadCatalog() (config.ContextCatalog, error) {
	path, err := m.catalogPath()
	if err != nil {
		return config.ContextCatalog{}, err
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist):
		return config.ContextCatalog{}, nil
	default:
		return config.ContextCatalog{}, fmt.Errorf("failed to read context catalog %q: %w", path, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return config.ContextCatalog{}, nil
	}

	var catalog config.ContextCatalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return config.ContextCatalog{}, faults.NewTypedError(faults.ValidationError, fmt.Sprintf("context catalog %q is not valid YAML", path), err)
	}
	return catalog, nil
}

func (m *DefaultContextManager) saveCatalog(catalog config.ContextCatalog) error {
	path, err := m.catalogPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create catalog directory: %w", err)
	}

	data, err := yaml.Marshal(catalog)
	if err != nil {
		return fmt.Errorf("failed to encode context catalog: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write context catalog %q: %w", path, err)
	}
	return nil
}

func lookupContext(catalog config.ContextCatalog, name string) (config.Context, bool) {
	for _, entry := range catalog.Contexts {
		if entry.Name == name {
			return entry, true
		}
	}
	return config.Context{}, false
}
