package config

import (
	"errors"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// LifeContext is one life domain a task or time log can be attributed to.
// TimeOnly contexts (e.g. "wasting") accept time logs but never tasks.
type LifeContext struct {
	ID       string `toml:"id"`
	Name     string `toml:"name"`
	Icon     string `toml:"icon"`
	Color    string `toml:"color"`
	TimeOnly bool   `toml:"time_only,omitempty"`
}

type Catalog struct {
	Contexts []LifeContext `toml:"contexts"`
}

// LoadOrCreateCatalog reads the context catalog, writing the default one on
// first run so the user has a file to edit.
func LoadOrCreateCatalog(path string) (Catalog, error) {
	catalog := defaultCatalog()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := writeCatalog(path, catalog); err != nil {
			return catalog, err
		}
		return catalog, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return catalog, err
	}
	if err := toml.Unmarshal(data, &catalog); err != nil {
		return catalog, err
	}
	if len(catalog.Contexts) == 0 {
		catalog = defaultCatalog()
	}
	return catalog, nil
}

func writeCatalog(path string, catalog Catalog) error {
	data, err := toml.Marshal(catalog)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// ByID returns the context with the given id, or false when unknown.
func (c Catalog) ByID(id string) (LifeContext, bool) {
	for _, ctx := range c.Contexts {
		if ctx.ID == id {
			return ctx, true
		}
	}
	return LifeContext{}, false
}

// TaskContexts returns the contexts tasks can be filed under.
func (c Catalog) TaskContexts() []LifeContext {
	out := make([]LifeContext, 0, len(c.Contexts))
	for _, ctx := range c.Contexts {
		if !ctx.TimeOnly {
			out = append(out, ctx)
		}
	}
	return out
}

func defaultCatalog() Catalog {
	return Catalog{
		Contexts: []LifeContext{
			{ID: "phd", Name: "PhD Research", Icon: "🎓", Color: "#3b82f6"},
			{ID: "avl", Name: "AVL Work", Icon: "💼", Color: "#8b5cf6"},
			{ID: "vitasana", Name: "VitaSana", Icon: "🏢", Color: "#10b981"},
			{ID: "personal", Name: "Personal", Icon: "🏠", Color: "#f59e0b"},
			{ID: "wasting", Name: "Wasting Time", Icon: "⏳", Color: "#6b7280", TimeOnly: true},
		},
	}
}
