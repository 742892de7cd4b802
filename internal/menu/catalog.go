package menu

import (
	"github.com/kingrea/bistro/internal/store"
)

// Journal receives human-readable progress lines.
type Journal interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
}

// LoadResult describes the outcome of Catalog.Load.
type LoadResult struct {
	store.CheckResult
	Count int
}

// Catalog is an ordered list of dishes, in file order.
type Catalog struct {
	items   []Item
	store   *store.Store
	journal Journal
}

// Option customizes a Catalog during construction.
type Option func(*Catalog)

// WithJournal routes load messages to j.
func WithJournal(j Journal) Option {
	return func(c *Catalog) {
		c.journal = j
	}
}

// WithStore overrides the document store used by Load.
func WithStore(s *store.Store) Option {
	return func(c *Catalog) {
		if s != nil {
			c.store = s
		}
	}
}

// NewCatalog builds an empty catalog.
func NewCatalog(opts ...Option) *Catalog {
	c := &Catalog{store: store.New()}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Load replaces the catalog with the JSON array at path. A missing or
// malformed file is logged and leaves the current items in place.
func (c *Catalog) Load(path string) LoadResult {
	var items []Item
	res := c.store.ReadJSON(path, &items)
	switch res.State {
	case store.StateReady:
		c.items = items
		c.logInfo("Menu loaded · %d item(s) from %s", len(items), path)
		return LoadResult{CheckResult: res, Count: len(items)}
	case store.StateMissing:
		c.logWarn("Menu file not found: %s", path)
	default:
		c.logWarn("Menu file unreadable: %v", res.Err)
	}
	return LoadResult{CheckResult: res, Count: len(c.items)}
}

// Replace swaps the whole item list.
func (c *Catalog) Replace(items []Item) {
	c.items = append([]Item(nil), items...)
}

// Len returns the number of items.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Items returns a copy of every item in catalog order.
func (c *Catalog) Items() []Item {
	return append([]Item(nil), c.items...)
}

// ItemsByCategory returns the items in category, in catalog order.
func (c *Catalog) ItemsByCategory(category string) []Item {
	var out []Item
	for _, item := range c.items {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out
}

// ItemByName returns the first item whose name matches exactly.
func (c *Catalog) ItemByName(name string) (Item, bool) {
	for _, item := range c.items {
		if item.Name == name {
			return item, true
		}
	}
	return Item{}, false
}

// Categories returns distinct categories in order of first appearance.
func (c *Catalog) Categories() []string {
	seen := map[string]struct{}{}
	var out []string
	for _, item := range c.items {
		if _, ok := seen[item.Category]; ok {
			continue
		}
		seen[item.Category] = struct{}{}
		out = append(out, item.Category)
	}
	return out
}

func (c *Catalog) logInfo(format string, args ...any) {
	if c.journal == nil {
		return
	}
	c.journal.Info(format, args...)
}

func (c *Catalog) logWarn(format string, args ...any) {
	if c.journal == nil {
		return
	}
	c.journal.Warn(format, args...)
}
