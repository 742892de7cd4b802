// Package restaurant owns the order book: which tables exist, which are
// occupied, and the order attached to each occupied table.
//
// The book keeps one invariant between calls: the occupied tables and the
// available tables are disjoint and together make up the table universe.
package restaurant

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/kingrea/bistro/internal/menu"
	"github.com/kingrea/bistro/internal/order"
	"github.com/kingrea/bistro/internal/store"
)

// DefaultTables is the universe used when none is configured.
var DefaultTables = []int{1, 2, 3, 4, 5}

// Journal receives human-readable lines about every state change.
type Journal interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

// OrderBook tracks the table universe, its availability and active orders.
// It is not safe for concurrent use; a single caller drives it.
type OrderBook struct {
	catalog   *menu.Catalog
	universe  map[int]struct{}
	available map[int]struct{}
	active    map[int]*order.Order
	store     *store.Store
	journal   Journal
}

// Option customizes an OrderBook during construction.
type Option func(*OrderBook)

// WithCatalog installs an already loaded menu.
func WithCatalog(c *menu.Catalog) Option {
	return func(b *OrderBook) {
		if c != nil {
			b.catalog = c
		}
	}
}

// WithJournal routes book events to j.
func WithJournal(j Journal) Option {
	return func(b *OrderBook) {
		b.journal = j
	}
}

// WithStore overrides the document store used for persistence.
func WithStore(s *store.Store) Option {
	return func(b *OrderBook) {
		if s != nil {
			b.store = s
		}
	}
}

// New builds an order book over tables. Every table starts available.
// Duplicate table numbers collapse; an empty list falls back to DefaultTables.
func New(tables []int, opts ...Option) *OrderBook {
	if len(tables) == 0 {
		tables = DefaultTables
	}
	b := &OrderBook{
		universe:  make(map[int]struct{}, len(tables)),
		available: make(map[int]struct{}, len(tables)),
		active:    make(map[int]*order.Order),
		store:     store.New(),
	}
	for _, t := range tables {
		b.universe[t] = struct{}{}
		b.available[t] = struct{}{}
	}
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}
	if b.catalog == nil {
		b.catalog = menu.NewCatalog(menu.WithJournal(b.journal), menu.WithStore(b.store))
	}
	return b
}

// Catalog returns the menu the book resolves dish names against.
func (b *OrderBook) Catalog() *menu.Catalog {
	return b.catalog
}

// LoadMenu replaces the menu with the contents of path.
func (b *OrderBook) LoadMenu(path string) menu.LoadResult {
	return b.catalog.Load(path)
}

// HasTable reports whether table is part of the universe.
func (b *OrderBook) HasTable(table int) bool {
	_, ok := b.universe[table]
	return ok
}

// IsOccupied reports whether table has an active order.
func (b *OrderBook) IsOccupied(table int) bool {
	_, ok := b.active[table]
	return ok
}

// CreateOrder opens an order for customer at table. The name is stored as
// given; callers reading user input trim it first.
func (b *OrderBook) CreateOrder(table int, customer string) error {
	if !b.HasTable(table) {
		b.logWarn("Table %d does not exist", table)
		return fmt.Errorf("%w: %d", ErrNoSuchTable, table)
	}
	if b.IsOccupied(table) {
		b.logWarn("Table %d is already occupied", table)
		return fmt.Errorf("%w: %d", ErrTableOccupied, table)
	}
	b.active[table] = order.New(table, customer)
	delete(b.available, table)
	b.logInfo("Order opened · table %d for %s", table, customer)
	return nil
}

// AddToOrder resolves itemName in the menu and appends it to table's order.
func (b *OrderBook) AddToOrder(table int, itemName string) error {
	o, ok := b.active[table]
	if !ok {
		b.logWarn("No order for table %d", table)
		return fmt.Errorf("%w: table %d", ErrNoSuchOrder, table)
	}
	item, ok := b.catalog.ItemByName(itemName)
	if !ok {
		b.logWarn("Item %q not found in menu", itemName)
		return fmt.Errorf("%w: %q", ErrItemNotFound, itemName)
	}
	o.AddLine(item)
	b.logInfo("Added %s to table %d", item.Name, table)
	return nil
}

// RemoveFromOrder drops every line named itemName from table's order and
// reports how many lines were removed.
func (b *OrderBook) RemoveFromOrder(table int, itemName string) (int, error) {
	o, ok := b.active[table]
	if !ok {
		b.logWarn("No order for table %d", table)
		return 0, fmt.Errorf("%w: table %d", ErrNoSuchOrder, table)
	}
	removed := o.RemoveLine(itemName)
	b.logInfo("Removed %d × %s from table %d", removed, itemName, table)
	return removed, nil
}

// CancelOrder discards table's order and frees the table.
func (b *OrderBook) CancelOrder(table int) error {
	o, ok := b.active[table]
	if !ok {
		b.logWarn("No order for table %d", table)
		return fmt.Errorf("%w: table %d", ErrNoSuchOrder, table)
	}
	o.Clear()
	delete(b.active, table)
	b.available[table] = struct{}{}
	b.logInfo("Order cancelled · table %d", table)
	return nil
}

// AvailableTables returns the free tables in ascending order.
func (b *OrderBook) AvailableTables() []int {
	return sortedKeys(b.available)
}

// OccupiedTables returns the tables with an active order in ascending order.
func (b *OrderBook) OccupiedTables() []int {
	tables := make([]int, 0, len(b.active))
	for t := range b.active {
		tables = append(tables, t)
	}
	sort.Ints(tables)
	return tables
}

// Tables returns the whole universe in ascending order.
func (b *OrderBook) Tables() []int {
	return sortedKeys(b.universe)
}

// OrderView is a read-only snapshot of an active order.
type OrderView struct {
	TableNumber  int
	CustomerName string
	Lines        []menu.Item
	Total        decimal.Decimal
}

// Order returns a snapshot of table's order.
func (b *OrderBook) Order(table int) (OrderView, error) {
	o, ok := b.active[table]
	if !ok {
		return OrderView{}, fmt.Errorf("%w: table %d", ErrNoSuchOrder, table)
	}
	return OrderView{
		TableNumber:  o.TableNumber(),
		CustomerName: o.CustomerName(),
		Lines:        o.Lines(),
		Total:        o.Total(),
	}, nil
}

func sortedKeys(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}

func (b *OrderBook) logInfo(format string, args ...any) {
	if b.journal == nil {
		return
	}
	b.journal.Info(format, args...)
}

func (b *OrderBook) logWarn(format string, args ...any) {
	if b.journal == nil {
		return
	}
	b.journal.Warn(format, args...)
}

func (b *OrderBook) logError(format string, args ...any) {
	if b.journal == nil {
		return
	}
	b.journal.Error(format, args...)
}
