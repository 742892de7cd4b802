// Package order models a single table's order: who is sitting there and
// which dishes have been added.
package order

import (
	"github.com/shopspring/decimal"

	"github.com/kingrea/bistro/internal/menu"
)

// Record is the persisted form of an Order.
type Record struct {
	TableNumber  int         `json:"table_number"`
	CustomerName string      `json:"customer_name"`
	Items        []menu.Item `json:"items"`
}

// Order holds the lines added for one table. Repeated dishes are repeated
// lines; there is no quantity field.
type Order struct {
	tableNumber  int
	customerName string
	lines        []menu.Item
}

// New creates an empty order.
func New(tableNumber int, customerName string) *Order {
	return &Order{tableNumber: tableNumber, customerName: customerName}
}

// FromRecord rebuilds an order from its persisted form.
func FromRecord(rec Record) *Order {
	o := New(rec.TableNumber, rec.CustomerName)
	for _, item := range rec.Items {
		o.AddLine(item)
	}
	return o
}

// TableNumber returns the table the order belongs to.
func (o *Order) TableNumber() int { return o.tableNumber }

// CustomerName returns the name the order was opened under.
func (o *Order) CustomerName() string { return o.customerName }

// AddLine appends item as a new line.
func (o *Order) AddLine(item menu.Item) {
	o.lines = append(o.lines, item)
}

// RemoveLine drops every line named name and reports how many went.
func (o *Order) RemoveLine(name string) int {
	kept := o.lines[:0]
	removed := 0
	for _, item := range o.lines {
		if item.Name == name {
			removed++
			continue
		}
		kept = append(kept, item)
	}
	o.lines = kept
	return removed
}

// Clear drops all lines.
func (o *Order) Clear() {
	o.lines = nil
}

// Lines returns a copy of the order lines.
func (o *Order) Lines() []menu.Item {
	return append([]menu.Item(nil), o.lines...)
}

// Len returns the number of lines.
func (o *Order) Len() int {
	return len(o.lines)
}

// Count returns how many lines are named name.
func (o *Order) Count(name string) int {
	n := 0
	for _, item := range o.lines {
		if item.Name == name {
			n++
		}
	}
	return n
}

// Total sums the line prices. An empty order totals zero.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.lines {
		total = total.Add(item.Price)
	}
	return total
}

// Record converts the order to its persisted form.
func (o *Order) Record() Record {
	items := make([]menu.Item, len(o.lines))
	copy(items, o.lines)
	return Record{
		TableNumber:  o.tableNumber,
		CustomerName: o.customerName,
		Items:        items,
	}
}
