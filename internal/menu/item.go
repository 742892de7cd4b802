// Package menu holds the restaurant's dish catalog.
package menu

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Item is a single dish. Items are values; once loaded they are never mutated.
type Item struct {
	Name     string
	Price    decimal.Decimal
	Category string
}

// itemRecord is the on-disk shape. Price is a json.Number so it is written
// as a bare number rather than decimal's default quoted string.
type itemRecord struct {
	Name     string      `json:"name"`
	Price    json.Number `json:"price"`
	Category string      `json:"category"`
}

// MarshalJSON writes {"name", "price", "category"} with a numeric price.
func (i Item) MarshalJSON() ([]byte, error) {
	return json.Marshal(itemRecord{
		Name:     i.Name,
		Price:    json.Number(i.Price.String()),
		Category: i.Category,
	})
}

// UnmarshalJSON accepts prices as numbers or numeric strings.
func (i *Item) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name     string          `json:"name"`
		Price    decimal.Decimal `json:"price"`
		Category string          `json:"category"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	i.Name = raw.Name
	i.Price = raw.Price
	i.Category = raw.Category
	return nil
}

// String renders the item the way the menu screens list it.
func (i Item) String() string {
	return fmt.Sprintf("%s (%s) - %s", i.Name, i.Category, FormatPrice(i.Price))
}

// FormatPrice renders a price with two decimals.
func FormatPrice(p decimal.Decimal) string {
	return p.StringFixed(2)
}
