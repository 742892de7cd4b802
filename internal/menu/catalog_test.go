package menu

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/kingrea/bistro/internal/store"
)

type recordingJournal struct {
	lines []string
}

func (r *recordingJournal) Info(format string, args ...any) {
	r.lines = append(r.lines, "INFO "+fmt.Sprintf(format, args...))
}

func (r *recordingJournal) Warn(format string, args ...any) {
	r.lines = append(r.lines, "WARN "+fmt.Sprintf(format, args...))
}

func writeMenu(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "menu.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadPreservesFileOrder(t *testing.T) {
	path := writeMenu(t, `[
		{"name": "Borscht", "price": 5, "category": "Soup"},
		{"name": "Steak", "price": 18.5, "category": "Main"},
		{"name": "Solyanka", "price": "6.25", "category": "Soup"}
	]`)
	c := NewCatalog()
	res := c.Load(path)
	if !res.OK() {
		t.Fatalf("load failed: %v", res.Err)
	}
	if res.Count != 3 || c.Len() != 3 {
		t.Fatalf("count = %d/%d, want 3", res.Count, c.Len())
	}
	var names []string
	for _, item := range c.Items() {
		names = append(names, item.Name)
	}
	if want := []string{"Borscht", "Steak", "Solyanka"}; !reflect.DeepEqual(names, want) {
		t.Fatalf("names = %v, want %v", names, want)
	}
	steak, ok := c.ItemByName("Steak")
	if !ok {
		t.Fatalf("Steak not found")
	}
	if !steak.Price.Equal(decimal.RequireFromString("18.5")) {
		t.Fatalf("steak price = %s", steak.Price)
	}
}

func TestLoadMissingKeepsPriorItems(t *testing.T) {
	journal := &recordingJournal{}
	c := NewCatalog(WithJournal(journal))
	c.Replace([]Item{{Name: "Tea", Price: decimal.NewFromInt(2), Category: "Drinks"}})
	res := c.Load(filepath.Join(t.TempDir(), "absent.json"))
	if res.State != store.StateMissing {
		t.Fatalf("state = %s, want missing", res.State)
	}
	if c.Len() != 1 {
		t.Fatalf("prior items dropped, len = %d", c.Len())
	}
	if len(journal.lines) != 1 || !strings.HasPrefix(journal.lines[0], "WARN") {
		t.Fatalf("expected one warning, got %v", journal.lines)
	}
}

func TestLoadMalformedOnFirstCallLeavesEmpty(t *testing.T) {
	c := NewCatalog()
	res := c.Load(writeMenu(t, `{"name": "not an array"}`))
	if res.State != store.StateInvalid {
		t.Fatalf("state = %s, want invalid", res.State)
	}
	if c.Len() != 0 {
		t.Fatalf("expected empty catalog, got %d items", c.Len())
	}
}

func TestLoadNullKeepsPriorItems(t *testing.T) {
	journal := &recordingJournal{}
	c := NewCatalog(WithJournal(journal))
	c.Replace([]Item{{Name: "Tea", Price: decimal.NewFromInt(2), Category: "Drinks"}})
	res := c.Load(writeMenu(t, "null"))
	if res.State != store.StateInvalid {
		t.Fatalf("state = %s, want invalid", res.State)
	}
	if c.Len() != 1 || res.Count != 1 {
		t.Fatalf("prior items dropped, len = %d count = %d", c.Len(), res.Count)
	}
	if len(journal.lines) != 1 || !strings.HasPrefix(journal.lines[0], "WARN") {
		t.Fatalf("expected one warning, got %v", journal.lines)
	}
}

func TestCategoriesFirstAppearanceOrder(t *testing.T) {
	c := NewCatalog()
	c.Replace([]Item{
		{Name: "a", Category: "Soup"},
		{Name: "b", Category: "Main"},
		{Name: "c", Category: "Soup"},
		{Name: "d", Category: "Dessert"},
	})
	if got, want := c.Categories(), []string{"Soup", "Main", "Dessert"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("categories = %v, want %v", got, want)
	}
}

func TestItemsByCategoryAndByName(t *testing.T) {
	c := NewCatalog()
	c.Replace([]Item{
		{Name: "Tea", Price: decimal.NewFromInt(2), Category: "Drinks"},
		{Name: "Soup", Price: decimal.NewFromInt(5), Category: "Starters"},
		{Name: "Cola", Price: decimal.NewFromInt(3), Category: "Drinks"},
		{Name: "Tea", Price: decimal.NewFromInt(9), Category: "Specials"},
	})
	drinks := c.ItemsByCategory("Drinks")
	if len(drinks) != 2 || drinks[0].Name != "Tea" || drinks[1].Name != "Cola" {
		t.Fatalf("drinks = %+v", drinks)
	}
	if got := c.ItemsByCategory("Nope"); len(got) != 0 {
		t.Fatalf("unknown category returned %+v", got)
	}
	tea, ok := c.ItemByName("Tea")
	if !ok || !tea.Price.Equal(decimal.NewFromInt(2)) {
		t.Fatalf("ItemByName should return the first match, got %+v", tea)
	}
	if _, ok := c.ItemByName("tea"); ok {
		t.Fatalf("lookup must be exact")
	}
}

func TestItemJSONWritesNumericPrice(t *testing.T) {
	data, err := json.Marshal(Item{Name: "Tea", Price: decimal.RequireFromString("2.50"), Category: "Drinks"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if got, want := string(data), `{"name":"Tea","price":2.5,"category":"Drinks"}`; got != want {
		t.Fatalf("json = %s, want %s", got, want)
	}
}

func TestCategoryChoice(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		n       int
		want    int
		wantErr error
	}{
		{name: "letter", input: "b", n: 3, want: 1},
		{name: "number", input: " 3 ", n: 3, want: 2},
		{name: "cancel", input: "0", n: 3, wantErr: ErrChoiceCancelled},
		{name: "letter out of range", input: "D", n: 3, wantErr: ErrInvalidChoice},
		{name: "number out of range", input: "4", n: 3, wantErr: ErrInvalidChoice},
		{name: "garbage", input: "soup", n: 3, wantErr: ErrInvalidChoice},
		{name: "empty", input: "", n: 3, wantErr: ErrInvalidChoice},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCategoryChoice(tt.input, tt.n)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Fatalf("index = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCategoryLabelFallsBackToNumbers(t *testing.T) {
	if got := CategoryLabel(0); got != "A" {
		t.Fatalf("label(0) = %s", got)
	}
	if got := CategoryLabel(26); got != "27" {
		t.Fatalf("label(26) = %s, want 27", got)
	}
}

func TestItemChoice(t *testing.T) {
	if idx, err := ParseItemChoice("2", 2); err != nil || idx != 1 {
		t.Fatalf("ParseItemChoice(2) = %d, %v", idx, err)
	}
	if _, err := ParseItemChoice("0", 2); !errors.Is(err, ErrChoiceCancelled) {
		t.Fatalf("expected cancel, got %v", err)
	}
	if _, err := ParseItemChoice("x", 2); !errors.Is(err, ErrInvalidChoice) {
		t.Fatalf("expected invalid, got %v", err)
	}
}
