package order

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/kingrea/bistro/internal/menu"
)

func item(name, price, category string) menu.Item {
	return menu.Item{Name: name, Price: decimal.RequireFromString(price), Category: category}
}

func TestTotalSumsLines(t *testing.T) {
	o := New(1, "Alice")
	if !o.Total().IsZero() {
		t.Fatalf("empty order total = %s, want 0", o.Total())
	}
	o.AddLine(item("Steak", "10", "Main"))
	o.AddLine(item("Soup", "5", "Starters"))
	o.AddLine(item("Tea", "2.5", "Drinks"))
	if want := decimal.RequireFromString("17.5"); !o.Total().Equal(want) {
		t.Fatalf("total = %s, want %s", o.Total(), want)
	}
}

func TestRemoveLineRemovesEveryMatch(t *testing.T) {
	o := New(2, "Bob")
	o.AddLine(item("Cola", "3", "Drinks"))
	o.AddLine(item("Burger", "9", "Main"))
	o.AddLine(item("Cola", "3", "Drinks"))
	if removed := o.RemoveLine("Cola"); removed != 2 {
		t.Fatalf("removed = %d, want 2", removed)
	}
	if o.Count("Cola") != 0 {
		t.Fatalf("Cola lines remain: %d", o.Count("Cola"))
	}
	if o.Len() != 1 || o.Lines()[0].Name != "Burger" {
		t.Fatalf("unexpected lines: %+v", o.Lines())
	}
	if removed := o.RemoveLine("Cola"); removed != 0 {
		t.Fatalf("second remove = %d, want 0", removed)
	}
}

func TestDuplicateLinesAreKept(t *testing.T) {
	o := New(3, "Cleo")
	o.AddLine(item("Tea", "2", "Drinks"))
	o.AddLine(item("Tea", "2", "Drinks"))
	if o.Len() != 2 || o.Count("Tea") != 2 {
		t.Fatalf("expected two Tea lines, got %+v", o.Lines())
	}
}

func TestLinesReturnsCopy(t *testing.T) {
	o := New(1, "Alice")
	o.AddLine(item("Tea", "2", "Drinks"))
	lines := o.Lines()
	lines[0].Name = "Changed"
	if o.Lines()[0].Name != "Tea" {
		t.Fatalf("Lines leaked internal slice")
	}
}

func TestRecordShape(t *testing.T) {
	o := New(4, "Дарья")
	o.AddLine(item("Tea", "2", "Drinks"))
	data, err := json.Marshal(o.Record())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"table_number":4,"customer_name":"Дарья","items":[{"name":"Tea","price":2,"category":"Drinks"}]}`
	if string(data) != want {
		t.Fatalf("record json = %s, want %s", data, want)
	}
}

func TestEmptyRecordHasItemsArray(t *testing.T) {
	data, err := json.Marshal(New(5, "Eve").Record())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(data), `"items":[]`) {
		t.Fatalf("expected empty items array, got %s", data)
	}
}

func TestFromRecordRebuildsLines(t *testing.T) {
	rec := Record{TableNumber: 2, CustomerName: "Bob", Items: []menu.Item{
		item("Cola", "3", "Drinks"),
		item("Cola", "3", "Drinks"),
	}}
	o := FromRecord(rec)
	if o.TableNumber() != 2 || o.CustomerName() != "Bob" || o.Count("Cola") != 2 {
		t.Fatalf("rebuilt order mismatch: %+v", o.Record())
	}
}
