package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kingrea/bistro/internal/config"
	"github.com/kingrea/bistro/internal/logbook"
	"github.com/kingrea/bistro/internal/menu"
	"github.com/kingrea/bistro/internal/restaurant"
	"gopkg.in/yaml.v3"
)

// step is one operation against the order book. Batch files are a YAML list
// of steps.
type step struct {
	Op       string   `yaml:"op"`
	Table    int      `yaml:"table"`
	Customer string   `yaml:"customer"`
	Items    []string `yaml:"items"`
}

type runner struct {
	cfg  *config.Config
	book *restaurant.OrderBook
	out  io.Writer
}

func newRunner(cfg *config.Config, lb *logbook.Logbook, out io.Writer) *runner {
	var opts []restaurant.Option
	if lb != nil {
		opts = append(opts, restaurant.WithJournal(lb))
	}
	book := restaurant.New(cfg.Tables(), opts...)
	book.LoadMenu(cfg.MenuPath())
	book.Restore(cfg.OrdersPath())
	return &runner{cfg: cfg, book: book, out: out}
}

// run applies steps in order. The orders file is only written when every
// step succeeded and at least one of them changed the book.
func (r *runner) run(steps []step) error {
	dirty := false
	for i, s := range steps {
		mutated, err := r.apply(s)
		if err != nil {
			return fmt.Errorf("step %d (%s): %w", i+1, s.Op, err)
		}
		dirty = dirty || mutated
	}
	if !dirty {
		return nil
	}
	if err := r.book.Persist(r.cfg.OrdersPath()); err != nil {
		return err
	}
	fmt.Fprintf(r.out, "Saved orders to %s\n", r.cfg.OrdersPath())
	return nil
}

func (r *runner) apply(s step) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s.Op)) {
	case "create":
		if strings.TrimSpace(s.Customer) == "" {
			return false, fmt.Errorf("%w: customer is required", restaurant.ErrMalformedInput)
		}
		if err := r.book.CreateOrder(s.Table, s.Customer); err != nil {
			return false, err
		}
		fmt.Fprintf(r.out, "Created order for %s at table %d\n", s.Customer, s.Table)
		return true, r.addItems(s)
	case "add":
		if len(s.Items) == 0 {
			return false, fmt.Errorf("%w: at least one item is required", restaurant.ErrMalformedInput)
		}
		return true, r.addItems(s)
	case "remove":
		if len(s.Items) == 0 {
			return false, fmt.Errorf("%w: at least one item is required", restaurant.ErrMalformedInput)
		}
		for _, name := range s.Items {
			removed, err := r.book.RemoveFromOrder(s.Table, name)
			if err != nil {
				return false, err
			}
			fmt.Fprintf(r.out, "Removed %d x %s from table %d\n", removed, name, s.Table)
		}
		return true, nil
	case "cancel":
		if err := r.book.CancelOrder(s.Table); err != nil {
			return false, err
		}
		fmt.Fprintf(r.out, "Cancelled order for table %d\n", s.Table)
		return true, nil
	case "show":
		return false, r.show(s.Table)
	case "tables":
		fmt.Fprintf(r.out, "Available: %s\n", joinTables(r.book.AvailableTables()))
		fmt.Fprintf(r.out, "Occupied: %s\n", joinTables(r.book.OccupiedTables()))
		return false, nil
	case "menu":
		r.printMenu()
		return false, nil
	}
	return false, fmt.Errorf("%w: unknown operation %q", restaurant.ErrMalformedInput, s.Op)
}

func (r *runner) addItems(s step) error {
	for _, name := range s.Items {
		if err := r.book.AddToOrder(s.Table, name); err != nil {
			return err
		}
		fmt.Fprintf(r.out, "Added %s to table %d\n", name, s.Table)
	}
	return nil
}

func (r *runner) show(table int) error {
	view, err := r.book.Order(table)
	if err != nil {
		return err
	}
	fmt.Fprintf(r.out, "Table %d · %s\n", view.TableNumber, view.CustomerName)
	for _, item := range view.Lines {
		fmt.Fprintf(r.out, "  %s\n", item)
	}
	fmt.Fprintf(r.out, "Total: %s\n", menu.FormatPrice(view.Total))
	return nil
}

func (r *runner) printMenu() {
	catalog := r.book.Catalog()
	for i, category := range catalog.Categories() {
		fmt.Fprintf(r.out, "%s. %s\n", menu.CategoryLabel(i), category)
		for j, item := range catalog.ItemsByCategory(category) {
			fmt.Fprintf(r.out, "  %d. %s\n", j+1, item)
		}
	}
}

func joinTables(tables []int) string {
	if len(tables) == 0 {
		return "none"
	}
	parts := make([]string, len(tables))
	for i, t := range tables {
		parts[i] = fmt.Sprint(t)
	}
	return strings.Join(parts, ", ")
}

func readBatchFile(path string) ([]step, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("open batch file %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory, expected a file", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read batch file %s: %w", path, err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("batch file %s is empty", path)
	}
	var steps []step
	if err := yaml.Unmarshal(data, &steps); err != nil {
		return nil, fmt.Errorf("parse batch file %s: %w", path, err)
	}
	return steps, nil
}
