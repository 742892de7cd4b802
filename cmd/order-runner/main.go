package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kingrea/bistro/internal/config"
	"github.com/kingrea/bistro/internal/logbook"
)

func main() {
	op := flag.String("op", "", "operation: create, add, remove, cancel, show, tables or menu")
	projectDir := flag.String("project", "", "path to the project directory (defaults to cwd)")
	table := flag.Int("table", 0, "table number")
	customer := flag.String("customer", "", "customer name for create")
	batchFile := flag.String("batch", "", "path to a YAML file listing steps to apply in order")
	items := itemFlag{}
	flag.Var(&items, "item", "dish name (repeatable)")
	flag.Parse()

	var steps []step
	if path := strings.TrimSpace(*batchFile); path != "" {
		batch, err := readBatchFile(path)
		if err != nil {
			die("load batch: %v", err)
		}
		steps = batch
	}
	if strings.TrimSpace(*op) != "" {
		steps = append(steps, step{Op: *op, Table: *table, Customer: *customer, Items: items})
	}
	if len(steps) == 0 {
		die("--op or --batch is required")
	}

	project := *projectDir
	if project == "" {
		var err error
		project, err = os.Getwd()
		if err != nil {
			die("determine working directory: %v", err)
		}
	}
	absoluteProject, err := filepath.Abs(project)
	if err != nil {
		die("resolve project dir: %v", err)
	}
	if err := config.InitBistroDir(absoluteProject); err != nil {
		die("init .bistro: %v", err)
	}
	cfg, err := config.NewConfig(absoluteProject)
	if err != nil {
		die("load config: %v", err)
	}
	lb, err := logbook.New(cfg.JournalPath(), logbook.WithSession(logbook.NewSessionID()))
	if err != nil {
		die("open journal: %v", err)
	}

	r := newRunner(cfg, lb, os.Stdout)
	if err := r.run(steps); err != nil {
		die("%v", err)
	}
}

func die(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

type itemFlag []string

func (f *itemFlag) String() string {
	if f == nil {
		return ""
	}
	return strings.Join(*f, ", ")
}

func (f *itemFlag) Set(value string) error {
	name := strings.TrimSpace(value)
	if name == "" {
		return fmt.Errorf("item name is empty")
	}
	*f = append(*f, name)
	return nil
}
