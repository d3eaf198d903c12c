// Shared helpers for registrar CLI commands: store access, error
// classification, and output rendering.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/dukaforge/registrar/internal/sqlite"
	"github.com/dukaforge/registrar/pkg/model"
)

// openStore resolves the data directory, creates it if needed, and opens the
// initialized store. The caller must defer store.Close().
func openStore() (*sqlite.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	s, err := sqlite.Open(filepath.Join(dataDir, sqlite.DBFileName))
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

// fail prints the error and exits with the code its class deserves:
// validation and integrity errors are the caller's to correct (user error),
// everything else is a system error.
func fail(err error) {
	fmt.Fprintln(os.Stderr, err)

	var verr *model.ValidationError
	switch {
	case errors.As(err, &verr),
		errors.Is(err, model.ErrDuplicateKey),
		errors.Is(err, model.ErrNotFound),
		errors.Is(err, model.ErrForeignKey):
		os.Exit(exitUserError)
	default:
		os.Exit(exitSysError)
	}
}

// parseAge converts the CLI's text age to the model's integer age.
func parseAge(raw string) (int, error) {
	age, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("age must be an integer, got %q", raw)
	}
	return age, nil
}

// printJSON renders v as indented JSON on stdout.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

// renderTable prints a header plus rows as an aligned text table.
func renderTable(header []string, rows [][]string) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)

	headerRow := make(table.Row, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	t.AppendHeader(headerRow)

	for _, r := range rows {
		row := make(table.Row, len(r))
		for i, c := range r {
			row[i] = c
		}
		t.AppendRow(row)
	}

	t.Render()
}
