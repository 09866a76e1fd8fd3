package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cognicore/cablecode/pkg/cablecode/batch"
	"github.com/cognicore/cablecode/pkg/cablecode/cable"
	"github.com/cognicore/cablecode/pkg/cablecode/store"
	"github.com/cognicore/cablecode/pkg/cablecode/store/sqlite"
	"github.com/cognicore/cablecode/pkg/cablecode/table"
)

func newConvertCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <input>",
		Short: "Convert the description column of a spreadsheet",
		Long: `Convert reads a CSV file, an HTML table export or a sheet of a SQLite
database, converts every description and writes the sheet back with the code
column appended. The output format follows the --out extension (.csv or
.db/.sqlite); without --out a file named convertido_<run id>.csv is written.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runConvert(cmd.Context(), cmd.OutOrStdout(), args[0])
		},
	}

	f := cmd.Flags()
	f.StringP("out", "o", "", "Output file (.csv, .db, .sqlite)")
	f.StringP("column", "c", cable.DescriptionColumn, "Description column")
	f.IntP("workers", "w", 4, "Parallel conversion workers")
	f.String("sheet", "", "Sheet name inside a SQLite input or output")
	f.String("comma", ",", "CSV output separator")

	a.v.BindPFlag("output", f.Lookup("out"))
	a.v.BindPFlag("column", f.Lookup("column"))
	a.v.BindPFlag("workers", f.Lookup("workers"))
	a.v.BindPFlag("sheet", f.Lookup("sheet"))
	a.v.BindPFlag("comma", f.Lookup("comma"))
	return cmd
}

func (a *app) runConvert(ctx context.Context, w io.Writer, input string) error {
	eng, err := a.engine()
	if err != nil {
		return err
	}

	sheet := a.v.GetString("sheet")
	t, err := readInput(ctx, input, sheet)
	if err != nil {
		return err
	}

	p := batch.New(eng, batch.WithLogger(a.log))
	rep, err := p.ProcessParallel(ctx, t, a.v.GetString("column"), a.v.GetInt("workers"))
	if err != nil {
		return err
	}

	out := a.v.GetString("output")
	if out == "" {
		out = fmt.Sprintf("convertido_%s.csv", rep.Run.ID)
	}
	if sheet == "" {
		sheet = fmt.Sprintf("convertido_%s", rep.Run.ID)
	}
	if err := writeOutput(ctx, out, sheet, rep.Table, a.v.GetString("comma")); err != nil {
		return err
	}

	printReport(w, rep, out)
	return nil
}

func isSQLite(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return true
	}
	return false
}

func readInput(ctx context.Context, path, sheet string) (*table.Table, error) {
	if isSQLite(path) {
		return readSheet(ctx, path, sheet)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return table.ReadHTML(f)
	default:
		return table.ReadCSV(f, 0)
	}
}

func readSheet(ctx context.Context, path, sheet string) (*table.Table, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	st, err := sqlite.OpenSQLite(ctx, path)
	if err != nil {
		return nil, err
	}
	defer st.Close()

	if sheet == "" {
		names, err := st.ListTables(ctx)
		if err != nil {
			return nil, err
		}
		if len(names) != 1 {
			return nil, fmt.Errorf("%s holds %d sheets, choose one with --sheet", path, len(names))
		}
		sheet = names[0]
	}
	return st.ReadTable(ctx, sheet)
}

func writeOutput(ctx context.Context, path, sheet string, t *table.Table, comma string) error {
	if isSQLite(path) {
		st, err := sqlite.OpenSQLite(ctx, path)
		if err != nil {
			return err
		}
		return writeAndClose(ctx, st, sheet, t)
	}

	sep := ','
	if comma != "" {
		sep = []rune(comma)[0]
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := table.WriteCSV(f, t, sep); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeAndClose(ctx context.Context, st store.Store, sheet string, t *table.Table) error {
	if err := st.WriteTable(ctx, sheet, t); err != nil {
		st.Close()
		return err
	}
	return st.Close()
}

func printReport(w io.Writer, rep *batch.Report, out string) {
	s := rep.Stats()
	fmt.Fprintf(w, "Run %s: %d rows, %d converted, %d failed (%.1f%%)\n",
		rep.Run.ID, s.Total, s.Converted, s.Failed, s.SuccessRate())

	cats := make([]cable.Category, 0, len(s.ByCategory))
	for c := range s.ByCategory {
		cats = append(cats, c)
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i] < cats[j] })
	for _, c := range cats {
		fmt.Fprintf(w, "  %-16s %d\n", c, s.ByCategory[c])
	}

	for _, f := range rep.Failures() {
		fmt.Fprintf(w, "  row %d: %s (%s)\n", f.Row+1, f.Reason, f.Description)
	}
	fmt.Fprintf(w, "Output: %s\n", out)
}
