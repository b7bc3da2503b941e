package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"acsgen/internal/config"
	"acsgen/internal/pipeline"
	"acsgen/internal/storage"
)

func main() {
	cfg, err := config.Load()
	must(err)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	switch cmd {
	case "generate":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		csvPath := fs.String("csv", "", "CSV target filename")
		goPath := fs.String("go", "", "Go target filename for codegen")
		xlsxPath := fs.String("xlsx", "", "XLSX target filename")
		dbPath := fs.String("db", "", "sqlite store path")
		indent := fs.Int("indent", cfg.Indent, "indent between HTML tags; if 0, newlines are also elided")
		overwrite := fs.Bool("overwrite", false, "overwrite existing output files")
		_ = fs.Parse(os.Args[2:])
		src := strings.TrimSpace(fs.Arg(0))
		if src == "" {
			must(fmt.Errorf("source HTML file is required"))
		}

		res, err := pipeline.Run(pipeline.RunConfig{
			SourcePath: src,
			CSVPath:    *csvPath,
			CodePath:   *goPath,
			XLSXPath:   *xlsxPath,
			Indent:     *indent,
			Overwrite:  *overwrite,
			TypeName:   cfg.TypeName,
			Package:    cfg.Package,
		})
		if errors.Is(err, pipeline.ErrNoMatches) {
			fmt.Fprintln(os.Stderr, "no matches found in source file, check formatting (try: acsgen inspect <file>)")
			usage()
			os.Exit(1)
		}
		must(err)

		if strings.TrimSpace(*dbPath) != "" {
			db, err := storage.Open(*dbPath)
			must(err)
			stored, err := db.UpsertVariables(res.Records)
			_ = db.Close()
			must(err)
			fmt.Printf("stored %d variables in %s\n", stored, *dbPath)
		}
		fmt.Printf("generate done records=%d written=%d skipped=%d\n", len(res.Records), len(res.Written), len(res.Skipped))
	case "inspect":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		_ = fs.Parse(os.Args[2:])
		src := strings.TrimSpace(fs.Arg(0))
		if src == "" {
			must(fmt.Errorf("source HTML file is required"))
		}
		blob, err := os.ReadFile(src)
		must(err)
		report := pipeline.Inspect(string(blob))
		fmt.Printf("tables=%d rows=%d variableLinks=%d\n", report.Tables, report.Rows, report.VariableLinks)
		if report.GuessedIndent < 0 {
			fmt.Println("no variable row fragments recognized")
		} else {
			fmt.Printf("guessed indent: %d\n", report.GuessedIndent)
		}
	case "store":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		dbPath := fs.String("db", cfg.DBPath, "sqlite store path")
		indent := fs.Int("indent", cfg.Indent, "indent between HTML tags; if 0, newlines are also elided")
		_ = fs.Parse(os.Args[2:])
		src := strings.TrimSpace(fs.Arg(0))
		if src == "" {
			must(fmt.Errorf("source HTML file is required"))
		}
		blob, err := os.ReadFile(src)
		must(err)
		records, err := pipeline.Extract(string(blob), *indent)
		must(err)
		if len(records) == 0 {
			fmt.Fprintln(os.Stderr, "no matches found in source file, check formatting (try: acsgen inspect <file>)")
			usage()
			os.Exit(1)
		}
		db, err := storage.Open(*dbPath)
		must(err)
		defer db.Close()
		stored, err := db.UpsertVariables(records)
		must(err)
		fmt.Printf("store done records=%d db=%s\n", stored, *dbPath)
	case "list":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		dbPath := fs.String("db", cfg.DBPath, "sqlite store path")
		_ = fs.Parse(os.Args[2:])
		db, err := storage.Open(*dbPath)
		must(err)
		defer db.Close()
		vars, err := db.ListVariables()
		must(err)
		for _, v := range vars {
			fmt.Printf("%s,%s,%s\n", v.GroupID, v.VariableID, v.Path)
		}
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("usage: acsgen <command>")
	fmt.Println("commands:")
	fmt.Println("  generate [--csv=out.csv] [--go=vars.go] [--xlsx=out.xlsx] [--db=acs.db] [--indent=2] [--overwrite] <file>")
	fmt.Println("  inspect <file>")
	fmt.Println("  store [--db=acs.db] [--indent=2] <file>")
	fmt.Println("  list [--db=acs.db]")
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
