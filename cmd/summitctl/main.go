// cmd/summitctl/main.go
//
// Operator CLI for the summit content store.
//
// Commands
// --------
//
//	summitctl migrate            – apply db/schema.sql to the store.
//	summitctl seed               – insert the launch content fixtures.
//	summitctl export <table>     – dump one table to CSV or XLSX.
//
// All commands take the elevated DSN from --dsn or SUMMIT_ADMIN_DSN.
// Output goes to stdout unless --out names a file, so exports compose
// with shell pipelines.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	"github.com/urfave/cli/v2"

	"github.com/primenumber-jp/datasummit-site/internal/content"
	"github.com/primenumber-jp/datasummit-site/internal/content/download"
	"github.com/primenumber-jp/datasummit-site/internal/content/faq"
	"github.com/primenumber-jp/datasummit-site/internal/content/form"
	"github.com/primenumber-jp/datasummit-site/internal/database"
	"github.com/primenumber-jp/datasummit-site/internal/export"
)

func main() {
	app := &cli.App{
		Name:  "summitctl",
		Usage: "manage the summit content store",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "dsn",
				Usage:   "elevated Postgres DSN",
				EnvVars: []string{"SUMMIT_ADMIN_DSN"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "migrate",
				Usage:  "apply db/schema.sql",
				Action: runMigrate,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "schema",
						Value: filepath.Join("db", "schema.sql"),
						Usage: "path to the schema file",
					},
				},
			},
			{
				Name:   "seed",
				Usage:  "insert launch content fixtures",
				Action: runSeed,
			},
			{
				Name:      "export",
				Usage:     "dump a table (downloads|faqs|forms)",
				ArgsUsage: "<table>",
				Action:    runExport,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "format",
						Value: "csv",
						Usage: "csv or xlsx",
					},
					&cli.StringFlag{
						Name:  "out",
						Usage: "output file (default stdout)",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "summitctl:", err)
		os.Exit(1)
	}
}

func open(c *cli.Context) (*sqlx.DB, error) {
	dsn := c.String("dsn")
	if dsn == "" {
		return nil, fmt.Errorf("no DSN: pass --dsn or set SUMMIT_ADMIN_DSN")
	}
	return database.Open(dsn)
}

//
// migrate
//

func runMigrate(c *cli.Context) error {
	db, err := open(c)
	if err != nil {
		return err
	}
	defer db.Close()

	schema, err := os.ReadFile(c.String("schema"))
	if err != nil {
		return fmt.Errorf("read schema: %w", err)
	}
	if _, err := db.ExecContext(c.Context, string(schema)); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	fmt.Println("schema applied")
	return nil
}

//
// seed
//

func runSeed(c *cli.Context) error {
	db, err := open(c)
	if err != nil {
		return err
	}
	defer db.Close()

	downloads := download.NewRepository(db)
	faqs := faq.NewRepository(db)
	forms := form.NewRepository(db)

	n := 0
	for _, it := range seedDownloads {
		if _, err := downloads.Create(c.Context, it); err != nil {
			return fmt.Errorf("seed download %q: %w", it.Title, err)
		}
		n++
	}
	for _, it := range seedFaqs {
		if _, err := faqs.Create(c.Context, it); err != nil {
			return fmt.Errorf("seed faq %q: %w", it.Question, err)
		}
		n++
	}
	for _, it := range seedForms {
		if _, err := forms.Create(c.Context, it); err != nil {
			return fmt.Errorf("seed form %q: %w", it.Title, err)
		}
		n++
	}
	fmt.Printf("%d rows seeded\n", n)
	return nil
}

//
// export
//

func runExport(c *cli.Context) error {
	table := c.Args().First()
	if table == "" {
		return fmt.Errorf("usage: summitctl export <downloads|faqs|forms>")
	}

	db, err := open(c)
	if err != nil {
		return err
	}
	defer db.Close()

	records, err := loadRecords(c.Context, db, table)
	if err != nil {
		return err
	}

	var body []byte
	switch c.String("format") {
	case "csv":
		body = export.CSV(records)
	case "xlsx":
		body, err = export.XLSX(table, records)
		if err != nil {
			return fmt.Errorf("build xlsx: %w", err)
		}
	default:
		return fmt.Errorf("unknown format %q", c.String("format"))
	}

	if out := c.String("out"); out != "" {
		if err := os.WriteFile(out, body, 0o644); err != nil {
			return err
		}
		fmt.Printf("%d records written to %s\n", len(records), out)
		return nil
	}
	_, err = os.Stdout.Write(body)
	return err
}

func loadRecords(ctx context.Context, db *sqlx.DB, table string) ([]content.Record, error) {
	switch table {
	case "downloads":
		items, err := download.NewRepository(db).List(ctx)
		if err != nil {
			return nil, err
		}
		recs := make([]content.Record, len(items))
		for i := range items {
			recs[i] = items[i]
		}
		return recs, nil
	case "faqs":
		items, err := faq.NewRepository(db).List(ctx)
		if err != nil {
			return nil, err
		}
		recs := make([]content.Record, len(items))
		for i := range items {
			recs[i] = items[i]
		}
		return recs, nil
	case "forms":
		items, err := form.NewRepository(db).List(ctx)
		if err != nil {
			return nil, err
		}
		recs := make([]content.Record, len(items))
		for i := range items {
			recs[i] = items[i]
		}
		return recs, nil
	default:
		return nil, fmt.Errorf("unknown table %q", table)
	}
}
