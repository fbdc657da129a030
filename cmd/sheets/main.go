// Команда sheets загружает табличный экспорт (xlsx/csv, путь или URL,
// в том числе ссылка на Google Sheets) и печатает первые строки.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/admin/astro-services/natal-api/internal/pkg/sheets"
)

func main() {
	n := flag.Int("n", 5, "number of rows to print")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: sheets [-n rows] <path-or-url>")
		os.Exit(2)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	table, err := sheets.Load(ctx, flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "sheets: %s\n", err)
		os.Exit(1)
	}

	fmt.Print(table.Head(*n).String())
	fmt.Printf("[%d rows x %d columns]\n", table.NumRows(), len(table.Columns))
}
