package sheets

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

const fetchTimeout = 30 * time.Second

// googleSheetsRe выделяет id документа из ссылки Google Sheets
var googleSheetsRe = regexp.MustCompile(`^/spreadsheets/d/([a-zA-Z0-9-_]+)`)

// Load загружает табличные данные из локального файла или по URL.
// Ссылка на Google Sheets вида .../edit?gid=N переписывается в export-форму,
// сам парсинг остаётся за excelize/encoding/csv
func Load(ctx context.Context, pathOrURL string) (*Table, error) {
	if isURL(pathOrURL) {
		return loadURL(ctx, pathOrURL)
	}
	return loadFile(pathOrURL)
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

func loadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return parseCSV(bytes.NewReader(data))
	default:
		return parseXLSX(bytes.NewReader(data))
	}
}

func loadURL(ctx context.Context, rawURL string) (*Table, error) {
	fetchURL, err := ExportURL(rawURL)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fetchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	client := &http.Client{Timeout: fetchTimeout}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", fetchURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s failed [status=%d]", fetchURL, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if strings.Contains(resp.Header.Get("Content-Type"), "text/csv") {
		return parseCSV(bytes.NewReader(body))
	}
	return parseXLSX(bytes.NewReader(body))
}

// ExportURL переписывает ссылку Google Sheets в export-форму (format=xlsx).
// Прочие URL возвращаются как есть
func ExportURL(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid url %s: %w", rawURL, err)
	}

	if u.Host != "docs.google.com" {
		return rawURL, nil
	}

	m := googleSheetsRe.FindStringSubmatch(u.Path)
	if m == nil {
		return rawURL, nil
	}

	exportURL := fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s/export?format=xlsx", m[1])

	// gid может прийти и в query, и во фрагменте (#gid=N)
	gid := u.Query().Get("gid")
	if gid == "" && strings.HasPrefix(u.Fragment, "gid=") {
		gid = strings.TrimPrefix(u.Fragment, "gid=")
	}
	if gid != "" {
		exportURL += "&gid=" + gid
	}

	return exportURL, nil
}

// parseXLSX разбирает книгу xlsx: первая строка первого листа - имена колонок
func parseXLSX(r io.Reader) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheetName, err)
	}

	return fromRows(rows)
}

// parseCSV разбирает csv: первая строка - имена колонок
func parseCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // строки с недостающими ячейками не считаем ошибкой

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}

	return fromRows(rows)
}

func fromRows(rows [][]string) (*Table, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("table is empty")
	}

	return &Table{
		Columns: rows[0],
		Rows:    rows[1:],
	}, nil
}
