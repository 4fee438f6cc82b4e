// Package importer loads catalog CSV exports into the store. Rows are
// upserted by ISBN so re-running an import refreshes rather than duplicates.
package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"bookstore/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookWriter interface {
	UpsertByISBN(ctx context.Context, book domain.Book) (*domain.Book, error)
}

type CategoryWriter interface {
	UpsertByName(ctx context.Context, category domain.Category) (*domain.Category, error)
}

// CSVImporter reads book rows from a CSV export. Expected columns: title,
// author, isbn, price, description, cover_image and categories, where
// categories is a semicolon-separated list of category names.
type CSVImporter struct {
	reader     *csv.Reader
	books      BookWriter
	categories CategoryWriter
	logger     *log.Logger
	batch      string
}

func NewCSVImporter(r io.Reader, books BookWriter, categories CategoryWriter, logger *log.Logger) *CSVImporter {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{
		reader:     csvr,
		books:      books,
		categories: categories,
		logger:     logger,
		batch:      uuid.NewString(),
	}
}

// Batch identifies this import run in log lines and errors, so failures
// from concurrent imports stay attributable to their source file.
func (i *CSVImporter) Batch() string {
	return i.batch
}

// Run imports every row and returns the number of books written.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	i.logger.Printf("importer: batch=%s started", i.batch)

	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("batch %s: read headers: %w", i.batch, err)
	}
	index := headerIndex(headers)

	// Category ids are cached per name so repeated names cost one upsert.
	categoryIDs := map[string]string{}
	imported := 0

	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("batch %s: read row: %w", i.batch, err)
		}

		book, names, err := parseRow(record, index)
		if err != nil {
			return imported, fmt.Errorf("batch %s: %w", i.batch, err)
		}
		if book == nil {
			continue
		}

		for _, name := range names {
			id, ok := categoryIDs[name]
			if !ok {
				created, err := i.categories.UpsertByName(ctx, domain.Category{Name: name})
				if err != nil {
					return imported, fmt.Errorf("batch %s: upsert category %q: %w", i.batch, name, err)
				}
				id = created.ID
				categoryIDs[name] = id
			}
			book.CategoryIDs = append(book.CategoryIDs, id)
		}

		if _, err := i.books.UpsertByISBN(ctx, *book); err != nil {
			return imported, fmt.Errorf("batch %s: upsert book %q: %w", i.batch, book.ISBN, err)
		}
		imported++
	}

	i.logger.Printf("importer: batch=%s books=%d categories=%d", i.batch, imported, len(categoryIDs))
	return imported, nil
}

func parseRow(record []string, index map[string]int) (*domain.Book, []string, error) {
	title := pick(record, index, "title")
	author := pick(record, index, "author")
	isbn := pick(record, index, "isbn")
	priceStr := pick(record, index, "price")

	if title == "" && author == "" && isbn == "" {
		return nil, nil, nil
	}
	if title == "" || author == "" || isbn == "" || priceStr == "" {
		return nil, nil, fmt.Errorf("invalid book row (missing required fields) for isbn %q", isbn)
	}

	price, err := decimal.NewFromString(priceStr)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid price %q for isbn %q", priceStr, isbn)
	}
	if !price.IsPositive() {
		return nil, nil, fmt.Errorf("non-positive price %q for isbn %q", priceStr, isbn)
	}

	book := &domain.Book{
		Title:       title,
		Author:      author,
		ISBN:        isbn,
		Price:       price,
		Description: pick(record, index, "description"),
		CoverImage:  pick(record, index, "cover_image"),
	}

	var names []string
	for _, name := range strings.Split(pick(record, index, "categories"), ";") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return book, names, nil
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.TrimSpace(h)] = i
	}
	return idx
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}
