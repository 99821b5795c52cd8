package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"coolbreeze/internal/domain"
)

// LoadCSV builds a Catalog from a CSV export, replacing the built-in list.
// Expected headers: title, brand, description, price, priceNum, features,
// rating, badge. Features within a cell are separated by '|'. Column order
// is free; unknown columns are ignored.
func LoadCSV(r io.Reader) (*Catalog, error) {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas

	headers, err := csvr.Read()
	if err != nil {
		return nil, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)

	var products []domain.Product
	line := 1
	for {
		record, err := csvr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		line++

		p, err := parseRow(record, index)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}
		products = append(products, p)
	}

	if len(products) == 0 {
		return nil, errors.New("catalog csv contains no products")
	}
	return New(products)
}

func parseRow(record []string, index map[string]int) (domain.Product, error) {
	title := pick(record, index, "title")
	brand := pick(record, index, "brand")
	priceNumStr := pick(record, index, "priceNum")
	if title == "" || brand == "" || priceNumStr == "" {
		return domain.Product{}, errors.New("missing required fields (title, brand, priceNum)")
	}
	priceNum, err := strconv.ParseInt(priceNumStr, 10, 64)
	if err != nil || priceNum <= 0 {
		return domain.Product{}, fmt.Errorf("invalid priceNum %q", priceNumStr)
	}

	var rating float64
	if v := pick(record, index, "rating"); v != "" {
		rating, err = strconv.ParseFloat(v, 64)
		if err != nil {
			return domain.Product{}, fmt.Errorf("invalid rating %q", v)
		}
	}

	var features []string
	for _, f := range strings.Split(pick(record, index, "features"), "|") {
		if trimmed := strings.TrimSpace(f); trimmed != "" {
			features = append(features, trimmed)
		}
	}

	price := pick(record, index, "price")
	if price == "" {
		price = fmt.Sprintf("PKR %d", priceNum)
	}

	return domain.Product{
		Title:       title,
		Brand:       brand,
		Description: pick(record, index, "description"),
		Price:       price,
		PriceNum:    priceNum,
		Features:    features,
		Rating:      rating,
		Badge:       pick(record, index, "badge"),
	}, nil
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
