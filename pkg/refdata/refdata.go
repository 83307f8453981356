// Package refdata loads menu, competitor and cost reference tables from CSV.
//
// Columns are located by header, case-insensitively, so extra columns and any
// column order are accepted. The Spanish headers used by the planning
// sheets are recognized alongside the English ones.
package refdata

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/iwvelando/foodtruck-forecast/pkg/finance"
	"github.com/iwvelando/foodtruck-forecast/pkg/menu"
)

var (
	dishColumn       = []string{"dish", "plato"}
	costColumn       = []string{"cost", "costo", "amount"}
	priceColumn      = []string{"suggestedprice", "preciosugerido", "price", "precio"}
	restaurantColumn = []string{"restaurant", "restaurante", "competitor"}
	comboColumn      = []string{"comboprice", "combo", "preciocombo"}
	itemColumn       = []string{"item", "ítem", "name"}
)

// LoadMenu reads dishes with their cost and suggested price.
func LoadMenu(r io.Reader) ([]menu.Item, error) {
	t, err := readTable(r, dishColumn, costColumn, priceColumn)
	if err != nil {
		return nil, fmt.Errorf("menu: %w", err)
	}

	items := make([]menu.Item, 0, len(t.rows))
	for i := range t.rows {
		cost, err := t.number(i, 1)
		if err != nil {
			return nil, fmt.Errorf("menu: %w", err)
		}
		price, err := t.number(i, 2)
		if err != nil {
			return nil, fmt.Errorf("menu: %w", err)
		}
		items = append(items, menu.Item{Dish: t.text(i, 0), Cost: cost, SuggestedPrice: price})
	}
	return items, nil
}

// LoadCompetitors reads competitor combo prices.
func LoadCompetitors(r io.Reader) ([]menu.Competitor, error) {
	t, err := readTable(r, restaurantColumn, comboColumn)
	if err != nil {
		return nil, fmt.Errorf("competitors: %w", err)
	}

	competitors := make([]menu.Competitor, 0, len(t.rows))
	for i := range t.rows {
		price, err := t.number(i, 1)
		if err != nil {
			return nil, fmt.Errorf("competitors: %w", err)
		}
		competitors = append(competitors, menu.Competitor{Restaurant: t.text(i, 0), ComboPrice: price})
	}
	return competitors, nil
}

// LoadCostItems reads CAPEX or OPEX line items.
func LoadCostItems(r io.Reader) ([]finance.CostLineItem, error) {
	t, err := readTable(r, itemColumn, costColumn)
	if err != nil {
		return nil, fmt.Errorf("cost items: %w", err)
	}

	items := make([]finance.CostLineItem, 0, len(t.rows))
	for i := range t.rows {
		amount, err := t.number(i, 1)
		if err != nil {
			return nil, fmt.Errorf("cost items: %w", err)
		}
		items = append(items, finance.CostLineItem{Name: t.text(i, 0), Amount: amount})
	}
	return items, nil
}

// table is a parsed CSV body with the positions of the requested columns.
type table struct {
	headers []string
	index   []int
	rows    [][]string
}

func readTable(r io.Reader, columns ...[]string) (*table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("missing header row")
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	positions := make(map[string]int, len(header))
	for i, h := range header {
		key := normalizeHeader(h)
		if _, dup := positions[key]; !dup {
			positions[key] = i
		}
	}

	t := &table{}
	for _, aliases := range columns {
		pos := -1
		for _, alias := range aliases {
			if p, ok := positions[alias]; ok {
				pos = p
				break
			}
		}
		if pos < 0 {
			return nil, fmt.Errorf("missing column %q", aliases[0])
		}
		t.index = append(t.index, pos)
		t.headers = append(t.headers, header[pos])
	}

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row %d: %w", len(t.rows)+1, err)
		}
		if blank(record) {
			continue
		}
		t.rows = append(t.rows, record)
	}
	return t, nil
}

func (t *table) text(row, col int) string {
	pos := t.index[col]
	if pos >= len(t.rows[row]) {
		return ""
	}
	return strings.TrimSpace(t.rows[row][pos])
}

// number parses a numeric cell. Currency symbols and thousands separators are
// tolerated; an empty cell is an error.
func (t *table) number(row, col int) (float64, error) {
	raw := t.text(row, col)
	cleaned := strings.NewReplacer("$", "", ",", "", " ", "").Replace(raw)
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("row %d column %q: invalid number %q", row+1, t.headers[col], raw)
	}
	return v, nil
}

func normalizeHeader(h string) string {
	h = strings.TrimPrefix(h, "\ufeff")
	h = strings.ToLower(strings.TrimSpace(h))
	return strings.NewReplacer(" ", "", "_", "", "-", "").Replace(h)
}

func blank(record []string) bool {
	for _, field := range record {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}
