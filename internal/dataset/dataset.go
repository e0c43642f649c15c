// Package dataset implements the hand-off format between the generation
// engine and the batch load engine: one JSON array file per table, plus the
// table name and key schema mapping each entity kind to its DynamoDB table.
package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"seeder/config"
	"seeder/internal/domain/entity"

	"github.com/pkg/errors"
)

// Item is one record in the hand-off shape. Loading decodes numbers as
// json.Number so a serialized dataset re-parses without loss.
type Item = map[string]any

// Table describes one DynamoDB table: its name and key attribute names. SK is
// empty for single-key tables.
type Table struct {
	Name string
	PK   string
	SK   string
}

// Key extracts an item's identity under the table's key schema.
func (t Table) Key(item Item) string {
	pk := fmt.Sprint(item[t.PK])
	if t.SK == "" {
		return pk
	}

	return pk + "#" + fmt.Sprint(item[t.SK])
}

var fileNames = map[entity.Kind]string{
	entity.KindUser:     "users.json",
	entity.KindLocation: "locations.json",
	entity.KindProduct:  "products.json",
	entity.KindEmployee: "employees.json",
	entity.KindCombo:    "combos.json",
	entity.KindOrder:    "orders.json",
	entity.KindOffer:    "offers.json",
	entity.KindReview:   "reviews.json",
	entity.KindToken:    "tokens.json",
}

// FileName returns the data file carrying a kind's pool.
func FileName(k entity.Kind) string {
	return fileNames[k]
}

// Tables maps every entity kind to its configured table and key schema.
func Tables(cfg *config.Config) map[entity.Kind]Table {
	return map[entity.Kind]Table{
		entity.KindUser:     {Name: cfg.Tables.Users, PK: "email"},
		entity.KindLocation: {Name: cfg.Tables.Locations, PK: "location_id"},
		entity.KindProduct:  {Name: cfg.Tables.Products, PK: "location_id", SK: "name"},
		entity.KindEmployee: {Name: cfg.Tables.Employees, PK: "location_id", SK: "dni"},
		entity.KindCombo:    {Name: cfg.Tables.Combos, PK: "location_id", SK: "combo_id"},
		entity.KindOrder:    {Name: cfg.Tables.Orders, PK: "location_id", SK: "order_id"},
		entity.KindOffer:    {Name: cfg.Tables.Offers, PK: "location_id", SK: "offer_id"},
		entity.KindReview:   {Name: cfg.Tables.Reviews, PK: "location_id", SK: "review_id"},
		entity.KindToken:    {Name: cfg.Tables.Tokens, PK: "token"},
	}
}

// Write serializes every kind's pool into dir, one ordered JSON array per
// table file. Kinds with no generated entities still get a file with an empty
// array, so populate runs see a complete dataset.
func Write(dir string, pools map[entity.Kind][]entity.Entity) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "create dataset dir %s", dir)
	}

	for _, kind := range entity.Kinds {
		items := pools[kind]
		if items == nil {
			items = []entity.Entity{}
		}
		data, err := json.MarshalIndent(items, "", "  ")
		if err != nil {
			return errors.Wrapf(err, "marshal %s pool", kind)
		}
		path := filepath.Join(dir, fileNames[kind])
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return errors.Wrapf(err, "write %s", path)
		}
	}

	return nil
}

// Read loads one kind's data file back into items.
func Read(dir string, k entity.Kind) ([]Item, error) {
	path := filepath.Join(dir, fileNames[k])
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.UseNumber()

	var items []Item
	if err := dec.Decode(&items); err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}

	return items, nil
}
