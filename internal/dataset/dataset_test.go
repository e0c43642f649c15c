package dataset

import (
	"bytes"
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"seeder/config"
	"seeder/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteThenRead(t *testing.T) {
	dir := t.TempDir()

	created := time.Date(2026, 4, 2, 9, 30, 0, 0, time.UTC)
	pools := map[entity.Kind][]entity.Entity{
		entity.KindUser: {
			&entity.User{Email: "ana@example.com", Name: "Ana Quispe", Phone: "987654321", CreatedAt: created},
		},
		entity.KindProduct: {
			&entity.Product{LocationID: "loc-1", Name: "Lomo Saltado", Price: 42.5, Category: entity.CategoryMain},
			&entity.Product{LocationID: "loc-1", Name: "Chicha Morada", Price: 8, Category: entity.CategoryBeverage},
		},
	}
	require.NoError(t, Write(dir, pools))

	users, err := Read(dir, entity.KindUser)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "ana@example.com", users[0]["email"])
	assert.Equal(t, "2026-04-02T09:30:00Z", users[0]["created_at"])
	assert.NotContains(t, users[0], "banking")

	products, err := Read(dir, entity.KindProduct)
	require.NoError(t, err)
	require.Len(t, products, 2)
	// Numbers survive as json.Number, not float64.
	assert.Equal(t, json.Number("42.5"), products[0]["price"])
}

func TestRoundTrip_ReloadYieldsIdenticalItems(t *testing.T) {
	dir := t.TempDir()

	addr := "Av. Larco 400, Miraflores"
	at := time.Date(2026, 4, 2, 10, 15, 0, 0, time.UTC)
	pools := map[entity.Kind][]entity.Entity{
		entity.KindOrder: {
			&entity.Order{
				LocationID: "loc-1", OrderID: "order-1", UserEmail: "ana@example.com",
				Products: []string{"Lomo Saltado", "Chicha Morada"},
				Status:   entity.StatusDelivered, Total: 50.5, CreatedAt: at.Add(-time.Hour),
				CookDNI: "10000001", DispatcherDNI: "10000002", CourierDNI: "10000003",
				DeliveryAddress: &addr, DeliveryTime: &at,
			},
		},
	}
	require.NoError(t, Write(dir, pools))

	first, err := Read(dir, entity.KindOrder)
	require.NoError(t, err)

	// Serializing what was read and decoding it again must yield the same
	// items, field for field.
	data, err := json.Marshal(first)
	require.NoError(t, err)

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var second []Item
	require.NoError(t, dec.Decode(&second))

	assert.Equal(t, first, second)
}

func TestWrite_EmptyPoolsStillProduceFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Write(dir, nil))

	for _, k := range entity.Kinds {
		items, err := Read(dir, k)
		require.NoError(t, err, "kind %s", k)
		assert.Empty(t, items)
	}
}

func TestRead_MissingFile(t *testing.T) {
	_, err := Read(t.TempDir(), entity.KindOrder)
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestRead_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName(entity.KindUser))
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := Read(dir, entity.KindUser)
	require.Error(t, err)
}

func TestTables_KeySchemas(t *testing.T) {
	cfg := &config.Config{
		Tables: config.TableNames{
			Users: "t-users", Locations: "t-locations", Products: "t-products",
			Employees: "t-employees", Combos: "t-combos", Orders: "t-orders",
			Offers: "t-offers", Reviews: "t-reviews", Tokens: "t-tokens",
		},
	}

	tables := Tables(cfg)
	require.Len(t, tables, len(entity.Kinds))

	assert.Equal(t, Table{Name: "t-users", PK: "email"}, tables[entity.KindUser])
	assert.Equal(t, Table{Name: "t-products", PK: "location_id", SK: "name"}, tables[entity.KindProduct])
	assert.Equal(t, Table{Name: "t-tokens", PK: "token"}, tables[entity.KindToken])

	for k, table := range tables {
		assert.NotEmpty(t, table.Name, "kind %s", k)
		assert.NotEmpty(t, table.PK, "kind %s", k)
	}
}

func TestTable_Key(t *testing.T) {
	single := Table{Name: "users", PK: "email"}
	assert.Equal(t, "ana@example.com", single.Key(Item{"email": "ana@example.com"}))

	composite := Table{Name: "products", PK: "location_id", SK: "name"}
	assert.Equal(t, "loc-1#Lomo Saltado", composite.Key(Item{"location_id": "loc-1", "name": "Lomo Saltado"}))
}
