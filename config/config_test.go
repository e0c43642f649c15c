package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
env:
  serviceName: seeder
  log:
    pretty: false
    level: info

seed: 42

counts:
  locations: 2
  users: 10
  products: 8
  employees: 6
  combos: 2
  orders: 20
  offers: 3
  reviews: 5
  tokens: 4

users:
  bankingProbability: 0.5

reviews:
  commentProbability: 0.5

ranges:
  price: {min: 10, max: 100}
  salary: {min: 1000, max: 3000}
  rating: {min: 0, max: 5}
  discount: {min: 0.05, max: 0.5}

token:
  secret: test-secret
  ttl: 12h

aws:
  region: us-east-1

tables:
  users: users
  locations: locations
  products: products
  employees: employees
  combos: combos
  orders: orders
  offers: offers
  reviews: reviews
  tokens: tokens

load:
  batchSize: 25
  maxRetries: 5
  baseDelay: 500ms
  jitter: 0.2
  workers: 10
  tableWorkers: 3
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad_Valid(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, "us-east-1", cfg.AWS.Region)
	assert.Equal(t, 20, cfg.Counts.Orders)
	assert.Equal(t, 12*time.Hour, cfg.Token.TTL)
	assert.Equal(t, 25, cfg.Load.BatchSize)
	assert.Equal(t, 500*time.Millisecond, cfg.Load.BaseDelay)
	assert.Equal(t, "orders", cfg.Tables.Orders)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("SEEDER_AWS_REGION", "eu-west-1")
	t.Setenv("SEEDER_TOKEN_SECRET", "from-env")
	t.Setenv("SEEDER_SEED", "7")

	cfg, err := Load(writeConfig(t, sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "eu-west-1", cfg.AWS.Region)
	assert.Equal(t, "from-env", cfg.Token.Secret)
	assert.Equal(t, uint64(7), cfg.Seed)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func validConfig() *Config {
	cfg := &Config{
		Seed: 1,
		Counts: Counts{
			Locations: 2, Users: 10, Products: 8, Employees: 6,
			Combos: 2, Orders: 20, Offers: 3, Reviews: 5, Tokens: 4,
		},
		Users:   UsersConfig{BankingProbability: 0.5},
		Reviews: ReviewsConfig{CommentProbability: 0.5},
		Ranges: Ranges{
			Price:    Range{Min: 10, Max: 100},
			Salary:   Range{Min: 1000, Max: 3000},
			Rating:   Range{Min: 0, Max: 5},
			Discount: Range{Min: 0.05, Max: 0.5},
		},
		Token: TokenConfig{Secret: "test-secret", TTL: time.Hour},
		AWS:   AWSConfig{Region: "us-east-1"},
		Tables: TableNames{
			Users: "users", Locations: "locations", Products: "products",
			Employees: "employees", Combos: "combos", Orders: "orders",
			Offers: "offers", Reviews: "reviews", Tokens: "tokens",
		},
		Load: LoadConfig{
			BatchSize: 25, MaxRetries: 5, BaseDelay: time.Second,
			Jitter: 0.2, Workers: 10, TableWorkers: 3,
		},
	}

	return cfg
}

func TestValidate_Valid(t *testing.T) {
	require.NoError(t, validConfig().Validate())
}

func TestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"batch size above capacity", func(c *Config) { c.Load.BatchSize = 26 }},
		{"batch size zero", func(c *Config) { c.Load.BatchSize = 0 }},
		{"negative retries", func(c *Config) { c.Load.MaxRetries = -1 }},
		{"zero base delay", func(c *Config) { c.Load.BaseDelay = 0 }},
		{"jitter too large", func(c *Config) { c.Load.Jitter = 0.5 }},
		{"zero workers", func(c *Config) { c.Load.Workers = 0 }},
		{"missing region", func(c *Config) { c.AWS.Region = "" }},
		{"missing table name", func(c *Config) { c.Tables.Orders = "" }},
		{"inverted price range", func(c *Config) { c.Ranges.Price = Range{Min: 100, Max: 10} }},
		{"rating above five", func(c *Config) { c.Ranges.Rating.Max = 6 }},
		{"discount at zero", func(c *Config) { c.Ranges.Discount.Min = 0 }},
		{"discount above one", func(c *Config) { c.Ranges.Discount.Max = 1.5 }},
		{"orders without users", func(c *Config) { c.Counts.Users = 0 }},
		{"orders understaffed", func(c *Config) { c.Counts.Employees = 5 }},
		{"offers without enough products", func(c *Config) { c.Counts.Products = 1 }},
		{"combos without enough products", func(c *Config) { c.Counts.Products = 3 }},
		{"reviews without orders", func(c *Config) { c.Counts.Orders = 0 }},
		{"tokens without secret", func(c *Config) { c.Token.Secret = "" }},
		{"tokens without ttl", func(c *Config) { c.Token.TTL = 0 }},
		{"banking probability above one", func(c *Config) { c.Users.BankingProbability = 1.1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrConfiguration), "want ErrConfiguration, got %v", err)
		})
	}
}
