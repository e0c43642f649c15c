// Package config loads and validates the run configuration. The configuration
// is an explicit immutable value threaded into the generation orchestrator and
// the batch load engine; nothing reads it from process-wide state.
package config

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

// MaxBatchCapacity is the DynamoDB BatchWriteItem ceiling. The configured
// batch size may be lower but never higher.
const MaxBatchCapacity = 25

// envPrefix namespaces environment overrides, e.g. SEEDER_AWS_REGION.
const envPrefix = "SEEDER_"

// ErrConfiguration marks a malformed or contradictory run configuration.
// It is fatal and surfaced before any generation or loading starts.
var ErrConfiguration = errors.New("invalid configuration")

type Config struct {
	Env struct {
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	// Seed makes a generation run reproducible: the same seed and counts
	// produce the same dataset.
	Seed uint64 `json:"seed" yaml:"seed"`

	Counts  Counts        `json:"counts" yaml:"counts"`
	Users   UsersConfig   `json:"users" yaml:"users"`
	Reviews ReviewsConfig `json:"reviews" yaml:"reviews"`
	Ranges  Ranges        `json:"ranges" yaml:"ranges"`
	Token   TokenConfig   `json:"token" yaml:"token"`
	AWS     AWSConfig     `json:"aws" yaml:"aws"`
	Tables  TableNames    `json:"tables" yaml:"tables"`
	Load    LoadConfig    `json:"load" yaml:"load"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// Counts fixes how many entities of each kind a run generates.
type Counts struct {
	Locations int `json:"locations" yaml:"locations" validate:"gte=0"`
	Users     int `json:"users" yaml:"users" validate:"gte=0"`
	Products  int `json:"products" yaml:"products" validate:"gte=0"`
	Employees int `json:"employees" yaml:"employees" validate:"gte=0"`
	Combos    int `json:"combos" yaml:"combos" validate:"gte=0"`
	Orders    int `json:"orders" yaml:"orders" validate:"gte=0"`
	Offers    int `json:"offers" yaml:"offers" validate:"gte=0"`
	Reviews   int `json:"reviews" yaml:"reviews" validate:"gte=0"`
	Tokens    int `json:"tokens" yaml:"tokens" validate:"gte=0"`
}

// Of returns the configured count for a kind name as used by Counts fields.
func (c Counts) Of(kind string) int {
	switch kind {
	case "location":
		return c.Locations
	case "user":
		return c.Users
	case "product":
		return c.Products
	case "employee":
		return c.Employees
	case "combo":
		return c.Combos
	case "order":
		return c.Orders
	case "offer":
		return c.Offers
	case "review":
		return c.Reviews
	case "token":
		return c.Tokens
	default:
		return 0
	}
}

type UsersConfig struct {
	// BankingProbability is the chance a generated user carries a banking block.
	BankingProbability float64 `json:"bankingProbability" yaml:"bankingProbability" validate:"gte=0,lte=1"`
}

type ReviewsConfig struct {
	// CommentProbability is the chance a generated review carries free text.
	CommentProbability float64 `json:"commentProbability" yaml:"commentProbability" validate:"gte=0,lte=1"`
}

// Range is an inclusive numeric interval.
type Range struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

type Ranges struct {
	Price    Range `json:"price" yaml:"price"`
	Salary   Range `json:"salary" yaml:"salary"`
	Rating   Range `json:"rating" yaml:"rating"`
	Discount Range `json:"discount" yaml:"discount"`
}

// TokenConfig drives auth token generation. Tokens are HS256 JWTs signed with
// Secret.
type TokenConfig struct {
	Secret string        `json:"secret" yaml:"secret"`
	TTL    time.Duration `json:"ttl" yaml:"ttl"`
}

type AWSConfig struct {
	Region string `json:"region" yaml:"region" validate:"required"`
	// Endpoint overrides the DynamoDB endpoint, for local stacks.
	Endpoint string `json:"endpoint" yaml:"endpoint"`
}

// TableNames maps each entity kind to its DynamoDB table.
type TableNames struct {
	Users     string `json:"users" yaml:"users" validate:"required"`
	Locations string `json:"locations" yaml:"locations" validate:"required"`
	Products  string `json:"products" yaml:"products" validate:"required"`
	Employees string `json:"employees" yaml:"employees" validate:"required"`
	Combos    string `json:"combos" yaml:"combos" validate:"required"`
	Orders    string `json:"orders" yaml:"orders" validate:"required"`
	Offers    string `json:"offers" yaml:"offers" validate:"required"`
	Reviews   string `json:"reviews" yaml:"reviews" validate:"required"`
	Tokens    string `json:"tokens" yaml:"tokens" validate:"required"`
}

// LoadConfig bounds the batch load engine.
type LoadConfig struct {
	// BatchSize is the fixed batch capacity B, at most MaxBatchCapacity.
	BatchSize int `json:"batchSize" yaml:"batchSize" validate:"gt=0,lte=25"`
	// MaxRetries is the retry bound K per batch; the initial attempt is not a retry.
	MaxRetries int `json:"maxRetries" yaml:"maxRetries" validate:"gte=0"`
	// BaseDelay is the backoff before the first retry; it doubles per attempt.
	BaseDelay time.Duration `json:"baseDelay" yaml:"baseDelay" validate:"gt=0"`
	// Jitter is the backoff randomization factor. It must stay below 1/3 so
	// that successive delays remain strictly increasing under doubling.
	Jitter float64 `json:"jitter" yaml:"jitter" validate:"gte=0,lte=0.33"`
	// Workers bounds concurrent batches within one table.
	Workers int `json:"workers" yaml:"workers" validate:"gt=0"`
	// TableWorkers bounds concurrently loaded tables.
	TableWorkers int `json:"tableWorkers" yaml:"tableWorkers" validate:"gt=0"`
}

// Load reads the YAML config at path, applies SEEDER_* environment overrides
// and validates the result.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}

	// SEEDER_AWS_REGION=eu-west-1 overrides aws.region, and so on.
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			key = strings.TrimPrefix(key, envPrefix)

			return strings.ReplaceAll(strings.ToLower(key), "_", "."), value
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env overrides")
	}

	cfg := new(Config)
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks structural tags and the cross-field rules that a generation
// run depends on. Any failure wraps ErrConfiguration.
func (c *Config) Validate() error {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(c); err != nil {
		return errors.Wrap(ErrConfiguration, err.Error())
	}

	ranges := map[string]Range{
		"price":    c.Ranges.Price,
		"salary":   c.Ranges.Salary,
		"rating":   c.Ranges.Rating,
		"discount": c.Ranges.Discount,
	}
	for name, r := range ranges {
		if r.Min > r.Max {
			return errors.Wrapf(ErrConfiguration, "ranges.%s: min %v exceeds max %v", name, r.Min, r.Max)
		}
	}
	if c.Ranges.Rating.Min < 0 || c.Ranges.Rating.Max > 5 {
		return errors.Wrap(ErrConfiguration, "ranges.rating must lie within [0, 5]")
	}
	if c.Ranges.Discount.Min <= 0 || c.Ranges.Discount.Max > 1 {
		return errors.Wrap(ErrConfiguration, "ranges.discount must lie within (0, 1]")
	}

	n := c.Counts
	if n.Orders > 0 {
		if n.Users == 0 {
			return errors.Wrap(ErrConfiguration, "counts.orders requires counts.users > 0")
		}
		if n.Employees < 3*n.Locations || n.Locations == 0 {
			return errors.Wrap(ErrConfiguration, "counts.orders requires one employee per role per location (counts.employees >= 3 * counts.locations)")
		}
	}
	if (n.Orders > 0 || n.Offers > 0) && n.Products < n.Locations {
		return errors.Wrap(ErrConfiguration, "orders and offers require at least one product per location (counts.products >= counts.locations)")
	}
	if n.Combos > 0 && n.Products < 2*n.Locations {
		return errors.Wrap(ErrConfiguration, "combos require at least two products per location (counts.products >= 2 * counts.locations)")
	}
	if n.Reviews > 0 && n.Orders == 0 {
		return errors.Wrap(ErrConfiguration, "counts.reviews requires counts.orders > 0")
	}
	if n.Tokens > 0 {
		if c.Token.Secret == "" {
			return errors.Wrap(ErrConfiguration, "counts.tokens requires token.secret")
		}
		if c.Token.TTL <= 0 {
			return errors.Wrap(ErrConfiguration, "counts.tokens requires token.ttl > 0")
		}
	}

	return nil
}
