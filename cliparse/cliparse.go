// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/quickly-tally/borda"
)

// Counting methods
const (
	MethodPlurality = "plurality"
	MethodBorda     = "borda"
)

// Count kinds
const (
	CountInteger  = "integer"
	CountFloat    = "float"
	CountRational = "rational"
)

var (
	ErrInvalidMethod  = errors.New("invalid counting method")
	ErrInvalidWinners = errors.New("winners must not be negative")
	ErrInvalidCount   = errors.New("invalid count kind")
	ErrInvalidWorkers = errors.New("workers must not be negative")
)

type Config struct {
	Method    string
	Variant   borda.Variant
	Winners   int
	CountKind string
	Workers   int
}

// ParseFlags reads tally settings from args, falling back to environment
// variables and then defaults. Flags take precedence over the environment.
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var variant string

	fs := flag.NewFlagSet("quickly-tally", flag.ContinueOnError)

	fs.StringVar(&cfg.Method, "m", "", "Counting method (plurality or borda)")
	fs.StringVar(&variant, "v", "", "Borda variant")
	fs.IntVar(&cfg.Winners, "n", 1, "Number of winners (0 ranks every candidate)")
	fs.StringVar(&cfg.CountKind, "c", "", "Count type (integer, float or rational)")
	fs.IntVar(&cfg.Workers, "w", 0, "Ingestion workers (0 uses GOMAXPROCS)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})

	// Fall back to environment variables
	if cfg.Method == "" {
		cfg.Method = envOr("TALLY_METHOD", MethodPlurality)
	}
	if variant == "" {
		variant = envOr("TALLY_VARIANT", borda.Borda.String())
	}
	if cfg.CountKind == "" {
		cfg.CountKind = envOr("TALLY_COUNT", CountInteger)
	}
	if !set["n"] {
		if n, ok, err := envInt("TALLY_WINNERS"); err != nil {
			return Config{}, err
		} else if ok {
			cfg.Winners = n
		}
	}
	if !set["w"] {
		if n, ok, err := envInt("TALLY_WORKERS"); err != nil {
			return Config{}, err
		} else if ok {
			cfg.Workers = n
		}
	}

	v, err := borda.ParseVariant(variant)
	if err != nil {
		return Config{}, err
	}
	cfg.Variant = v

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the settings, including count kinds that cannot hold the
// fractional points of the chosen Borda variant
func (c Config) Validate() error {
	switch c.Method {
	case MethodPlurality, MethodBorda:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidMethod, c.Method)
	}

	switch c.CountKind {
	case CountInteger, CountFloat, CountRational:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidCount, c.CountKind)
	}

	if !c.Variant.Valid() {
		return fmt.Errorf("%w: %s", borda.ErrUnknownVariant, c.Variant)
	}
	if c.Winners < 0 {
		return ErrInvalidWinners
	}
	if c.Workers < 0 {
		return ErrInvalidWorkers
	}

	if c.Method == MethodBorda && c.Variant.RequiresDivision() && c.CountKind == CountInteger {
		return fmt.Errorf("%s with %s counts: %w", c.Variant, c.CountKind, borda.ErrDivisionUnsupported)
	}
	return nil
}

// LoadEnvFile applies a .env file without overriding variables that are already set.
// A missing file is not an error.
func LoadEnvFile(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	slog.Info("loaded env file", "path", path)
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string) (int, bool, error) {
	s := os.Getenv(key)
	if s == "" {
		return 0, false, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false, fmt.Errorf("invalid %s env variable: %w", key, err)
	}
	return n, true, nil
}
