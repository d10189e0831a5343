// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles tally settings from command-line arguments,
environment variables and an optional .env file.

# Configuration

ParseFlags returns a validated Config:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Method: plurality or borda (default: plurality)
  - Variant: Borda variant, see borda.ParseVariant (default: borda)
  - Winners: requested result size, 0 ranks everyone (default: 1)
  - CountKind: integer, float or rational (default: integer)
  - Workers: ingestion workers, 0 uses GOMAXPROCS (default: 0)

# CLI Flags

	-m  Counting method
	-v  Borda variant
	-n  Number of winners
	-c  Count type
	-w  Ingestion workers

# Environment Variables

Flags fall back to environment variables:

	TALLY_METHOD  → -m
	TALLY_VARIANT → -v
	TALLY_WINNERS → -n
	TALLY_COUNT   → -c
	TALLY_WORKERS → -w

CLI flags take precedence over environment variables. LoadEnvFile fills in
variables from a .env file without overriding ones already set:

	if err := cliparse.LoadEnvFile(".env"); err != nil {
		log.Fatal(err)
	}

# Validation

ParseFlags returns an error when:

  - the method, variant or count type is unknown
  - winners or workers is negative
  - a Borda variant with fractional points (Dowdall) is paired with integer
    counts; the error wraps borda.ErrDivisionUnsupported
*/
package cliparse
