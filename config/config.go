// Package config loads pathfinder settings from the environment, with an
// optional .env file underneath.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/pathfinder/replay"
	"github.com/katalvlaran/pathfinder/selector"
)

// ErrInvalidValue indicates a setting that is present but unusable.
var ErrInvalidValue = errors.New("config: invalid value")

// Environment keys.
const (
	KeyColumns     = "PATHFINDER_COLUMNS"
	KeyRows        = "PATHFINDER_ROWS"
	KeyTileWeight  = "PATHFINDER_TILE_WEIGHT"
	KeyWallPercent = "PATHFINDER_WALL_PERCENT"
	KeySpeed       = "PATHFINDER_SPEED"
	KeySeed        = "PATHFINDER_SEED"
	KeyAlgorithm   = "PATHFINDER_ALGORITHM"
	KeyHTTPAddr    = "PATHFINDER_HTTP_ADDR"
)

// Config holds the application's settings.
type Config struct {
	Columns     int           // grid width in tiles
	Rows        int           // grid height in tiles
	TileWeight  int           // weight of a fresh tile
	WallPercent int           // share of tiles the random wall generator fills
	Speed       replay.Speed  // initial replay speed
	Seed        int64         // random source seed for walls and mazes
	Algorithm   selector.Type // initially selected strategy
	HTTPAddr    string        // listen address of pathfinderd
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Columns:     40,
		Rows:        25,
		TileWeight:  1,
		WallPercent: 30,
		Speed:       replay.Average,
		Seed:        1,
		Algorithm:   selector.AStar,
		HTTPAddr:    ":8080",
	}
}

// Load reads settings from the process environment. Values missing there
// are taken from the given .env files (".env" when none is given); a
// missing default file is not an error. Unset keys keep their defaults.
func Load(files ...string) (Config, error) {
	optional := len(files) == 0
	if optional {
		files = []string{".env"}
	}

	fileVals, err := godotenv.Read(files...)
	if err != nil {
		if !optional || !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: read %v: %w", files, err)
		}
		log.Printf("[APP] [INFO] .env file not found, using environment only")
		fileVals = map[string]string{}
	}

	return parse(func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileVals[key]

		return v, ok
	})
}

// parse fills a Config from lookup, validating every present key.
func parse(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	var err error

	if cfg.Columns, err = intWithDefault(lookup, KeyColumns, cfg.Columns, 1); err != nil {
		return Config{}, err
	}
	if cfg.Rows, err = intWithDefault(lookup, KeyRows, cfg.Rows, 1); err != nil {
		return Config{}, err
	}
	if cfg.TileWeight, err = intWithDefault(lookup, KeyTileWeight, cfg.TileWeight, 1); err != nil {
		return Config{}, err
	}
	if cfg.WallPercent, err = intWithDefault(lookup, KeyWallPercent, cfg.WallPercent, 0); err != nil {
		return Config{}, err
	}
	if cfg.WallPercent > 100 {
		return Config{}, fmt.Errorf("%w: %s=%d exceeds 100", ErrInvalidValue, KeyWallPercent, cfg.WallPercent)
	}

	if v, ok := lookup(KeySpeed); ok {
		if cfg.Speed, err = replay.ParseSpeed(v); err != nil {
			return Config{}, fmt.Errorf("%w: %s: %w", ErrInvalidValue, KeySpeed, err)
		}
	}
	if v, ok := lookup(KeySeed); ok {
		if cfg.Seed, err = strconv.ParseInt(v, 10, 64); err != nil {
			return Config{}, fmt.Errorf("%w: %s must be an integer: %w", ErrInvalidValue, KeySeed, err)
		}
	}
	if v, ok := lookup(KeyAlgorithm); ok {
		if cfg.Algorithm, err = selector.ParseType(v); err != nil {
			return Config{}, fmt.Errorf("%w: %s: %w", ErrInvalidValue, KeyAlgorithm, err)
		}
	}
	if v, ok := lookup(KeyHTTPAddr); ok && v != "" {
		cfg.HTTPAddr = v
	}

	return cfg, nil
}

// intWithDefault parses key as an integer no smaller than minimum, or
// returns def when the key is unset.
func intWithDefault(lookup func(string) (string, bool), key string, def, minimum int) (int, error) {
	v, ok := lookup(key)
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer: %w", ErrInvalidValue, key, err)
	}
	if n < minimum {
		return 0, fmt.Errorf("%w: %s=%d is below %d", ErrInvalidValue, key, n, minimum)
	}

	return n, nil
}
