// Package config holds the tunables of the catalog: scan block size and
// limit, memo table size, recurrence priming and log level.
//
// Settings are read from a YAML file shaped like the dotted keys:
//
//	config:
//	  scan:
//	    block_size: 1000
//	    limit: 0
//	  memo:
//	    table_size: 4096
//	  recurrence:
//	    primed: 0
//	  log:
//	    level: info
package config

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("invalid setting")

type Settings struct {
	Scan       ScanSettings       `yaml:"scan"`
	Memo       MemoSettings       `yaml:"memo"`
	Recurrence RecurrenceSettings `yaml:"recurrence"`
	Log        LogSettings        `yaml:"log"`
}

type ScanSettings struct {
	BlockSize int64 `yaml:"block_size"`
	// Limit caps every scan cursor. Zero scans without bound.
	Limit int64 `yaml:"limit"`
}

type MemoSettings struct {
	TableSize int `yaml:"table_size"`
}

type RecurrenceSettings struct {
	// Primed is the minimum number of terms every recurrence computes
	// when it is constructed.
	Primed int `yaml:"primed"`
}

type LogSettings struct {
	Level string `yaml:"level"`
}

type file struct {
	Config Settings `yaml:"config"`
}

func Default() Settings {
	return Settings{
		Scan:       ScanSettings{BlockSize: 1000},
		Memo:       MemoSettings{TableSize: 4096},
		Recurrence: RecurrenceSettings{Primed: 0},
		Log:        LogSettings{Level: "info"},
	}
}

// Load reads path over the defaults. Keys missing from the file keep
// their default values.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read the config file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (Settings, error) {
	f := file{Config: Default()}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Settings{}, fmt.Errorf("failed to parse the config: %w", err)
	}
	if err := f.Config.Validate(); err != nil {
		return Settings{}, err
	}
	return f.Config, nil
}

func (s Settings) Marshal() ([]byte, error) {
	return yaml.Marshal(file{Config: s})
}

// Validate reports every invalid setting at once.
func (s Settings) Validate() error {
	var errs error
	if s.Scan.BlockSize <= 0 {
		errs = multierr.Append(errs, fmt.Errorf("%w: %s must be positive, got %d", ErrInvalid, ScanBlockSize, s.Scan.BlockSize))
	}
	if s.Scan.Limit < 0 {
		errs = multierr.Append(errs, fmt.Errorf("%w: %s must be non-negative, got %d", ErrInvalid, ScanLimit, s.Scan.Limit))
	}
	if s.Memo.TableSize <= 0 {
		errs = multierr.Append(errs, fmt.Errorf("%w: %s must be positive, got %d", ErrInvalid, MemoTableSize, s.Memo.TableSize))
	}
	if s.Recurrence.Primed < 0 {
		errs = multierr.Append(errs, fmt.Errorf("%w: %s must be non-negative, got %d", ErrInvalid, RecurrencePrimed, s.Recurrence.Primed))
	}
	switch s.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = multierr.Append(errs, fmt.Errorf("%w: %s must be one of debug, info, warn, error, got %q", ErrInvalid, LogLevel, s.Log.Level))
	}
	return errs
}

// Lookup returns the value stored under a dotted key.
func (s Settings) Lookup(key string) (any, bool) {
	switch key {
	case ScanBlockSize:
		return s.Scan.BlockSize, true
	case ScanLimit:
		return s.Scan.Limit, true
	case MemoTableSize:
		return s.Memo.TableSize, true
	case RecurrencePrimed:
		return s.Recurrence.Primed, true
	case LogLevel:
		return s.Log.Level, true
	default:
		return nil, false
	}
}
