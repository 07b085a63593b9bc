// Package config resolves runtime settings from .env, the environment and flags
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/lixenwraith/timeloop/constants"
)

// Store drivers
const (
	StoreMemory = "memory"
	StoreFile   = "file"
	StoreSQLite = "sqlite"
)

// Config holds frontend configuration
type Config struct {
	StoreDriver     string `env:"TIMELOOP_STORE" envDefault:"file"`
	SaveDir         string `env:"TIMELOOP_SAVE_DIR"`
	SQLitePath      string `env:"TIMELOOP_SQLITE_PATH"`
	SaveSlot        string `env:"TIMELOOP_SAVE_SLOT" envDefault:"timeLoopGameSave"`
	CharsPerSecond  int    `env:"TIMELOOP_TYPING_CPS" envDefault:"25"`
	Sound           bool   `env:"TIMELOOP_SOUND" envDefault:"true"`
	Debug           bool   `env:"TIMELOOP_DEBUG"`
	FallbackEndsRun bool   `env:"TIMELOOP_FALLBACK_ENDS_RUN" envDefault:"true"`

	// Continue resumes the saved slot at startup; flag only
	Continue bool
	// ListSlots prints the stored save slots and exits; flag only
	ListSlots bool
}

// ParseEnv loads configuration from environment variables
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadDotenv loads path into the environment without overriding set variables
// A missing file is not an error
func LoadDotenv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// ParseConfig resolves a Config from the environment, then flags in args
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.SaveDir == "" {
		cfg.SaveDir = "saves"
	}
	if cfg.SQLitePath == "" {
		cfg.SQLitePath = filepath.Join(cfg.SaveDir, "timeloop.db")
	}

	fs.StringVar(&cfg.StoreDriver, "store", cfg.StoreDriver, "save store: memory|file|sqlite (default: TIMELOOP_STORE or file)")
	fs.StringVar(&cfg.SaveDir, "save-dir", cfg.SaveDir, "directory for file saves (default: TIMELOOP_SAVE_DIR or saves)")
	fs.StringVar(&cfg.SQLitePath, "sqlite-path", cfg.SQLitePath, "sqlite save database path (default: TIMELOOP_SQLITE_PATH or saves/timeloop.db)")
	fs.StringVar(&cfg.SaveSlot, "slot", cfg.SaveSlot, "save slot key")
	fs.IntVar(&cfg.CharsPerSecond, "cps", cfg.CharsPerSecond, "dialogue typing speed in characters per second")
	fs.BoolVar(&cfg.Sound, "sound", cfg.Sound, "enable sound cues")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "write debug logs to logs/")
	fs.BoolVar(&cfg.FallbackEndsRun, "fallback-ends-run", cfg.FallbackEndsRun, "end the run with the eternal ending when no other ending matches")
	fs.BoolVar(&cfg.Continue, "continue", false, "resume the saved slot instead of showing the title")
	fs.BoolVar(&cfg.ListSlots, "list-slots", false, "print the save slots in the selected store and exit")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field combinations
func (c Config) Validate() error {
	switch c.StoreDriver {
	case StoreMemory, StoreFile, StoreSQLite:
	default:
		return fmt.Errorf("unknown store %q (want memory, file or sqlite)", c.StoreDriver)
	}
	if c.SaveSlot == "" {
		return errors.New("save slot must not be empty")
	}
	if c.CharsPerSecond < 0 || c.CharsPerSecond > constants.MaxTypingCharsPerSecond {
		return fmt.Errorf("typing speed must be within 0..%d, got %d", constants.MaxTypingCharsPerSecond, c.CharsPerSecond)
	}
	return nil
}

// TypingSpeed returns the configured speed, zero meaning the default
func (c Config) TypingSpeed() int {
	if c.CharsPerSecond == 0 {
		return constants.TypingCharsPerSecond
	}
	return c.CharsPerSecond
}
