package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gorilla/schema"
	"github.com/sirupsen/logrus"
)

const envPrefix = "BOMBTOE_"

const (
	MinBoardSize = 2
	MaxBoardSize = 5
)

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

type Game struct {
	Mode      string `schema:"mode"`
	BoardSize int    `schema:"board_size"`
	LogFile   string `schema:"log_file"`
	LogLevel  string `schema:"log_level"`
	Seed      uint64 `schema:"seed"`
}

func Default() Game {
	return Game{
		Mode:      "production",
		BoardSize: 3,
		LogFile:   "bombtoe.log",
	}
}

// Load reads BOMBTOE_* variables from the process environment.
func Load() (*Game, error) {
	return FromEnviron(os.Environ())
}

// FromEnviron decodes "KEY=value" pairs; keys without the BOMBTOE_ prefix are
// ignored and the rest are matched case-insensitively against schema tags.
func FromEnviron(environ []string) (*Game, error) {
	values := make(map[string][]string)
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(key, envPrefix) {
			continue
		}
		name := strings.ToLower(strings.TrimPrefix(key, envPrefix))
		values[name] = []string{value}
	}

	cfg := Default()
	if err := decoder.Decode(&cfg, values); err != nil {
		return nil, fmt.Errorf("unable to decode %s* env variables: %w", envPrefix, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (g Game) Validate() error {
	var errs []error
	if g.Mode != "development" && g.Mode != "production" {
		errs = append(errs, fmt.Errorf("%sMODE must be development or production, got %q", envPrefix, g.Mode))
	}
	if g.BoardSize < MinBoardSize || g.BoardSize > MaxBoardSize {
		errs = append(errs, fmt.Errorf("%sBOARD_SIZE must be within [%d, %d], got %d",
			envPrefix, MinBoardSize, MaxBoardSize, g.BoardSize))
	}
	if g.LogFile == "" {
		errs = append(errs, fmt.Errorf("%sLOG_FILE must not be empty", envPrefix))
	}
	if g.LogLevel != "" {
		if _, err := logrus.ParseLevel(g.LogLevel); err != nil {
			errs = append(errs, fmt.Errorf("%sLOG_LEVEL: %w", envPrefix, err))
		}
	}
	return errors.Join(errs...)
}

func (g Game) Fields() logrus.Fields {
	return map[string]any{
		"mode":       g.Mode,
		"board_size": g.BoardSize,
		"log_file":   g.LogFile,
		"log_level":  g.Level().String(),
		"seeded":     g.Seed != 0,
	}
}
