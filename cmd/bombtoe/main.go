package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"hash/maphash"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/bombtoe/internal/config"
	"github.com/vancomm/bombtoe/internal/cursor"
	"github.com/vancomm/bombtoe/internal/match"
	"github.com/vancomm/bombtoe/internal/terminal"
)

var (
	log = logrus.New()

	logPath string
)

func init() {
	const usage = "log file path (overrides BOMBTOE_LOG_FILE)"
	flag.StringVar(&logPath, "log", "", usage)
	flag.StringVar(&logPath, "l", "", usage+" (shorthand)")
}

// setupLogging sends everything to a rotated file; the terminal belongs to
// the game while it runs.
func setupLogging(cfg *config.Game) error {
	level := cfg.Level()
	log.SetLevel(level)
	log.SetOutput(io.Discard)

	var formatter logrus.Formatter = &logrus.JSONFormatter{}
	if cfg.Development() {
		formatter = &logrus.TextFormatter{DisableColors: true, FullTimestamp: true}
	}

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   cfg.LogFile,
		MaxSize:    5,
		MaxBackups: 3,
		MaxAge:     28,
		Level:      level,
		Formatter:  formatter,
	})
	if err != nil {
		return fmt.Errorf("unable to open log file %s: %w", cfg.LogFile, err)
	}
	log.AddHook(hook)

	match.Log = log
	cursor.Log = log
	return nil
}

func createRand(seed uint64) *rand.Rand {
	if seed != 0 {
		return rand.New(rand.NewPCG(seed, seed))
	}
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

// run plays until the user quits and returns the process exit code. Deferred
// cleanup happens here so main can call os.Exit safely.
func run(stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "invalid configuration: %s\n", err)
		return 1
	}
	if logPath != "" {
		cfg.LogFile = logPath
	}
	if err := setupLogging(cfg); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	log.Info("starting up, mode = ", cfg.Mode)
	log.WithFields(cfg.Fields()).Debug("config")

	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	screen, err := terminal.New()
	if err != nil {
		log.WithError(err).Error("unable to open terminal")
		fmt.Fprintln(stderr, err)
		return 1
	}
	defer screen.Close()

	controller := match.NewController(screen, screen, createRand(cfg.Seed), cfg.BoardSize)

	runCtx, cancel := context.WithCancel(mainCtx)
	defer cancel()

	g, gCtx := errgroup.WithContext(runCtx)
	g.Go(func() error {
		defer cancel()
		return controller.Run(gCtx)
	})
	g.Go(func() error {
		<-gCtx.Done()
		screen.Close()
		return nil
	})

	err = g.Wait()
	screen.Close()

	switch {
	case err == nil, errors.Is(err, cursor.ErrQuit), errors.Is(err, context.Canceled):
		log.Info("shutting down")
		return 0
	default:
		log.Printf("exit reason: %s\n", err)
		fmt.Fprintf(stderr, "bombtoe: %s\n", err)
		return 1
	}
}

func main() {
	flag.Parse()
	os.Exit(run(os.Stderr))
}
