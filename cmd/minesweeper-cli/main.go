package main

import (
	"context"
	"flag"
	"hash/maphash"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"golang.org/x/sync/errgroup"
	"minesweeper/internal/config"
	"minesweeper/internal/mines"
)

var (
	log = logrus.New()

	configPath string
)

func init() {
	const usage = "config file path"
	flag.StringVar(&configPath, "config", "", usage)
	flag.StringVar(&configPath, "c", "", usage+" (shorthand)")
}

func createRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func setupLogging(cfg config.Config) {
	log.SetLevel(cfg.Level())
	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	mines.Log.SetLevel(cfg.Level())

	if cfg.LogFile == "" {
		return
	}
	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   cfg.LogFile,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Level:      logrus.DebugLevel,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		log.Fatal("unable to set up log file rotation: ", err)
	}
	log.AddHook(hook)
	mines.Log.AddHook(hook)
}

// interact drives the session until the player quits or ctx is
// cancelled; cancellation closes in to unblock the read in progress.
func interact(ctx context.Context, s *session, in io.Closer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		// a clean quit must still release the goroutine below
		defer cancel()
		return s.run()
	})
	g.Go(func() error {
		<-gCtx.Done()
		return in.Close()
	})
	return g.Wait()
}

func main() {
	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	flag.Parse()
	_ = godotenv.Load()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal("unable to load config: ", err)
	}

	setupLogging(cfg)
	log.WithFields(cfg.Fields()).Debug("config")

	rnd := createRand()
	board, err := mines.New(cfg.Game, rnd)
	if err != nil {
		log.Fatal("unable to deal board: ", err)
	}

	s := &session{
		board: board,
		rnd:   rnd,
		in:    os.Stdin,
		out:   os.Stdout,
	}

	if err := interact(mainCtx, s, os.Stdin); err != nil {
		log.Printf("exit reason: %s\n", err)
	}
}
