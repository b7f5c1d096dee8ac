package main

import (
	"flag"
	"hash/maphash"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
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

func main() {
	flag.Parse()
	_ = godotenv.Load()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal("unable to load config: ", err)
	}

	setupLogging(cfg)
	log.WithFields(cfg.Fields()).Debug("config")

	if cfg.CellSize < 16 {
		log.Fatal("cell_size must be at least 16")
	}

	rnd := createRand()
	board, err := mines.New(cfg.Game, rnd)
	if err != nil {
		log.Fatal("unable to deal board: ", err)
	}

	g := newGame(board, rnd, cfg.CellSize)
	w, h := g.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Minesweeper (Press R to Reset)")

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
