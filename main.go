package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"

	"canvas-arcade/canvas"
	"canvas-arcade/config"
	"canvas-arcade/game"
	"canvas-arcade/game/manager"
	"canvas-arcade/game/types"
	"canvas-arcade/render"
	"canvas-arcade/scheduler"
	"canvas-arcade/storage"
	"canvas-arcade/tui"
	"canvas-arcade/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	configPath := flag.String("config", "config.yml", "Path to the YAML config file")
	mode := flag.String("mode", "", "Front-end to run: window or tui (overrides the config)")
	flag.Parse()

	conf := config.MustLoad(*configPath)
	if *mode != "" {
		conf.Mode = *mode
	}

	logger, closeLog := initLogger(conf)
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, conf, logger); err != nil {
		logger.Error("app run failed", slog.String("error", err.Error()))
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

func run(ctx context.Context, conf *config.Config, logger *slog.Logger) error {
	store, err := storage.Open(ctx, conf.Storage)
	if err != nil {
		return fmt.Errorf("can't open high score storage: %w", err)
	}
	defer store.Close()

	g := game.NewGame(ctx, gameOptions(conf.Snake), store, logger)
	logger.Info("game ready",
		slog.String("mode", conf.Mode),
		slog.String("storage", conf.Storage.Driver),
		slog.Int("high_score", g.HighScore()),
	)

	switch conf.Mode {
	case "tui":
		return tui.Run(ctx, g)
	case "window", "":
		return runWindow(ctx, conf, g, logger)
	default:
		return fmt.Errorf("unknown mode %q", conf.Mode)
	}
}

func gameOptions(conf config.Snake) game.Options {
	return game.Options{
		Grid: types.Grid{Width: conf.GridSize, Height: conf.GridSize},
		Tuning: manager.Tuning{
			FoodPoints:   conf.FoodPoints,
			BaseInterval: conf.BaseInterval,
			MinInterval:  conf.MinInterval,
			SpeedStep:    conf.SpeedStep,
			SpeedUpEvery: conf.SpeedUpEvery,
			HighScoreKey: conf.HighScoreKey,
		},
		Seed: conf.Seed,
	}
}

func runWindow(ctx context.Context, conf *config.Config, g *game.Game, logger *slog.Logger) error {
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(conf.Window.Width), int32(conf.Window.Height), conf.Window.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(conf.Window.FPS))

	host := ui.NewHost(rl.GetScreenWidth(), rl.GetScreenHeight())
	sched := scheduler.New(scheduler.RealClock{})
	defer sched.Close()

	router := ui.NewRouter(host, sched, logger)
	defer router.Close()

	downloader := canvas.Downloader{
		Dir: conf.Canvas.ExportDir,
		Options: canvas.EncodeOptions{
			JPEGQuality: conf.Canvas.JPEGQuality,
			WEBPQuality: conf.Canvas.WEBPQuality,
		},
	}
	router.Register(ui.RouteSnake, ui.NewSnakeWidget(ctx, g, conf.Snake.RedrawInterval, logger))
	router.Register(ui.RouteCanvas, ui.NewCanvasWidget(downloader, conf.Canvas.BrushWidth, logger))
	if err := router.Navigate(ui.Route(conf.Window.Route)); err != nil {
		return err
	}

	renderer := render.NewRenderer()
	defer renderer.Close()
	input := render.NewInput(host, runtime.GOOS == "android")

	for !rl.WindowShouldClose() && ctx.Err() == nil {
		input.Poll()
		sched.Tick()
		renderer.Draw(router.Scene())
	}
	return nil
}

// initialize logger. In tui mode stdout belongs to the terminal UI, so logs
// go to the configured file or nowhere.
func initLogger(conf *config.Config) (*slog.Logger, func()) {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	var out io.Writer = os.Stdout
	closeLog := func() {}

	switch {
	case conf.LogFile != "":
		if err := os.MkdirAll(filepath.Dir(conf.LogFile), 0o755); err != nil {
			panic(fmt.Errorf("can't create log directory: %w", err))
		}
		f, err := os.OpenFile(conf.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			panic(fmt.Errorf("can't open log file: %w", err))
		}
		out = f
		closeLog = func() { f.Close() }
	case conf.Mode == "tui":
		out = io.Discard
	}

	return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level})), closeLog
}
