// cmd/warriors/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-spacewarriors/pkg/config"
	"github.com/opd-ai/go-spacewarriors/pkg/engine"
	"github.com/opd-ai/go-spacewarriors/pkg/logging"
	"github.com/opd-ai/go-spacewarriors/pkg/render"
	ebitenrender "github.com/opd-ai/go-spacewarriors/pkg/render/ebiten"
	engorender "github.com/opd-ai/go-spacewarriors/pkg/render/engo"
	"github.com/opd-ai/go-spacewarriors/pkg/telemetry"
)

type options struct {
	configPath string
	renderer   string
	width      int
	height     int
	frames     int
	seed       uint64
	logPath    string
	logLevel   string
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "Path to a JSON configuration file (defaults when empty)")
	flag.StringVar(&opts.renderer, "renderer", "terminal", "Renderer: terminal, engo, ebiten or headless")
	flag.IntVar(&opts.width, "width", 0, "Screen width in pixels (overrides config)")
	flag.IntVar(&opts.height, "height", 0, "Screen height in pixels (overrides config)")
	flag.IntVar(&opts.frames, "frames", 600, "Frames to simulate (headless only)")
	flag.Uint64Var(&opts.seed, "seed", 0, "Random seed, 0 for a random session")
	flag.StringVar(&opts.logPath, "log", "", "Log file (terminal logs nowhere when empty, others log to stderr)")
	flag.StringVar(&opts.logLevel, "log-level", os.Getenv(logging.LevelEnv), "Log level: DEBUG, INFO, WARN or ERROR")
	flag.Parse()

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "warriors: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, closeLog, err := openLogger(opts)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx = logging.WithCorrelationID(ctx, logging.GenerateCorrelationID())

	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return err
	}
	if opts.width > 0 {
		cfg.Display.Width = opts.width
	}
	if opts.height > 0 {
		cfg.Display.Height = opts.height
	}

	metrics, err := telemetry.New(nil)
	if err != nil {
		return logging.WrapError(err, "telemetry setup failed")
	}

	seed := opts.seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	game := engine.NewGame(cfg,
		engine.WithRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))),
		engine.WithLogger(logger),
		engine.WithMetrics(metrics),
	)
	logger.Info(ctx, "session starting", "renderer", opts.renderer, "seed", seed,
		"width", cfg.Display.Width, "height", cfg.Display.Height)

	switch opts.renderer {
	case "headless":
		return runHeadless(ctx, game, opts.frames, logger)
	case "engo":
		engorender.Run(ctx, game, nil, logger)
		return nil
	case "ebiten":
		return ebitenrender.Run(ctx, game, logger)
	case "terminal":
		return runTerminal(ctx, game)
	default:
		return fmt.Errorf("unknown renderer %q", opts.renderer)
	}
}

// openLogger picks the log destination. The terminal renderer owns the
// screen, so it only logs when given a file.
func openLogger(opts options) (*logging.Logger, func(), error) {
	level := logging.ParseLevel(opts.logLevel)
	if opts.logPath == "" {
		if opts.renderer == "terminal" {
			return logging.Discard(), func() {}, nil
		}
		return logging.NewLoggerWithWriter(os.Stderr, level), func() {}, nil
	}

	f, err := os.OpenFile(opts.logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return logging.NewLoggerWithWriter(f, level), func() { f.Close() }, nil
}

// runTerminal plays in the terminal until the player quits.
func runTerminal(ctx context.Context, game *engine.Game) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()

	d := game.Config.Display
	r, err := render.NewTerminalRenderer(screen, float64(d.Width), float64(d.Height))
	if err != nil {
		return err
	}
	input := render.NewTerminalInput(screen, render.DefaultHoldFrames)

	if err := game.Run(ctx, input, r); err != nil && ctx.Err() == nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Final score: %d\n", game.Score)
	return nil
}

// runHeadless simulates frames without a display, steered by the
// autopilot, and logs the outcome.
func runHeadless(ctx context.Context, game *engine.Game, frames int, logger *logging.Logger) error {
	r := render.NewNullRenderer(logger)
	pilot := &autopilot{fireEvery: 10}
	for i := 0; i < frames; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		game.Update(ctx, pilot.Controls(game))
		game.Render(r)
	}

	logger.Info(ctx, "headless run complete",
		"frames", game.Frame,
		"score", game.Score,
		"status", game.Status.String(),
		"health", game.Player.Health,
	)
	return nil
}
