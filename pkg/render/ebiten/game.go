// pkg/render/ebiten/game.go
package ebiten

import (
	"context"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/opd-ai/go-spacewarriors/pkg/engine"
	"github.com/opd-ai/go-spacewarriors/pkg/logging"
)

// App adapts an engine.Game to ebiten.Game. Ebiten calls Update at the
// configured tick rate and Draw once per display frame.
type App struct {
	ctx      context.Context
	game     *engine.Game
	renderer *Renderer
	keys     KeyReader
	logger   *logging.Logger
}

// NewApp creates an ebiten adapter for game reading keys. A nil reader
// uses the keyboard.
func NewApp(ctx context.Context, game *engine.Game, keys KeyReader, logger *logging.Logger) *App {
	if keys == nil {
		keys = Keyboard()
	}
	if logger == nil {
		logger = logging.Discard()
	}
	d := game.Config.Display
	return &App{
		ctx:      ctx,
		game:     game,
		renderer: NewRenderer(float64(d.Width), float64(d.Height)),
		keys:     keys,
		logger:   logger,
	}
}

// Update implements ebiten.Game. It returns ebiten.Termination when the
// player quits or ctx is done.
func (a *App) Update() error {
	if err := a.ctx.Err(); err != nil {
		a.logger.Info(a.ctx, "game cancelled", "frame", a.game.Frame)
		return ebiten.Termination
	}
	in := ReadControls(a.keys)
	if in.Quit {
		a.logger.Info(a.ctx, "quit requested", "frame", a.game.Frame, "score", a.game.Score)
		return ebiten.Termination
	}
	a.game.Update(a.ctx, in)
	a.game.Render(a.renderer)
	return nil
}

// Draw implements ebiten.Game
func (a *App) Draw(screen *ebiten.Image) {
	a.renderer.Draw(screen)
}

// Layout implements ebiten.Game. The logical screen is fixed to the
// configured display size.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.game.Config.Display.Width, a.game.Config.Display.Height
}

// Renderer returns the app's renderer
func (a *App) Renderer() *Renderer {
	return a.renderer
}

// Run opens a window and runs game until the player quits.
func Run(ctx context.Context, game *engine.Game, logger *logging.Logger) error {
	d := game.Config.Display
	ebiten.SetWindowSize(d.Width, d.Height)
	ebiten.SetWindowTitle("Space Warriors")
	ebiten.SetTPS(d.FPS)
	return ebiten.RunGame(NewApp(ctx, game, nil, logger))
}
