// pkg/render/engo/scene.go
package engo

import (
	"context"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-spacewarriors/pkg/engine"
	"github.com/opd-ai/go-spacewarriors/pkg/event"
	"github.com/opd-ai/go-spacewarriors/pkg/logging"
)

// shakePerDamage converts damage taken into camera shake amplitude
const shakePerDamage = 0.5

// GameScene runs an engine.Game inside engo
type GameScene struct {
	ctx    context.Context
	game   *engine.Game
	logger *logging.Logger
	loader Loader

	width, height float64

	// Rendering components
	renderer *EngoRenderer
	camera   *CameraSystem
	input    *InputSystem
	hud      *HUDSystem

	damageSub *event.Subscription
	exit      func()
	stopped   bool
}

// NewGameScene creates a scene for game. A nil loader draws generated
// sprites.
func NewGameScene(ctx context.Context, game *engine.Game, loader Loader, logger *logging.Logger) *GameScene {
	if logger == nil {
		logger = logging.Discard()
	}
	return &GameScene{
		ctx:    ctx,
		game:   game,
		logger: logger,
		loader: loader,
		width:  float64(game.Config.Display.Width),
		height: float64(game.Config.Display.Height),
		exit:   engo.Exit,
	}
}

// Type returns the scene type (required by Engo)
func (scene *GameScene) Type() string {
	return "SpaceWarriors"
}

// Preload is called before the scene starts (required by Engo)
func (scene *GameScene) Preload() {}

// Setup is called when the scene starts (required by Engo)
func (scene *GameScene) Setup(u engo.Updater) {
	world, ok := u.(*ecs.World)
	if !ok {
		scene.logger.Warn(scene.ctx, "unexpected updater, scene not started")
		return
	}

	SetupInputBindings()
	render := &common.RenderSystem{}
	world.AddSystem(render)
	scene.build(render, EngoButtons())

	world.AddSystem(scene.input)
	world.AddSystem(scene.camera)
	world.AddSystem(&gameSystem{scene: scene})

	scene.logger.Info(scene.ctx, "scene ready", "width", scene.width, "height", scene.height)
}

// build wires the renderer, camera, input and HUD. A nil system keeps
// sprites out of the ECS.
func (scene *GameScene) build(system *common.RenderSystem, buttons ButtonReader) {
	scene.camera = NewCameraSystem(scene.width, scene.height, buttons)
	scene.input = NewInputSystem(buttons)
	scene.hud = NewHUDSystem(system, scene.width, scene.height)
	assets := NewAssetCache(scene.loader, scene.logger)
	scene.renderer = NewEngoRenderer(system, assets, scene.camera, scene.hud)

	if scene.damageSub != nil {
		scene.game.EventBus.Unsubscribe(scene.damageSub)
	}
	scene.damageSub = scene.game.EventBus.Subscribe(event.PlayerDamaged, func(e event.Event) {
		if d, ok := e.(*event.DamageEvent); ok {
			scene.camera.Shake(float64(d.Amount) * shakePerDamage)
		}
	})
}

// Step advances the game one frame with in and redraws it. It reports
// false once the player asks to quit or ctx is done; engo is asked to exit
// once.
func (scene *GameScene) Step(in engine.Controls) bool {
	if scene.stopped {
		return false
	}
	if err := scene.ctx.Err(); err != nil {
		scene.logger.Info(scene.ctx, "game cancelled", "frame", scene.game.Frame, "error", err)
		scene.stop()
		return false
	}
	if in.Quit {
		scene.logger.Info(scene.ctx, "quit requested", "frame", scene.game.Frame, "score", scene.game.Score)
		scene.stop()
		return false
	}
	scene.game.Update(scene.ctx, in)
	scene.game.Render(scene.renderer)
	return true
}

func (scene *GameScene) stop() {
	scene.stopped = true
	scene.exit()
}

// gameSystem steps the game once per engo frame, after input is sampled
type gameSystem struct {
	scene *GameScene
}

func (gs *gameSystem) Remove(ecs.BasicEntity) {}

// Priority runs the game after InputSystem and before rendering
func (gs *gameSystem) Priority() int {
	return 10
}

func (gs *gameSystem) Update(dt float32) {
	gs.scene.Step(gs.scene.input.Poll())
}

// Run opens a window and runs game until the player quits.
func Run(ctx context.Context, game *engine.Game, loader Loader, logger *logging.Logger) {
	d := game.Config.Display
	engo.Run(engo.RunOptions{
		Title:    "Space Warriors",
		Width:    d.Width,
		Height:   d.Height,
		FPSLimit: d.FPS,
	}, NewGameScene(ctx, game, loader, logger))
}
