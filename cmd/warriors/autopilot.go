// cmd/warriors/autopilot.go
package main

import (
	"math"

	"github.com/opd-ai/go-spacewarriors/pkg/engine"
	"github.com/opd-ai/go-spacewarriors/pkg/physics"
)

// aimTolerance is how far off the nearest enemy, in degrees, the
// autopilot stops turning.
const aimTolerance = 5

// autopilot flies the player in headless runs: it turns toward the
// nearest enemy, thrusts when far away, fires on a fixed cadence and
// restarts after a game over.
type autopilot struct {
	fireEvery uint64
}

// Controls returns the controls for g's next frame.
func (a *autopilot) Controls(g *engine.Game) engine.Controls {
	if g.IsOver() {
		return engine.Controls{Restart: true}
	}

	var in engine.Controls
	if a.fireEvery > 0 && g.Frame%a.fireEvery == 0 {
		in.Fire = true
	}

	target, dist, ok := nearestEnemy(g)
	if !ok {
		return in
	}

	bearing := physics.Degrees(target.Sub(g.Player.Position).Angle())
	diff := math.Remainder(bearing-g.Player.Angle, 360)
	switch {
	case diff > aimTolerance:
		in.TurnRight = true
	case diff < -aimTolerance:
		in.TurnLeft = true
	}
	in.Thrust = dist > 300
	return in
}

func nearestEnemy(g *engine.Game) (physics.Vector2D, float64, bool) {
	var best physics.Vector2D
	bestDist := math.Inf(1)
	for _, e := range g.Enemies {
		if d := e.Position.Distance(g.Player.Position); d < bestDist {
			best, bestDist = e.Position, d
		}
	}
	return best, bestDist, !math.IsInf(bestDist, 1)
}
