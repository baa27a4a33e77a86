// Package scene spawns the demo world: a walled ground plane, camera and
// light markers, and the player sphere.
package scene

import (
	"math"

	"github.com/lixenwraith/rollaball/component"
	"github.com/lixenwraith/rollaball/core"
	"github.com/lixenwraith/rollaball/engine"
	"github.com/lixenwraith/rollaball/event"
	"github.com/lixenwraith/rollaball/locomotion"
	"github.com/lixenwraith/rollaball/parameter"
	"github.com/lixenwraith/rollaball/physics"
	"github.com/lixenwraith/rollaball/vmath"
)

// PlayerSpec configures the spawned player
type PlayerSpec struct {
	Speed       float64
	Radius      float64
	Restitution float64
}

// DefaultPlayerSpec matches the force-driven iteration
func DefaultPlayerSpec() PlayerSpec {
	return PlayerSpec{
		Speed:       parameter.PlayerSpeed,
		Radius:      parameter.PlayerRadius,
		Restitution: parameter.Restitution,
	}
}

// SpawnArena creates the ground, four walls, camera and light
// Returns the wall entities in back, front, left, right order
func SpawnArena(w *engine.World, arena physics.Arena) []core.Entity {
	c := w.Components
	sizeX := arena.MaxX - arena.MinX
	sizeZ := arena.MaxZ - arena.MinZ
	halfWall := arena.WallThickness / 2

	engine.With(engine.With(engine.With(w.NewEntity(),
		c.Transform, component.TransformComponent{}),
		c.Marker, component.MarkerComponent{Kind: component.MarkerGround}),
		c.Collider, component.ColliderComponent{
			Shape:       component.ShapeCuboid,
			HalfExtents: vmath.Vec3F{X: sizeX, Y: parameter.GroundThickness, Z: sizeZ},
		}).Build()

	type wallDef struct {
		at     vmath.Vec3F
		yaw    float64
		normal vmath.Vec3F
		length float64
	}
	defs := []wallDef{
		{vmath.Vec3F{Z: arena.MinZ}, 0, vmath.PosZ, sizeX},
		{vmath.Vec3F{Z: arena.MaxZ}, 0, vmath.NegZ, sizeX},
		{vmath.Vec3F{X: arena.MinX}, math.Pi / 2, vmath.PosX, sizeZ},
		{vmath.Vec3F{X: arena.MaxX}, math.Pi / 2, vmath.NegX, sizeZ},
	}

	walls := make([]core.Entity, 0, len(defs))
	for _, d := range defs {
		e := engine.With(engine.With(engine.With(engine.With(w.NewEntity(),
			c.Transform, component.TransformComponent{Translation: d.at, RotationY: d.yaw}),
			c.Wall, component.WallComponent{Normal: d.normal}),
			c.Body, component.BodyComponent{
				Body: physics.Body{Position: d.at, Restitution: arena.Restitution},
				Type: component.BodyFixed,
			}),
			c.Collider, component.ColliderComponent{
				Shape:       component.ShapeCuboid,
				HalfExtents: vmath.Vec3F{X: d.length / 2, Y: parameter.WallHeight, Z: halfWall},
			}).Build()
		walls = append(walls, e)
	}

	engine.With(engine.With(w.NewEntity(),
		c.Transform, component.TransformComponent{
			Translation: vmath.Vec3F{X: parameter.CameraX, Y: parameter.CameraY, Z: parameter.CameraZ},
		}),
		c.Marker, component.MarkerComponent{Kind: component.MarkerCamera, LookAt: vmath.Zero}).Build()

	engine.With(engine.With(w.NewEntity(),
		c.Transform, component.TransformComponent{
			Translation: vmath.Vec3F{X: parameter.LightX, Y: parameter.LightY, Z: parameter.LightZ},
		}),
		c.Marker, component.MarkerComponent{Kind: component.MarkerLight, Intensity: parameter.LightIntensity}).Build()

	return walls
}

// SpawnPlayer creates the player sphere resting on the ground at the arena centre
func SpawnPlayer(w *engine.World, spec PlayerSpec) core.Entity {
	c := w.Components
	pos := vmath.Vec3F{Y: parameter.PlayerSpawnY}
	mass := sphereMass(spec.Radius, parameter.PlayerDensity)

	e := engine.With(engine.With(engine.With(w.NewEntity(),
		c.Player, component.PlayerComponent{PlayerState: locomotion.NewPlayerStateWithSpeed(spec.Speed)}),
		c.Body, component.BodyComponent{
			Body: physics.Body{
				Position:    pos,
				Mass:        mass,
				Restitution: spec.Restitution,
			},
			Type: component.BodyDynamic,
		}),
		c.Collider, component.ColliderComponent{
			Shape:   component.ShapeBall,
			Radius:  spec.Radius,
			Density: parameter.PlayerDensity,
		}).Build()

	if res, ok := engine.GetResource[*engine.EventQueueResource](w.Resources); ok {
		res.Queue.Push(event.GameEvent{
			Type:    event.EventPlayerSpawned,
			Payload: &event.PlayerSpawnedPayload{Entity: e, Position: pos, Mass: mass},
		})
	}
	return e
}

func sphereMass(radius, density float64) float64 {
	return density * 4.0 / 3.0 * math.Pi * radius * radius * radius
}
