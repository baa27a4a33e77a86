package physics

import (
	"math"

	"github.com/lixenwraith/rollaball/vmath"
)

// Arena is the axis-aligned play area on the X/Z plane, walls sit on its edges
type Arena struct {
	MinX, MaxX float64
	MinZ, MaxZ float64
	// WallThickness is split evenly on both sides of each edge
	WallThickness float64
	Restitution   float64
}

// NewArena returns a square arena of the given side centred on the origin
func NewArena(size, wallThickness, restitution float64) Arena {
	half := size / 2
	return Arena{
		MinX: -half, MaxX: half,
		MinZ: -half, MaxZ: half,
		WallThickness: wallThickness,
		Restitution:   restitution,
	}
}

// Contact describes one wall hit resolved this step
type Contact struct {
	Normal vmath.Vec3F // Points back into the arena
	Speed  float64     // Approach speed along the normal before reflection
}

// ReflectArena keeps a sphere of radius inside the arena's inner wall faces
// Velocity along the wall normal is reflected and scaled by the combined restitution
// Returns the contacts resolved, nil when nothing was hit
func ReflectArena(b *Body, radius float64, a Arena) []Contact {
	inset := a.WallThickness/2 + radius
	e := combineRestitution(b.Restitution, a.Restitution)

	var contacts []Contact

	if lo := a.MinX + inset; b.Position.X < lo {
		b.Position.X = lo
		if b.Velocity.X < 0 {
			contacts = append(contacts, Contact{Normal: vmath.PosX, Speed: -b.Velocity.X})
			b.Velocity.X = -b.Velocity.X * e
		}
	} else if hi := a.MaxX - inset; b.Position.X > hi {
		b.Position.X = hi
		if b.Velocity.X > 0 {
			contacts = append(contacts, Contact{Normal: vmath.NegX, Speed: b.Velocity.X})
			b.Velocity.X = -b.Velocity.X * e
		}
	}

	if lo := a.MinZ + inset; b.Position.Z < lo {
		b.Position.Z = lo
		if b.Velocity.Z < 0 {
			contacts = append(contacts, Contact{Normal: vmath.PosZ, Speed: -b.Velocity.Z})
			b.Velocity.Z = -b.Velocity.Z * e
		}
	} else if hi := a.MaxZ - inset; b.Position.Z > hi {
		b.Position.Z = hi
		if b.Velocity.Z > 0 {
			contacts = append(contacts, Contact{Normal: vmath.NegZ, Speed: b.Velocity.Z})
			b.Velocity.Z = -b.Velocity.Z * e
		}
	}

	return contacts
}

// combineRestitution averages the two coefficients
func combineRestitution(a, b float64) float64 {
	return math.Max(0, (a+b)/2)
}
