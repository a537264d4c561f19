package entity

import (
	"errors"
	"fmt"
)

// EntityID is a handle into the world's arenas (never recycled).
// Zero is "none".
type EntityID uint32

// NoEntity is the zero handle.
const NoEntity EntityID = 0

// ErrUnknownMaterial is returned when a level names a material that has no
// entry in the surface table.
var ErrUnknownMaterial = errors.New("unknown platform material")

// Material is the physical tag of a platform surface.
type Material string

const (
	MaterialNormal Material = "normal"
	MaterialGrass  Material = "grass"
	MaterialStone  Material = "stone"
	MaterialWood   Material = "wood"
	MaterialIce    Material = "ice"
	MaterialCloud  Material = "cloud"
	MaterialLava   Material = "lava"
)

// SurfaceProps are the per-material values consulted by actor physics
// (Friction, Bounce) and by collision resolution (Damage).
type SurfaceProps struct {
	Friction float64 // 1 = full ground friction, lower is slipperier
	Bounce   float64 // restitution applied on landing
	Damage   int     // contact damage per hit
}

var surfaceTable = map[Material]SurfaceProps{
	MaterialNormal: {Friction: 1.0},
	MaterialGrass:  {Friction: 1.0},
	MaterialStone:  {Friction: 1.0},
	MaterialWood:   {Friction: 0.8},
	MaterialIce:    {Friction: 0.1},
	MaterialCloud:  {Friction: 1.0, Bounce: 0.3},
	MaterialLava:   {Friction: 1.0, Damage: 1},
}

// ParseMaterial validates a material tag.
func ParseMaterial(s string) (Material, error) {
	m := Material(s)
	if _, ok := surfaceTable[m]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownMaterial, s)
	}
	return m, nil
}

// Props returns the surface properties of the material.
// Unknown materials behave like normal ground.
func (m Material) Props() SurfaceProps {
	if p, ok := surfaceTable[m]; ok {
		return p
	}
	return surfaceTable[MaterialNormal]
}

// Materials returns every known material tag.
func Materials() []Material {
	return []Material{
		MaterialNormal, MaterialGrass, MaterialStone, MaterialWood,
		MaterialIce, MaterialCloud, MaterialLava,
	}
}
