package maze

import "fmt"

// Direction is one of the six axis-aligned directions a wall can face.
type Direction int

const (
	PosX Direction = iota
	NegX
	PosY
	NegY
	PosZ
	NegZ

	directionCount = 6
)

// Directions lists every direction in the order neighbors are enumerated.
var Directions = [directionCount]Direction{PosX, NegX, PosZ, NegZ, PosY, NegY}

var (
	directionDeltas = [directionCount]Position{
		PosX: {X: 1},
		NegX: {X: -1},
		PosY: {Y: 1},
		NegY: {Y: -1},
		PosZ: {Z: 1},
		NegZ: {Z: -1},
	}

	directionNames = [directionCount]string{
		PosX: "+x",
		NegX: "-x",
		PosY: "+y",
		NegY: "-y",
		PosZ: "+z",
		NegZ: "-z",
	}
)

// Delta returns the unit offset of a step in direction d.
func (d Direction) Delta() Position {
	return directionDeltas[d]
}

// Opposite returns the direction facing back along the same axis.
func (d Direction) Opposite() Direction {
	// Directions are laid out in +/- pairs, so flipping the low bit swaps them.
	return d ^ 1
}

// Valid reports whether d is one of the six known directions.
func (d Direction) Valid() bool {
	return d >= 0 && d < directionCount
}

// String returns the short axis name, e.g. "+x".
func (d Direction) String() string {
	if !d.Valid() {
		return "invalid"
	}
	return directionNames[d]
}

// directionOf resolves the direction of a unit delta. ok is false when the
// delta is not a single step along exactly one axis.
func directionOf(delta Position) (d Direction, ok bool) {
	for _, dir := range Directions {
		if directionDeltas[dir] == delta {
			return dir, true
		}
	}
	return 0, false
}

// ParseDirection parses a short axis name such as "-z".
func ParseDirection(s string) (Direction, error) {
	for _, d := range Directions {
		if directionNames[d] == s {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

// MarshalText encodes the direction by its short axis name.
func (d Direction) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("invalid direction %d", int(d))
	}
	return []byte(d.String()), nil
}

// UnmarshalText decodes a short axis name.
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
