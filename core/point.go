package core

// Point is a float playfield coordinate, used for snapshots and trails
type Point struct {
	X, Y float64
}
