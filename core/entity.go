package core

import "github.com/lixenwraith/sixer/vmath"

// Delivery is the ball descending toward the batting position
type Delivery struct {
	Kinetic
	Deceptive bool
	Trail     Trail
}

// NewDelivery spawns a delivery at (x, y) falling at speed units per tick
func NewDelivery(x, y, speed float64, deceptive bool, trailLimit int) *Delivery {
	d := &Delivery{Deceptive: deceptive, Trail: NewTrail(trailLimit)}
	d.SetPos(x, y)
	d.VelY = vmath.FromFloat(speed)
	return d
}

// StruckBall is the ball after contact, fleeing the fielders
type StruckBall struct {
	Kinetic
	Deceptive bool
	Trail     Trail
}

// NewStruckBall replaces a delivery at its contact point
// The deceptive flag is inherited from the delivery
func NewStruckBall(from *Delivery, velX, velY int64, trailLimit int) *StruckBall {
	return &StruckBall{
		Kinetic: Kinetic{
			PreciseX: from.PreciseX,
			PreciseY: from.PreciseY,
			VelX:     velX,
			VelY:     velY,
		},
		Deceptive: from.Deceptive,
		Trail:     NewTrail(trailLimit),
	}
}

// Descending reports whether vertical velocity points down the screen
func (b *StruckBall) Descending() bool {
	return b.VelY > 0
}

// Fielder is one of the fixed fielding positions, identified by index
type Fielder struct {
	Kinetic
	ID    int
	HomeX int64
	HomeY int64
}

// NewFielder creates a fielder resting at its home position
func NewFielder(id int, x, y float64) Fielder {
	f := Fielder{ID: id, HomeX: vmath.FromFloat(x), HomeY: vmath.FromFloat(y)}
	f.Reset()
	return f
}

// Reset returns the fielder to its home position at rest
func (f *Fielder) Reset() {
	f.PreciseX, f.PreciseY = f.HomeX, f.HomeY
	f.Stop()
}

// BattingMarker fixes the timing-window reference line, immutable after creation
type BattingMarker struct {
	x, y   int64
	offset int64
}

// NewBattingMarker positions the marker; offset lifts the window center above it
func NewBattingMarker(x, y, offset float64) BattingMarker {
	return BattingMarker{
		x:      vmath.FromFloat(x),
		y:      vmath.FromFloat(y),
		offset: vmath.FromFloat(offset),
	}
}

// X returns the marker column in Q32.32
func (m BattingMarker) X() int64 { return m.x }

// Y returns the marker line in Q32.32
func (m BattingMarker) Y() int64 { return m.y }

// ReferenceY is the timing-window center line in Q32.32
func (m BattingMarker) ReferenceY() int64 { return m.y - m.offset }

// Pos returns the marker as float coordinates
func (m BattingMarker) Pos() Point {
	return Point{X: vmath.ToFloat(m.x), Y: vmath.ToFloat(m.y)}
}
