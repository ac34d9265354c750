// @focus: #parameter { gameplay }
package parameter

// Playfield geometry
const (
	FieldWidth  = 600
	FieldHeight = 700

	// BatsmanX and BatsmanY position the batting marker
	BatsmanX = FieldWidth / 2
	BatsmanY = FieldHeight - 100

	// DeliverySpawnY is where each delivery starts its descent
	DeliverySpawnY = 80
)

// Timing window
const (
	// WindowOffset lifts the window center above the batting marker
	WindowOffset = 20.0

	// WindowHalfWidth is the half extent of the scoring window
	WindowHalfWidth = 15.0

	// MissMargin is how far below the marker a delivery travels before it counts as missed
	MissMargin = 20.0
)

// Hit resolution
const (
	// DeceptiveHitSpeed is the struck-ball speed when aimed at a designated fielder
	DeceptiveHitSpeed = 10.0

	// DeceptiveUpwardBias is added to the vertical component of a deceptive launch
	DeceptiveUpwardBias = -3.0

	// CleanHitSpeed is the struck-ball speed of a non-deceptive launch
	CleanHitSpeed = 14.0

	// CleanLaunchArc is the full random arc (radians) around straight up
	CleanLaunchArc = 0.6

	// PursuitSpeed is the initial speed of fielders chasing the spawn point
	PursuitSpeed = 3.5

	// ProtectRadius keeps fielders near a deceptive launch point from being re-armed
	ProtectRadius = 50.0

	// DeceptiveChance is the probability that a delivery is deceptive
	DeceptiveChance = 0.25
)

// Physics step
const (
	// Gravity is added to struck-ball vertical velocity every tick
	Gravity = 0.15

	// FielderDamping multiplies fielder velocity every tick
	FielderDamping = 0.95

	// ExitMargin is how far past the playfield edges a struck ball may travel before it is cleared
	ExitMargin = 50.0
)

// Interception
const (
	CaptureRadiusDeceptive = 35.0
	CaptureRadiusClean     = 20.0
)

// Fielding rectangle insets from the playfield edges
const (
	FieldingInsetX      = 20
	FieldingInsetTop    = 60
	FieldingInsetBottom = 120
)

// Sequencing
const (
	// Attempts is the ball budget per session
	Attempts = 6

	// Target is the consecutive-success count that wins the session
	Target = 6

	// RunsPerSuccess is the score credited for each clean hit
	RunsPerSuccess = 6

	// ResolutionDelayTicks is the wait between contact and scoring (2.5s at 60 ticks/s)
	ResolutionDelayTicks = 150

	// CountdownTicks is the pre-delivery countdown during which input is ignored (0.5s at 60 ticks/s)
	CountdownTicks = 30

	// CountdownSteps splits the countdown into displayed steps
	CountdownSteps = 2
)

// Trail caps
const (
	DeliveryTrailLength = 15
	StruckTrailLength   = 30
)

// FielderCount is the fixed number of fielders in a session
const FielderCount = 10

// SpeedSchedule is the per-attempt delivery speed sequence (units per tick)
var SpeedSchedule = []float64{8, 6, 7, 9, 4, 10}

// FielderLayout is the initial fielder placement, reset at the start of every attempt
var FielderLayout = [FielderCount][2]float64{
	{FieldWidth / 2, 80},
	{FieldWidth/2 - 150, 200},
	{FieldWidth/2 + 150, 200},
	{FieldWidth/2 - 100, 300},
	{FieldWidth/2 + 100, 300},
	{100, 250},
	{FieldWidth - 100, 250},
	{150, 400},
	{FieldWidth - 150, 400},
	{FieldWidth / 2, 500},
}
