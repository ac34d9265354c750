package core

// Phase is the sequencer state of a session
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseCountdown
	PhaseDeliveryInFlight
	PhaseResolutionPending
	PhaseAttemptSuccess
	PhaseGameWon
	PhaseGameLost
)

var phaseNames = [...]string{
	PhaseIdle:              "Idle",
	PhaseCountdown:         "Countdown",
	PhaseDeliveryInFlight:  "DeliveryInFlight",
	PhaseResolutionPending: "ResolutionPending",
	PhaseAttemptSuccess:    "AttemptSuccess",
	PhaseGameWon:           "GameWon",
	PhaseGameLost:          "GameLost",
}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "Unknown"
	}
	return phaseNames[p]
}

// Terminal reports whether the phase waits for an external restart
func (p Phase) Terminal() bool {
	return p == PhaseGameWon || p == PhaseGameLost
}

// AttemptState is the per-session counter block
type AttemptState struct {
	Consecutive   int  // consecutive successes
	Remaining     int  // attempts left in the budget
	ScheduleIndex int  // next speed-schedule entry
	Locked        bool // swing already taken for the current delivery
	Countdown     int  // countdown ticks remaining, meaningful only in PhaseCountdown
}
