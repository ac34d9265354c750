package event

import "github.com/lixenwraith/sixer/core"

// EventType represents the type of game event
type EventType int

const (
	// EventPhaseChanged reports every sequencer transition
	// Trigger: Sequencer | Payload: *PhaseChangePayload
	EventPhaseChanged EventType = iota + 1

	// EventCountdown marks the start of a pre-delivery countdown
	// Trigger: Countdown entry | Payload: nil
	EventCountdown

	// EventDelivery marks a new delivery leaving the bowler
	// Trigger: Countdown expiry | Payload: *DeliveryPayload
	EventDelivery

	// EventHit marks a swing inside the timing window
	// Trigger: Hit Resolver | Payload: *HitPayload
	EventHit

	// EventAttemptSucceeded marks an uncaught hit at resolution time
	// Trigger: deferred resolution | Payload: nil
	EventAttemptSucceeded

	// EventGameWon marks reaching the consecutive-success target
	// Trigger: Sequencer | Payload: nil
	EventGameWon

	// EventGameLost ends the session; Reason carries the cause
	// Trigger: Sequencer | Payload: nil
	EventGameLost
)

var typeNames = map[EventType]string{
	EventPhaseChanged:     "PhaseChanged",
	EventCountdown:        "Countdown",
	EventDelivery:         "Delivery",
	EventHit:              "Hit",
	EventAttemptSucceeded: "AttemptSucceeded",
	EventGameWon:          "GameWon",
	EventGameLost:         "GameLost",
}

func (t EventType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// Reason tags a lost session
type Reason string

const (
	ReasonNone     Reason = ""
	ReasonMistimed Reason = "MISTIMED"
	ReasonMissed   Reason = "MISSED"
	ReasonCaught   Reason = "CAUGHT"
	// ReasonExhausted is reachable only if the attempt budget runs out before
	// the target, which validated tuning rules out
	ReasonExhausted Reason = "EXHAUSTED"
)

// GameEvent is one entry of the presentation event stream
type GameEvent struct {
	Type       EventType
	Tick       uint64
	Generation uint64 // session generation that emitted the event
	Attempt    int    // 1-based attempt number, 0 outside an attempt
	Reason     Reason
	Payload    any
}

// PhaseChangePayload carries a sequencer transition
type PhaseChangePayload struct {
	From core.Phase
	To   core.Phase
}

// DeliveryPayload describes a new delivery
type DeliveryPayload struct {
	Speed     float64
	Deceptive bool
}

// HitPayload describes a resolved swing
type HitPayload struct {
	Deceptive  bool
	Designated int // fielder aimed at, -1 for a clean hit
	VelX, VelY float64
}
