package golf

// EventKind classifies session events.
type EventKind int

const (
	EventPlayerJoined EventKind = iota
	EventPlayerLeft
	EventInvalidInput
	EventGameStarted
	EventShot
	EventHoleCompleted
	EventHoleAbandoned
	EventPlayerFinished
	EventWaterHazard
	EventGameOver
	EventPaused
)

func (k EventKind) String() string {
	switch k {
	case EventPlayerJoined:
		return "player_joined"
	case EventPlayerLeft:
		return "player_left"
	case EventInvalidInput:
		return "invalid_input"
	case EventGameStarted:
		return "game_started"
	case EventShot:
		return "shot"
	case EventHoleCompleted:
		return "hole_completed"
	case EventHoleAbandoned:
		return "hole_abandoned"
	case EventPlayerFinished:
		return "player_finished"
	case EventWaterHazard:
		return "water_hazard"
	case EventGameOver:
		return "game_over"
	case EventPaused:
		return "paused"
	}
	return "unknown"
}

// Severity is how a host should present an event message.
type Severity int

const (
	SeverityInfo Severity = iota
	SeveritySuccess
	SeverityWarning
)

// Event is something the host may want to show or log.
type Event struct {
	Tick     uint64
	Kind     EventKind
	Severity Severity
	PlayerID int
	Hole     int // 1-based, 0 when not tied to a hole
	Strokes  int
	Message  string
}
