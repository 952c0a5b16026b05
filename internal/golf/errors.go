package golf

import "errors"

var (
	// ErrEmptyName is returned when a player name is blank after trimming.
	ErrEmptyName = errors.New("golf: please enter a player name")
	// ErrNameTooLong is returned when a player name exceeds MaxNameLength.
	ErrNameTooLong = errors.New("golf: name must be 12 characters or less")

	ErrUnknownPlayer = errors.New("golf: unknown player")
	ErrHoleIndex     = errors.New("golf: hole index out of range")
	ErrBadPar        = errors.New("golf: par must be at least 1")
	ErrUnknownKind   = errors.New("golf: unknown obstacle kind")
	ErrUnknownPreset = errors.New("golf: unknown fairway preset")

	// ErrNotReady is returned by manual controls while no shot can be taken.
	ErrNotReady = errors.New("golf: not ready to shoot")
)
