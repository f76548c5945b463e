package types

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"elevsim/src/config"
)

var (
	ErrInvalidRequest  = errors.New("invalid request")
	ErrAlreadyRunning  = errors.New("elevator already running")
	ErrAlreadyStopping = errors.New("elevator already stopping")
)

type PassengerType int

const (
	Standard PassengerType = iota
	LimitedMobility
	Heavy
	Priority
)

var passengerWeights = map[PassengerType]int{
	Standard:        100,
	LimitedMobility: 150,
	Heavy:           200,
	Priority:        50,
}

// Weight of a passenger of this type, or 0 for an unknown type.
func (t PassengerType) Weight() int {
	return passengerWeights[t]
}

func (t PassengerType) Valid() bool {
	_, ok := passengerWeights[t]
	return ok
}

func (t PassengerType) String() string {
	switch t {
	case Standard:
		return "Standard"
	case LimitedMobility:
		return "LimitedMobility"
	case Heavy:
		return "Heavy"
	case Priority:
		return "Priority"
	}
	return fmt.Sprintf("PassengerType(%d)", int(t))
}

// Symbol is the single letter used in the status listing.
func (t PassengerType) Symbol() string {
	switch t {
	case Standard:
		return "P"
	case LimitedMobility:
		return "L"
	case Heavy:
		return "B"
	case Priority:
		return "V"
	}
	return "?"
}

// ParsePassengerType accepts a type name (case-insensitive) or its numeric code 0-3.
func ParsePassengerType(s string) (PassengerType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "0", "standard", "p":
		return Standard, nil
	case "1", "limitedmobility", "limited-mobility", "limited", "l":
		return LimitedMobility, nil
	case "2", "heavy", "b":
		return Heavy, nil
	case "3", "priority", "v":
		return Priority, nil
	}
	return 0, fmt.Errorf("%w: unknown passenger type %q", ErrInvalidRequest, s)
}

// Passenger is immutable after creation. Weight is fixed by Type.
type Passenger struct {
	ID     string
	Type   PassengerType
	Origin int
	Dest   int
	Weight int
}

// NewPassenger validates a request and builds the passenger record for it.
func NewPassenger(origin, dest int, passengerType PassengerType) (*Passenger, error) {
	if !ValidFloor(origin) {
		return nil, fmt.Errorf("%w: origin floor %d outside [1,%d]", ErrInvalidRequest, origin, config.NumFloors)
	}
	if !ValidFloor(dest) {
		return nil, fmt.Errorf("%w: destination floor %d outside [1,%d]", ErrInvalidRequest, dest, config.NumFloors)
	}
	if !passengerType.Valid() {
		return nil, fmt.Errorf("%w: unknown passenger type %d", ErrInvalidRequest, int(passengerType))
	}
	id, err := uuid.NewRandom()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	return &Passenger{
		ID:     id.String(),
		Type:   passengerType,
		Origin: origin,
		Dest:   dest,
		Weight: passengerType.Weight(),
	}, nil
}

// String formats the passenger the way the status listing does, e.g. "B3".
func (p *Passenger) String() string {
	return fmt.Sprintf("%s%d", p.Type.Symbol(), p.Dest)
}

func ValidFloor(floor int) bool {
	return floor >= 1 && floor <= config.NumFloors
}
