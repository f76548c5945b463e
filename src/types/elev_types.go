package types

type CarState int

const (
	Offline CarState = iota
	Idle
	Loading
	MovingUp
	MovingDown
)

func (s CarState) String() string {
	switch s {
	case Offline:
		return "OFFLINE"
	case Idle:
		return "IDLE"
	case Loading:
		return "LOADING"
	case MovingUp:
		return "UP"
	case MovingDown:
		return "DOWN"
	}
	return "UNKNOWN"
}

// Direction is the travel bias of the car. It decides where the car heads next,
// and may differ from the current state (e.g. Loading while biased Up).
type Direction int

const (
	Down Direction = iota
	Up
)

func (d Direction) String() string {
	if d == Up {
		return "Up"
	}
	return "Down"
}

// Status is a consistent snapshot of the car and the floor queues.
type Status struct {
	State    CarState
	Floor    int
	Dir      Direction
	Weight   int
	Load     int
	Serviced int
	Onboard  []*Passenger
	Floors   []FloorStatus // index 0 is floor 1
	Waiting  int
	Running  bool
	Stopping bool
}

type FloorStatus struct {
	Floor      int
	Waiting    int
	Passengers []*Passenger
}
