// State types are defined in elev package so that the lock discipline stays local to it.
package elev

import (
	"context"
	"sync"
	"time"

	"elevsim/src/config"
	"elevsim/src/types"
)

// Car is the elevator cabin. Only the movement engine mutates it once running,
// apart from the lifecycle flags touched by Start and Stop.
type Car struct {
	mu           sync.Mutex
	state        types.CarState
	floor        int
	dir          types.Direction
	passengers   []*types.Passenger
	weight       int
	load         int // onboard passenger count
	serviced     int
	running      bool
	deactivating bool
}

// FloorQueues holds the passengers waiting on each floor in arrival order.
// Index 0 is floor 1. total always equals the sum of waiting.
type FloorQueues struct {
	mu      sync.Mutex
	queues  [config.NumFloors][]*types.Passenger
	waiting [config.NumFloors]int
	total   int
}

// Elevator owns the car and the floor queues. Lock order is car.mu then floors.mu.
type Elevator struct {
	car    Car
	floors FloorQueues
	tick   time.Duration

	// Worker handles, guarded by car.mu.
	cancel context.CancelFunc
	done   chan struct{}
}
