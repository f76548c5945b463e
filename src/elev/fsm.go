// Contains the state machine that drives the car.
package elev

import (
	"log/slog"

	"elevsim/src/config"
	"elevsim/src/types"
)

// step executes the action for the car's current state. It returns false when the
// worker should exit, which only happens from Idle once a stop was requested.
func (e *Elevator) step() bool {
	c, f := &e.car, &e.floors
	c.mu.Lock()
	defer c.mu.Unlock()

	prevState, prevFloor := c.state, c.floor

	switch c.state {
	case types.Idle:
		if c.deactivating {
			c.state = types.Offline
			c.running = false
			slog.Info("Elevator offline", "floor", c.floor, "serviced", c.serviced)
			return false
		}
		f.mu.Lock()
		defer f.mu.Unlock()
		handleIdle(c, f)

	case types.Loading:
		f.mu.Lock()
		defer f.mu.Unlock()
		handleLoading(c, f)

	case types.MovingUp, types.MovingDown:
		f.mu.Lock()
		defer f.mu.Unlock()
		handleArrival(c, f)

	default:
		slog.Warn("Step called on offline car")
		c.running = false
		return false
	}

	if c.state != prevState || c.floor != prevFloor {
		slog.Debug("Car state changed",
			"from", prevState,
			"to", c.state,
			"floor", c.floor,
			"direction", c.dir,
			"weight", c.weight,
			"onboard", c.load)
	}
	return true
}

func handleIdle(c *Car, f *FloorQueues) {
	if f.total == 0 {
		return
	}
	if canLoad(c, f) || canUnload(c) {
		c.state = types.Loading
		return
	}
	c.advance()
}

func handleLoading(c *Car, f *FloorQueues) {
	if canUnload(c) {
		for _, p := range unload(c) {
			slog.Debug("Passenger unloaded", "id", p.ID, "passenger", p, "floor", c.floor, "serviced", c.serviced)
		}
	}
	if !c.deactivating && canLoad(c, f) {
		for _, p := range load(c, f) {
			slog.Debug("Passenger loaded", "id", p.ID, "passenger", p, "floor", c.floor, "weight", c.weight)
		}
	}

	if hasDemand(c, f) {
		c.advance()
	} else {
		c.state = types.Idle
	}
}

// handleArrival runs after a moving pause. The floor was already advanced when the
// moving state was entered.
func handleArrival(c *Car, f *FloorQueues) {
	switch {
	case canUnload(c) || (!c.deactivating && canLoad(c, f)):
		c.state = types.Loading
	case hasDemand(c, f):
		c.advance()
	default:
		c.state = types.Idle
	}
}

// pauseTicks is the number of ticks the worker waits before stepping from state.
func pauseTicks(state types.CarState) int {
	switch state {
	case types.MovingUp, types.MovingDown:
		return config.MovingTicks
	case types.Loading:
		return config.LoadingTicks
	}
	return config.IdleTicks
}
