package elev

import (
	"elevsim/src/config"
	"elevsim/src/types"
)

// All functions in this file expect both the car and the floor locks to be held.

func (f *FloorQueues) at(floor int) []*types.Passenger {
	return f.queues[floor-1]
}

// fits reports whether p can board right now without exceeding capacity.
func (c *Car) fits(p *types.Passenger) bool {
	return c.load < config.MaxPassengers && c.weight+p.Weight <= config.MaxWeight
}

// canLoad checks the queue at the current floor against the car as it is now.
func canLoad(c *Car, f *FloorQueues) bool {
	for _, p := range f.at(c.floor) {
		if c.fits(p) {
			return true
		}
	}
	return false
}

// load boards waiting passengers greedily in arrival order. A passenger that does
// not fit is skipped, and later ones in the queue are still tried.
func load(c *Car, f *FloorQueues) []*types.Passenger {
	idx := c.floor - 1
	queue := f.queues[idx]
	kept := make([]*types.Passenger, 0, len(queue))
	var boarded []*types.Passenger

	for _, p := range queue {
		if !c.fits(p) {
			kept = append(kept, p)
			continue
		}
		c.passengers = append(c.passengers, p)
		c.weight += p.Weight
		c.load++
		f.waiting[idx]--
		f.total--
		boarded = append(boarded, p)
	}
	f.queues[idx] = kept
	return boarded
}

func canUnload(c *Car) bool {
	for _, p := range c.passengers {
		if p.Dest == c.floor {
			return true
		}
	}
	return false
}

// unload drops every onboard passenger whose destination is the current floor.
func unload(c *Car) []*types.Passenger {
	kept := make([]*types.Passenger, 0, len(c.passengers))
	var dropped []*types.Passenger

	for _, p := range c.passengers {
		if p.Dest != c.floor {
			kept = append(kept, p)
			continue
		}
		c.weight -= p.Weight
		c.load--
		c.serviced++
		dropped = append(dropped, p)
	}
	c.passengers = kept
	return dropped
}

// advance moves the car one floor along its bias, reversing the bias at floor 1 and
// at the top floor.
func (c *Car) advance() {
	switch {
	case c.dir == types.Up && c.floor == config.NumFloors:
		c.dir = types.Down
	case c.dir == types.Down && c.floor == 1:
		c.dir = types.Up
	}

	if c.dir == types.Up {
		c.floor++
		c.state = types.MovingUp
	} else {
		c.floor--
		c.state = types.MovingDown
	}
}

// hasDemand reports whether the car still has somewhere to go. Waiting passengers
// only count while the car is not shutting down.
func hasDemand(c *Car, f *FloorQueues) bool {
	return c.load > 0 || (f.total > 0 && !c.deactivating)
}
