package elev

import (
	"github.com/tiendc/go-deepcopy"

	"elevsim/src/types"
)

// Status returns a consistent snapshot of the car and the floor queues. Passenger
// records are deep copies, so the caller may keep or modify them freely.
func (e *Elevator) Status() types.Status {
	c, f := &e.car, &e.floors
	c.mu.Lock()
	defer c.mu.Unlock()
	f.mu.Lock()
	defer f.mu.Unlock()

	status := types.Status{
		State:    c.state,
		Floor:    c.floor,
		Dir:      c.dir,
		Weight:   c.weight,
		Load:     c.load,
		Serviced: c.serviced,
		Waiting:  f.total,
		Running:  c.running,
		Stopping: c.deactivating,
		Floors:   make([]types.FloorStatus, len(f.queues)),
	}
	if err := deepcopy.Copy(&status.Onboard, c.passengers); err != nil {
		panic(err)
	}
	for i := range f.queues {
		status.Floors[i] = types.FloorStatus{
			Floor:   i + 1,
			Waiting: f.waiting[i],
		}
		if err := deepcopy.Copy(&status.Floors[i].Passengers, f.queues[i]); err != nil {
			panic(err)
		}
	}
	return status
}
