package elev

import (
	"context"
	"log/slog"
	"time"

	"elevsim/src/config"
	"elevsim/src/timer"
	"elevsim/src/types"
)

// New creates an offline elevator parked at the start floor, biased upwards.
// tick is the length of one pause unit of the movement engine.
func New(tick time.Duration) *Elevator {
	if tick <= 0 {
		tick = config.DefaultTick
	}
	e := &Elevator{tick: tick}
	e.car.state = types.Offline
	e.car.floor = config.StartFloor
	e.car.dir = types.Up
	return e
}

// Start brings the car online and spawns the movement engine. If the car is already
// running, a pending stop is cancelled and ErrAlreadyRunning is returned.
func (e *Elevator) Start() error {
	c := &e.car
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.running {
		if c.deactivating {
			c.deactivating = false
			slog.Info("Pending stop cancelled")
		}
		return types.ErrAlreadyRunning
	}

	c.state = types.Idle
	c.weight = 0
	c.load = 0
	c.passengers = nil
	c.deactivating = false
	c.running = true

	if e.cancel != nil {
		e.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	e.cancel, e.done = cancel, done
	go e.run(ctx, done)

	slog.Info("Elevator started", "floor", c.floor, "direction", c.dir)
	return nil
}

// Request enqueues a passenger at its origin floor. Only the floor lock is taken, so
// this never waits on a movement step. Requests are accepted while stopping too.
func (e *Elevator) Request(origin, dest int, passengerType types.PassengerType) error {
	p, err := types.NewPassenger(origin, dest, passengerType)
	if err != nil {
		slog.Warn("Request rejected", "origin", origin, "dest", dest, "type", int(passengerType), "err", err)
		return err
	}

	f := &e.floors
	f.mu.Lock()
	f.queues[origin-1] = append(f.queues[origin-1], p)
	f.waiting[origin-1]++
	f.total++
	waiting := f.total
	f.mu.Unlock()

	slog.Debug("Request accepted", "id", p.ID, "type", p.Type, "origin", origin, "dest", dest, "waiting", waiting)
	return nil
}

// Stop asks the car to go offline once it is idle. It never blocks on the worker.
func (e *Elevator) Stop() error {
	c := &e.car
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.deactivating {
		return types.ErrAlreadyStopping
	}
	c.deactivating = true
	slog.Info("Stop requested", "state", c.state, "onboard", c.load)
	return nil
}

// Shutdown tears the worker down whatever it is doing, waits for it to exit and
// discards every passenger, onboard or waiting. It is meant for process exit and must
// not run concurrently with Start.
func (e *Elevator) Shutdown(ctx context.Context) error {
	c := &e.car
	c.mu.Lock()
	cancel, done := e.cancel, e.done
	e.cancel, e.done = nil, nil
	c.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if done != nil {
		select {
		case <-done:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	f := &e.floors
	f.mu.Lock()
	defer f.mu.Unlock()

	dropped := c.load + f.total
	c.passengers = nil
	c.weight = 0
	c.load = 0
	c.state = types.Offline
	c.running = false
	c.deactivating = false
	for i := range f.queues {
		f.queues[i] = nil
		f.waiting[i] = 0
	}
	f.total = 0

	slog.Info("Elevator shut down", "discarded", dropped)
	return nil
}

// run is the movement engine loop. It pauses, then steps, until the car goes offline
// or the worker is torn down.
func (e *Elevator) run(ctx context.Context, done chan<- struct{}) {
	defer close(done)
	for {
		if !timer.Pause(ctx, pauseTicks(e.currentState()), e.tick) {
			slog.Debug("Movement engine torn down")
			return
		}
		if !e.step() {
			return
		}
	}
}

func (e *Elevator) currentState() types.CarState {
	e.car.mu.Lock()
	defer e.car.mu.Unlock()
	return e.car.state
}
