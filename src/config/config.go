package config

import "time"

const (
	NumFloors     = 5
	MaxPassengers = 5
	MaxWeight     = 700
	StartFloor    = 1

	// Pause lengths in ticks. Moving between floors takes longer than loading.
	IdleTicks    = 1
	LoadingTicks = 1
	MovingTicks  = 2

	DefaultTick = 1 * time.Second
)
