package console

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/eiannone/keyboard"

	"elevsim/src/config"
	"elevsim/src/types"
)

// RunInteractive reads single key presses from the terminal:
//   - s: start, x: stop
//   - r: random request
//   - p: print status
//   - q or Ctrl-C: quit
func (c *Console) RunInteractive(ctx context.Context) error {
	if err := keyboard.Open(); err != nil {
		return fmt.Errorf("open keyboard: %w", err)
	}
	defer keyboard.Close()

	fmt.Fprintln(c.out, "s: start | x: stop | r: random request | p: status | q: quit")
	for ctx.Err() == nil {
		char, key, err := keyboard.GetKey()
		if err != nil {
			return fmt.Errorf("read key: %w", err)
		}
		if key == keyboard.KeyCtrlC || c.HandleKey(ctx, char) {
			return nil
		}
	}
	return ctx.Err()
}

// HandleKey runs the command bound to char. It returns true on quit.
func (c *Console) HandleKey(ctx context.Context, char rune) bool {
	var line string
	switch char {
	case 's', 'S':
		line = "start"
	case 'x', 'X':
		line = "stop"
	case 'p', 'P':
		line = "status"
	case 'r', 'R':
		line = randomRequest()
	case 'q', 'Q':
		return true
	default:
		return false
	}

	quit, err := c.Execute(ctx, line)
	if err != nil {
		fmt.Fprintf(c.out, "error: %v\n", err)
	}
	return quit
}

func randomRequest() string {
	origin := rand.IntN(config.NumFloors) + 1
	dest := rand.IntN(config.NumFloors) + 1
	passengerType := types.PassengerType(rand.IntN(4))
	return fmt.Sprintf("request %d %d %d", origin, dest, int(passengerType))
}
