// Package console turns text commands and key presses into calls on the elevator.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"elevsim/src/types"
	"elevsim/src/utils"
)

// Controller is the part of the elevator the console drives.
type Controller interface {
	Start() error
	Stop() error
	Request(origin, dest int, passengerType types.PassengerType) error
	Status() types.Status
}

var ErrUnknownCommand = errors.New("unknown command")

// pollInterval is how often wait-offline looks at the status.
const pollInterval = 10 * time.Millisecond

type Console struct {
	ctrl Controller
	out  io.Writer
}

func New(ctrl Controller, out io.Writer) *Console {
	return &Console{ctrl: ctrl, out: out}
}

// Execute runs a single command line. It returns true if the line asked to quit.
func (c *Console) Execute(ctx context.Context, line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return false, nil
	}

	cmd, args := strings.ToLower(fields[0]), fields[1:]
	switch cmd {
	case "start":
		c.start()
	case "stop":
		c.stop()
	case "request":
		return false, c.request(args)
	case "status":
		fmt.Fprint(c.out, utils.FormatStatus(c.ctrl.Status()))
	case "sleep":
		d, err := durationArg(args)
		if err != nil {
			return false, err
		}
		select {
		case <-time.After(d):
		case <-ctx.Done():
			return true, ctx.Err()
		}
	case "wait-offline":
		d, err := durationArg(args)
		if err != nil {
			return false, err
		}
		return false, c.waitOffline(ctx, d)
	case "quit", "exit":
		return true, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrUnknownCommand, cmd)
	}
	return false, nil
}

// RunScript executes commands line by line until EOF or quit. A failing line is
// reported and the script carries on.
func (c *Console) RunScript(ctx context.Context, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		quit, err := c.Execute(ctx, scanner.Text())
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			slog.Warn("Command failed", "line", lineNo, "err", err)
			fmt.Fprintf(c.out, "error: %v\n", err)
		}
		if quit {
			return nil
		}
	}
	return scanner.Err()
}

func (c *Console) start() {
	err := c.ctrl.Start()
	switch {
	case errors.Is(err, types.ErrAlreadyRunning):
		fmt.Fprintln(c.out, "already running")
	default:
		fmt.Fprintln(c.out, "started")
	}
}

func (c *Console) stop() {
	err := c.ctrl.Stop()
	switch {
	case errors.Is(err, types.ErrAlreadyStopping):
		fmt.Fprintln(c.out, "already stopping")
	default:
		fmt.Fprintln(c.out, "stop requested")
	}
}

func (c *Console) request(args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("%w: usage: request <origin> <dest> <type>", types.ErrInvalidRequest)
	}
	origin, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("%w: origin %q", types.ErrInvalidRequest, args[0])
	}
	dest, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("%w: destination %q", types.ErrInvalidRequest, args[1])
	}
	passengerType, err := types.ParsePassengerType(args[2])
	if err != nil {
		return err
	}
	if err := c.ctrl.Request(origin, dest, passengerType); err != nil {
		return err
	}
	fmt.Fprintln(c.out, "accepted")
	return nil
}

// waitOffline polls the status until the car is offline or timeout passes.
func (c *Console) waitOffline(ctx context.Context, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()
	for {
		if status := c.ctrl.Status(); status.State == types.Offline && !status.Running {
			fmt.Fprintln(c.out, "offline")
			return nil
		}
		select {
		case <-ticker.C:
		case <-ctx.Done():
			return fmt.Errorf("wait-offline: %w", ctx.Err())
		}
	}
}

func durationArg(args []string) (time.Duration, error) {
	if len(args) != 1 {
		return 0, errors.New("expected a single duration argument")
	}
	return time.ParseDuration(args[0])
}
