package console

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"elevsim/src/elev"
	"elevsim/src/types"
)

type request struct {
	origin, dest  int
	passengerType types.PassengerType
}

type fakeController struct {
	running, stopping bool
	requests          []request
}

func (f *fakeController) Start() error {
	if f.running {
		f.stopping = false
		return types.ErrAlreadyRunning
	}
	f.running = true
	return nil
}

func (f *fakeController) Stop() error {
	if f.stopping {
		return types.ErrAlreadyStopping
	}
	f.stopping = true
	return nil
}

func (f *fakeController) Request(origin, dest int, passengerType types.PassengerType) error {
	if _, err := types.NewPassenger(origin, dest, passengerType); err != nil {
		return err
	}
	f.requests = append(f.requests, request{origin, dest, passengerType})
	return nil
}

func (f *fakeController) Status() types.Status {
	return types.Status{State: types.Idle, Floor: 1, Floors: make([]types.FloorStatus, 5)}
}

func TestExecuteCommands(t *testing.T) {
	ctrl := &fakeController{}
	var out bytes.Buffer
	c := New(ctrl, &out)
	ctx := context.Background()

	lines := []string{"start", "start", "stop", "stop", "request 1 5 heavy", "request 2 3 3", "# comment", ""}
	for _, line := range lines {
		if _, err := c.Execute(ctx, line); err != nil {
			t.Fatalf("Execute(%q): %v", line, err)
		}
	}

	expected := "started\nalready running\nstop requested\nalready stopping\naccepted\naccepted\n"
	if out.String() != expected {
		t.Errorf("Expected output %q, got %q", expected, out.String())
	}
	if len(ctrl.requests) != 2 || ctrl.requests[0] != (request{1, 5, types.Heavy}) || ctrl.requests[1] != (request{2, 3, types.Priority}) {
		t.Errorf("Unexpected requests: %v", ctrl.requests)
	}
}

func TestExecuteRejectsBadInput(t *testing.T) {
	c := New(&fakeController{}, &bytes.Buffer{})
	ctx := context.Background()

	invalid := []string{"request 1 5", "request one 5 0", "request 1 x 0", "request 1 5 robot", "request 0 5 0", "request 1 6 0"}
	for _, line := range invalid {
		if _, err := c.Execute(ctx, line); !errors.Is(err, types.ErrInvalidRequest) {
			t.Errorf("Execute(%q): expected ErrInvalidRequest, got %v", line, err)
		}
	}
	if _, err := c.Execute(ctx, "fly 3"); !errors.Is(err, ErrUnknownCommand) {
		t.Errorf("Expected ErrUnknownCommand, got %v", err)
	}
	if _, err := c.Execute(ctx, "sleep soon"); err == nil {
		t.Error("Expected error for bad duration")
	}
}

func TestExecuteQuit(t *testing.T) {
	c := New(&fakeController{}, &bytes.Buffer{})
	for _, line := range []string{"quit", "EXIT"} {
		quit, err := c.Execute(context.Background(), line)
		if !quit || err != nil {
			t.Errorf("Execute(%q): expected quit, got %v, %v", line, quit, err)
		}
	}
}

func TestHandleKey(t *testing.T) {
	ctrl := &fakeController{}
	c := New(ctrl, &bytes.Buffer{})
	ctx := context.Background()

	for _, key := range "srrpx?" {
		if c.HandleKey(ctx, key) {
			t.Fatalf("Key %q should not quit", key)
		}
	}
	if !ctrl.running || !ctrl.stopping || len(ctrl.requests) != 2 {
		t.Errorf("Unexpected controller state: %+v", ctrl)
	}
	if !c.HandleKey(ctx, 'q') {
		t.Error("Expected q to quit")
	}
}

func TestRunScriptAgainstElevator(t *testing.T) {
	e := elev.New(time.Millisecond)
	defer e.Shutdown(context.Background())

	script := strings.Join([]string{
		"start",
		"request 1 5 standard",
		"request 1 3 heavy",
		"request 9 1 0", // rejected, script continues
		"sleep 200ms",
		"stop",
		"wait-offline 5s",
		"status",
		"quit",
		"start", // never reached
	}, "\n")

	var out bytes.Buffer
	if err := New(e, &out).RunScript(context.Background(), strings.NewReader(script)); err != nil {
		t.Fatalf("RunScript: %v", err)
	}

	status := e.Status()
	if status.State != types.Offline || status.Serviced != 2 {
		t.Errorf("Expected offline with 2 serviced, got %v with %d", status.State, status.Serviced)
	}
	text := out.String()
	for _, want := range []string{"error: invalid request", "offline\n", "Number of passengers serviced: 2"} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, text)
		}
	}
}
