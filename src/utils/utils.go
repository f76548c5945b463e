package utils

import (
	"fmt"
	"strings"

	"elevsim/src/types"
)

// ForEachFloor calls action for every floor in the snapshot, top floor first.
func ForEachFloor(status types.Status, action func(floor types.FloorStatus)) {
	for i := len(status.Floors) - 1; i >= 0; i-- {
		action(status.Floors[i])
	}
}

// FormatStatus renders a snapshot as the multi-line elevator report.
func FormatStatus(status types.Status) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Elevator state: %s\n", status.State)
	fmt.Fprintf(&sb, "Current floor: %d\n", status.Floor)
	fmt.Fprintf(&sb, "Current load: %d\n", status.Weight)
	fmt.Fprintf(&sb, "Elevator status: %s\n\n", formatPassengers(status.Onboard))

	ForEachFloor(status, func(floor types.FloorStatus) {
		marker := "[ ]"
		if floor.Floor == status.Floor {
			marker = "[*]"
		}
		fmt.Fprintf(&sb, "%s Floor %d: %d", marker, floor.Floor, floor.Waiting)
		if len(floor.Passengers) > 0 {
			sb.WriteString(" " + formatPassengers(floor.Passengers))
		}
		sb.WriteString("\n")
	})

	fmt.Fprintf(&sb, "\nNumber of passengers: %d\n", status.Load)
	fmt.Fprintf(&sb, "Number of passengers waiting: %d\n", status.Waiting)
	fmt.Fprintf(&sb, "Number of passengers serviced: %d\n", status.Serviced)
	return sb.String()
}

func formatPassengers(passengers []*types.Passenger) string {
	parts := make([]string, 0, len(passengers))
	for _, p := range passengers {
		parts = append(parts, p.String())
	}
	return strings.Join(parts, " ")
}
