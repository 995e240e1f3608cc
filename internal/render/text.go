package render

import (
	"carpool-service/internal/domain"
	"fmt"
	"io"
	"strings"
)

// Text writes a plain-text report of res: one block per driver with
// passengers, then the people left without a ride.
func Text(w io.Writer, res *domain.Result) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Origin: %s\n", res.Origin)

	for _, ride := range res.Rides {
		if len(ride.Passengers) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\nDriver: %s\n", ride.Driver.Name)
		for _, p := range ride.Passengers {
			if p.ParentPickup {
				fmt.Fprintf(&b, "- %s (own child)\n", p.Name)
				continue
			}
			fmt.Fprintf(&b, "- %s\n", p.Name)
		}
		fmt.Fprintf(&b, "Distance travelled: %.1f\n", ride.DistanceTravelled)
	}

	if len(res.SelfDriven) > 0 {
		b.WriteString("\nDriving themselves:\n")
		for _, name := range res.SelfDriven {
			fmt.Fprintf(&b, "- %s\n", name)
		}
	}

	if len(res.Unassigned) > 0 {
		b.WriteString("\nUnassigned people:\n")
		for _, name := range res.Unassigned {
			fmt.Fprintf(&b, "- %s\n", name)
		}
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("render text: %w", err)
	}
	return nil
}
