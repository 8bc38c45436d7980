package service

import (
	"time"

	"github.com/madhu363/harvest-wheels-link/lib/models"
)

// computeTotalAmount fixes the booking price at creation time. It is never
// recomputed, even if the vehicle's hourly rate changes later.
func computeTotalAmount(pricePerHour float64, duration int) float64 {
	return pricePerHour * float64(duration)
}

// validateBookingInput checks the constraints the original booking form
// enforced: bounded duration, a known task, and a date that is not in the
// past. Returns an empty string when the input is acceptable.
func validateBookingInput(input models.BookingInput, now time.Time) string {
	if input.Duration < 1 || input.Duration > 24 {
		return "duration must be between 1 and 24 hours"
	}

	if !isKnownTask(input.Task) {
		return "unknown task"
	}

	date, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		return "invalid date"
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if date.Before(today) {
		return "date must not be in the past"
	}

	if _, err := time.Parse("15:04", input.Time); err != nil {
		return "invalid time"
	}

	return ""
}

func isKnownTask(task string) bool {
	for _, t := range models.TaskTypes {
		if t == task {
			return true
		}
	}
	return false
}

// validateStatusAction restricts owner actions to the two transitions out
// of pending.
func validateStatusAction(action string) string {
	if action != models.BookingStatusAccepted && action != models.BookingStatusRejected {
		return "action must be accepted or rejected"
	}
	return ""
}
