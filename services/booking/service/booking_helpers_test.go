package service

import (
	"testing"
	"time"

	"github.com/madhu363/harvest-wheels-link/lib/models"
)

var testNow = time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

func validInput() models.BookingInput {
	return models.BookingInput{
		VehicleID:     "5b8f7d2e-0000-0000-0000-000000000001",
		Date:          "2025-06-12",
		Time:          "08:30",
		Duration:      3,
		FieldLocation: "North paddock, Farm Valley",
		Task:          "ploughing",
	}
}

func TestComputeTotalAmount(t *testing.T) {
	if got := computeTotalAmount(50, 3); got != 150 {
		t.Fatalf("expected 150, got %v", got)
	}
}

func TestComputeTotalAmount_SingleHour(t *testing.T) {
	if got := computeTotalAmount(37.5, 1); got != 37.5 {
		t.Fatalf("expected 37.5, got %v", got)
	}
}

func TestValidateBookingInput_OK(t *testing.T) {
	if reason := validateBookingInput(validInput(), testNow); reason != "" {
		t.Fatalf("expected valid, got reason=%q", reason)
	}
}

func TestValidateBookingInput_SameDay(t *testing.T) {
	input := validInput()
	input.Date = "2025-06-10"
	if reason := validateBookingInput(input, testNow); reason != "" {
		t.Fatalf("expected same-day booking to be valid, got reason=%q", reason)
	}
}

func TestValidateBookingInput_DurationTooShort(t *testing.T) {
	input := validInput()
	input.Duration = 0
	reason := validateBookingInput(input, testNow)
	if reason != "duration must be between 1 and 24 hours" {
		t.Fatalf("unexpected reason %q", reason)
	}
}

func TestValidateBookingInput_DurationTooLong(t *testing.T) {
	input := validInput()
	input.Duration = 25
	reason := validateBookingInput(input, testNow)
	if reason != "duration must be between 1 and 24 hours" {
		t.Fatalf("unexpected reason %q", reason)
	}
}

func TestValidateBookingInput_UnknownTask(t *testing.T) {
	input := validInput()
	input.Task = "threshing"
	if reason := validateBookingInput(input, testNow); reason != "unknown task" {
		t.Fatalf("unexpected reason %q", reason)
	}
}

func TestValidateBookingInput_AllTasks(t *testing.T) {
	for _, task := range models.TaskTypes {
		input := validInput()
		input.Task = task
		if reason := validateBookingInput(input, testNow); reason != "" {
			t.Fatalf("task %q rejected: %q", task, reason)
		}
	}
}

func TestValidateBookingInput_PastDate(t *testing.T) {
	input := validInput()
	input.Date = "2025-06-09"
	if reason := validateBookingInput(input, testNow); reason != "date must not be in the past" {
		t.Fatalf("unexpected reason %q", reason)
	}
}

func TestValidateBookingInput_BadDate(t *testing.T) {
	input := validInput()
	input.Date = "12/06/2025"
	if reason := validateBookingInput(input, testNow); reason != "invalid date" {
		t.Fatalf("unexpected reason %q", reason)
	}
}

func TestValidateBookingInput_BadTime(t *testing.T) {
	input := validInput()
	input.Time = "8:30 AM"
	if reason := validateBookingInput(input, testNow); reason != "invalid time" {
		t.Fatalf("unexpected reason %q", reason)
	}
}

func TestValidateStatusAction(t *testing.T) {
	if reason := validateStatusAction("accepted"); reason != "" {
		t.Fatalf("expected accepted to be valid, got %q", reason)
	}
	if reason := validateStatusAction("rejected"); reason != "" {
		t.Fatalf("expected rejected to be valid, got %q", reason)
	}
	if reason := validateStatusAction("completed"); reason == "" {
		t.Fatalf("expected completed to be rejected")
	}
	if reason := validateStatusAction("pending"); reason == "" {
		t.Fatalf("expected pending to be rejected")
	}
}
