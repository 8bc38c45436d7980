package service

import (
	"errors"
	"testing"
	"time"

	"github.com/madhu363/harvest-wheels-link/lib/models"
)

func TestCache_SetGet(t *testing.T) {
	cache := NewCache()
	stats := models.DashboardStats{TotalBookings: 4, AcceptedBookings: 2, TotalRevenue: 300}

	cache.Set("dashboard_stats", stats, time.Minute)

	got, found := cache.Get("dashboard_stats")
	if !found {
		t.Fatalf("expected cache hit")
	}
	if got.(models.DashboardStats) != stats {
		t.Fatalf("expected %+v, got %+v", stats, got)
	}
}

func TestCache_Miss(t *testing.T) {
	cache := NewCache()
	if _, found := cache.Get("nope"); found {
		t.Fatalf("expected cache miss")
	}
}

func TestCache_Expiry(t *testing.T) {
	cache := NewCache()
	cache.Set("fleet_stats", models.FleetStats{TotalVehicles: 1}, -time.Second)

	if _, found := cache.Get("fleet_stats"); found {
		t.Fatalf("expected expired entry to miss")
	}
}

func TestRetry_SucceedsAfterFailures(t *testing.T) {
	calls := 0
	err := retry(3, time.Millisecond, func() error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 3 {
		t.Fatalf("expected 3 calls, got %d", calls)
	}
}

func TestRetry_Exhausted(t *testing.T) {
	calls := 0
	err := retry(3, time.Millisecond, func() error {
		calls++
		return errors.New("permanent")
	})
	if err == nil {
		t.Fatalf("expected error")
	}
	if calls != 3 {
		t.Fatalf("expected 3 calls, got %d", calls)
	}
}
