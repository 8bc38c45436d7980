package service

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgtype"

	"github.com/madhu363/harvest-wheels-link/lib/models"
)

func (s *AdminService) GetDashboardStats(c *gin.Context) {
	if stats, found := s.cache.Get("dashboard_stats"); found {
		c.JSON(http.StatusOK, stats)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var stats models.DashboardStats
	var revenue pgtype.Float8

	err := retry(3, 100*time.Millisecond, func() error {
		return s.pool.QueryRow(ctx, `
			SELECT
				COUNT(*) AS total_bookings,
				COUNT(*) FILTER (WHERE status = 'pending') AS pending_bookings,
				COUNT(*) FILTER (WHERE status = 'accepted') AS accepted_bookings,
				SUM(CAST(total_amount AS FLOAT)) FILTER (WHERE status = 'accepted') AS total_revenue
			FROM bookings
		`).Scan(
			&stats.TotalBookings,
			&stats.PendingBookings,
			&stats.AcceptedBookings,
			&revenue,
		)
	})

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to fetch dashboard stats: %v", err)})
		return
	}

	stats.TotalRevenue = revenue.Float

	s.cache.Set("dashboard_stats", stats, 5*time.Minute)
	c.JSON(http.StatusOK, stats)
}

func (s *AdminService) GetFleetStats(c *gin.Context) {
	if stats, found := s.cache.Get("fleet_stats"); found {
		c.JSON(http.StatusOK, stats)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var stats models.FleetStats

	err := retry(3, 100*time.Millisecond, func() error {
		tx, err := s.pool.Begin(ctx)
		if err != nil {
			return fmt.Errorf("failed to start transaction: %v", err)
		}
		defer tx.Rollback(ctx)

		err = tx.QueryRow(ctx, `SELECT COUNT(*) FROM vehicles`).Scan(&stats.TotalVehicles)
		if err != nil {
			return fmt.Errorf("failed to fetch total vehicles: %v", err)
		}

		err = tx.QueryRow(ctx, `SELECT COUNT(*) FROM vehicles WHERE is_available = true`).Scan(&stats.AvailableVehicles)
		if err != nil {
			return fmt.Errorf("failed to fetch available vehicles: %v", err)
		}

		rows, err := tx.Query(ctx, `SELECT type, COUNT(*) FROM vehicles GROUP BY type`)
		if err != nil {
			return fmt.Errorf("failed to fetch vehicle type breakdown: %v", err)
		}
		defer rows.Close()

		stats.VehicleTypeBreakdown = make(map[string]int)
		for rows.Next() {
			var vehicleType string
			var count int
			if err := rows.Scan(&vehicleType, &count); err != nil {
				return fmt.Errorf("failed to scan vehicle type breakdown: %v", err)
			}
			stats.VehicleTypeBreakdown[vehicleType] = count
		}

		return tx.Commit(ctx)
	})

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	s.cache.Set("fleet_stats", stats, 5*time.Minute)
	c.JSON(http.StatusOK, stats)
}

func (s *AdminService) GetAllBookings(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var bookings []models.Booking

	err := retry(3, 100*time.Millisecond, func() error {
		rows, err := s.pool.Query(ctx, `
			SELECT
				b.id, b.farmer_id, b.vehicle_id, p.name, COALESCE(v.name, ''),
				b.date, b.time, b.duration, b.field_location, b.task, b.status,
				b.total_amount, b.notes, b.created_at, b.updated_at
			FROM bookings b
			JOIN profiles p ON p.id = b.farmer_id
			LEFT JOIN vehicles v ON v.id = b.vehicle_id
			ORDER BY b.created_at DESC
		`)
		if err != nil {
			return fmt.Errorf("failed to fetch bookings: %v", err)
		}
		defer rows.Close()

		bookings = bookings[:0]
		for rows.Next() {
			var b models.Booking
			var notes pgtype.Text
			if err := rows.Scan(&b.ID, &b.FarmerID, &b.VehicleID, &b.FarmerName, &b.VehicleName,
				&b.Date, &b.Time, &b.Duration, &b.FieldLocation, &b.Task, &b.Status,
				&b.TotalAmount, &notes, &b.CreatedAt, &b.UpdatedAt); err != nil {
				return fmt.Errorf("failed to scan booking: %v", err)
			}
			b.Notes = notes.String
			bookings = append(bookings, b)
		}

		return rows.Err()
	})

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

func (s *AdminService) GetAllUsers(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var profiles []models.Profile

	err := retry(3, 100*time.Millisecond, func() error {
		rows, err := s.pool.Query(ctx, `
			SELECT id, email, name, role, phone, mobile_number, location, created_at, updated_at
			FROM profiles
			ORDER BY created_at DESC
		`)
		if err != nil {
			return fmt.Errorf("failed to fetch users: %v", err)
		}
		defer rows.Close()

		profiles = profiles[:0]
		for rows.Next() {
			var p models.Profile
			var phone, mobile, location pgtype.Text
			if err := rows.Scan(&p.ID, &p.Email, &p.Name, &p.Role, &phone, &mobile,
				&location, &p.CreatedAt, &p.UpdatedAt); err != nil {
				return fmt.Errorf("failed to scan user: %v", err)
			}
			p.Phone = phone.String
			p.MobileNumber = mobile.String
			p.Location = location.String
			profiles = append(profiles, p)
		}

		return rows.Err()
	})

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": profiles})
}

func retry(attempts int, sleep time.Duration, f func() error) error {
	var err error
	for i := 0; ; i++ {
		err = f()
		if err == nil {
			return nil
		}
		if i >= attempts-1 {
			break
		}
		time.Sleep(sleep)
		sleep *= 2
	}
	return fmt.Errorf("after %d attempts, last error: %s", attempts, err)
}
