package service

import (
	"context"
	"net/http"

	"github.com/madhu363/harvest-wheels-link/lib/database"
	"github.com/madhu363/harvest-wheels-link/lib/models"
	"github.com/madhu363/harvest-wheels-link/lib/token"
	"github.com/madhu363/harvest-wheels-link/services/authentication/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgtype"
)

type authService struct {
	db database.Database
}

func NewAuthService(db database.Database) interfaces.AuthService {
	return &authService{db: db}
}

type registerRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Role     string `json:"role" binding:"required"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
}

func (s *authService) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Role != models.RoleFarmer && req.Role != models.RoleVehicleOwner {
		c.JSON(http.StatusBadRequest, gin.H{"error": "role must be farmer or vehicle_owner"})
		return
	}

	profileID := uuid.NewString()
	_, err := s.db.Exec(
		context.Background(),
		"INSERT INTO profiles (id, email, password, name, role, phone, location) VALUES ($1, $2, $3, $4, $5, $6, $7)",
		profileID, req.Email, req.Password, req.Name, req.Role, req.Phone, req.Location,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save profile", "message": err.Error()})
		return
	}

	authToken, err := token.GenerateToken(profileID, req.Name, req.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": authToken, "id": profileID, "name": req.Name, "role": req.Role})
}

func (s *authService) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	row := s.db.QueryRow(
		context.Background(),
		"SELECT id, name, role FROM profiles WHERE email = $1 AND password = $2",
		req.Email, req.Password,
	)

	var p models.Profile
	if err := row.Scan(&p.ID, &p.Name, &p.Role); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	authToken, err := token.GenerateToken(p.ID, p.Name, p.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": authToken, "id": p.ID, "name": p.Name, "role": p.Role})
}

func (s *authService) GetProfile(c *gin.Context) {
	authUser, ok := c.Get("user")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid auth token"})
		return
	}

	user := authUser.(models.UserRequest)

	row := s.db.QueryRow(
		context.Background(),
		`SELECT id, email, name, role, phone, location, address, mobile_number,
			license_number, vehicle_number, photo_url, created_at, updated_at
		FROM profiles WHERE id = $1`,
		user.UserID,
	)

	var p models.Profile
	var phone, location, address, mobile, license, vehicleNo, photo pgtype.Text
	err := row.Scan(&p.ID, &p.Email, &p.Name, &p.Role, &phone, &location, &address,
		&mobile, &license, &vehicleNo, &photo, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get profile", "message": err.Error()})
		return
	}

	p.Phone = phone.String
	p.Location = location.String
	p.Address = address.String
	p.MobileNumber = mobile.String
	p.LicenseNumber = license.String
	p.VehicleNumber = vehicleNo.String
	p.PhotoURL = photo.String

	c.JSON(http.StatusOK, gin.H{"profile": p})
}

type profileSetupRequest struct {
	Phone         string `json:"phone,omitempty"`
	Location      string `json:"location,omitempty"`
	Address       string `json:"address,omitempty"`
	MobileNumber  string `json:"mobile_number,omitempty"`
	LicenseNumber string `json:"license_number,omitempty"`
	VehicleNumber string `json:"vehicle_number,omitempty"`
	PhotoURL      string `json:"photo_url,omitempty"`
}

func (s *authService) UpdateProfile(c *gin.Context) {
	authUser, ok := c.Get("user")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid auth token"})
		return
	}

	user := authUser.(models.UserRequest)

	var req profileSetupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if reason := validateProfileSetup(user.Role, req.LicenseNumber, req.VehicleNumber); reason != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": reason})
		return
	}

	comm, err := s.db.Exec(
		context.Background(),
		`UPDATE profiles SET phone = $1, location = $2, address = $3, mobile_number = $4,
			license_number = $5, vehicle_number = $6, photo_url = $7, updated_at = NOW()
		WHERE id = $8`,
		req.Phone, req.Location, req.Address, req.MobileNumber,
		req.LicenseNumber, req.VehicleNumber, req.PhotoURL, user.UserID,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile", "message": err.Error()})
		return
	}
	if comm.RowsAffected() == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully"})
}

func (s *authService) AdminLogin(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	row := s.db.QueryRow(
		context.Background(),
		"SELECT id, name FROM profiles WHERE email = $1 AND password = $2 AND role = $3",
		req.Email, req.Password, models.RoleAdmin,
	)

	var p models.Profile
	if err := row.Scan(&p.ID, &p.Name); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	authToken, err := token.GenerateToken(p.ID, p.Name, models.RoleAdmin)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": authToken, "name": p.Name})
}

func (s *authService) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Auth service is healthy"})
}
