package token

import (
	"fmt"
	"time"

	"github.com/madhu363/harvest-wheels-link/lib/models"

	"github.com/dgrijalva/jwt-go"
	"github.com/spf13/viper"
)

type Claims struct {
	Name string `json:"name"`
	Role string `json:"role"`
	jwt.StandardClaims
}

func jwtKey() []byte {
	return []byte(viper.GetString("JWT_SECRET"))
}

// GenerateToken issues a JWT carrying the profile id, display name and role.
func GenerateToken(userID, userName, role string) (string, error) {
	expirationTime := time.Now().Add(72 * time.Hour)
	claims := &Claims{
		Name: userName,
		Role: role,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
			Subject:   userID,
			Issuer:    "harvest-wheels-link",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(jwtKey())
	if err != nil {
		return "", fmt.Errorf("error signing token: %v", err)
	}

	return tokenString, nil
}

// ValidateToken checks the signature and expiry of the provided JWT.
func ValidateToken(tokenString string) (bool, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return jwtKey(), nil
	})
	if err != nil {
		return false, fmt.Errorf("error parsing token: %v", err)
	}

	return token.Valid, nil
}

// GetUserFromToken extracts the authenticated user from the token claims.
func GetUserFromToken(tokenString string) (models.UserRequest, error) {
	claims := &Claims{}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return jwtKey(), nil
	})
	if err != nil {
		return models.UserRequest{}, fmt.Errorf("error parsing token: %v", err)
	}

	user := models.UserRequest{
		UserID:   claims.Subject,
		UserName: claims.Name,
		Role:     claims.Role,
	}

	return user, nil
}
