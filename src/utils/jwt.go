package utils

import (
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func getJWTSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "your_secret_key" // fallback for development
	}
	return []byte(secret)
}

// JWTClaims ข้อมูลเจ้าหน้าที่ใน token — courtId/province ใช้กรองขอบเขตข้อมูล
type JWTClaims struct {
	StaffID  string `json:"staffId"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	CourtID  string `json:"courtId,omitempty"`
	Province string `json:"province,omitempty"`
	jwt.RegisteredClaims
}

func GenerateJWT(staffID, email, role, courtID, province string) (string, error) {
	claims := JWTClaims{
		StaffID:  staffID,
		Email:    email,
		Role:     role,
		CourtID:  courtID,
		Province: province,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(getJWTSecret())
}

func ParseJWT(tokenStr string) (*JWTClaims, error) {
	if tokenStr == "" {
		return nil, fmt.Errorf("empty token string")
	}

	token, err := jwt.ParseWithClaims(tokenStr, &JWTClaims{}, func(t *jwt.Token) (interface{}, error) {
		return getJWTSecret(), nil
	})

	if err != nil || token == nil {
		return nil, fmt.Errorf("token parsing failed: %v", err)
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	return claims, nil
}
