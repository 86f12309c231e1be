package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := GenerateJWT("65f0a1b2c3d4e5f6a7b8c9d0", "crt-sub000-01@seminar.local", "staff", "65f0a1b2c3d4e5f6a7b8c9d1", "นนทบุรี")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "65f0a1b2c3d4e5f6a7b8c9d0", claims.StaffID)
	assert.Equal(t, "crt-sub000-01@seminar.local", claims.Email)
	assert.Equal(t, "staff", claims.Role)
	assert.Equal(t, "65f0a1b2c3d4e5f6a7b8c9d1", claims.CourtID)
	assert.Equal(t, "นนทบุรี", claims.Province)
}

func TestParseJWTRejectsGarbage(t *testing.T) {
	_, err := ParseJWT("")
	assert.Error(t, err)

	_, err = ParseJWT("not.a.token")
	assert.Error(t, err)
}

func TestParseJWTRejectsTamperedToken(t *testing.T) {
	token, err := GenerateJWT("id", "a@seminar.local", "staff", "", "")
	require.NoError(t, err)

	// สลับตัวอักษรท้าย signature
	tampered := token[:len(token)-2] + "xx"
	_, err = ParseJWT(tampered)
	assert.Error(t, err)
}
