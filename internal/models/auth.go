package models

import "github.com/golang-jwt/jwt/v5"

// Claims represents the JWT payload for portal access tokens. The token only
// gates the HTTP surface; the authoritative session snapshot lives in the
// store's current-session slot.
type Claims struct {
	Email string `json:"email"`
	RegNo string `json:"regNo,omitempty"`
	Role  Role   `json:"role"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}
