package middleware

import (
	"strings"

	"github.com/golang-jwt/jwt/v4"
)

// UserToken is the claim set of the bearer tokens issued for hospital staff.
type UserToken struct {
	Role       string `json:"role"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Department string `json:"department"`
	jwt.RegisteredClaims
}

type UserRole string

const (
	Admin  UserRole = "admin"
	Doctor UserRole = "doctor"
	Nurse  UserRole = "nurse"
	Staff  UserRole = "staff"
)

func (s UserRole) ToString() string {
	return string(s)
}

// NormalizeRole folds the role spellings observed in tokens (case variants and
// pluralized forms) onto the closed role set.
func NormalizeRole(rawRole string) UserRole {
	switch strings.ToLower(strings.TrimSpace(rawRole)) {
	case "admin", "admins":
		return Admin
	case "doctor", "doctors":
		return Doctor
	case "nurse", "nurses":
		return Nurse
	case "staff", "staffs":
		return Staff
	}
	return ""
}
