package models

import (
	"database/sql"
	"time"
)

// User is the identity record. PasswordHash and RefreshToken never leave the
// service layer; handlers expose only the public fields.
type User struct {
	ID           int64
	Name         string
	Email        string
	Phone        string
	PasswordHash string
	RefreshToken sql.NullString
	CreatedAt    time.Time
}
