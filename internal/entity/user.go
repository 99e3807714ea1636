package entity

import (
	"errors"
	"time"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type User struct {
	ID           int64
	Username     string
	PasswordHash []byte
	CreatedAt    time.Time
}

type Credentials struct {
	Username string `validate:"required,notblank,max=150"`
	Password string `validate:"required"`
}

func (c Credentials) Validate() error {
	return validateStruct(c)
}
