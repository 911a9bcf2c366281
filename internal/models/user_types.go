package models

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// User is a document in the 'users' collection. IsAdmin is the capability
// flag the dashboard routes are gated on; it is only ever set by hand on the
// stored document, never through the API.
type User struct {
	ID           string    `json:"id" bson:"_id"`
	Email        string    `json:"email" bson:"email"`
	DisplayName  string    `json:"displayName" bson:"displayName"`
	PasswordHash string    `json:"-" bson:"passwordHash"`
	IsAdmin      bool      `json:"isAdmin" bson:"isAdmin"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt" bson:"updatedAt"`

	// Password reset flow
	ResetCode   *string    `json:"-" bson:"resetCode,omitempty"`
	ResetExpiry *time.Time `json:"-" bson:"resetExpiry,omitempty"`
}

// Password Helper (Standard)
type Password struct {
	Plaintext *string
	Hash      string
}

func (p *Password) Set(plaintextPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintextPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	p.Hash = string(hash)
	p.Plaintext = &plaintextPassword
	return nil
}

func (p *Password) Matches(plaintextPassword string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(p.Hash), []byte(plaintextPassword))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
