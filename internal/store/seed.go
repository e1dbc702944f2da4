package store

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/go-authgate/riskgate/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

// SeedUser is a plaintext user definition; the password is hashed on insert.
type SeedUser struct {
	Email     string `yaml:"email"`
	Password  string `yaml:"password"`
	Role      string `yaml:"role"`
	MFASecret string `yaml:"mfa_secret"`
}

type seedFile struct {
	Users []SeedUser `yaml:"users"`
}

// DemoUsers are the two accounts the login scenarios are written against.
func DemoUsers() []SeedUser {
	return []SeedUser{
		{
			Email:     "user@lowrisk.com",
			Password:  "password123",
			Role:      models.RoleUser,
			MFASecret: "123456",
		},
		{
			Email:     "admin@highrisk.com",
			Password:  "admin123",
			Role:      models.RoleAdmin,
			MFASecret: "654321",
		},
	}
}

// LoadSeedFile reads users from a YAML document of the form
//
//	users:
//	  - email: someone@example.com
//	    password: secret
//	    role: user
//	    mfa_secret: "123456"
func LoadSeedFile(path string) ([]SeedUser, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read users file: %w", err)
	}

	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse users file: %w", err)
	}
	return f.Users, nil
}

// SeedUsers inserts users that do not exist yet. Existing emails are skipped.
func (s *Store) SeedUsers(ctx context.Context, users []SeedUser) (int, error) {
	created := 0
	for _, u := range users {
		if u.Email == "" || u.Password == "" {
			return created, fmt.Errorf("%w: %q", ErrInvalidSeedUser, u.Email)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return created, fmt.Errorf("failed to hash password for %s: %w", u.Email, err)
		}

		err = s.CreateUser(ctx, &models.User{
			Email:        u.Email,
			PasswordHash: string(hash),
			Role:         u.Role,
			MFASecret:    u.MFASecret,
		})
		if errors.Is(err, ErrEmailConflict) {
			continue
		}
		if err != nil {
			return created, err
		}

		created++
		log.Printf("Seeded user: %s (role: %s)", u.Email, roleOrDefault(u.Role))
	}
	return created, nil
}

func roleOrDefault(role string) string {
	if role == "" {
		return models.RoleUser
	}
	return role
}
