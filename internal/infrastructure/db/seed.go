package db

import (
	"log"

	"loantrack/internal/domain/loan"
	"loantrack/internal/domain/user"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func Migrate(g *gorm.DB) error {
	return g.AutoMigrate(&user.User{}, &loan.Loan{})
}

// Seed creates the three fixed accounts on first run. Passwords are stored as
// bcrypt hashes only; a populated users table makes this a no-op.
func Seed(g *gorm.DB) error {
	var count int64
	if err := g.Model(&user.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	accounts := []struct {
		username string
		password string
		role     user.Role
	}{
		{"admin", "1234", user.RoleAdmin},
		{"alice", "alice123", user.RoleCollector},
		{"bob", "bob123", user.RoleCollector},
	}
	for _, a := range accounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(a.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		u := &user.User{Username: a.username, PasswordHash: string(hash), Role: a.role}
		if err := g.Create(u).Error; err != nil {
			return err
		}
	}
	log.Printf("seeded %d default accounts", len(accounts))
	return nil
}
