package db

import (
	"testing"

	"loantrack/internal/domain/user"

	"golang.org/x/crypto/bcrypt"
)

func TestMigrateAndSeed(t *testing.T) {
	gdb, err := OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	if err := Migrate(gdb); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	if err := Seed(gdb); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	var count int64
	if err := gdb.Model(&user.User{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 3 {
		t.Fatalf("users = %d, want 3", count)
	}

	// Seeding again must not duplicate accounts.
	if err := Seed(gdb); err != nil {
		t.Fatalf("second Seed: %v", err)
	}
	if err := gdb.Model(&user.User{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 3 {
		t.Fatalf("users after reseed = %d, want 3", count)
	}

	var admin user.User
	if err := gdb.Where("username = ?", "admin").First(&admin).Error; err != nil {
		t.Fatalf("load admin: %v", err)
	}
	if admin.Role != user.RoleAdmin {
		t.Fatalf("admin role = %s", admin.Role)
	}
	if admin.PasswordHash == "1234" {
		t.Fatal("password stored in plaintext")
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("1234")) != nil {
		t.Fatal("seeded hash does not verify the documented password")
	}
}
