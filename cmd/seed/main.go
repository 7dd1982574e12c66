package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/xpnews/xpnews-backend/config"
	"github.com/xpnews/xpnews-backend/internal/domain/entity"
)

// Seeds a local admin account for development. Idempotent on username.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	fullName := "XP News Admin"
	username := "admin"
	email := "admin@xpnews.local"
	password := "admin123"

	var id int64
	err = db.QueryRow(`
		INSERT INTO users (full_name, username, email, password, role)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (username) DO UPDATE SET full_name = EXCLUDED.full_name
		RETURNING id
	`, fullName, username, email, password, string(entity.RoleAdmin)).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed admin user: %v", err)
	}
	fmt.Printf("seeded admin user: id=%d username=%s email=%s password=%s\n", id, username, email, password)
}
