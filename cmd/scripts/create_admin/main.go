// Command create_admin seeds an ADMIN account. Admins cannot register through
// the public API, so the first one is created directly against the database.
//
// Usage:
//
//	go run ./cmd/scripts/create_admin -name "Site Admin" -email admin@example.com -password secret123
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/frctlprdx/community-sub000/internal/config"
	"github.com/frctlprdx/community-sub000/internal/models"
	"github.com/frctlprdx/community-sub000/internal/utils"
	"github.com/joho/godotenv"
)

func main() {
	name := flag.String("name", "", "admin display name")
	email := flag.String("email", "", "admin email")
	password := flag.String("password", "", "admin password (min 8 characters)")
	configPath := flag.String("config", "", "config file path (default config.yaml)")
	flag.Parse()

	if *name == "" || *email == "" || *password == "" {
		flag.Usage()
		os.Exit(2)
	}
	if len(*password) < 8 {
		fmt.Println("Password must be at least 8 characters")
		os.Exit(1)
	}

	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	utils.SetBcryptCost(cfg.Auth.BcryptCost)

	if err := models.InitDB(&cfg.Database); err != nil {
		fmt.Printf("Failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	if err := models.AutoMigrate(); err != nil {
		fmt.Printf("Failed to migrate database: %v\n", err)
		os.Exit(1)
	}
	db := models.GetDB()

	normalized := utils.NormalizeEmail(*email)
	if !utils.IsValidEmail(normalized) {
		fmt.Printf("Invalid email: %s\n", *email)
		os.Exit(1)
	}

	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", normalized).Count(&count).Error; err != nil {
		fmt.Printf("Failed to check existing users: %v\n", err)
		os.Exit(1)
	}
	if count > 0 {
		fmt.Printf("A user with email %s already exists\n", normalized)
		os.Exit(1)
	}

	hash, err := utils.HashPassword(*password)
	if err != nil {
		fmt.Printf("Failed to hash password: %v\n", err)
		os.Exit(1)
	}

	admin := models.User{
		Name:     *name,
		Email:    normalized,
		Password: hash,
		Role:     models.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		fmt.Printf("Failed to create admin: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Created admin %s (id=%d)\n", admin.Email, admin.ID)
}
