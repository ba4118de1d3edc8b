package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"

	"github.com/angadsxngh/rent-management-backend/internal/config"
	"github.com/angadsxngh/rent-management-backend/internal/domain"
	"github.com/angadsxngh/rent-management-backend/internal/middleware"
)

// Mints a signed token with the same claims the API issues at login. Useful for admin
// tokens, which have no login flow.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	userID := flag.String("user", "", "Account ID for the token")
	name := flag.String("name", "", "Display name claim")
	roles := flag.String("roles", "admin", "Comma-separated roles: owner, tenant, admin")
	expirationHours := flag.Int("exp", 0, "Token lifetime in hours (default: JWT_EXPIRATION_HOURS)")
	flag.Parse()

	if *userID == "" {
		log.Fatal("User ID is required")
	}

	rolesList := strings.Split(*roles, ",")
	for _, role := range rolesList {
		if !domain.IsValidRole(role) {
			log.Fatalf("Unknown role %q", role)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}
	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY is required")
	}
	if *expirationHours > 0 {
		cfg.JWTExpirationHours = *expirationHours
	}

	token, expiresAt, err := middleware.NewAuthMiddleware(cfg).GenerateToken(*userID, *name, rolesList)
	if err != nil {
		log.Fatalf("Error signing token: %v", err)
	}

	fmt.Printf("Generated JWT Token (expires %s):\n%s\n", expiresAt.Format("2006-01-02 15:04:05 MST"), token)
}
