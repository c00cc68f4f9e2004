// Command token issues a bearer token for a user ID. It is used by operators
// to call the API directly when no auth proxy sits in front of it.
//
// Usage:
//
//	token --user=6f1c1c9e-7d2a-4a8e-9c55-3f1b2d4e5a6b [--ttl=1h]
//
// Requires AUTH_JWT_SECRET (or auth.jwt_secret in the config file).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"

	"github.com/heartmarshall/resource-registry/internal/auth"
	"github.com/heartmarshall/resource-registry/internal/config"
)

func main() {
	user := flag.String("user", "", "user ID to put in the token subject")
	ttl := flag.Duration("ttl", 0, "token lifetime (default auth.token_ttl)")
	flag.Parse()

	userID, err := uuid.Parse(*user)
	if err != nil || userID == uuid.Nil {
		fmt.Fprintln(os.Stderr, "Usage: token --user=<uuid> [--ttl=1h]")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if !cfg.Auth.BearerEnabled() {
		log.Fatal("auth.jwt_secret is not set, bearer tokens are disabled")
	}

	lifetime := cfg.Auth.TokenTTL
	if *ttl > 0 {
		lifetime = *ttl
	}

	token, err := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, lifetime).GenerateToken(userID)
	if err != nil {
		log.Fatalf("generate token: %v", err)
	}

	fmt.Println(token)
}
