// One-off: JWT_SECRET=... go run scripts/gentoken.go user@example.com
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/LudyPitra/AI-Diary-App/internal/auth"
)

func main() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		fmt.Fprintln(os.Stderr, "JWT_SECRET is not set")
		os.Exit(1)
	}
	email := "dev@example.com"
	if len(os.Args) > 1 {
		email = os.Args[1]
	}
	tm, err := auth.NewTokenManager(secret, "HS256", 24*time.Hour)
	if err != nil {
		panic(err)
	}
	tok, err := tm.Issue(email)
	if err != nil {
		panic(err)
	}
	fmt.Print(tok)
}
