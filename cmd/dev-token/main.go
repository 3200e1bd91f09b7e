package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dreamjobs/api/pkg/jwt"
)

func main() {
	// Flags for customization
	secret := flag.String("secret", os.Getenv("ACCESS_TOKEN_SECRET"), "HMAC signing secret (defaults to ACCESS_TOKEN_SECRET)")
	email := flag.String("email", "dev@dreamjobs.dev", "Email for the session token")
	issuer := flag.String("issuer", "api.dreamjobs.dev", "JWT issuer")
	expMins := flag.Int("exp", 60, "Token expiration in minutes")
	outputJSON := flag.Bool("json", false, "Output as JSON")

	flag.Parse()

	jwtService, err := jwt.NewService(jwt.Config{
		Secret:         *secret,
		Issuer:         *issuer,
		ExpirationMins: *expMins,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating JWT service: %v\n", err)
		fmt.Fprintf(os.Stderr, "\nSet ACCESS_TOKEN_SECRET or pass -secret\n")
		os.Exit(1)
	}

	claims := jwt.Claims{
		Subject: *email,
		Email:   *email,
	}

	token, err := jwtService.Sign(claims)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error signing token: %v\n", err)
		os.Exit(1)
	}

	if *outputJSON {
		output := map[string]any{
			"token":      token,
			"email":      *email,
			"expires_in": *expMins * 60,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(output)
	} else {
		expTime := time.Now().Add(time.Duration(*expMins) * time.Minute)
		fmt.Println("Session Token Generated")
		fmt.Println("=======================")
		fmt.Printf("Email:    %s\n", *email)
		fmt.Printf("Expires:  %s\n", expTime.Format(time.RFC3339))
		fmt.Println()
		fmt.Println("Token:")
		fmt.Println(token)
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Printf("  curl --cookie 'token=%s' 'http://localhost:5000/api/v1/my-jobs?email=%s'\n", token[:20]+"...", *email)
	}
}
