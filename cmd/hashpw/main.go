// Command hashpw generates the APP_PASSWORD_HASH value for the environment
// admin account: a bcrypt hash wrapped in base64 so it survives dotenv
// escaping. The password is read without echo.
package main

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/term"

	"github.com/tozoll/legal-ai-analyzer/internal/auth"
)

func main() {
	fmt.Fprint(os.Stderr, "Password: ")
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		log.Fatalf("Failed to read password: %v", err)
	}

	fmt.Fprint(os.Stderr, "Confirm: ")
	confirm, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		log.Fatalf("Failed to read confirmation: %v", err)
	}

	if string(password) != string(confirm) {
		log.Fatal("Passwords do not match")
	}
	if len(password) < 6 {
		log.Fatal("Password must be at least 6 characters")
	}

	hash, err := auth.HashPassword(string(password))
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	fmt.Printf("APP_PASSWORD_HASH=%s\n", hash)
}
