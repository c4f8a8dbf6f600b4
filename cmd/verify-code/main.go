// Command verify-code prints the verification code for a phone number,
// for support and local testing against an environment's secret.
//
//	PHONE_SECRET_KEY=... verify-code +447700900123
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"borrowbank.backend/pkg/phone"
	"borrowbank.backend/pkg/verification"
)

func main() {
	_ = godotenv.Load()

	if len(os.Args) != 2 {
		log.Fatalf("usage: %s <phone-number>", os.Args[0])
	}
	number := os.Args[1]
	if !phone.IsValid(number) {
		log.Fatalf("invalid phone number %q, expected E.164 format", number)
	}

	secret := os.Getenv("PHONE_SECRET_KEY")
	if secret == "" {
		log.Fatal("PHONE_SECRET_KEY is not set")
	}

	fmt.Println(verification.GenerateCode(number, secret))
}
