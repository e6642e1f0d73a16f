// Command hashkey prints the bcrypt hash of an admin key for ADMIN_KEY_HASH.
//
//	go run ./cmd/hashkey 'the-admin-key'
package main

import (
	"fmt"
	"os"

	"booking-api/internal/pkg/password"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: hashkey <admin-key>")
		os.Exit(2)
	}

	hash, err := password.Hash(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, "hashkey:", err)
		os.Exit(1)
	}

	fmt.Println(hash)
}
