// Command hash-generator prints Argon2id credentials for seeding users by hand.
// Cost parameters come from the same SHOP_AUTH_* settings the server uses.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/phrazzld/storefront-api/internal/config"
	"github.com/phrazzld/storefront-api/internal/service/auth"
)

func main() {
	verify := flag.String("verify", "", "check the passwords against this credential instead of hashing them")
	flag.Parse()

	passwords := flag.Args()
	if len(passwords) == 0 {
		fmt.Fprintln(os.Stderr, "usage: hash-generator [-verify <credential>] <password>...")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	hasher := auth.NewArgon2Hasher(auth.Argon2Params{
		MemoryKB:    cfg.Auth.Argon2MemoryKB,
		Iterations:  cfg.Auth.Argon2Iterations,
		Parallelism: cfg.Auth.Argon2Parallelism,
	})

	failed := false
	for _, password := range passwords {
		if *verify != "" {
			if err := hasher.Compare(*verify, password); err != nil {
				fmt.Printf("Password: %s\nMatch: false (%v)\n\n", password, err)
				failed = true
				continue
			}
			fmt.Printf("Password: %s\nMatch: true\n\n", password)
			continue
		}

		hash, err := hasher.Hash(password)
		if err != nil {
			fmt.Printf("Error generating hash for %s: %v\n", password, err)
			failed = true
			continue
		}
		fmt.Printf("Password: %s\nHash: %s\n\n", password, hash)
	}

	if failed {
		os.Exit(1)
	}
}
