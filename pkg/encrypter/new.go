package encrypter

import "golang.org/x/crypto/bcrypt"

// Hasher hashes and verifies passwords with bcrypt.
type Hasher interface {
	// HashPassword returns the bcrypt hash of password.
	HashPassword(password string) (string, error)
	// CheckPasswordHash reports whether password matches hash.
	CheckPasswordHash(password, hash string) bool
}

type implHasher struct {
	cost int
}

// New creates a Hasher with the given bcrypt cost. Out-of-range costs fall back to bcrypt.DefaultCost.
func New(cost int) Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &implHasher{cost: cost}
}
