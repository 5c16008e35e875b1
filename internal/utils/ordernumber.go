package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// GenerateOrderNumber returns a short customer-facing order token,
// LPA- followed by four digits. Uniqueness is enforced by the orders
// table; callers retry on collision.
func GenerateOrderNumber() string {
	n, err := rand.Int(rand.Reader, big.NewInt(9000))
	if err != nil {
		// fallback: time-based entropy
		n = big.NewInt(time.Now().UnixNano() % 9000)
	}

	return fmt.Sprintf("LPA-%04d", 1000+n.Int64())
}
