package utils

import (
	"fmt"
	"math/rand/v2"
)

// GenerateAccountNumber builds the 8 character account number: the
// zero padded 3 digit branch id followed by a random 5 digit code.
func GenerateAccountNumber(branchID uint) string {
	code := rand.IntN(90000) + 10000
	return fmt.Sprintf("%03d%05d", branchID, code)
}
