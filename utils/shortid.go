package utils

import (
	"crypto/rand"
	"fmt"
)

// shortIDAlphabet leaves out O, 0, I and 1 for readability. Its length is a
// power of two, so the modulo below introduces no bias.
const shortIDAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// ShortIDLength is the default length for generated booking identifiers.
const ShortIDLength = 10

// ShortID generates a secure random identifier of the given length, drawn
// from an alphabet without visually ambiguous characters.
func ShortID(length int) (string, error) {
	if length <= 0 {
		length = ShortIDLength
	}
	randomBytes := make([]byte, length)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	id := make([]byte, length)
	for i, b := range randomBytes {
		id[i] = shortIDAlphabet[int(b)%len(shortIDAlphabet)]
	}
	return string(id), nil
}
