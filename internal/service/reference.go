package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	referencePrefix   = "BK"
	referenceAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	referenceLength   = 8
)

func newReferenceID() (string, error) {
	buf := make([]byte, referenceLength)
	max := big.NewInt(int64(len(referenceAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("generate reference id: %w", err)
		}
		buf[i] = referenceAlphabet[n.Int64()]
	}
	return referencePrefix + string(buf), nil
}
