package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
)

// Sha256SumFile computes the SHA-256 checksum for a given file path.
// It returns the checksum as a hex-encoded string.
func Sha256SumFile(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	hash := sha256.New()
	if _, err := io.Copy(hash, file); err != nil {
		return "", fmt.Errorf("failed to hash file: %w", err)
	}

	return hex.EncodeToString(hash.Sum(nil)), nil
}

func Sha256SumVerify(path string, checksum string) error {
	targetHash, hashErr := Sha256SumFile(path)
	if hashErr != nil {
		return hashErr
	}

	if checksum != targetHash {
		return errors.New("invalid checksum")
	}
	return nil
}

// Sha256SumBytes hex-encodes the SHA-256 of an in-memory payload, used to
// tag uploads with an integrity checksum.
func Sha256SumBytes(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
