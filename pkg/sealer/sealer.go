// Package sealer issues opaque manage tokens for confirmations. The
// token carries the booking reference and guest phone sealed with
// AES-GCM, so later cancel/amend requests can prove ownership without
// the service persisting bookings.
package sealer

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"strings"
)

const (
	// TODO: move the key to config once the deploy pipeline supports secrets.
	KEY = "x7mPdRk2uL9iOhWJ4r8BYTweoSKwVAJnIF9U+AL+M60="
)

// CreateManageToken seals a booking reference and the guest's phone
// into an opaque URL-safe token.
func CreateManageToken(reference string, guestPhone string) (string, error) {
	plaintext := []byte(reference + ":" + guestPhone)

	key, err := base64.StdEncoding.DecodeString(KEY)
	if err != nil {
		return "", err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", err
	}

	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, aesgcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	ct := aesgcm.Seal(nonce, nonce, plaintext, nil)
	return base64.RawURLEncoding.EncodeToString(ct), nil
}

// ParseManageToken opens a manage token and returns the booking
// reference and guest phone it was issued for.
func ParseManageToken(token string) (string, string, error) {
	key, err := base64.StdEncoding.DecodeString(KEY)
	if err != nil {
		return "", "", err
	}

	data, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return "", "", err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", "", err
	}

	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", "", err
	}

	nonceSize := aesgcm.NonceSize()
	if len(data) < nonceSize {
		return "", "", fmt.Errorf("token too short")
	}
	nonce := data[:nonceSize]
	ciphertext := data[nonceSize:]

	pt, err := aesgcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", "", err
	}

	parts := strings.SplitN(string(pt), ":", 2)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("invalid token format")
	}

	return parts[0], parts[1], nil
}
