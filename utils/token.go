package utils

import (
	"errors"
	"time"

	"github.com/o1egl/paseto"
)

// TokenFooter menandai token sesi admin snackmart.
const TokenFooter = "snackmart-admin"

// IssueToken membuat token sesi paseto v2 untuk admin dengan masa
// berlaku 24 jam.
func IssueToken(key []byte, subject string) (string, error) {
	now := time.Now()
	jsonToken := paseto.JSONToken{
		Subject:    subject,
		IssuedAt:   now,
		Expiration: now.Add(24 * time.Hour),
	}
	return paseto.NewV2().Encrypt(key, jsonToken, TokenFooter)
}

// VerifyToken mendekripsi token sesi dan memastikan belum kedaluwarsa.
// Token apa pun yang tidak lolos di sini diperlakukan sama dengan tidak
// ada token.
func VerifyToken(key []byte, token string) (string, error) {
	var jsonToken paseto.JSONToken
	var footer string
	if err := paseto.NewV2().Decrypt(token, key, &jsonToken, &footer); err != nil {
		return "", err
	}
	if footer != TokenFooter {
		return "", errors.New("unexpected token footer")
	}
	if err := jsonToken.Validate(paseto.ValidAt(time.Now())); err != nil {
		return "", err
	}
	return jsonToken.Subject, nil
}
