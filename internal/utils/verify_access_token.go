package utils

import (
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/square/go-jose/v3"
	"golang.org/x/crypto/hkdf"
)

// AccessTokenVerifier decrypts and validates the NextAuth session token the
// web client sends on every request.
type AccessTokenVerifier struct {
	secret []byte
}

func NewAccessTokenVerifier(secret string) *AccessTokenVerifier {
	return &AccessTokenVerifier{secret: []byte(secret)}
}

// DecodeToken decrypts the JWE token and returns its claims after checking
// the time-based ones.
func (v *AccessTokenVerifier) DecodeToken(token string) (map[string]interface{}, error) {
	encryptionKey, err := deriveEncryptionKey(v.secret, "")
	if err != nil {
		return nil, err
	}

	claims, err := decryptToken(token, encryptionKey)
	if err != nil {
		return nil, err
	}

	if err := validateClaims(claims); err != nil {
		return nil, err
	}

	return claims, nil
}

// UserIdFromClaims pulls the subject out of a decoded token.
func UserIdFromClaims(claims map[string]interface{}) (string, error) {
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", errors.New("token sem identificação de usuário")
	}
	return sub, nil
}

func deriveEncryptionKey(keyMaterial []byte, salt string) ([]byte, error) {
	info := []byte("NextAuth.js Generated Encryption Key")
	if salt != "" {
		info = []byte(fmt.Sprintf("NextAuth.js Generated Encryption Key (%s)", salt))
	}
	h := hkdf.New(sha256.New, keyMaterial, []byte(salt), info)
	key := make([]byte, 32)
	if _, err := io.ReadFull(h, key); err != nil {
		return nil, err
	}
	return key, nil
}

func decryptToken(tokenStr string, encryptionKey []byte) (map[string]interface{}, error) {
	jweObject, err := jose.ParseEncrypted(tokenStr)
	if err != nil {
		return nil, err
	}

	decrypted, err := jweObject.Decrypt(encryptionKey)
	if err != nil {
		return nil, err
	}

	var claims map[string]interface{}
	if err := json.Unmarshal(decrypted, &claims); err != nil {
		return nil, err
	}
	return claims, nil
}

func validateClaims(claims map[string]interface{}) error {
	now := time.Now().Unix()

	if exp, ok := claims["exp"].(float64); ok {
		if now > int64(exp) {
			return errors.New("token expirado")
		}
	}

	if iat, ok := claims["iat"].(float64); ok {
		if now < int64(iat) {
			return errors.New("token não é válido ainda")
		}
	}

	return nil
}
