package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
)

// GenerateSecretHash computes the Cognito SECRET_HASH for a username.
func GenerateSecretHash(username, clientID, clientSecret string) string {
	key := []byte(clientSecret)
	message := username + clientID

	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(message))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
