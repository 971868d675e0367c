package screenshotone

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Sign computes the authentication code for an encoded query string:
// the lowercase hex HMAC-SHA-256 of the query bytes under the secret
// key. The query must already contain the access_key parameter and must
// not contain a signature parameter.
//
// The result is fully deterministic, which keeps signed URLs
// reproducible and cacheable.
func Sign(query, secretKey string) (string, error) {
	if secretKey == "" {
		return "", ErrMissingSecretKey
	}

	mac := hmac.New(sha256.New, []byte(secretKey))
	mac.Write([]byte(query))

	return hex.EncodeToString(mac.Sum(nil)), nil
}
