package ident

import (
	"crypto/rand"
	"math/big"
	"time"
)

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// Standard lengths for the opaque identifiers issued by the system.
const (
	RequestIDLength    = 12
	EditTokenLength    = 24
	AttachmentIDLength = 10
)

// New returns an opaque random string of the given length drawn from the
// 62-symbol alphanumeric alphabet. Collision probability is accepted as
// negligible at this tool's scale; no cryptographic uniqueness is claimed.
func New(length int) string {
	if length <= 0 {
		return ""
	}
	max := big.NewInt(int64(len(alphabet)))
	buf := make([]byte, length)
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return fallback(length)
		}
		buf[i] = alphabet[n.Int64()]
	}
	return string(buf)
}

// RequestID issues a document-scoped request identifier.
func RequestID() string { return New(RequestIDLength) }

// EditToken issues an edit capability token.
func EditToken() string { return New(EditTokenLength) }

// AttachmentID issues an attachment record identifier.
func AttachmentID() string { return New(AttachmentIDLength) }

func fallback(length int) string {
	seed := time.Now().UnixNano()
	buf := make([]byte, length)
	for i := range buf {
		buf[i] = alphabet[int(seed>>uint(i%60))%len(alphabet)]
	}
	return string(buf)
}
