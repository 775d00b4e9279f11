package credential

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

type (
	Scheme string
)

const (
	// SchemeSHA256 is hex(sha256(password + salt)), the format produced by
	// the image setup scripts.
	SchemeSHA256 = Scheme("sha256")
	// SchemeArgon2id is hex(argon2id(password, salt)).
	SchemeArgon2id = Scheme("argon2id")
)

// Every login attempt pays for one hash, keep memory low enough that
// concurrent attempts cannot exhaust the container.
const (
	argonTime    = 2
	argonMemory  = 19 * 1024
	argonThreads = 1
	argonKeyLen  = 32
)

func ParseScheme(s string) (Scheme, error) {
	switch Scheme(s) {
	case "", SchemeSHA256:
		return SchemeSHA256, nil
	case SchemeArgon2id:
		return SchemeArgon2id, nil
	}
	return "", UnknownScheme{Scheme: s}
}

// Hash returns the hex encoded digest stored as pw_hash for the given password
func Hash(scheme Scheme, password, salt string) (string, error) {
	var sum []byte
	switch scheme {
	case SchemeSHA256:
		digest := sha256.Sum256([]byte(password + salt))
		sum = digest[:]
	case SchemeArgon2id:
		sum = argon2.IDKey([]byte(password), []byte(salt), argonTime, argonMemory, argonThreads, argonKeyLen)
	default:
		return "", UnknownScheme{Scheme: string(scheme)}
	}
	return hex.EncodeToString(sum), nil
}

// RandomHex reads n bytes from random and returns them hex encoded,
// when random is nil crypto/rand is used.
func RandomHex(random io.Reader, n int) (string, error) {
	if random == nil {
		random = rand.Reader
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(random, buf); err != nil {
		return "", fmt.Errorf("credential: unable to read random bytes, cause %w", err)
	}
	return hex.EncodeToString(buf), nil
}
