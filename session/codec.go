package session

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

type (
	Codec struct {
		username string
		secret   []byte
		ttl      time.Duration
		random   io.Reader
	}
)

const (
	DefaultTTL = 24 * time.Hour

	nonceSize = 8
	sep       = ":"
)

// NewCodec returns a codec that only accepts tokens for username.
// A ttl <= 0 means DefaultTTL, other values are rounded up to whole
// seconds. A nil random means crypto/rand.
func NewCodec(username string, secret []byte, ttl time.Duration, random io.Reader) *Codec {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	// expiry has a one second resolution
	if rem := ttl % time.Second; rem != 0 {
		ttl += time.Second - rem
	}
	if random == nil {
		random = rand.Reader
	}
	return &Codec{
		username: username,
		secret:   append([]byte(nil), secret...),
		ttl:      ttl,
		random:   random,
	}
}

func (c *Codec) TTL() time.Duration {
	return c.ttl
}

// Encode mints a token for username valid until now + TTL.
//
// Callers must only call it after the credentials were verified.
func (c *Codec) Encode(username string, now time.Time) (string, error) {
	var nonce [nonceSize]byte
	if _, err := io.ReadFull(c.random, nonce[:]); err != nil {
		return "", fmt.Errorf("session: unable to generate nonce, cause %w", err)
	}
	expiry := now.Unix() + int64(c.ttl/time.Second)
	payload := strings.Join([]string{username, strconv.FormatInt(expiry, 10), hex.EncodeToString(nonce[:])}, sep)
	raw := payload + sep + c.sign(payload)
	return base64.URLEncoding.EncodeToString([]byte(raw)), nil
}

// Validate returns the username carried by token and true when
// the token was minted with the same secret, for the configured username,
// and has not expired at now (a token is still valid at the exact second
// of its expiry).
func (c *Codec) Validate(token string, now time.Time) (string, bool) {
	raw, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(token, "="))
	if err != nil {
		return "", false
	}
	fields := strings.Split(string(raw), sep)
	if len(fields) != 4 {
		return "", false
	}
	username, expiryStr, nonce, sig := fields[0], fields[1], fields[2], fields[3]
	if username != c.username {
		return "", false
	}
	expiry, err := strconv.ParseInt(expiryStr, 10, 64)
	if err != nil || expiry < now.Unix() {
		return "", false
	}
	expected := c.sign(strings.Join([]string{username, expiryStr, nonce}, sep))
	if !hmac.Equal([]byte(sig), []byte(expected)) {
		return "", false
	}
	return username, true
}

func (c *Codec) sign(payload string) string {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}
