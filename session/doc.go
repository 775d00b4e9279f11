// Package session mints and checks the tokens kept in the session cookie.
//
// A token is base64url("user:expiry:nonce:signature") where expiry is a
// unix timestamp in seconds, nonce is 8 random bytes (hex) and signature
// is hex(hmac-sha256(secret, "user:expiry:nonce")).
//
// Nothing is kept on the server, a token is valid for as long as its own
// expiry says so and the secret stays the same. Any instance sharing the
// same secret can validate tokens minted by another one.
//
// Validate never explains why a token was rejected. Expired, forged and
// garbage tokens all look the same to the caller.
package session
