package credential

import "crypto/subtle"

// Verify reports whether username/password match the record.
//
// The username is not secret and is compared as-is, the password hash
// is compared in constant time.
func (r *Record) Verify(username, password string) bool {
	candidate, err := Hash(r.scheme, password, r.salt)
	if err != nil {
		return false
	}
	hashOK := subtle.ConstantTimeCompare([]byte(candidate), []byte(r.pwHash)) == 1
	return hashOK && username == r.username
}
