package credential

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/argon2"
)

func TestVerify(t *testing.T) {
	r, err := File{User: "admin", Salt: "pepper", PwHash: sha256Hex("p@ss w+rd" + "pepper"), Secret: "k"}.Record()
	require.NoError(t, err)

	type testCase struct {
		user, password string
		valid          bool
	}
	for _, tc := range []testCase{
		{"admin", "p@ss w+rd", true},
		{"admin", "p@ss w+rd ", false},
		{"Admin", "p@ss w+rd", false},
		{"admin ", "p@ss w+rd", false},
		{"admin", "", false},
		{"", "p@ss w+rd", false},
		{"", "", false},
		{"admin", "p@ss w+rdpepper", false},
	} {
		if got := r.Verify(tc.user, tc.password); got != tc.valid {
			t.Errorf("Verify(%q, %q) should return %v but got %v", tc.user, tc.password, tc.valid, got)
		}
	}
}

func TestVerifyUppercaseHash(t *testing.T) {
	upper := []byte(sha256Hex("secret" + "salt"))
	for i, c := range upper {
		if c >= 'a' && c <= 'f' {
			upper[i] = c - 'a' + 'A'
		}
	}
	r, err := File{User: "u", Salt: "salt", PwHash: string(upper), Secret: "k"}.Record()
	require.NoError(t, err)
	require.True(t, r.Verify("u", "secret"))
}

func TestHashArgon2id(t *testing.T) {
	h1, err := Hash(SchemeArgon2id, "pw", "salt-one")
	require.NoError(t, err)
	h2, err := Hash(SchemeArgon2id, "pw", "salt-two")
	require.NoError(t, err)
	require.Len(t, h1, 64)
	require.NotEqual(t, h1, h2)

	r, err := File{User: "u", Salt: "salt-one", PwHash: h1, Secret: "k", Scheme: "argon2id"}.Record()
	require.NoError(t, err)
	require.True(t, r.Verify("u", "pw"))
	require.False(t, r.Verify("u", "PW"))

	_, err = Hash(Scheme("rot13"), "pw", "salt")
	require.Equal(t, UnknownScheme{Scheme: "rot13"}, err)
}

func TestArgon2idParameters(t *testing.T) {
	h, err := Hash(SchemeArgon2id, "pw", "salt")
	require.NoError(t, err)
	// 19 MiB, 2 passes, a single lane
	require.Equal(t, hex.EncodeToString(argon2.IDKey([]byte("pw"), []byte("salt"), 2, 19*1024, 1, 32)), h)
}
