package credential

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func sha256Hex(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

func TestLoad(t *testing.T) {
	in := `{"user": "abc", "salt": "s4lt", "pw_hash": "` + sha256Hex("password"+"s4lt") + `", "secret": "signing-key"}`
	r, err := Load(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, "abc", r.Username())
	require.Equal(t, []byte("signing-key"), r.Secret())
	require.Equal(t, SchemeSHA256, r.scheme)
	require.True(t, r.Verify("abc", "password"))
}

func TestLoadInvalid(t *testing.T) {
	good := File{User: "abc", Salt: "s", PwHash: sha256Hex("p" + "s"), Secret: "k"}
	type testCase struct {
		name   string
		mutate func(f *File)
		err    error
	}
	for _, tc := range []testCase{
		{"no user", func(f *File) { f.User = "" }, MissingField{Name: "user"}},
		{"no salt", func(f *File) { f.Salt = "" }, MissingField{Name: "salt"}},
		{"no hash", func(f *File) { f.PwHash = "" }, MissingField{Name: "pw_hash"}},
		{"no secret", func(f *File) { f.Secret = "" }, MissingField{Name: "secret"}},
		{"colon in user", func(f *File) { f.User = "a:b" }, InvalidField{Name: "user", Reason: "must not contain ':'"}},
		{"hash not hex", func(f *File) { f.PwHash = "zz" }, InvalidField{Name: "pw_hash", Reason: "must be hex encoded"}},
		{"bad scheme", func(f *File) { f.Scheme = "md5" }, UnknownScheme{Scheme: "md5"}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			f := good
			tc.mutate(&f)
			_, err := f.Record()
			require.True(t, errors.Is(err, tc.err), "expecting %v got %v", tc.err, err)
		})
	}

	_, err := Load(strings.NewReader(`{"user": `))
	require.Error(t, err)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	require.True(t, errors.Is(err, os.ErrNotExist))
}

func TestGenerateAndSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "web-auth.json")
	for _, scheme := range []Scheme{SchemeSHA256, SchemeArgon2id} {
		f, err := Generate("bob", "hunter2", scheme, nil)
		require.NoError(t, err)
		require.Len(t, f.Salt, 32)
		require.Len(t, f.Secret, 64)

		require.NoError(t, Save(path, f, true))
		r, err := LoadFile(path)
		require.NoError(t, err)
		require.True(t, r.Verify("bob", "hunter2"))
		require.False(t, r.Verify("bob", "hunter3"))
	}
	f, err := Generate("bob", "hunter2", SchemeSHA256, nil)
	require.NoError(t, err)
	err = Save(path, f, false)
	require.True(t, errors.Is(err, os.ErrExist), "should not overwrite without permission, got %v", err)

	st, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0600), st.Mode().Perm())

	_, err = Generate("bob", "", SchemeSHA256, nil)
	require.True(t, errors.Is(err, MissingField{Name: "password"}))
}

func TestGenerateRandomFailure(t *testing.T) {
	_, err := Generate("bob", "hunter2", SchemeSHA256, bytes.NewReader(nil))
	require.Error(t, err)
}

func TestSecretFromEnv(t *testing.T) {
	r, err := File{User: "abc", Salt: "s", PwHash: sha256Hex("p" + "s"), Secret: "from-file"}.Record()
	require.NoError(t, err)

	env := map[string]string{}
	get := func(k string) string { return env[k] }
	set := func(k, v string) error { env[k] = v; return nil }

	same, err := SecretFromEnv(r, SecretEnvVar, get, set)
	require.NoError(t, err)
	require.Equal(t, []byte("from-file"), same.Secret())

	env[SecretEnvVar] = "from-env"
	other, err := SecretFromEnv(r, SecretEnvVar, get, set)
	require.NoError(t, err)
	require.Equal(t, []byte("from-env"), other.Secret())
	require.Equal(t, []byte("from-file"), r.Secret(), "original record must not change")
	require.Empty(t, env[SecretEnvVar], "reading the secret should remove it from the environment")
}

func TestRecordString(t *testing.T) {
	r, err := File{User: "abc", Salt: "s", PwHash: sha256Hex("p" + "s"), Secret: "k"}.Record()
	require.NoError(t, err)
	require.NotContains(t, r.String(), "abc")
}
