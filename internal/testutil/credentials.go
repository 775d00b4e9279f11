package testutil

import (
	"path/filepath"

	"github.com/linuxserver/docker-webtop/credential"
)

type (
	TestLog interface {
		Fatal(...interface{})
		Log(...interface{})
		TempDir() string
	}
)

const (
	User     = "webtop"
	Password = "p@ss w+rd&="
	Secret   = "test-signing-secret"
)

// Record returns a credential record for User/Password signing with Secret.
func Record(t TestLog) *credential.Record {
	r, err := File(t).Record()
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func File(t TestLog) credential.File {
	salt := "0011223344556677"
	hash, err := credential.Hash(credential.SchemeSHA256, Password, salt)
	if err != nil {
		t.Fatal(err)
	}
	return credential.File{
		User:   User,
		Salt:   salt,
		PwHash: hash,
		Secret: Secret,
	}
}

// AcquireCredentialFile writes File(t) to a temporary directory
// and returns its path.
func AcquireCredentialFile(t TestLog) string {
	path := filepath.Join(t.TempDir(), "web-auth.json")
	if err := credential.Save(path, File(t), false); err != nil {
		t.Fatal(err)
	}
	t.Log("credential file", path)
	return path
}
