package credential

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

type (
	// File is the on-disk layout of the credential record,
	// usually found at /etc/web-auth.json
	File struct {
		User   string `json:"user"`
		Salt   string `json:"salt"`
		PwHash string `json:"pw_hash"`
		Secret string `json:"secret"`
		Scheme string `json:"scheme,omitempty"`
	}

	// Record is the validated, read-only version of File.
	Record struct {
		username string
		salt     string
		pwHash   string
		secret   []byte
		scheme   Scheme
	}
)

func LoadFile(path string) (*Record, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open credential file %v, cause %w", path, err)
	}
	defer fd.Close()
	r, err := Load(fd)
	if err != nil {
		return nil, fmt.Errorf("unable to load credential file %v, cause %w", path, err)
	}
	return r, nil
}

func Load(in io.Reader) (*Record, error) {
	var f File
	dec := json.NewDecoder(in)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("invalid credential json, cause %w", err)
	}
	return f.Record()
}

// Record validates the file content and returns the immutable record.
func (f File) Record() (*Record, error) {
	for _, fld := range []struct {
		name string
		val  string
	}{
		{"user", f.User},
		{"salt", f.Salt},
		{"pw_hash", f.PwHash},
		{"secret", f.Secret},
	} {
		if len(fld.val) == 0 {
			return nil, MissingField{Name: fld.name}
		}
	}
	if strings.Contains(f.User, ":") {
		return nil, InvalidField{Name: "user", Reason: "must not contain ':'"}
	}
	if _, err := hex.DecodeString(f.PwHash); err != nil {
		return nil, InvalidField{Name: "pw_hash", Reason: "must be hex encoded"}
	}
	scheme, err := ParseScheme(f.Scheme)
	if err != nil {
		return nil, err
	}
	return &Record{
		username: f.User,
		salt:     f.Salt,
		pwHash:   strings.ToLower(f.PwHash),
		secret:   []byte(f.Secret),
		scheme:   scheme,
	}, nil
}

// Generate creates a File for user/password using fresh random salt and
// signing secret.
func Generate(user, password string, scheme Scheme, random io.Reader) (File, error) {
	if len(password) == 0 {
		return File{}, MissingField{Name: "password"}
	}
	salt, err := RandomHex(random, 16)
	if err != nil {
		return File{}, err
	}
	secret, err := RandomHex(random, 32)
	if err != nil {
		return File{}, err
	}
	hash, err := Hash(scheme, password, salt)
	if err != nil {
		return File{}, err
	}
	f := File{
		User:   user,
		Salt:   salt,
		PwHash: hash,
		Secret: secret,
		Scheme: string(scheme),
	}
	if _, err := f.Record(); err != nil {
		return File{}, err
	}
	return f, nil
}

// Save writes f as json to path with 0600 permissions, an existing file is
// only replaced when overwrite is true.
func Save(path string, f File, overwrite bool) error {
	flags := os.O_WRONLY | os.O_CREATE
	if overwrite {
		flags |= os.O_TRUNC
	} else {
		flags |= os.O_EXCL
	}
	fd, err := os.OpenFile(path, flags, 0600)
	if errors.Is(err, os.ErrExist) {
		return fmt.Errorf("credential file %v already exists, cause %w", path, err)
	} else if err != nil {
		return fmt.Errorf("unable to create credential file %v, cause %w", path, err)
	}
	enc := json.NewEncoder(fd)
	enc.SetIndent("", "  ")
	err = enc.Encode(f)
	if closeErr := fd.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("unable to write credential file %v, cause %w", path, err)
	}
	return nil
}

func (r *Record) Username() string {
	return r.username
}

// Secret returns a copy of the session signing key
func (r *Record) Secret() []byte {
	return append([]byte(nil), r.secret...)
}

// WithSecret returns a copy of r that signs sessions with secret instead.
func (r *Record) WithSecret(secret []byte) *Record {
	cp := *r
	cp.secret = append([]byte(nil), secret...)
	return &cp
}

// String never prints the record content.
func (r *Record) String() string {
	return "credential.Record(redacted)"
}
