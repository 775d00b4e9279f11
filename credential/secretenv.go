package credential

import (
	"fmt"
	"os"
)

const (
	SecretEnvVar = "WEBTOP_AUTH_SECRET"
)

// SecretFromEnv replaces the signing secret of r with the content of
// varname, if the variable is set. The variable is cleared right after
// it is read so child processes never inherit it.
func SecretFromEnv(r *Record, varname string, getfn func(string) string, setfn func(string, string) error) (*Record, error) {
	if getfn == nil {
		getfn = os.Getenv
	}
	if setfn == nil {
		setfn = os.Setenv
	}
	val := getfn(varname)
	if len(val) == 0 {
		return r, nil
	}
	if err := setfn(varname, ""); err != nil {
		return nil, fmt.Errorf("credential: unable to clear %v from the environment, cause %w", varname, err)
	}
	return r.WithSecret([]byte(val)), nil
}
