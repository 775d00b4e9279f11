package cmdflags

import (
	"github.com/linuxserver/docker-webtop/credential"
	"github.com/urfave/cli/v2"
)

const (
	DefaultCredentialFile = "/etc/web-auth.json"
)

func CredentialFile(out *string) cli.Flag {
	if len(*out) == 0 {
		*out = DefaultCredentialFile
	}
	return &cli.StringFlag{
		Name:        "credentials",
		Aliases:     []string{"c", "file", "f"},
		Usage:       "Path to the json file with user, salt, pw_hash and secret",
		EnvVars:     []string{"WEBTOP_AUTH_CREDENTIALS"},
		Destination: out,
		Value:       *out,
	}
}

func SecretEnvVar(out *string) cli.Flag {
	if len(*out) == 0 {
		*out = credential.SecretEnvVar
	}
	return &cli.StringFlag{
		Name:        "secret-envvar-name",
		Usage:       "Name of the environment variable that overrides the session secret. The secret itself should not be passed as an argument",
		Hidden:      true,
		Value:       *out,
		Destination: out,
	}
}

func User(out *string) cli.Flag {
	return &cli.StringFlag{
		Name:        "user",
		Aliases:     []string{"u", "username"},
		Usage:       "Name of the user allowed to sign in",
		Required:    true,
		Destination: out,
	}
}
