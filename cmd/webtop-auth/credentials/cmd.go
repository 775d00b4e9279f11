package credentials

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/linuxserver/docker-webtop/credential"
	"github.com/linuxserver/docker-webtop/internal/cmdflags"
	"github.com/linuxserver/docker-webtop/internal/logutil"
	"github.com/urfave/cli/v2"
)

var (
	errMismatch = errors.New("username or password do not match the credential file")
)

func Cmd() *cli.Command {
	var file string
	return &cli.Command{
		Name:    "credentials",
		Aliases: []string{"creds"},
		Usage:   "Manage the credential file read by the auth server",
		Flags: []cli.Flag{
			cmdflags.CredentialFile(&file),
		},
		Subcommands: []*cli.Command{
			initCmd(&file),
			checkCmd(&file),
		},
	}
}

func initCmd(file *string) *cli.Command {
	var username string
	var force bool
	scheme := string(credential.SchemeSHA256)
	return &cli.Command{
		Name:  "init",
		Usage: "Write a new credential file with a fresh salt and secret (password is read from stdin)",
		Flags: []cli.Flag{
			cmdflags.User(&username),
			&cli.StringFlag{
				Name:        "scheme",
				Usage:       "Password hashing scheme, sha256 or argon2id",
				Value:       scheme,
				Destination: &scheme,
			},
			&cli.BoolFlag{
				Name:        "force",
				Usage:       "Replace the credential file if it already exists",
				Destination: &force,
			},
		},
		Action: func(ctx *cli.Context) error {
			password, err := readPassword(ctx.App.Reader)
			if err != nil {
				return err
			}
			s, err := credential.ParseScheme(scheme)
			if err != nil {
				return err
			}
			f, err := credential.Generate(username, password, s, nil)
			if err != nil {
				return err
			}
			if err := credential.Save(*file, f, force); err != nil {
				return err
			}
			log := logutil.GetOrDefault(ctx.Context)
			log.Info().Str("file", *file).Str("scheme", string(s)).Msg("Credential file written")
			return nil
		},
	}
}

func checkCmd(file *string) *cli.Command {
	var username string
	return &cli.Command{
		Name:  "check",
		Usage: "Check if the password read from stdin is accepted for the given user",
		Flags: []cli.Flag{
			cmdflags.User(&username),
		},
		Action: func(ctx *cli.Context) error {
			password, err := readPassword(ctx.App.Reader)
			if err != nil {
				return err
			}
			creds, err := credential.LoadFile(*file)
			if err != nil {
				return err
			}
			if !creds.Verify(username, password) {
				return errMismatch
			}
			log := logutil.GetOrDefault(ctx.Context)
			log.Info().Msg("Credentials accepted")
			return nil
		},
	}
}

// readPassword reads the first line of in, only the line terminator is
// removed since spaces are valid password characters.
func readPassword(in io.Reader) (string, error) {
	sc := bufio.NewScanner(in)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", err
		}
		return "", errors.New("missing password from stdin")
	}
	password := strings.TrimSuffix(sc.Text(), "\r")
	if len(password) == 0 {
		return "", errors.New("missing password from stdin")
	}
	return password, nil
}
