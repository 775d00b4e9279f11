package serve

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/linuxserver/docker-webtop/credential"
	"github.com/linuxserver/docker-webtop/gateway"
	"github.com/linuxserver/docker-webtop/gateway/loginpage"
	"github.com/linuxserver/docker-webtop/internal/authproxy"
	"github.com/linuxserver/docker-webtop/internal/cmdflags"
	"github.com/linuxserver/docker-webtop/internal/httpserver"
	"github.com/linuxserver/docker-webtop/internal/logutil"
	"github.com/linuxserver/docker-webtop/session"
	"github.com/urfave/cli/v2"
)

type (
	config struct {
		credentialFile string
		secretEnvVar   string
		ttl            time.Duration
		secureCookie   bool
		upstream       string
	}
)

func Cmd() *cli.Command {
	bindAddr := "127.0.0.1:6060"
	cfg := config{ttl: session.DefaultTTL}
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the auth server used by the reverse proxy to protect the desktop",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "bind",
				Usage:       "Address to bind for incoming requests, keep it on loopback unless you know what you are doing",
				EnvVars:     []string{"WEBTOP_AUTH_BIND"},
				Value:       bindAddr,
				Destination: &bindAddr,
			},
			cmdflags.CredentialFile(&cfg.credentialFile),
			cmdflags.SecretEnvVar(&cfg.secretEnvVar),
			&cli.DurationFlag{
				Name:        "ttl",
				Usage:       "How long a session stays valid after login",
				Value:       cfg.ttl,
				Destination: &cfg.ttl,
			},
			&cli.BoolFlag{
				Name:        "secure-cookie",
				Usage:       "Mark the session cookie as Secure (use it when TLS is terminated by a proxy in front of this server)",
				EnvVars:     []string{"WEBTOP_AUTH_SECURE_COOKIE"},
				Destination: &cfg.secureCookie,
			},
			&cli.StringFlag{
				Name:        "upstream",
				Usage:       "When set, requests outside /auth/ are proxied to this url for authenticated users",
				Destination: &cfg.upstream,
			},
		},
		Action: func(ctx *cli.Context) error {
			log := logutil.GetOrDefault(ctx.Context)
			if !isLoopback(bindAddr) {
				log.Warn().Str("bind", bindAddr).Msg("Auth server is not bound to a loopback address")
			}
			handler, err := newHandler(ctx.Context, cfg, os.Getenv, os.Setenv)
			if err != nil {
				return err
			}
			return httpserver.Serve(ctx.Context, bindAddr, logutil.AccessLog(log, handler))
		},
	}
}

func newHandler(ctx context.Context, cfg config, getenv func(string) string, setenv func(string, string) error) (http.Handler, error) {
	creds, err := credential.LoadFile(cfg.credentialFile)
	if err != nil {
		return nil, err
	}
	creds, err = credential.SecretFromEnv(creds, cfg.secretEnvVar, getenv, setenv)
	if err != nil {
		return nil, err
	}
	codec := session.NewCodec(creds.Username(), creds.Secret(), cfg.ttl, nil)
	gw := gateway.New(creds, codec, loginpage.Render, gateway.Options{
		SecureCookie: cfg.secureCookie,
	})
	log := logutil.GetOrDefault(ctx)
	log.Info().
		Dur("session.ttl", codec.TTL()).
		Bool("session.secure_cookie", cfg.secureCookie).
		Msg("Credentials loaded")
	if cfg.upstream == "" {
		return gw.Handler(), nil
	}
	upstream, err := url.Parse(cfg.upstream)
	if err != nil {
		return nil, fmt.Errorf("invalid upstream url, cause %w", err)
	}
	return authproxy.AsHandler(ctx, gw, upstream)
}

func isLoopback(bind string) bool {
	host, _, err := net.SplitHostPort(bind)
	if err != nil {
		return false
	}
	if host == "localhost" {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}
