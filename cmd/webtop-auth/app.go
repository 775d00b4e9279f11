package main

import (
	"github.com/linuxserver/docker-webtop/cmd/webtop-auth/credentials"
	"github.com/linuxserver/docker-webtop/cmd/webtop-auth/serve"
	"github.com/linuxserver/docker-webtop/internal/logutil"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func App() *cli.App {
	logLevel := "info"
	logFormat := "json"
	return &cli.App{
		Name:  "webtop-auth",
		Usage: "Password protection for the remote desktop",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "One of trace, debug, info, warn, error",
				EnvVars:     []string{"WEBTOP_AUTH_LOG_LEVEL"},
				Value:       logLevel,
				Destination: &logLevel,
			},
			&cli.StringFlag{
				Name:        "log-format",
				Usage:       "Either json or console",
				EnvVars:     []string{"WEBTOP_AUTH_LOG_FORMAT"},
				Value:       logFormat,
				Destination: &logFormat,
			},
		},
		Before: func(ctx *cli.Context) error {
			logger, err := logutil.New(ctx.App.ErrWriter, logLevel, logFormat)
			if err != nil {
				return err
			}
			log.Logger = logger
			ctx.Context = logutil.WithLogger(ctx.Context, logger)
			return nil
		},
		Commands: []*cli.Command{
			serve.Cmd(),
			credentials.Cmd(),
		},
	}
}
