package main

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppLogFlags(t *testing.T) {
	app := App()
	app.Writer = io.Discard
	app.ErrWriter = io.Discard
	err := app.Run([]string{"webtop-auth", "--log-level", "loud", "serve"})
	require.Error(t, err)

	app = App()
	app.Writer = io.Discard
	app.ErrWriter = io.Discard
	err = app.Run([]string{"webtop-auth", "--log-format", "xml", "serve"})
	require.Error(t, err)
}

func TestAppCommands(t *testing.T) {
	var names []string
	for _, c := range App().Commands {
		names = append(names, c.Name)
	}
	require.Equal(t, []string{"serve", "credentials"}, names)
}
