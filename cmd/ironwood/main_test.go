package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppCommands(t *testing.T) {
	app := newApp()

	assert.Equal(t, "ironwood", app.Name)
	assert.Equal(t, version, app.Version)

	var names []string
	for _, cmd := range app.Commands {
		names = append(names, cmd.Name)
	}
	assert.Contains(t, names, "repl")
	assert.Contains(t, names, "stress")
}

func TestStressCommandSmoke(t *testing.T) {
	app := newApp()

	err := app.Run([]string{"ironwood", "stress", "--order", "3", "--ops", "500", "--keyspace", "64", "--seed", "7"})
	require.NoError(t, err)
}

func TestStressRejectsBadOrder(t *testing.T) {
	app := newApp()

	err := app.Run([]string{"ironwood", "stress", "--order", "2", "--ops", "10"})
	assert.Error(t, err)
}

func TestNewReplRejectsBadOrder(t *testing.T) {
	_, err := newRepl(1, nil)
	assert.Error(t, err)
}
