package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := newRootCmd()

	for _, name := range []string{"serve", "seed", "init-user"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}
	assert.NotNil(t, root.PersistentFlags().Lookup("config"))
}

func TestSeedCommandIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("MADRASA_DATABASE_PATH", dir+"/madrasa.db")
	t.Setenv("MADRASA_LOG_FORMAT", "json")

	for i := 0; i < 2; i++ {
		root := newRootCmd()
		root.SetArgs([]string{"seed"})
		require.NoError(t, root.Execute())
	}
}

func TestInitUserRequiresCredentials(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("MADRASA_DATABASE_PATH", dir+"/madrasa.db")

	root := newRootCmd()
	root.SetArgs([]string{"init-user"})
	assert.Error(t, root.Execute())

	root = newRootCmd()
	root.SetArgs([]string{"init-user", "--username", "principal", "--password", "s3cret"})
	assert.NoError(t, root.Execute())
}
