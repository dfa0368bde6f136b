package commands_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coordkeeper/core/cmd/coordkeeper/commands"
)

func TestVersionCommand(t *testing.T) {
	t.Run("prints the configured version", func(t *testing.T) {
		t.Setenv("APP_VERSION", "9.9.9")

		cmd := commands.NewVersionCommand()
		var out bytes.Buffer
		cmd.SetOut(&out)

		require.NoError(t, cmd.Execute())
		assert.Equal(t, "coordkeeper v9.9.9\n", out.String())
	})

	t.Run("prints the configured name", func(t *testing.T) {
		t.Setenv("APP_NAME", "cordctl")

		cmd := commands.NewVersionCommand()
		var out bytes.Buffer
		cmd.SetOut(&out)

		require.NoError(t, cmd.Execute())
		assert.Contains(t, out.String(), "cordctl v")
	})
}
