package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCentreIDValidate(t *testing.T) {
	env := newTestEnv(t)

	t.Run("valid centre-id", func(t *testing.T) {
		out := env.run("centre-id", "validate", "int-my-centre-dcpc")
		env.contains(out, "Valid")
	})

	t.Run("unknown tld", func(t *testing.T) {
		out := env.run("centre-id", "validate", "zz-some-centre")
		env.contains(out, "Invalid")
	})

	t.Run("already allocated", func(t *testing.T) {
		out := env.run("centre-id", "validate", "ca-eccc-msc")
		env.contains(out, "Invalid")
	})

	t.Run("uppercase fails baseline", func(t *testing.T) {
		out := env.run("centre-id", "validate", "CA-CENTRE")
		env.contains(out, "Invalid")
	})

	t.Run("missing separator is an error", func(t *testing.T) {
		_, err := env.runErr("centre-id", "validate", "badcentre")
		assert.Error(t, err)
	})
}
