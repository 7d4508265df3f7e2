package cmd

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopicValidate(t *testing.T) {
	env := newTestEnv(t)

	t.Run("valid topic", func(t *testing.T) {
		out := env.run("topic", "validate", "cache/a/wis2/ca-eccc-msc/data/core")
		env.contains(out, "Valid")
	})

	t.Run("valid deep discipline", func(t *testing.T) {
		out := env.run("topic", "validate", "cache/a/wis2/ca-eccc-msc/data/core/weather/surface-based-observations")
		env.contains(out, "Valid")
	})

	t.Run("invalid topic", func(t *testing.T) {
		out := env.run("topic", "validate", "invalid/topic/hierarchy")
		env.contains(out, "Invalid")
	})

	t.Run("wildcards rejected in strict mode", func(t *testing.T) {
		out := env.run("topic", "validate", "cache/a/wis2/+/data/core")
		env.contains(out, "Invalid")
	})

	t.Run("wildcards accepted with no-strict", func(t *testing.T) {
		out := env.run("topic", "validate", "--no-strict", "cache/a/wis2/+/data/core/#")
		env.contains(out, "Valid")
	})

	t.Run("empty hierarchy is an error", func(t *testing.T) {
		_, err := env.runErr("topic", "validate", "/")
		assert.Error(t, err)
	})

	t.Run("json output", func(t *testing.T) {
		out := env.run("-o", "json", "topic", "validate", "cache/a/wis2")

		var result struct {
			Topic  string `json:"topic"`
			Strict bool   `json:"strict"`
			Valid  bool   `json:"valid"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &result))
		assert.Equal(t, "cache/a/wis2", result.Topic)
		assert.True(t, result.Strict)
		assert.True(t, result.Valid)
	})
}

func TestTopicList(t *testing.T) {
	env := newTestEnv(t)

	t.Run("root lists channels", func(t *testing.T) {
		out := env.run("topic", "list", "/")
		env.contains(out, "origin")
		env.contains(out, "cache")
	})

	t.Run("next level down", func(t *testing.T) {
		out := env.run("topic", "list", "cache")
		env.contains(out, "- a")
	})

	t.Run("discipline roots", func(t *testing.T) {
		out := env.run("topic", "list", "cache/a/wis2/ca-eccc-msc/data/core")
		env.contains(out, "ocean")
		env.contains(out, "weather")
	})

	t.Run("nested discipline children", func(t *testing.T) {
		out := env.run("topic", "list", "cache/a/wis2/ca-eccc-msc/data/core/weather/aviation")
		env.contains(out, "- metar")
	})

	t.Run("json output is order-independent", func(t *testing.T) {
		out := env.run("-o", "json", "topic", "list", "cache/a/wis2/ca-eccc-msc/data/core/weather")

		var result struct {
			Children []string `json:"children"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &result))
		assert.ElementsMatch(t,
			[]string{"advisories-warnings", "aviation", "surface-based-observations"},
			result.Children)
	})

	t.Run("invalid topic is an error", func(t *testing.T) {
		_, err := env.runErr("topic", "list", "cache/c")
		assert.Error(t, err)
	})

	t.Run("leaf with no children is an error", func(t *testing.T) {
		_, err := env.runErr("topic", "list", "cache/a/wis2/ca-eccc-msc/data/core/ocean")
		assert.Error(t, err)
	})
}

func TestTopicValidate_MissingTables(t *testing.T) {
	env := newTestEnv(t)
	env.tables = env.home // no table files here

	out, err := env.runErr("topic", "validate", "cache/a/wis2")
	assert.Error(t, err)
	env.contains(out, "bundle sync")
}
