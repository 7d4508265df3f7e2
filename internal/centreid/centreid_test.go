package centreid_test

import (
	"testing"

	"github.com/jpl-au/wistopics/internal/centreid"
	"github.com/jpl-au/wistopics/internal/topics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTLDs = []string{"CA", "DE", "INT", "IO", "MY"}

func testTables(t *testing.T) *topics.Tables {
	t.Helper()

	levels := make([][]string, topics.NumLevels)
	levels[topics.LevelCentreID] = []string{"ca-eccc-msc", "de-dwd"}

	tables, err := topics.NewTables(levels)
	require.NoError(t, err)
	return tables
}

func TestNew(t *testing.T) {
	t.Run("splits on first hyphen only", func(t *testing.T) {
		cid, err := centreid.New("int-my-centre-dcpc")
		require.NoError(t, err)
		assert.Equal(t, "int", cid.TLD())
		assert.Equal(t, "my-centre-dcpc", cid.Centre())
		assert.Equal(t, "int-my-centre-dcpc", cid.String())
	})

	t.Run("no separator", func(t *testing.T) {
		_, err := centreid.New("badcentre")
		assert.ErrorIs(t, err, topics.ErrInvalidArgument)
	})
}

func TestValidate(t *testing.T) {
	tables := testTables(t)

	valid := []string{
		"int-centre123",
		"int-centre123-vaac",
		"int-my-centre-dcpc",
		"int-my_centre-dcpc",
		"ca-another-centre",
	}
	invalid := []string{
		"MY-CENTRE",       // uppercase fails baseline
		"my-Centre",       // uppercase fails baseline
		"dh-some-centre",  // unknown TLD
		"ca-eccc-msc",     // already allocated
		"de-dwd",          // already allocated
		"int-centre.123",  // dot fails baseline
		"ca-centre\xc3\xa9", // non-ascii fails baseline
	}

	for _, id := range valid {
		cid, err := centreid.New(id)
		require.NoError(t, err)
		assert.True(t, cid.Validate(testTLDs, tables), "centre-id %q", id)
	}

	for _, id := range invalid {
		cid, err := centreid.New(id)
		require.NoError(t, err)
		assert.False(t, cid.Validate(testTLDs, tables), "centre-id %q", id)
	}
}
