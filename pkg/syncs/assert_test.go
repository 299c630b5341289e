package syncs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/parsync/pkg/syncs"
)

func TestModeAssertions(t *testing.T) {
	t.Parallel()

	if syncs.IsParallel {
		assert.NotPanics(t, syncs.AssertParallel)
		assert.Panics(t, syncs.AssertSerial)
	} else {
		assert.NotPanics(t, syncs.AssertSerial)
		assert.Panics(t, syncs.AssertParallel)
	}
}

func TestInsertSame(t *testing.T) {
	t.Parallel()

	m := map[string]int{}

	syncs.InsertSame(m, "a", 1)
	syncs.InsertSame(m, "a", 1)

	assert.Equal(t, map[string]int{"a": 1}, m)

	require.Panics(t, func() {
		syncs.InsertSame(m, "a", 2)
	})
}
