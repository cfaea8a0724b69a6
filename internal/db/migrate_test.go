package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateWrapsDriverErrors(t *testing.T) {
	err := Migrate("nosuchdriver://localhost/wizard")
	require.Error(t, err)
	assert.ErrorContains(t, err, "connect migrate to postgres")
	assert.ErrorContains(t, err, "nosuchdriver")
}
