package repository

import (
	"testing"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/require"
)

func TestGeneratorByName(t *testing.T) {
	g, err := GeneratorByName("")
	require.NoError(t, err)
	_, err = uuid.Parse(g())
	require.NoError(t, err)

	g, err = GeneratorByName(" ULID ")
	require.NoError(t, err)
	_, err = ulid.ParseStrict(g())
	require.NoError(t, err)

	_, err = GeneratorByName("snowflake")
	require.ErrorIs(t, err, ErrUnknownGenerator)
}

func TestDefaultGeneratorIsUUID(t *testing.T) {
	r := NewMemoryRepo()
	_, err := uuid.Parse(r.newID())
	require.NoError(t, err)
	require.NotEqual(t, UUIDGenerator(), UUIDGenerator())
}
