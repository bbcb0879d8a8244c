package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

var (
	ErrUnknownGenerator = errors.New("unknown id generator")
)

// IDGenerator returns a new, effectively unique document id.
type IDGenerator func() string

// UUIDGenerator produces random (v4) UUID strings. It is the default.
func UUIDGenerator() string {
	return uuid.NewString()
}

// ULIDGenerator produces lexicographically time-sortable ULID strings.
func ULIDGenerator() string {
	return ulid.Make().String()
}

// GeneratorByName resolves a generator from its configuration name ("uuid" or "ulid").
// An empty name selects the default.
func GeneratorByName(name string) (IDGenerator, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "uuid":
		return UUIDGenerator, nil
	case "ulid":
		return ULIDGenerator, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownGenerator, name)
}
