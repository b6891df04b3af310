package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUniqueUUIDs(t *testing.T) {
	a, b := uuid.New(), uuid.New()

	got := UniqueUUIDs([]uuid.UUID{a, b, a, uuid.Nil, b})

	assert.Equal(t, []uuid.UUID{a, b}, got)
}

func TestIsValidUUID(t *testing.T) {
	assert.True(t, IsValidUUID(uuid.NewString()))
	assert.False(t, IsValidUUID("hello-world"))
	assert.False(t, IsValidUUID("urn:uuid:"+uuid.NewString()))
}

func TestContainsPattern(t *testing.T) {
	assert.Equal(t, `%html%`, ContainsPattern("html"))
	assert.Equal(t, `%100\%\_off\\%`, ContainsPattern(`100%_off\`))
}
