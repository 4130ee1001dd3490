package kernel_test

import (
	"encoding/json"
	"testing"

	"routeboard/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validUUID = "550e8400-e29b-41d4-a716-446655440000"

func TestNewUUID(t *testing.T) {
	t.Run("should create unique valid UUIDs", func(t *testing.T) {
		id1 := kernel.NewUUID()
		id2 := kernel.NewUUID()

		require.NoError(t, id1.Validate())
		assert.False(t, id1.IsEqual(id2))
	})
}

func TestUUIDFromString(t *testing.T) {
	t.Run("should create UUID from valid string", func(t *testing.T) {
		id, err := kernel.UUIDFromString(validUUID)

		require.NoError(t, err)
		assert.Equal(t, validUUID, id.String())
	})

	t.Run("should accept UUID without hyphens", func(t *testing.T) {
		id, err := kernel.UUIDFromString("550e8400e29b41d4a716446655440000")

		require.NoError(t, err)
		assert.Equal(t, validUUID, id.String())
	})

	t.Run("should return error for invalid UUID format", func(t *testing.T) {
		for _, input := range []string{"", "not-a-uuid", "550e8400-e29b-41d4-a716"} {
			_, err := kernel.UUIDFromString(input)
			require.Error(t, err, "expected error for input: %s", input)
			assert.Contains(t, err.Error(), "invalid UUID format")
		}
	})

	t.Run("should reject the nil UUID", func(t *testing.T) {
		_, err := kernel.UUIDFromString("00000000-0000-0000-0000-000000000000")

		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, err)
	})
}

func TestUUIDFromBytes(t *testing.T) {
	t.Run("should create UUID from valid bytes", func(t *testing.T) {
		raw := uuid.MustParse(validUUID)
		id, err := kernel.UUIDFromBytes(raw[:])

		require.NoError(t, err)
		assert.Equal(t, validUUID, id.String())
	})

	t.Run("should return error for invalid byte length", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes([]byte{0x55, 0x0e, 0x84})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid UUID format")
	})
}

func TestUUIDFromGoogle(t *testing.T) {
	id, err := kernel.UUIDFromGoogle(uuid.MustParse(validUUID))
	require.NoError(t, err)
	assert.Equal(t, uuid.MustParse(validUUID), id.Bytes())

	_, err = kernel.UUIDFromGoogle(uuid.Nil)
	assert.Equal(t, kernel.ErrUUIDIsNotConstructed, err)
}

func TestUUID_Validate(t *testing.T) {
	var id kernel.UUID

	assert.Equal(t, kernel.ErrUUIDIsNotConstructed, id.Validate())
}

func TestUUID_JSON(t *testing.T) {
	t.Run("should encode as a JSON string", func(t *testing.T) {
		id, _ := kernel.UUIDFromString(validUUID)

		data, err := json.Marshal(map[string]kernel.UUID{"id": id})

		require.NoError(t, err)
		assert.JSONEq(t, `{"id":"`+validUUID+`"}`, string(data))
	})

	t.Run("should decode from a JSON string", func(t *testing.T) {
		var payload struct {
			ID kernel.UUID `json:"id"`
		}

		err := json.Unmarshal([]byte(`{"id":"`+validUUID+`"}`), &payload)

		require.NoError(t, err)
		assert.Equal(t, validUUID, payload.ID.String())
	})

	t.Run("should refuse malformed input", func(t *testing.T) {
		var payload struct {
			ID kernel.UUID `json:"id"`
		}

		err := json.Unmarshal([]byte(`{"id":"nope"}`), &payload)

		require.Error(t, err)
	})
}

func TestUUID_AsMapKey(t *testing.T) {
	id, _ := kernel.UUIDFromString(validUUID)
	same, _ := kernel.UUIDFromString(validUUID)

	seen := map[kernel.UUID]int{id: 1}

	assert.Equal(t, 1, seen[same])
}
