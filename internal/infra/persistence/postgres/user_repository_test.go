package postgres

import (
	"testing"
	"time"

	"dhansaathi/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Update writes the full row through Save, so the entity-to-model mapping
// must carry every column. A mapper that drops CreatedAt would overwrite
// the row's created_at with the zero time on every profile update.
func TestFromUserDomain_PreservesTimestamps(t *testing.T) {
	t.Parallel()

	createdAt := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	updatedAt := createdAt.Add(48 * time.Hour)
	user := &entity.User{
		ID:           uuid.New(),
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$secret",
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}

	userM := fromUserDomain(user)
	require.NotNil(t, userM)
	assert.Equal(t, user.ID, userM.ID)
	assert.Equal(t, user.Username, userM.Username)
	assert.Equal(t, user.Email, userM.Email)
	assert.Equal(t, user.PasswordHash, userM.PasswordHash)
	assert.Equal(t, createdAt, userM.CreatedAt)
	assert.False(t, userM.CreatedAt.IsZero())
	assert.Equal(t, updatedAt, userM.UpdatedAt)
}

func TestUserMapperRoundTrip(t *testing.T) {
	t.Parallel()

	original := &entity.User{
		ID:           uuid.New(),
		Username:     "bob",
		Email:        "bob@example.com",
		PasswordHash: "$2a$10$other",
		CreatedAt:    time.Now().Add(-time.Hour).Truncate(time.Second),
		UpdatedAt:    time.Now().Truncate(time.Second),
	}

	assert.Equal(t, original, toUserDomain(fromUserDomain(original)))
}

func TestUserMapper_NilInput(t *testing.T) {
	t.Parallel()

	assert.Nil(t, toUserDomain(nil))
	assert.Nil(t, fromUserDomain(nil))
}
