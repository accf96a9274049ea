package impl

import (
	"context"
	"log/slog"
	"testing"

	"dhansaathi/internal/domain/entity"
	domainerrors "dhansaathi/internal/domain/errors"
	"dhansaathi/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProfileService(repo *fakeUserRepo, hasher *fakeHasher) *profileService {
	return &profileService{
		txManager: &fakeTxManager{repo: repo},
		userRepo:  repo,
		hasher:    hasher,
		logger:    slog.Default(),
	}
}

func seedUser(t *testing.T, repo *fakeUserRepo, username, email string) *entity.User {
	t.Helper()

	user := &entity.User{
		Username:     username,
		Email:        email,
		PasswordHash: "hashed:old-pass",
	}
	require.NoError(t, repo.Create(context.Background(), user))

	return user
}

func TestProfileService_GetProfile(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	user := seedUser(t, repo, "alice", "alice@example.com")
	srv := newTestProfileService(repo, &fakeHasher{})

	got, err := srv.GetProfile(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, got.Email)

	_, err = srv.GetProfile(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestProfileService_ListUsers(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	seedUser(t, repo, "alice", "alice@example.com")
	seedUser(t, repo, "bob", "bob@example.com")
	srv := newTestProfileService(repo, &fakeHasher{})

	users, err := srv.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestProfileService_GetUserByID(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	user := seedUser(t, repo, "alice", "alice@example.com")
	srv := newTestProfileService(repo, &fakeHasher{})

	got, err := srv.GetUserByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Username, got.Username)

	_, err = srv.GetUserByID(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestProfileService_UpdateProfile(t *testing.T) {
	t.Parallel()

	strPtr := func(s string) *string { return &s }

	t.Run("updates username and email", func(t *testing.T) {
		t.Parallel()

		repo := newFakeUserRepo()
		user := seedUser(t, repo, "alice", "alice@example.com")
		srv := newTestProfileService(repo, &fakeHasher{})

		updated, err := srv.UpdateProfile(context.Background(), user.ID, &usecase.UpdateProfileInput{
			Username: strPtr("alice2"),
			Email:    strPtr("alice2@example.com"),
		})
		require.NoError(t, err)
		assert.Equal(t, "alice2", updated.Username)
		assert.Equal(t, "alice2@example.com", updated.Email)

		stored, err := repo.FindByID(context.Background(), user.ID)
		require.NoError(t, err)
		assert.Equal(t, "alice2@example.com", stored.Email)
	})

	t.Run("partial update leaves other fields untouched", func(t *testing.T) {
		t.Parallel()

		repo := newFakeUserRepo()
		user := seedUser(t, repo, "alice", "alice@example.com")
		srv := newTestProfileService(repo, &fakeHasher{})

		updated, err := srv.UpdateProfile(context.Background(), user.ID, &usecase.UpdateProfileInput{
			Username: strPtr("alice2"),
		})
		require.NoError(t, err)
		assert.Equal(t, "alice2", updated.Username)
		assert.Equal(t, "alice@example.com", updated.Email)
	})

	t.Run("rejects email taken by another user", func(t *testing.T) {
		t.Parallel()

		repo := newFakeUserRepo()
		user := seedUser(t, repo, "alice", "alice@example.com")
		seedUser(t, repo, "bob", "bob@example.com")
		srv := newTestProfileService(repo, &fakeHasher{})

		_, err := srv.UpdateProfile(context.Background(), user.ID, &usecase.UpdateProfileInput{
			Email: strPtr("bob@example.com"),
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
	})

	t.Run("allows keeping own email", func(t *testing.T) {
		t.Parallel()

		repo := newFakeUserRepo()
		user := seedUser(t, repo, "alice", "alice@example.com")
		srv := newTestProfileService(repo, &fakeHasher{})

		updated, err := srv.UpdateProfile(context.Background(), user.ID, &usecase.UpdateProfileInput{
			Username: strPtr("alice2"),
			Email:    strPtr("alice@example.com"),
		})
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", updated.Email)
	})

	t.Run("unknown user", func(t *testing.T) {
		t.Parallel()

		repo := newFakeUserRepo()
		srv := newTestProfileService(repo, &fakeHasher{})

		_, err := srv.UpdateProfile(context.Background(), uuid.New(), &usecase.UpdateProfileInput{
			Username: strPtr("ghost"),
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
	})
}

func TestProfileService_ChangePassword(t *testing.T) {
	t.Parallel()

	t.Run("replaces the stored hash", func(t *testing.T) {
		t.Parallel()

		repo := newFakeUserRepo()
		user := seedUser(t, repo, "alice", "alice@example.com")
		srv := newTestProfileService(repo, &fakeHasher{})

		err := srv.ChangePassword(context.Background(), user.ID, &usecase.ChangePasswordInput{
			CurrentPassword: "old-pass",
			NewPassword:     "new-pass",
		})
		require.NoError(t, err)

		stored, err := repo.FindByID(context.Background(), user.ID)
		require.NoError(t, err)
		assert.Equal(t, "hashed:new-pass", stored.PasswordHash)
	})

	t.Run("rejects wrong current password", func(t *testing.T) {
		t.Parallel()

		repo := newFakeUserRepo()
		user := seedUser(t, repo, "alice", "alice@example.com")
		srv := newTestProfileService(repo, &fakeHasher{})

		err := srv.ChangePassword(context.Background(), user.ID, &usecase.ChangePasswordInput{
			CurrentPassword: "wrong-pass",
			NewPassword:     "new-pass",
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))

		stored, err := repo.FindByID(context.Background(), user.ID)
		require.NoError(t, err)
		assert.Equal(t, "hashed:old-pass", stored.PasswordHash)
	})
}
