package impl

import (
	"context"
	"sync"
	"time"

	"dhansaathi/internal/domain/entity"
	"dhansaathi/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// fakeUserRepo is an in-memory UserRepository for testing the services
// without a database.
type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User

	createErr error
	findErr   error
	updateErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.findErr != nil {
		return nil, r.findErr
	}

	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	clone := *user

	return &clone, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.findErr != nil {
		return nil, r.findErr
	}

	for _, user := range r.users {
		if user.Email == email {
			clone := *user

			return &clone, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) List(_ context.Context) ([]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := make([]*entity.User, 0, len(r.users))
	for _, user := range r.users {
		clone := *user
		users = append(users, &clone)
	}

	return users, nil
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.createErr != nil {
		return r.createErr
	}

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	clone := *user
	r.users[user.ID] = &clone

	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.updateErr != nil {
		return r.updateErr
	}

	if _, ok := r.users[user.ID]; !ok {
		return repository.ErrUserNotFound
	}
	user.UpdatedAt = time.Now()
	clone := *user
	r.users[user.ID] = &clone

	return nil
}

func (r *fakeUserRepo) EmailTaken(_ context.Context, email string, excludeID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Email == email && user.ID != excludeID {
			return true, nil
		}
	}

	return false, nil
}

// fakeTxManager runs the callback directly against a single repository,
// without real transaction semantics.
type fakeTxManager struct {
	repo *fakeUserRepo
}

func (m *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(&fakeRepoFactory{repo: m.repo})
}

type fakeRepoFactory struct {
	repo *fakeUserRepo
}

func (f *fakeRepoFactory) UserRepo() repository.UserRepository {
	return f.repo
}

// fakeHasher is a deterministic PasswordHasher that prefixes the password,
// fast enough for table tests.
type fakeHasher struct {
	hashErr error
}

func (h *fakeHasher) Hash(password string) (string, error) {
	if h.hashErr != nil {
		return "", h.hashErr
	}

	return "hashed:" + password, nil
}

func (h *fakeHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

// fakeTokenService issues predictable tokens keyed by user ID.
type fakeTokenService struct {
	issueErr error
}

func (s *fakeTokenService) Issue(userID uuid.UUID) (string, error) {
	if s.issueErr != nil {
		return "", s.issueErr
	}

	return "token-for-" + userID.String(), nil
}

func (s *fakeTokenService) Verify(token string) (uuid.UUID, bool) {
	const prefix = "token-for-"
	if len(token) <= len(prefix) || token[:len(prefix)] != prefix {
		return uuid.Nil, false
	}

	id, err := uuid.Parse(token[len(prefix):])
	if err != nil {
		return uuid.Nil, false
	}

	return id, true
}

func (s *fakeTokenService) AccessTokenTTL() time.Duration {
	return time.Hour
}

var errBoom = errors.New("boom")
