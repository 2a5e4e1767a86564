package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"shop_backend/internal/feature/auth/domain"
	"shop_backend/internal/feature/auth/domain/entity"
)

// memUserRepository is an in-memory UserRepository.
// Err* fields inject failures into individual methods.
type memUserRepository struct {
	mu     sync.Mutex
	users  map[uint]entity.User
	nextID uint

	CreateErr      error
	FindByEmailErr error
	FindByIDErr    error
	UpdateErr      error

	updates int
}

func newMemUserRepository() *memUserRepository {
	return &memUserRepository{users: make(map[uint]entity.User), nextID: 1}
}

func (r *memUserRepository) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.CreateErr != nil {
		return r.CreateErr
	}
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return domain.ErrDuplicateEmail
		}
	}
	u.ID = r.nextID
	r.nextID++
	r.users[u.ID] = *u
	return nil
}

func (r *memUserRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FindByEmailErr != nil {
		return nil, r.FindByEmailErr
	}
	for _, u := range r.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUserRepository) FindByID(_ context.Context, id uint) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FindByIDErr != nil {
		return nil, r.FindByIDErr
	}
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

func (r *memUserRepository) Update(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.UpdateErr != nil {
		return r.UpdateErr
	}
	if _, ok := r.users[u.ID]; !ok {
		return domain.ErrUserNotFound
	}
	r.users[u.ID] = *u
	r.updates++
	return nil
}

func (r *memUserRepository) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *memUserRepository) List(_ context.Context) ([]entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// stored returns the persisted copy of a user.
func (r *memUserRepository) stored(id uint) entity.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.users[id]
}

// mockHasher is a PasswordHasher whose hash is readable in assertions.
type mockHasher struct {
	HashFunc   func(plaintext string) (string, error)
	verifyCall []string
}

func (m *mockHasher) Hash(plaintext string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(plaintext)
	}
	return "hashed:" + plaintext, nil
}

func (m *mockHasher) Verify(plaintext, hashed string) bool {
	m.verifyCall = append(m.verifyCall, hashed)
	return hashed == "hashed:"+plaintext
}

// mockTokenIssuer is a mock implementation of TokenIssuer.
type mockTokenIssuer struct {
	GenerateTokenFunc func(userID uint, role entity.Role) (string, error)
}

func (m *mockTokenIssuer) GenerateToken(userID uint, role entity.Role) (string, error) {
	if m.GenerateTokenFunc != nil {
		return m.GenerateTokenFunc(userID, role)
	}
	return fmt.Sprintf("session-%d-%s", userID, role), nil
}

// sequenceSecrets returns secret-1, secret-2, ... on successive calls.
type sequenceSecrets struct {
	n   int
	Err error
}

func (s *sequenceSecrets) Generate() (string, error) {
	if s.Err != nil {
		return "", s.Err
	}
	s.n++
	return fmt.Sprintf("secret-%02d-0123456789abcdef", s.n), nil
}

type sentMail struct {
	To       string
	Template string
	Data     map[string]any
}

// recordingNotifier captures every Send call.
type recordingNotifier struct {
	sent []sentMail
	Err  error
}

func (n *recordingNotifier) Send(_ context.Context, to, template string, data map[string]any) error {
	if n.Err != nil {
		return n.Err
	}
	n.sent = append(n.sent, sentMail{To: to, Template: template, Data: data})
	return nil
}

func (n *recordingNotifier) last() sentMail {
	if len(n.sent) == 0 {
		return sentMail{}
	}
	return n.sent[len(n.sent)-1]
}

var errBoom = errors.New("boom")

// testDeps bundles the collaborators of an authUsecase under test.
type testDeps struct {
	repo    *memUserRepository
	hasher  *mockHasher
	tokens  *mockTokenIssuer
	secrets *sequenceSecrets
	mailer  *recordingNotifier
}

func newTestUsecase(cfg Config) (*authUsecase, *testDeps) {
	d := &testDeps{
		repo:    newMemUserRepository(),
		hasher:  &mockHasher{},
		tokens:  &mockTokenIssuer{},
		secrets: &sequenceSecrets{},
		mailer:  &recordingNotifier{},
	}
	if cfg.Domain == "" {
		cfg.Domain = "http://shop.test"
	}
	uc := NewAuthUsecase(d.repo, d.hasher, d.tokens, d.secrets, d.mailer, cfg)
	return uc, d
}

// seed stores a user directly in the repository.
func (d *testDeps) seed(u entity.User) *entity.User {
	if u.Role == "" {
		u.Role = entity.RoleUser
	}
	_ = d.repo.Create(context.Background(), &u)
	return &u
}
