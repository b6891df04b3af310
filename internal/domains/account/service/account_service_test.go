package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"blog-backend/internal/domains/account"
	"blog-backend/internal/shared/access"
	"blog-backend/internal/shared/validation"
	"blog-backend/pkg/jwt"
)

// memoryRepository is an in-memory stub of account.Repository
type memoryRepository struct {
	accounts map[string]*account.Account

	getByEmailErr error
	addRolesErr   error
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{accounts: map[string]*account.Account{}}
}

func (m *memoryRepository) Create(_ context.Context, a *account.Account) error {
	key := account.NormalizeEmail(a.Email)
	if _, ok := m.accounts[key]; ok {
		return account.ErrDuplicateEmail
	}
	stored := *a
	m.accounts[key] = &stored
	return nil
}

func (m *memoryRepository) GetByEmail(_ context.Context, email string) (*account.Account, error) {
	if m.getByEmailErr != nil {
		return nil, m.getByEmailErr
	}
	a, ok := m.accounts[account.NormalizeEmail(email)]
	if !ok {
		return nil, account.ErrAccountNotFound
	}
	out := *a
	out.Roles = append([]access.Role(nil), a.Roles...)
	return &out, nil
}

func (m *memoryRepository) AddRoles(_ context.Context, id uuid.UUID, roles ...access.Role) error {
	if m.addRolesErr != nil {
		return m.addRolesErr
	}
	for _, a := range m.accounts {
		if a.ID != id {
			continue
		}
		for _, r := range roles {
			if !a.HasRole(r) {
				a.Roles = append(a.Roles, r)
			}
		}
		return nil
	}
	return account.ErrAccountNotFound
}

func newTestService(repo account.Repository) *accountService {
	return &accountService{
		repo:     repo,
		tokens:   jwt.NewManager("test-secret"),
		hashCost: bcrypt.MinCost,
		now:      time.Now,
	}
}

func TestRegister_GrantsReaderOnly(t *testing.T) {
	repo := newMemoryRepository()
	svc := newTestService(repo)

	err := svc.Register(context.Background(), account.RegisterRequest{Email: "  new@example.com ", Password: "Passw0rd!"})
	require.NoError(t, err)

	stored, err := repo.GetByEmail(context.Background(), "new@example.com")
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", stored.Email)
	assert.Equal(t, []access.Role{access.RoleReader}, stored.Roles)
	assert.False(t, stored.HasRole(access.RoleWriter))
	assert.NotEqual(t, "Passw0rd!", stored.PasswordHash)
}

func TestRegister_CollectsEveryPasswordViolation(t *testing.T) {
	svc := newTestService(newMemoryRepository())

	err := svc.Register(context.Background(), account.RegisterRequest{Email: "a@example.com", Password: "abc"})

	fe, ok := validation.As(err)
	require.True(t, ok)
	assert.Equal(t, []string{
		"Passwords must be at least 6 characters.",
		"Passwords must have at least one non alphanumeric character.",
		"Passwords must have at least one digit ('0'-'9').",
		"Passwords must have at least one uppercase ('A'-'Z').",
	}, fe.Details()[""])
}

func TestRegister_EmptyPassword(t *testing.T) {
	svc := newTestService(newMemoryRepository())

	err := svc.Register(context.Background(), account.RegisterRequest{Email: "a@example.com"})

	fe, ok := validation.As(err)
	require.True(t, ok)
	assert.Len(t, fe, 5)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := newMemoryRepository()
	svc := newTestService(repo)
	require.NoError(t, svc.Register(context.Background(), account.RegisterRequest{Email: "dup@example.com", Password: "Passw0rd!"}))

	err := svc.Register(context.Background(), account.RegisterRequest{Email: "DUP@example.com", Password: "short"})

	fe, ok := validation.As(err)
	require.True(t, ok)
	messages := fe.Details()[""]
	assert.Equal(t, "Username 'DUP@example.com' is already taken.", messages[0])
	assert.Greater(t, len(messages), 1, "password errors are reported alongside the duplicate")
}

func TestRegister_InvalidUsername(t *testing.T) {
	svc := newTestService(newMemoryRepository())

	err := svc.Register(context.Background(), account.RegisterRequest{Email: "not an email", Password: "Passw0rd!"})

	fe, ok := validation.As(err)
	require.True(t, ok)
	assert.Equal(t, []string{"Username 'not an email' is invalid, can only contain letters or digits."}, fe.Details()[""])
}

func TestRegister_RoleGrantFailureKeepsAccount(t *testing.T) {
	repo := newMemoryRepository()
	repo.addRolesErr = errors.New("connection reset")
	svc := newTestService(repo)

	err := svc.Register(context.Background(), account.RegisterRequest{Email: "half@example.com", Password: "Passw0rd!"})

	assert.ErrorIs(t, err, account.ErrRoleGrantFailed)
	repo.addRolesErr = nil
	stored, getErr := repo.GetByEmail(context.Background(), "half@example.com")
	require.NoError(t, getErr)
	assert.Empty(t, stored.Roles)
}

func TestLogin_Success(t *testing.T) {
	repo := newMemoryRepository()
	svc := newTestService(repo)
	require.NoError(t, svc.Register(context.Background(), account.RegisterRequest{Email: "reader@example.com", Password: "Passw0rd!"}))

	resp, err := svc.Login(context.Background(), account.LoginRequest{Email: "reader@example.com", Password: "Passw0rd!"})
	require.NoError(t, err)

	assert.Equal(t, "reader@example.com", resp.Email)
	assert.Equal(t, []string{"Reader"}, resp.Roles)

	claims, err := jwt.NewManager("test-secret").ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "reader@example.com", claims.Email)
	assert.Equal(t, []string{"Reader"}, claims.Roles)
}

func TestLogin_FailuresAreIndistinguishable(t *testing.T) {
	repo := newMemoryRepository()
	svc := newTestService(repo)
	require.NoError(t, svc.Register(context.Background(), account.RegisterRequest{Email: "reader@example.com", Password: "Passw0rd!"}))

	_, wrongPassword := svc.Login(context.Background(), account.LoginRequest{Email: "reader@example.com", Password: "nope"})
	_, unknownEmail := svc.Login(context.Background(), account.LoginRequest{Email: "ghost@example.com", Password: "Passw0rd!"})

	repo.getByEmailErr = errors.New("db down")
	_, lookupFailed := svc.Login(context.Background(), account.LoginRequest{Email: "reader@example.com", Password: "Passw0rd!"})

	assert.Equal(t, account.ErrInvalidCredentials, wrongPassword)
	assert.Equal(t, account.ErrInvalidCredentials, unknownEmail)
	assert.Equal(t, account.ErrInvalidCredentials, lookupFailed)
}

func TestLogin_TrimsEmail(t *testing.T) {
	repo := newMemoryRepository()
	svc := newTestService(repo)
	require.NoError(t, svc.Register(context.Background(), account.RegisterRequest{Email: "reader@example.com", Password: "Passw0rd!"}))

	resp, err := svc.Login(context.Background(), account.LoginRequest{Email: "  reader@example.com ", Password: "Passw0rd!"})
	require.NoError(t, err)
	assert.Equal(t, "reader@example.com", resp.Email)
}

func TestLogin_UnknownEmailStillComparesHash(t *testing.T) {
	repo := newMemoryRepository()
	svc := newTestService(repo)

	var compared [][]byte
	svc.compare = func(hash, password []byte) error {
		compared = append(compared, hash)
		return bcrypt.CompareHashAndPassword(hash, password)
	}

	_, err := svc.Login(context.Background(), account.LoginRequest{Email: "ghost@example.com", Password: "Passw0rd!"})
	assert.Equal(t, account.ErrInvalidCredentials, err)
	require.Len(t, compared, 1)
	assert.NotEmpty(t, compared[0])

	repo.getByEmailErr = errors.New("db down")
	_, err = svc.Login(context.Background(), account.LoginRequest{Email: "ghost@example.com", Password: "Passw0rd!"})
	assert.Equal(t, account.ErrInvalidCredentials, err)
	assert.Len(t, compared, 2)
}

func TestEnsureAdmin(t *testing.T) {
	repo := newMemoryRepository()
	svc := newTestService(repo)

	require.NoError(t, svc.EnsureAdmin(context.Background(), "admin@example.com", "Adm1n!pass"))
	// idempotent
	require.NoError(t, svc.EnsureAdmin(context.Background(), "admin@example.com", "Adm1n!pass"))

	stored, err := repo.GetByEmail(context.Background(), "admin@example.com")
	require.NoError(t, err)
	assert.ElementsMatch(t, []access.Role{access.RoleReader, access.RoleWriter}, stored.Roles)
}

func TestEnsureAdmin_PromotesExistingReader(t *testing.T) {
	repo := newMemoryRepository()
	svc := newTestService(repo)
	require.NoError(t, svc.Register(context.Background(), account.RegisterRequest{Email: "editor@example.com", Password: "Passw0rd!"}))

	require.NoError(t, svc.EnsureAdmin(context.Background(), "editor@example.com", "ignored"))

	stored, err := repo.GetByEmail(context.Background(), "editor@example.com")
	require.NoError(t, err)
	assert.True(t, stored.HasRole(access.RoleWriter))
}

func TestEnsureAdmin_WeakPassword(t *testing.T) {
	svc := newTestService(newMemoryRepository())
	assert.Error(t, svc.EnsureAdmin(context.Background(), "admin@example.com", "weak"))
}
