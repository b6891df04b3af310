package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"blog-backend/internal/domains/account"
	"blog-backend/internal/shared/access"
	"blog-backend/internal/shared/validation"
	"blog-backend/pkg/logger"
)

// TokenIssuer is implemented by *jwt.Manager.
type TokenIssuer interface {
	GenerateAccessToken(email string, roles []string) (string, time.Time, error)
}

type accountService struct {
	repo     account.Repository
	tokens   TokenIssuer
	hashCost int
	now      func() time.Time

	// compare mặc định là bcrypt.CompareHashAndPassword
	compare func(hash, password []byte) error

	dummyOnce sync.Once
	dummyHash []byte
}

func NewAccountService(repo account.Repository, tokens TokenIssuer) account.Service {
	return &accountService{
		repo:     repo,
		tokens:   tokens,
		hashCost: 12, // bcrypt cost = 12
		now:      time.Now,
	}
}

// Login: sai email, sai password hay lỗi lookup đều trả cùng một lỗi.
// Email không tồn tại vẫn chạy bcrypt với dummy hash để thời gian phản hồi tương đương.
func (s *accountService) Login(ctx context.Context, req account.LoginRequest) (*account.LoginResponse, error) {
	email := strings.TrimSpace(req.Email)

	a, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, account.ErrAccountNotFound) {
			logger.Error("Login: account lookup failed", err)
		}
		_ = s.comparePassword(s.dummy(), req.Password)
		return nil, account.ErrInvalidCredentials
	}

	if err := s.comparePassword([]byte(a.PasswordHash), req.Password); err != nil {
		return nil, account.ErrInvalidCredentials
	}

	roles := a.RoleNames()
	token, _, err := s.tokens.GenerateAccessToken(a.Email, roles)
	if err != nil {
		logger.Error("Login: token generation failed", err)
		return nil, account.ErrInvalidCredentials
	}

	return &account.LoginResponse{
		Email: email,
		Roles: roles,
		Token: token,
	}, nil
}

func (s *accountService) Register(ctx context.Context, req account.RegisterRequest) error {
	email := strings.TrimSpace(req.Email)

	// Username errors trước, sau đó tới password policy
	errs := account.ValidateUsername(email)
	if len(errs) == 0 {
		_, err := s.repo.GetByEmail(ctx, email)
		switch {
		case err == nil:
			errs.Add("", account.DuplicateUsernameMessage(email))
		case !errors.Is(err, account.ErrAccountNotFound):
			return fmt.Errorf("register: lookup account: %w", err)
		}
	}
	errs = append(errs, account.ValidatePassword(req.Password)...)
	if len(errs) > 0 {
		return errs
	}

	a, err := s.create(ctx, email, req.Password)
	if err != nil {
		if errors.Is(err, account.ErrDuplicateEmail) {
			return validation.New("", account.DuplicateUsernameMessage(email))
		}
		return err
	}

	// Account đã tạo; lỗi gán role không rollback
	if err := s.repo.AddRoles(ctx, a.ID, access.RoleReader); err != nil {
		logger.Error("Register: account created without Reader role "+a.ID.String(), err)
		return fmt.Errorf("%w: %v", account.ErrRoleGrantFailed, err)
	}

	logger.Info("account registered", map[string]interface{}{
		"account_id": a.ID.String(),
	})
	return nil
}

func (s *accountService) EnsureAdmin(ctx context.Context, email, password string) error {
	email = strings.TrimSpace(email)

	a, err := s.repo.GetByEmail(ctx, email)
	switch {
	case errors.Is(err, account.ErrAccountNotFound):
		if errs := account.ValidatePassword(password); len(errs) > 0 {
			return fmt.Errorf("admin password does not satisfy the password policy: %w", errs)
		}
		a, err = s.create(ctx, email, password)
		if err != nil {
			return fmt.Errorf("create admin account: %w", err)
		}
		logger.Info("admin account created", map[string]interface{}{"email": email})
	case err != nil:
		return fmt.Errorf("lookup admin account: %w", err)
	}

	if a.HasRole(access.RoleReader) && a.HasRole(access.RoleWriter) {
		return nil
	}
	if err := s.repo.AddRoles(ctx, a.ID, access.RoleReader, access.RoleWriter); err != nil {
		return fmt.Errorf("grant admin roles: %w", err)
	}
	return nil
}

func (s *accountService) create(ctx context.Context, email, password string) (*account.Account, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	a := &account.Account{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    s.now().UTC(),
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *accountService) comparePassword(hash []byte, password string) error {
	if s.compare != nil {
		return s.compare(hash, []byte(password))
	}
	return bcrypt.CompareHashAndPassword(hash, []byte(password))
}

// dummy hash cùng cost với hash thật, tạo một lần
func (s *accountService) dummy() []byte {
	s.dummyOnce.Do(func() {
		hash, err := bcrypt.GenerateFromPassword([]byte("not-a-real-password"), s.hashCost)
		if err != nil {
			logger.Error("Login: dummy hash generation failed", err)
			return
		}
		s.dummyHash = hash
	})
	return s.dummyHash
}
