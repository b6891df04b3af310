package repository

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"blog-backend/internal/domains/post"
)

func TestMapWriteError(t *testing.T) {
	dup := &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: urlHandleIndex}
	assert.ErrorIs(t, mapWriteError(dup), post.ErrDuplicateURLHandle)

	other := &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "blog_posts_pkey"}
	assert.Same(t, other, mapWriteError(other))

	plain := errors.New("boom")
	assert.Equal(t, plain, mapWriteError(plain))
}

func TestCategoriesOrEmpty(t *testing.T) {
	assert.NotNil(t, categoriesOrEmpty(nil))
	assert.Empty(t, categoriesOrEmpty(nil))
}
