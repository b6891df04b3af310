package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPolicy(t *testing.T) {
	p := DefaultPolicy()

	for _, op := range []Operation{OpPostList, OpPostGet, OpCategoryList, OpCategoryGet, OpCategoryCount, OpImageList} {
		assert.True(t, p.Rule(op).IsPublic(), op)
	}
	for _, op := range []Operation{
		OpPostCreate, OpPostUpdate, OpPostDelete,
		OpCategoryCreate, OpCategoryUpdate, OpCategoryDelete,
		OpImageUpload,
	} {
		assert.Equal(t, RoleWriter, p.Rule(op).Role(), op)
	}
}

func TestPolicy_UnknownOperationRequiresWriter(t *testing.T) {
	assert.Equal(t, RoleWriter, Policy{}.Rule("comment.create").Role())
}

func TestParsePolicy_Overrides(t *testing.T) {
	p, err := ParsePolicy(" category.create=public, category.update = PUBLIC ,image.upload=reader")
	require.NoError(t, err)

	assert.True(t, p.Rule(OpCategoryCreate).IsPublic())
	assert.True(t, p.Rule(OpCategoryUpdate).IsPublic())
	assert.Equal(t, RoleReader, p.Rule(OpImageUpload).Role())
	// untouched operations keep their defaults
	assert.Equal(t, RoleWriter, p.Rule(OpCategoryDelete).Role())
}

func TestParsePolicy_Empty(t *testing.T) {
	p, err := ParsePolicy("")
	require.NoError(t, err)
	assert.Equal(t, DefaultPolicy(), p)
}

func TestParsePolicy_Errors(t *testing.T) {
	tests := map[string]string{
		"missing separator": "category.create",
		"unknown operation": "comment.create=public",
		"unknown role":      "post.create=Admin",
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParsePolicy(in)
			assert.Error(t, err)
		})
	}
}

func TestPolicy_String(t *testing.T) {
	p := Policy{OpPostGet: Public(), OpPostCreate: RequiresRole(RoleWriter)}
	assert.Equal(t, "post.create=Writer,post.get=public", p.String())
}
