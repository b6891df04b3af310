package access

import (
	"fmt"
	"sort"
	"strings"
)

// Role là capability được nhúng trong token dưới dạng role claim
type Role string

const (
	RoleReader Role = "Reader"
	RoleWriter Role = "Writer"
)

// AllRoles returns all valid roles
func AllRoles() []Role {
	return []Role{RoleReader, RoleWriter}
}

func (r Role) String() string {
	return string(r)
}

// ParseRole accepts role names case-insensitively.
func ParseRole(s string) (Role, error) {
	for _, r := range AllRoles() {
		if strings.EqualFold(s, string(r)) {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// ========================================
// RULE: Public | RequiresRole(role)
// ========================================

// Rule is the gate applied to a single operation. The zero value is Public.
type Rule struct {
	role Role
}

func Public() Rule {
	return Rule{}
}

func RequiresRole(role Role) Rule {
	return Rule{role: role}
}

func (r Rule) IsPublic() bool {
	return r.role == ""
}

// Role returns the required role; empty for public rules.
func (r Rule) Role() Role {
	return r.role
}

func (r Rule) String() string {
	if r.IsPublic() {
		return "public"
	}
	return string(r.role)
}

// ========================================
// OPERATIONS
// ========================================

type Operation string

const (
	OpPostCreate Operation = "post.create"
	OpPostList   Operation = "post.list"
	OpPostGet    Operation = "post.get"
	OpPostUpdate Operation = "post.update"
	OpPostDelete Operation = "post.delete"

	OpCategoryCreate Operation = "category.create"
	OpCategoryList   Operation = "category.list"
	OpCategoryGet    Operation = "category.get"
	OpCategoryCount  Operation = "category.count"
	OpCategoryUpdate Operation = "category.update"
	OpCategoryDelete Operation = "category.delete"

	OpImageUpload Operation = "image.upload"
	OpImageList   Operation = "image.list"
)

// Policy maps every operation to its rule.
type Policy map[Operation]Rule

// DefaultPolicy: reads are public, every mutation requires Writer.
func DefaultPolicy() Policy {
	return Policy{
		OpPostCreate: RequiresRole(RoleWriter),
		OpPostList:   Public(),
		OpPostGet:    Public(),
		OpPostUpdate: RequiresRole(RoleWriter),
		OpPostDelete: RequiresRole(RoleWriter),

		OpCategoryCreate: RequiresRole(RoleWriter),
		OpCategoryList:   Public(),
		OpCategoryGet:    Public(),
		OpCategoryCount:  Public(),
		OpCategoryUpdate: RequiresRole(RoleWriter),
		OpCategoryDelete: RequiresRole(RoleWriter),

		OpImageUpload: RequiresRole(RoleWriter),
		OpImageList:   Public(),
	}
}

// Rule returns the rule for op. Unknown operations require Writer.
func (p Policy) Rule(op Operation) Rule {
	if rule, ok := p[op]; ok {
		return rule
	}
	return RequiresRole(RoleWriter)
}

// ParsePolicy applies overrides on top of DefaultPolicy.
// Format: "category.create=public,image.upload=Reader"
func ParsePolicy(overrides string) (Policy, error) {
	policy := DefaultPolicy()

	for _, entry := range strings.Split(overrides, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		op, value, ok := strings.Cut(entry, "=")
		if !ok {
			return nil, fmt.Errorf("access rule %q: expected op=rule", entry)
		}
		op = strings.TrimSpace(op)
		value = strings.TrimSpace(value)

		if _, known := policy[Operation(op)]; !known {
			return nil, fmt.Errorf("access rule %q: unknown operation %q", entry, op)
		}

		if strings.EqualFold(value, "public") {
			policy[Operation(op)] = Public()
			continue
		}

		role, err := ParseRole(value)
		if err != nil {
			return nil, fmt.Errorf("access rule %q: %w", entry, err)
		}
		policy[Operation(op)] = RequiresRole(role)
	}

	return policy, nil
}

// String renders the policy in override format, sorted by operation.
func (p Policy) String() string {
	ops := make([]string, 0, len(p))
	for op := range p {
		ops = append(ops, string(op))
	}
	sort.Strings(ops)

	parts := make([]string, 0, len(ops))
	for _, op := range ops {
		parts = append(parts, op+"="+p[Operation(op)].String())
	}
	return strings.Join(parts, ",")
}
