package utils

import (
	"strings"

	"github.com/google/uuid"
)

func ParseStringToUUID(s string) uuid.UUID {
	uid, err := uuid.Parse(s)
	if err != nil || s == "" {
		return uuid.Nil
	}
	return uid
}

// IsValidUUID - Kiểm tra format UUID hợp lệ (chỉ chấp nhận dạng 36 ký tự có gạch nối)
func IsValidUUID(u string) bool {
	if len(u) != 36 {
		return false
	}
	_, err := uuid.Parse(u)
	return err == nil
}

// UniqueUUIDs removes duplicates and uuid.Nil, keeping first-seen order.
func UniqueUUIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// TrimAll trims every string pointer in place.
func TrimAll(fields ...*string) {
	for _, f := range fields {
		if f != nil {
			*f = strings.TrimSpace(*f)
		}
	}
}
