package util

import (
	"strings"

	"github.com/samber/lo"
)

// SplitList splits a comma separated list, trimming blanks and dropping empty items.
func SplitList(s string) []string {
	return lo.Compact(lo.Map(strings.Split(s, ","), func(item string, _ int) string {
		return strings.TrimSpace(item)
	}))
}
