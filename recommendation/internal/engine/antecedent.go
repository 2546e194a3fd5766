package engine

import (
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// KeyDelimiter separates book ids inside a canonical itemset key.
const KeyDelimiter = ","

// CanonicalIDs returns the ids sorted ascending with duplicates removed.
// The input slice is not modified.
func CanonicalIDs(ids []int) []int {
	out := make([]int, len(ids))
	copy(out, ids)
	sort.Ints(out)
	n := 0
	for i, id := range out {
		if i > 0 && id == out[n-1] {
			continue
		}
		out[n] = id
		n++
	}
	return out[:n]
}

// CanonicalKey encodes an itemset so that every permutation of the same ids
// yields the same string, e.g. [9 3 3] -> "3,9".
func CanonicalKey(ids []int) string {
	canon := CanonicalIDs(ids)
	var b strings.Builder
	for i, id := range canon {
		if i > 0 {
			b.WriteString(KeyDelimiter)
		}
		b.WriteString(strconv.Itoa(id))
	}
	return b.String()
}

// ParseKey is the inverse of CanonicalKey. It rejects keys that are not in
// canonical form so corrupt persisted keys are never silently accepted.
func ParseKey(key string) ([]int, error) {
	if key == "" {
		return nil, errors.New("empty itemset key")
	}
	parts := strings.Split(key, KeyDelimiter)
	ids := make([]int, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.Atoi(p)
		if err != nil {
			return nil, errors.Wrapf(err, "itemset key %q", key)
		}
		ids = append(ids, id)
	}
	if CanonicalKey(ids) != key {
		return nil, errors.Errorf("itemset key %q is not canonical", key)
	}
	return ids, nil
}

// IsCanonical reports whether ids are strictly ascending.
func IsCanonical(ids []int) bool {
	for i := 1; i < len(ids); i++ {
		if ids[i] <= ids[i-1] {
			return false
		}
	}
	return true
}
