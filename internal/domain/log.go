package domain

import "sort"

// Log maps a part identifier ("0", "1a") to its sessions in recording order.
type Log map[string][]SessionRecord

// Append adds rec to the sessions of partID, creating the key if absent.
// Existing records are never touched.
func (l Log) Append(partID string, rec SessionRecord) {
	l[partID] = append(l[partID], rec)
}

// Keys returns the part identifiers in natural order (numeric part, then subpart).
func (l Log) Keys() []string {
	keys := make([]string, 0, len(l))
	for k := range l {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return LessPartID(keys[i], keys[j])
	})
	return keys
}

// SessionCount returns the total number of records across all parts.
func (l Log) SessionCount() int {
	n := 0
	for _, recs := range l {
		n += len(recs)
	}
	return n
}

// Clone returns a copy whose slices do not alias l.
func (l Log) Clone() Log {
	out := make(Log, len(l))
	for k, recs := range l {
		out[k] = append([]SessionRecord(nil), recs...)
	}
	return out
}

// LessPartID orders "2" < "2a" < "2b" < "10". Identifiers that do not start
// with digits sort after numeric ones, lexically.
func LessPartID(a, b string) bool {
	na, ra := splitDigits(a)
	nb, rb := splitDigits(b)
	switch {
	case na == "" && nb == "":
		return a < b
	case na == "":
		return false
	case nb == "":
		return true
	}
	if len(na) != len(nb) {
		na, nb = trimZeros(na), trimZeros(nb)
		if len(na) != len(nb) {
			return len(na) < len(nb)
		}
	}
	if na != nb {
		return na < nb
	}
	return ra < rb
}

func splitDigits(s string) (string, string) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return s[:i], s[i:]
}

func trimZeros(s string) string {
	for len(s) > 1 && s[0] == '0' {
		s = s[1:]
	}
	return s
}
