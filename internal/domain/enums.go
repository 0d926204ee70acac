package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// AggregationPolicy selects how log keys map onto document lines.
type AggregationPolicy string

const (
	// PolicyPartOnly treats every log key as a part number; subpart lines
	// in the document are left alone.
	PolicyPartOnly AggregationPolicy = "part-only"
	// PolicyPartWithSubparts splits "2b" into part "2" and subpart "b" and
	// rewrites indented subpart lines under each part.
	PolicyPartWithSubparts AggregationPolicy = "subparts"
)

// DefaultPolicy is the policy used when none is configured.
const DefaultPolicy = PolicyPartWithSubparts

// ValidPolicies lists the accepted policy names.
var ValidPolicies = []AggregationPolicy{PolicyPartOnly, PolicyPartWithSubparts}

var (
	partIDPattern    = regexp.MustCompile(`^\d+$`)
	subpartIDPattern = regexp.MustCompile(`^\d+[a-z]?$`)
)

// ParsePolicy resolves a policy name. Empty input yields DefaultPolicy.
func ParsePolicy(s string) (AggregationPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return DefaultPolicy, nil
	case "part-only", "part_only", "parts":
		return PolicyPartOnly, nil
	case "subparts", "part-with-subparts", "part_with_subparts":
		return PolicyPartWithSubparts, nil
	}
	return "", fmt.Errorf("%w %q (want one of %s, %s)", ErrUnknownPolicy, s, PolicyPartOnly, PolicyPartWithSubparts)
}

// Subparts reports whether the policy tracks lettered subparts.
func (p AggregationPolicy) Subparts() bool {
	return p == PolicyPartWithSubparts
}

// ValidatePartID checks id against the identifier grammar of the policy.
func (p AggregationPolicy) ValidatePartID(id string) error {
	pattern := partIDPattern
	if p.Subparts() {
		pattern = subpartIDPattern
	}
	if !pattern.MatchString(id) {
		return fmt.Errorf("%w: %q", ErrInvalidPartID, id)
	}
	return nil
}

// SplitKey splits a log key into its part and subpart. Under the subpart
// policy a trailing lowercase letter is the subpart; otherwise the whole key
// is the part and the subpart is empty.
func (p AggregationPolicy) SplitKey(key string) (part, sub string) {
	if !p.Subparts() || len(key) < 2 {
		return key, ""
	}
	last := key[len(key)-1]
	if last >= 'a' && last <= 'z' {
		return key[:len(key)-1], string(last)
	}
	return key, ""
}

func (p AggregationPolicy) String() string {
	return string(p)
}
