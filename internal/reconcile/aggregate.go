package reconcile

import (
	"sort"

	"github.com/alexanderramin/studylog/internal/domain"
)

// Totals holds aggregated seconds per part and subpart. The empty subpart
// key collects sessions logged against the bare part number.
type Totals struct {
	policy    domain.AggregationPolicy
	parts     map[string]map[string]int64
	keys      map[string]string // log key -> part
	anomalies int
}

// Aggregate sums the elapsed seconds of every session in log according to
// policy. Sessions that end before they start count as zero and are tallied
// as anomalies.
func Aggregate(log domain.Log, policy domain.AggregationPolicy) Totals {
	t := Totals{
		policy: policy,
		parts:  make(map[string]map[string]int64),
		keys:   make(map[string]string, len(log)),
	}
	for key, recs := range log {
		part, sub := policy.SplitKey(key)
		var total int64
		for _, r := range recs {
			if r.Negative() {
				t.anomalies++
			}
			total += r.Elapsed()
		}
		subs, ok := t.parts[part]
		if !ok {
			subs = make(map[string]int64)
			t.parts[part] = subs
		}
		subs[sub] += total
		t.keys[key] = part
	}
	return t
}

// Policy returns the policy the totals were aggregated under.
func (t Totals) Policy() domain.AggregationPolicy {
	return t.policy
}

// Part returns the total seconds for part across all of its subparts.
func (t Totals) Part(part string) int64 {
	var sum int64
	for _, secs := range t.parts[part] {
		sum += secs
	}
	return sum
}

// Subpart returns the seconds recorded for a single subpart of part.
func (t Totals) Subpart(part, sub string) int64 {
	return t.parts[part][sub]
}

// Parts returns the aggregated part numbers in natural order.
func (t Totals) Parts() []string {
	out := make([]string, 0, len(t.parts))
	for p := range t.parts {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return domain.LessPartID(out[i], out[j]) })
	return out
}

// Subparts returns the subpart letters recorded for part, sorted. The bare
// part bucket ("") is included when sessions were logged against it.
func (t Totals) Subparts(part string) []string {
	subs := t.parts[part]
	out := make([]string, 0, len(subs))
	for s := range subs {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// Grand returns the total across every part.
func (t Totals) Grand() int64 {
	var sum int64
	for p := range t.parts {
		sum += t.Part(p)
	}
	return sum
}

// Anomalies is the number of sessions whose end preceded their start.
func (t Totals) Anomalies() int {
	return t.anomalies
}

// keysFor returns the log keys that aggregate into part.
func (t Totals) keysFor(part string) []string {
	var out []string
	for k, p := range t.keys {
		if p == part {
			out = append(out, k)
		}
	}
	return out
}
