package testutil

import (
	"time"

	"github.com/alexanderramin/studylog/internal/domain"
)

// FixedNow is the reference instant used by deterministic tests.
var FixedNow = time.Date(2026, 2, 7, 12, 0, 0, 0, time.UTC)

// FixedClock returns a clock that always reports FixedNow.
func FixedClock() func() time.Time {
	return func() time.Time { return FixedNow }
}

// Record options
type RecordOption func(*domain.SessionRecord)

func WithRecordID(id string) RecordOption {
	return func(r *domain.SessionRecord) {
		r.ID = id
	}
}

// NewTestRecord builds a record spanning [start, end] stamped at FixedNow.
func NewTestRecord(start, end int64, opts ...RecordOption) domain.SessionRecord {
	r := domain.NewSessionRecord("", start, end, FixedNow)
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// NewTestLog builds a log where each key maps to one record of secs seconds.
func NewTestLog(secs map[string]int64) domain.Log {
	log := domain.Log{}
	for key, n := range secs {
		log.Append(key, NewTestRecord(0, n))
	}
	return log
}
