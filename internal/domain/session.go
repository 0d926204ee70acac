package domain

import "time"

// TimestampLayout matches the ISO 8601 form the log has always carried
// (local time, microsecond precision, no zone).
const TimestampLayout = "2006-01-02T15:04:05.000000"

// SessionRecord is one timed interval attributed to a part or subpart.
// Records are never modified after they are appended to a Log.
type SessionRecord struct {
	Start     int64  `json:"start"`
	End       int64  `json:"end"`
	Duration  string `json:"duration"`
	Timestamp string `json:"timestamp"`
	ID        string `json:"id,omitempty"`
}

// NewSessionRecord builds a record for the interval [start, end] stamped at now.
func NewSessionRecord(id string, start, end int64, now time.Time) SessionRecord {
	return SessionRecord{
		Start:     start,
		End:       end,
		Duration:  FormatHMS(ClampElapsed(end - start)),
		Timestamp: now.Format(TimestampLayout),
		ID:        id,
	}
}

// Elapsed returns the recorded interval in seconds, clamped to zero.
func (r SessionRecord) Elapsed() int64 {
	return ClampElapsed(r.End - r.Start)
}

// Negative reports whether the record ends before it starts.
func (r SessionRecord) Negative() bool {
	return r.End < r.Start
}

// StartTime returns the session start as a local time.
func (r SessionRecord) StartTime() time.Time {
	return time.Unix(r.Start, 0)
}
