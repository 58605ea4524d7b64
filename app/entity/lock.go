package entity

import (
	"strconv"
	"strings"
	"time"
)

type TargetType string

const (
	TargetResume      TargetType = "resume"
	TargetVariant     TargetType = "variant"
	TargetCoverLetter TargetType = "cover_letter"
)

// Valid reports whether the target type is one of the lockable document kinds.
func (t TargetType) Valid() bool {
	switch t {
	case TargetResume, TargetVariant, TargetCoverLetter:
		return true
	}
	return false
}

// Target identifies the document under edit.
type Target struct {
	Type TargetType `json:"type"`
	ID   string     `json:"id"`
}

func (t Target) String() string {
	return string(t.Type) + ":" + t.ID
}

type LockKind string

const (
	LockKindExclusive LockKind = "exclusive"
	LockKindAdvisory  LockKind = "advisory"
)

type AdvisoryType string

const (
	AdvisoryEdit     AdvisoryType = "edit"
	AdvisoryReview   AdvisoryType = "review"
	AdvisoryApproval AdvisoryType = "approval"
	AdvisoryExport   AdvisoryType = "export"
)

// Valid reports whether the advisory type is known.
func (t AdvisoryType) Valid() bool {
	switch t {
	case AdvisoryEdit, AdvisoryReview, AdvisoryApproval, AdvisoryExport:
		return true
	}
	return false
}

const (
	ReleaseReasonReleased = "released"
	ReleaseReasonExpired  = "expired"
)

// ExclusiveLock is sole write ownership of a whole document (Section == nil) or one section.
type ExclusiveLock struct {
	ID            string
	Target        Target
	Section       *string
	OwnerID       string
	TTL           time.Duration
	AcquiredAt    time.Time
	ExpiresAt     *time.Time
	ReleasedAt    *time.Time
	ReleasedBy    *string
	ReleaseReason *string
}

// IsLive reports whether the lock still holds at now.
func (l *ExclusiveLock) IsLive(now time.Time) bool {
	if l == nil || l.ReleasedAt != nil {
		return false
	}
	return l.ExpiresAt == nil || l.ExpiresAt.After(now)
}

// Renew restarts the lease at now with ttl. A zero ttl holds the lock until released.
func (l *ExclusiveLock) Renew(ttl time.Duration, now time.Time) {
	l.TTL = ttl
	l.ExpiresAt = nil
	if ttl > 0 {
		expires := now.Add(ttl)
		l.ExpiresAt = &expires
	}
}

// SectionKey renders the section for logs, "*" for the whole document.
// It is not unique: use SameSection or ActiveKey to compare.
func (l *ExclusiveLock) SectionKey() string {
	if l.Section == nil {
		return "*"
	}
	return *l.Section
}

// SameSection reports whether two optional sections address the same lock slot.
// A nil section is the whole document and never equals a named section.
func SameSection(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// ActiveKey is the value carried by the live-lock uniqueness constraint.
// The target id is length-prefixed and the whole document has its own marker,
// so no pair of (target, section) values encodes to the same key.
func ActiveKey(target Target, section *string) string {
	key := string(target.Type) + ":" + strconv.Itoa(len(target.ID)) + ":" + target.ID
	if section == nil {
		return key + "|*"
	}
	return key + "|s:" + *section
}

// Scope is the set of sections and field paths an advisory lock claims.
type Scope struct {
	Sections []string `json:"sections,omitempty"`
	Fields   []string `json:"fields,omitempty"`
	ReadOnly bool     `json:"read_only"`
}

// WholeDocument reports whether a writable scope claims the entire document.
func (s Scope) WholeDocument() bool {
	return !s.ReadOnly && len(s.Sections) == 0 && len(s.Fields) == 0
}

// Equal compares two scopes ignoring element order.
func (s Scope) Equal(o Scope) bool {
	return s.ReadOnly == o.ReadOnly && sameSet(s.Sections, o.Sections) && sameSet(s.Fields, o.Fields)
}

// Normalize trims entries and drops empty and duplicate values.
func (s Scope) Normalize() Scope {
	return Scope{
		Sections: cleanList(s.Sections),
		Fields:   cleanList(s.Fields),
		ReadOnly: s.ReadOnly,
	}
}

type Activity struct {
	LastActionAt time.Time
	ActionCount  int
}

// AdvisoryLock is a leased, non-exclusive collaboration marker.
type AdvisoryLock struct {
	ID            string
	Target        Target
	OwnerID       string
	LockType      AdvisoryType
	Scope         Scope
	Reason        *string
	TTL           time.Duration
	AcquiredAt    time.Time
	ExpiresAt     time.Time
	ReleasedAt    *time.Time
	ReleasedBy    *string
	ReleaseReason *string
	Activity      Activity
}

// IsLive reports whether the advisory lease still holds at now.
func (l *AdvisoryLock) IsLive(now time.Time) bool {
	if l == nil || l.ReleasedAt != nil {
		return false
	}
	return l.ExpiresAt.After(now)
}

// Renew restarts the lease at now with ttl and counts the call as activity.
func (l *AdvisoryLock) Renew(ttl time.Duration, now time.Time) {
	l.TTL = ttl
	l.ExpiresAt = now.Add(ttl)
	l.Activity.LastActionAt = now
	l.Activity.ActionCount++
}

// ClaimsWrite reports whether the lock declares write intent.
func (l *AdvisoryLock) ClaimsWrite() bool {
	return l.LockType == AdvisoryEdit && !l.Scope.ReadOnly
}

func sameSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[string]int, len(a))
	for _, v := range a {
		seen[v]++
	}
	for _, v := range b {
		if seen[v] == 0 {
			return false
		}
		seen[v]--
	}
	return true
}

func cleanList(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
