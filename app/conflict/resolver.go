// Package conflict decides whether a lock request is compatible with the locks
// already live on the same document. Everything here is pure: callers load the
// snapshot inside their own transaction and act on the returned Decision.
package conflict

import (
	"strings"
	"time"

	"github.com/vibast-solutions/ms-go-doclocks/app/entity"
)

type Reason string

const (
	ReasonAlreadyLocked          Reason = "already_locked"
	ReasonAdvisoryEditInProgress Reason = "advisory_edit_in_progress"
	ReasonCapacityReached        Reason = "capacity_reached"
)

// Holder describes the lock that blocked a request.
type Holder struct {
	LockID     string
	OwnerID    string
	LockKind   entity.LockKind
	Section    *string
	LockType   entity.AdvisoryType
	Scope      *entity.Scope
	AcquiredAt time.Time
	ExpiresAt  *time.Time
}

type Conflict struct {
	Reason Reason
	Holder Holder
}

// Snapshot is the lock state of a single target.
type Snapshot struct {
	Exclusive []entity.ExclusiveLock
	Advisory  []entity.AdvisoryLock
}

// Mode says what the request intends to do with the document.
type Mode int

const (
	ModeExclusive Mode = iota
	ModeAdvisory
	// ModeWrite checks a pending document mutation; it never reuses or counts locks.
	ModeWrite
)

type Request struct {
	Mode     Mode
	OwnerID  string
	Section  *string
	LockType entity.AdvisoryType
	Scope    entity.Scope
}

// Policy carries the tunable limits.
type Policy struct {
	// MaxAdvisoryPerType caps live advisory locks of one type on a target. Zero is unlimited.
	MaxAdvisoryPerType int
}

// Decision is the outcome of Resolve. At most one field is set; all nil means "insert".
type Decision struct {
	Conflict  *Conflict
	Exclusive *entity.ExclusiveLock
	Advisory  *entity.AdvisoryLock
}

// Allowed reports whether the request may proceed.
func (d Decision) Allowed() bool {
	return d.Conflict == nil
}

// Reused reports whether the request matched a lock the owner already holds.
func (d Decision) Reused() bool {
	return d.Exclusive != nil || d.Advisory != nil
}

// Resolve applies the conflict rules in order: same-owner reuse, live exclusive
// overlap, live advisory edit overlap, advisory capacity.
func Resolve(snap Snapshot, req Request, now time.Time, policy Policy) Decision {
	if req.Mode != ModeWrite {
		if d, ok := reuse(snap, req, now); ok {
			return d
		}
	}

	want := requestClaim(req)
	if !want.empty() {
		for i := range snap.Exclusive {
			held := &snap.Exclusive[i]
			if !held.IsLive(now) || held.OwnerID == req.OwnerID {
				continue
			}
			if want.overlaps(sectionClaim(held.Section)) {
				return Decision{Conflict: &Conflict{Reason: ReasonAlreadyLocked, Holder: ExclusiveHolder(held)}}
			}
		}
		for i := range snap.Advisory {
			held := &snap.Advisory[i]
			if !held.IsLive(now) || held.OwnerID == req.OwnerID || !held.ClaimsWrite() {
				continue
			}
			if want.overlaps(scopeClaim(held.Scope)) {
				return Decision{Conflict: &Conflict{Reason: ReasonAdvisoryEditInProgress, Holder: AdvisoryHolder(held)}}
			}
		}
	}

	if req.Mode == ModeAdvisory && policy.MaxAdvisoryPerType > 0 {
		var oldest *entity.AdvisoryLock
		count := 0
		for i := range snap.Advisory {
			held := &snap.Advisory[i]
			if !held.IsLive(now) || held.LockType != req.LockType {
				continue
			}
			count++
			if oldest == nil || held.AcquiredAt.Before(oldest.AcquiredAt) {
				oldest = held
			}
		}
		if count >= policy.MaxAdvisoryPerType {
			return Decision{Conflict: &Conflict{Reason: ReasonCapacityReached, Holder: AdvisoryHolder(oldest)}}
		}
	}

	return Decision{}
}

func reuse(snap Snapshot, req Request, now time.Time) (Decision, bool) {
	switch req.Mode {
	case ModeExclusive:
		for i := range snap.Exclusive {
			held := &snap.Exclusive[i]
			if held.IsLive(now) && held.OwnerID == req.OwnerID && entity.SameSection(held.Section, req.Section) {
				return Decision{Exclusive: held}, true
			}
		}
	case ModeAdvisory:
		for i := range snap.Advisory {
			held := &snap.Advisory[i]
			if held.IsLive(now) && held.OwnerID == req.OwnerID && held.LockType == req.LockType && held.Scope.Equal(req.Scope) {
				return Decision{Advisory: held}, true
			}
		}
	}
	return Decision{}, false
}

func requestClaim(req Request) claim {
	switch req.Mode {
	case ModeExclusive:
		return sectionClaim(req.Section)
	case ModeAdvisory:
		if req.LockType != entity.AdvisoryEdit {
			return claim{}
		}
		return scopeClaim(req.Scope)
	default:
		return scopeClaim(req.Scope)
	}
}

// ExclusiveHolder describes an exclusive lock as a conflict holder.
func ExclusiveHolder(l *entity.ExclusiveLock) Holder {
	return Holder{
		LockID:     l.ID,
		OwnerID:    l.OwnerID,
		LockKind:   entity.LockKindExclusive,
		Section:    l.Section,
		AcquiredAt: l.AcquiredAt,
		ExpiresAt:  l.ExpiresAt,
	}
}

// AdvisoryHolder describes an advisory lock as a conflict holder.
func AdvisoryHolder(l *entity.AdvisoryLock) Holder {
	scope := l.Scope
	expires := l.ExpiresAt
	return Holder{
		LockID:     l.ID,
		OwnerID:    l.OwnerID,
		LockKind:   entity.LockKindAdvisory,
		LockType:   l.LockType,
		Scope:      &scope,
		AcquiredAt: l.AcquiredAt,
		ExpiresAt:  &expires,
	}
}

// claim is the write footprint of a lock or request.
type claim struct {
	whole    bool
	sections []string
	fields   []string
}

func sectionClaim(section *string) claim {
	if section == nil {
		return claim{whole: true}
	}
	return claim{sections: []string{*section}}
}

func scopeClaim(s entity.Scope) claim {
	if s.ReadOnly {
		return claim{}
	}
	if s.WholeDocument() {
		return claim{whole: true}
	}
	return claim{sections: s.Sections, fields: s.Fields}
}

func (c claim) empty() bool {
	return !c.whole && len(c.sections) == 0 && len(c.fields) == 0
}

func (c claim) overlaps(o claim) bool {
	if c.empty() || o.empty() {
		return false
	}
	if c.whole || o.whole {
		return true
	}
	for _, a := range c.sections {
		for _, b := range o.sections {
			if a == b {
				return true
			}
		}
		for _, f := range o.fields {
			if pathWithin(f, a) {
				return true
			}
		}
	}
	for _, f := range c.fields {
		for _, s := range o.sections {
			if pathWithin(f, s) {
				return true
			}
		}
		for _, g := range o.fields {
			if pathWithin(f, g) || pathWithin(g, f) {
				return true
			}
		}
	}
	return false
}

// pathWithin reports whether path equals prefix or lies beneath it on a segment boundary.
func pathWithin(path, prefix string) bool {
	return path == prefix || strings.HasPrefix(path, prefix+".")
}
