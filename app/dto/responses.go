package dto

import (
	"time"

	"github.com/vibast-solutions/ms-go-doclocks/app/conflict"
	"github.com/vibast-solutions/ms-go-doclocks/app/entity"
)

type ExclusiveLockResponse struct {
	ID         string     `json:"id"`
	TargetType string     `json:"target_type"`
	TargetID   string     `json:"target_id"`
	Section    *string    `json:"section"`
	OwnerID    string     `json:"owner_id"`
	TTLSeconds int64      `json:"ttl_seconds,omitempty"`
	AcquiredAt time.Time  `json:"acquired_at"`
	ExpiresAt  *time.Time `json:"expires_at"`
}

func NewExclusiveLockResponse(l *entity.ExclusiveLock) ExclusiveLockResponse {
	return ExclusiveLockResponse{
		ID:         l.ID,
		TargetType: string(l.Target.Type),
		TargetID:   l.Target.ID,
		Section:    l.Section,
		OwnerID:    l.OwnerID,
		TTLSeconds: int64(l.TTL / time.Second),
		AcquiredAt: l.AcquiredAt,
		ExpiresAt:  l.ExpiresAt,
	}
}

func NewExclusiveLockList(locks []entity.ExclusiveLock) []ExclusiveLockResponse {
	out := make([]ExclusiveLockResponse, 0, len(locks))
	for i := range locks {
		out = append(out, NewExclusiveLockResponse(&locks[i]))
	}
	return out
}

type ActivityResponse struct {
	LastActionAt time.Time `json:"last_action_at"`
	ActionCount  int       `json:"action_count"`
}

type AdvisoryLockResponse struct {
	ID         string           `json:"id"`
	TargetType string           `json:"target_type"`
	TargetID   string           `json:"target_id"`
	OwnerID    string           `json:"owner_id"`
	LockType   string           `json:"lock_type"`
	Scope      ScopeBody        `json:"scope"`
	Reason     *string          `json:"reason,omitempty"`
	TTLSeconds int64            `json:"ttl_seconds"`
	AcquiredAt time.Time        `json:"acquired_at"`
	ExpiresAt  time.Time        `json:"expires_at"`
	Activity   ActivityResponse `json:"activity"`
}

func NewAdvisoryLockResponse(l *entity.AdvisoryLock) AdvisoryLockResponse {
	return AdvisoryLockResponse{
		ID:         l.ID,
		TargetType: string(l.Target.Type),
		TargetID:   l.Target.ID,
		OwnerID:    l.OwnerID,
		LockType:   string(l.LockType),
		Scope:      newScopeBody(l.Scope),
		Reason:     l.Reason,
		TTLSeconds: int64(l.TTL / time.Second),
		AcquiredAt: l.AcquiredAt,
		ExpiresAt:  l.ExpiresAt,
		Activity: ActivityResponse{
			LastActionAt: l.Activity.LastActionAt,
			ActionCount:  l.Activity.ActionCount,
		},
	}
}

func NewAdvisoryLockList(locks []entity.AdvisoryLock) []AdvisoryLockResponse {
	out := make([]AdvisoryLockResponse, 0, len(locks))
	for i := range locks {
		out = append(out, NewAdvisoryLockResponse(&locks[i]))
	}
	return out
}

// HolderResponse tells the caller who is in the way.
type HolderResponse struct {
	LockID     string     `json:"lock_id"`
	OwnerID    string     `json:"owner_id"`
	LockKind   string     `json:"lock_kind"`
	Section    *string    `json:"section,omitempty"`
	LockType   string     `json:"lock_type,omitempty"`
	Scope      *ScopeBody `json:"scope,omitempty"`
	AcquiredAt time.Time  `json:"acquired_at"`
	ExpiresAt  *time.Time `json:"expires_at"`
}

type ConflictResponse struct {
	Error  string         `json:"error"`
	Reason string         `json:"reason"`
	Holder HolderResponse `json:"holder"`
}

func NewConflictResponse(reason conflict.Reason, h conflict.Holder) ConflictResponse {
	holder := HolderResponse{
		LockID:     h.LockID,
		OwnerID:    h.OwnerID,
		LockKind:   string(h.LockKind),
		Section:    h.Section,
		LockType:   string(h.LockType),
		AcquiredAt: h.AcquiredAt,
		ExpiresAt:  h.ExpiresAt,
	}
	if h.Scope != nil {
		scope := newScopeBody(*h.Scope)
		holder.Scope = &scope
	}
	return ConflictResponse{Error: "lock conflict", Reason: string(reason), Holder: holder}
}

func newScopeBody(s entity.Scope) ScopeBody {
	return ScopeBody{Sections: s.Sections, Fields: s.Fields, ReadOnly: s.ReadOnly}
}
