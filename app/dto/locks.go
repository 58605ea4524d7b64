package dto

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/vibast-solutions/ms-go-doclocks/app/entity"
	types "github.com/vibast-solutions/ms-go-doclocks/app/types"
)

// MaxTTLSeconds is the longest lease a time.Duration can carry.
const MaxTTLSeconds = math.MaxInt64 / int64(time.Second)

var (
	ErrMissingOwner      = errors.New("owner_id is required")
	ErrMissingTarget     = errors.New("target_type and target_id are required")
	ErrInvalidTargetType = errors.New("target_type must be one of resume, variant, cover_letter")
	ErrBlankSection      = errors.New("section must not be blank; omit it to lock the whole document")
	ErrInvalidTTL        = errors.New("ttl_seconds must be between 0 and 9223372036")
	ErrMissingLockID     = errors.New("lock id is required")
	ErrInvalidLockType   = errors.New("lock_type must be one of edit, review, approval, export")
)

type ScopeBody struct {
	Sections []string `json:"sections"`
	Fields   []string `json:"fields"`
	ReadOnly bool     `json:"read_only"`
}

func (s ScopeBody) Entity() entity.Scope {
	return entity.Scope{Sections: s.Sections, Fields: s.Fields, ReadOnly: s.ReadOnly}.Normalize()
}

func scopeFromGRPC(s *types.Scope) ScopeBody {
	return ScopeBody{Sections: s.GetSections(), Fields: s.GetFields(), ReadOnly: s.GetReadOnly()}
}

// TargetQuery selects the document whose locks are listed.
type TargetQuery struct {
	TargetType string `query:"target_type" json:"target_type"`
	TargetID   string `query:"target_id" json:"target_id"`
}

// TargetQueryFromEchoContext binds the query string.
func TargetQueryFromEchoContext(ctx echo.Context) (TargetQuery, error) {
	var q TargetQuery
	if err := ctx.Bind(&q); err != nil {
		return TargetQuery{}, err
	}
	q.normalize()
	return q, nil
}

func TargetQueryFromGRPC(req *types.ListLocksRequest) TargetQuery {
	q := TargetQuery{TargetType: req.GetTargetType(), TargetID: req.GetTargetId()}
	q.normalize()
	return q
}

func (q *TargetQuery) Validate() error {
	return validateTarget(q.TargetType, q.TargetID)
}

func (q *TargetQuery) Target() entity.Target {
	return entity.Target{Type: entity.TargetType(q.TargetType), ID: q.TargetID}
}

func (q *TargetQuery) normalize() {
	q.TargetType = strings.TrimSpace(q.TargetType)
	q.TargetID = strings.TrimSpace(q.TargetID)
}

type AcquireExclusiveRequest struct {
	OwnerID    string  `json:"owner_id"`
	TargetType string  `json:"target_type"`
	TargetID   string  `json:"target_id"`
	Section    *string `json:"section"`
	TTLSeconds int64   `json:"ttl_seconds"`
}

// AcquireExclusiveFromEchoContext binds and normalizes a request from Echo.
func AcquireExclusiveFromEchoContext(ctx echo.Context) (AcquireExclusiveRequest, error) {
	var req AcquireExclusiveRequest
	if err := ctx.Bind(&req); err != nil {
		return AcquireExclusiveRequest{}, err
	}
	req.normalize()
	return req, nil
}

// AcquireExclusiveFromGRPC converts and normalizes a gRPC request.
func AcquireExclusiveFromGRPC(req *types.AcquireExclusiveLockRequest) AcquireExclusiveRequest {
	dto := AcquireExclusiveRequest{
		OwnerID:    req.GetOwnerId(),
		TargetType: req.GetTargetType(),
		TargetID:   req.GetTargetId(),
		Section:    optionalString(req.GetSection()),
		TTLSeconds: req.GetTtlSeconds(),
	}
	dto.normalize()
	return dto
}

func (r *AcquireExclusiveRequest) Validate() error {
	if r.OwnerID == "" {
		return ErrMissingOwner
	}
	if err := validateTarget(r.TargetType, r.TargetID); err != nil {
		return err
	}
	if r.Section != nil && *r.Section == "" {
		return ErrBlankSection
	}
	if r.TTLSeconds < 0 || r.TTLSeconds > MaxTTLSeconds {
		return ErrInvalidTTL
	}
	return nil
}

func (r *AcquireExclusiveRequest) Target() entity.Target {
	return entity.Target{Type: entity.TargetType(r.TargetType), ID: r.TargetID}
}

func (r *AcquireExclusiveRequest) TTL() time.Duration {
	return time.Duration(r.TTLSeconds) * time.Second
}

func (r *AcquireExclusiveRequest) normalize() {
	r.OwnerID = strings.TrimSpace(r.OwnerID)
	r.TargetType = strings.TrimSpace(r.TargetType)
	r.TargetID = strings.TrimSpace(r.TargetID)
	if r.Section != nil {
		section := strings.TrimSpace(*r.Section)
		r.Section = &section
	}
}

type AcquireAdvisoryRequest struct {
	OwnerID    string    `json:"owner_id"`
	TargetType string    `json:"target_type"`
	TargetID   string    `json:"target_id"`
	LockType   string    `json:"lock_type"`
	Scope      ScopeBody `json:"scope"`
	TTLSeconds int64     `json:"ttl_seconds"`
	Reason     *string   `json:"reason"`
}

// AcquireAdvisoryFromEchoContext binds and normalizes a request from Echo.
func AcquireAdvisoryFromEchoContext(ctx echo.Context) (AcquireAdvisoryRequest, error) {
	var req AcquireAdvisoryRequest
	if err := ctx.Bind(&req); err != nil {
		return AcquireAdvisoryRequest{}, err
	}
	req.normalize()
	return req, nil
}

// AcquireAdvisoryFromGRPC converts and normalizes a gRPC request.
func AcquireAdvisoryFromGRPC(req *types.AcquireAdvisoryLockRequest) AcquireAdvisoryRequest {
	dto := AcquireAdvisoryRequest{
		OwnerID:    req.GetOwnerId(),
		TargetType: req.GetTargetType(),
		TargetID:   req.GetTargetId(),
		LockType:   req.GetLockType(),
		Scope:      scopeFromGRPC(req.GetScope()),
		TTLSeconds: req.GetTtlSeconds(),
		Reason:     optionalString(req.GetReason()),
	}
	dto.normalize()
	return dto
}

func (r *AcquireAdvisoryRequest) Validate() error {
	if r.OwnerID == "" {
		return ErrMissingOwner
	}
	if err := validateTarget(r.TargetType, r.TargetID); err != nil {
		return err
	}
	if !entity.AdvisoryType(r.LockType).Valid() {
		return ErrInvalidLockType
	}
	if r.TTLSeconds < 0 || r.TTLSeconds > MaxTTLSeconds {
		return ErrInvalidTTL
	}
	return nil
}

func (r *AcquireAdvisoryRequest) Target() entity.Target {
	return entity.Target{Type: entity.TargetType(r.TargetType), ID: r.TargetID}
}

func (r *AcquireAdvisoryRequest) TTL() time.Duration {
	return time.Duration(r.TTLSeconds) * time.Second
}

func (r *AcquireAdvisoryRequest) normalize() {
	r.OwnerID = strings.TrimSpace(r.OwnerID)
	r.TargetType = strings.TrimSpace(r.TargetType)
	r.TargetID = strings.TrimSpace(r.TargetID)
	r.LockType = strings.ToLower(strings.TrimSpace(r.LockType))
}

// LockOwnerRequest addresses a lock by path id on behalf of the owner in the body.
type LockOwnerRequest struct {
	LockID  string `param:"id" json:"-"`
	OwnerID string `json:"owner_id"`
}

func LockOwnerFromEchoContext(ctx echo.Context) (LockOwnerRequest, error) {
	var req LockOwnerRequest
	if err := ctx.Bind(&req); err != nil {
		return LockOwnerRequest{}, err
	}
	req.normalize()
	return req, nil
}

func LockOwnerFromGRPC(req *types.LockRequest) LockOwnerRequest {
	dto := LockOwnerRequest{LockID: req.GetLockId(), OwnerID: req.GetOwnerId()}
	dto.normalize()
	return dto
}

func (r *LockOwnerRequest) Validate() error {
	if r.LockID == "" {
		return ErrMissingLockID
	}
	if r.OwnerID == "" {
		return ErrMissingOwner
	}
	return nil
}

func (r *LockOwnerRequest) normalize() {
	r.LockID = strings.TrimSpace(r.LockID)
	r.OwnerID = strings.TrimSpace(r.OwnerID)
}

type CheckWriteRequest struct {
	OwnerID    string    `json:"owner_id"`
	TargetType string    `json:"target_type"`
	TargetID   string    `json:"target_id"`
	Scope      ScopeBody `json:"scope"`
}

func CheckWriteFromEchoContext(ctx echo.Context) (CheckWriteRequest, error) {
	var req CheckWriteRequest
	if err := ctx.Bind(&req); err != nil {
		return CheckWriteRequest{}, err
	}
	req.normalize()
	return req, nil
}

func CheckWriteFromGRPC(req *types.CheckWriteRequest) CheckWriteRequest {
	dto := CheckWriteRequest{
		OwnerID:    req.GetOwnerId(),
		TargetType: req.GetTargetType(),
		TargetID:   req.GetTargetId(),
		Scope:      scopeFromGRPC(req.GetScope()),
	}
	dto.normalize()
	return dto
}

func (r *CheckWriteRequest) Validate() error {
	if r.OwnerID == "" {
		return ErrMissingOwner
	}
	return validateTarget(r.TargetType, r.TargetID)
}

func (r *CheckWriteRequest) Target() entity.Target {
	return entity.Target{Type: entity.TargetType(r.TargetType), ID: r.TargetID}
}

func (r *CheckWriteRequest) normalize() {
	r.OwnerID = strings.TrimSpace(r.OwnerID)
	r.TargetType = strings.TrimSpace(r.TargetType)
	r.TargetID = strings.TrimSpace(r.TargetID)
}

// optionalString maps the proto3 empty string to an absent value.
func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func validateTarget(targetType, targetID string) error {
	if targetType == "" || targetID == "" {
		return ErrMissingTarget
	}
	if !entity.TargetType(targetType).Valid() {
		return ErrInvalidTargetType
	}
	return nil
}
