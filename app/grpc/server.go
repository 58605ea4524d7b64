package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vibast-solutions/ms-go-doclocks/app/dto"
	"github.com/vibast-solutions/ms-go-doclocks/app/entity"
	"github.com/vibast-solutions/ms-go-doclocks/app/service"
	types "github.com/vibast-solutions/ms-go-doclocks/app/types"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// Trailer keys describing the holder of a conflicting lock.
const (
	TrailerConflictReason = "x-conflict-reason"
	TrailerHolderLockID   = "x-holder-lock-id"
	TrailerHolderOwnerID  = "x-holder-owner-id"
	TrailerHolderKind     = "x-holder-lock-kind"
)

type Server struct {
	types.UnimplementedDocumentLocksServiceServer
	exclusive *service.ExclusiveLockService
	advisory  *service.AdvisoryLockService
	guard     *service.WriteGuardService
	logger    logrus.FieldLogger
}

// NewServer constructs a gRPC server handler.
func NewServer(exclusive *service.ExclusiveLockService, advisory *service.AdvisoryLockService, guard *service.WriteGuardService, logger logrus.FieldLogger) *Server {
	return &Server{exclusive: exclusive, advisory: advisory, guard: guard, logger: logger}
}

func (s *Server) AcquireExclusiveLock(ctx context.Context, req *types.AcquireExclusiveLockRequest) (*types.ExclusiveLockResponse, error) {
	msg := dto.AcquireExclusiveFromGRPC(req)
	if err := msg.Validate(); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	lock, err := s.exclusive.Acquire(ctx, msg.OwnerID, msg.Target(), msg.Section, msg.TTL())
	if err != nil {
		return nil, s.statusError(ctx, err, "failed to acquire lock")
	}
	return &types.ExclusiveLockResponse{Lock: exclusiveToProto(lock)}, nil
}

func (s *Server) HeartbeatExclusiveLock(ctx context.Context, req *types.LockRequest) (*types.ExclusiveLockResponse, error) {
	msg := dto.LockOwnerFromGRPC(req)
	if err := msg.Validate(); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	lock, err := s.exclusive.Heartbeat(ctx, msg.LockID, msg.OwnerID)
	if err != nil {
		return nil, s.statusError(ctx, err, "failed to heartbeat lock")
	}
	return &types.ExclusiveLockResponse{Lock: exclusiveToProto(lock)}, nil
}

func (s *Server) ReleaseExclusiveLock(ctx context.Context, req *types.LockRequest) (*types.ReleaseLockResponse, error) {
	msg := dto.LockOwnerFromGRPC(req)
	if err := msg.Validate(); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	if err := s.exclusive.Release(ctx, msg.LockID, msg.OwnerID); err != nil {
		return nil, s.statusError(ctx, err, "failed to release lock")
	}
	return &types.ReleaseLockResponse{Success: true}, nil
}

func (s *Server) ListExclusiveLocks(ctx context.Context, req *types.ListLocksRequest) (*types.ListExclusiveLocksResponse, error) {
	q := dto.TargetQueryFromGRPC(req)
	if err := q.Validate(); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	locks, err := s.exclusive.List(ctx, q.Target())
	if err != nil {
		return nil, s.statusError(ctx, err, "failed to list locks")
	}
	out := make([]*types.ExclusiveLock, 0, len(locks))
	for i := range locks {
		out = append(out, exclusiveToProto(&locks[i]))
	}
	return &types.ListExclusiveLocksResponse{Locks: out}, nil
}

func (s *Server) AcquireAdvisoryLock(ctx context.Context, req *types.AcquireAdvisoryLockRequest) (*types.AdvisoryLockResponse, error) {
	msg := dto.AcquireAdvisoryFromGRPC(req)
	if err := msg.Validate(); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	lock, err := s.advisory.Acquire(ctx, msg.OwnerID, msg.Target(), entity.AdvisoryType(msg.LockType), msg.Scope.Entity(), msg.TTL(), msg.Reason)
	if err != nil {
		return nil, s.statusError(ctx, err, "failed to acquire advisory lock")
	}
	return &types.AdvisoryLockResponse{Lock: advisoryToProto(lock)}, nil
}

func (s *Server) HeartbeatAdvisoryLock(ctx context.Context, req *types.LockRequest) (*types.AdvisoryLockResponse, error) {
	msg := dto.LockOwnerFromGRPC(req)
	if err := msg.Validate(); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	lock, err := s.advisory.Heartbeat(ctx, msg.LockID, msg.OwnerID)
	if err != nil {
		return nil, s.statusError(ctx, err, "failed to heartbeat advisory lock")
	}
	return &types.AdvisoryLockResponse{Lock: advisoryToProto(lock)}, nil
}

func (s *Server) ReleaseAdvisoryLock(ctx context.Context, req *types.LockRequest) (*types.ReleaseLockResponse, error) {
	msg := dto.LockOwnerFromGRPC(req)
	if err := msg.Validate(); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	if err := s.advisory.Release(ctx, msg.LockID, msg.OwnerID); err != nil {
		return nil, s.statusError(ctx, err, "failed to release advisory lock")
	}
	return &types.ReleaseLockResponse{Success: true}, nil
}

func (s *Server) ListAdvisoryLocks(ctx context.Context, req *types.ListLocksRequest) (*types.ListAdvisoryLocksResponse, error) {
	q := dto.TargetQueryFromGRPC(req)
	if err := q.Validate(); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	locks, err := s.advisory.ListActive(ctx, q.Target())
	if err != nil {
		return nil, s.statusError(ctx, err, "failed to list advisory locks")
	}
	out := make([]*types.AdvisoryLock, 0, len(locks))
	for i := range locks {
		out = append(out, advisoryToProto(&locks[i]))
	}
	return &types.ListAdvisoryLocksResponse{Locks: out}, nil
}

// CheckWrite answers AlreadyExists, with holder trailers, when the write is blocked.
func (s *Server) CheckWrite(ctx context.Context, req *types.CheckWriteRequest) (*types.CheckWriteResponse, error) {
	msg := dto.CheckWriteFromGRPC(req)
	if err := msg.Validate(); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	if err := s.guard.CheckWrite(ctx, msg.OwnerID, msg.Target(), msg.Scope.Entity()); err != nil {
		return nil, s.statusError(ctx, err, "failed to check write")
	}
	return &types.CheckWriteResponse{Allowed: true}, nil
}

func (s *Server) statusError(ctx context.Context, err error, internalMessage string) error {
	var conflictErr *service.ConflictError
	switch {
	case errors.As(err, &conflictErr):
		// Trailers are best effort; direct calls outside a server stream have no transport.
		_ = grpc.SetTrailer(ctx, metadata.Pairs(
			TrailerConflictReason, string(conflictErr.Reason),
			TrailerHolderLockID, conflictErr.Holder.LockID,
			TrailerHolderOwnerID, conflictErr.Holder.OwnerID,
			TrailerHolderKind, string(conflictErr.Holder.LockKind),
		))
		return status.Error(codes.AlreadyExists, conflictErr.Error())
	case errors.Is(err, service.ErrInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, service.ErrNotOwner):
		return status.Error(codes.PermissionDenied, "lock is held by another owner")
	case errors.Is(err, service.ErrNotFound):
		return status.Error(codes.NotFound, "lock not found")
	case errors.Is(err, service.ErrExpired):
		return status.Error(codes.FailedPrecondition, "lock lease expired, acquire it again")
	}
	s.logger.WithError(err).Error(internalMessage)
	return status.Error(codes.Internal, internalMessage)
}

func exclusiveToProto(l *entity.ExclusiveLock) *types.ExclusiveLock {
	out := &types.ExclusiveLock{
		Id:         l.ID,
		TargetType: string(l.Target.Type),
		TargetId:   l.Target.ID,
		Section:    valueOf(l.Section),
		OwnerId:    l.OwnerID,
		TtlSeconds: int64(l.TTL / time.Second),
		AcquiredAt: formatTime(l.AcquiredAt),
	}
	if l.ExpiresAt != nil {
		out.ExpiresAt = formatTime(*l.ExpiresAt)
	}
	return out
}

func advisoryToProto(l *entity.AdvisoryLock) *types.AdvisoryLock {
	return &types.AdvisoryLock{
		Id:         l.ID,
		TargetType: string(l.Target.Type),
		TargetId:   l.Target.ID,
		OwnerId:    l.OwnerID,
		LockType:   string(l.LockType),
		Scope: &types.Scope{
			Sections: l.Scope.Sections,
			Fields:   l.Scope.Fields,
			ReadOnly: l.Scope.ReadOnly,
		},
		Reason:       valueOf(l.Reason),
		TtlSeconds:   int64(l.TTL / time.Second),
		AcquiredAt:   formatTime(l.AcquiredAt),
		ExpiresAt:    formatTime(l.ExpiresAt),
		LastActionAt: formatTime(l.Activity.LastActionAt),
		ActionCount:  int64(l.Activity.ActionCount),
	}
}

// valueOf maps an absent value to the proto3 empty string.
func valueOf(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
