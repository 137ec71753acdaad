package services

import (
	"context"
	"log/slog"
	"slices"

	"github.com/SscSPs/dealership_commission_app/internal/apperrors"
	"github.com/SscSPs/dealership_commission_app/internal/core/domain"
	"github.com/SscSPs/dealership_commission_app/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct{}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// AuthorizeActor allows managers and admins unconditionally, and members only
// when their user id is one of ownerIDs.
func (s *BaseService) AuthorizeActor(ctx context.Context, actor domain.Actor, ownerIDs ...string) error {
	if actor.CanManage() {
		return nil
	}
	if actor.UserID != "" && slices.Contains(ownerIDs, actor.UserID) {
		return nil
	}
	s.GetLogger(ctx).Warn("Actor not authorized for resource",
		slog.String("user_id", actor.UserID),
		slog.String("role", string(actor.Role)))
	return apperrors.ErrForbidden
}
