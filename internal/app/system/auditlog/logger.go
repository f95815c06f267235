// internal/app/system/auditlog/logger.go
package auditlog

import (
	"context"
	"net/http"

	"github.com/volunhub/volunhub/internal/app/store/audit"
	"github.com/volunhub/volunhub/internal/app/system/ratelimit"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Config holds audit logging configuration.
type Config struct {
	// Decisions controls logging for approval verdicts (NGO and
	// volunteer approvals/rejections).
	// Values: "all" (MongoDB + zap), "db" (MongoDB only), "log" (zap only), "off" (disabled)
	Decisions string
	// Admin controls logging for destructive administrative actions
	// (NGO and project deletion). Same values as Decisions.
	Admin string
}

// Logger records audit events to MongoDB (via audit.Store) and to
// structured logs (via zap), as configured per category.
type Logger struct {
	store  *audit.Store
	zapLog *zap.Logger
	config Config
}

// New creates a new audit Logger.
func New(store *audit.Store, zapLog *zap.Logger, config Config) *Logger {
	return &Logger{
		store:  store,
		zapLog: zapLog,
		config: config,
	}
}

func (l *Logger) logToZap(event audit.Event) {
	fields := []zap.Field{
		zap.Bool("audit", true),
		zap.String("category", event.Category),
		zap.String("event_type", event.EventType),
		zap.String("actor_id", event.ActorID.Hex()),
		zap.String("actor_role", event.ActorRole),
		zap.String("ip", event.IP),
	}
	if event.TargetID != nil {
		fields = append(fields, zap.String("target_id", event.TargetID.Hex()))
	}
	for k, v := range event.Details {
		fields = append(fields, zap.String("detail_"+k, v))
	}
	l.zapLog.Info("audit event", fields...)
}

// Log records an audit event based on configuration.
// A nil logger is a no-op so handlers under test can skip auditing.
func (l *Logger) Log(ctx context.Context, event audit.Event) {
	if l == nil {
		return
	}

	var setting string
	switch event.Category {
	case audit.CategoryDecision:
		setting = l.config.Decisions
	case audit.CategoryAdmin:
		setting = l.config.Admin
	default:
		setting = "all"
	}

	if setting == "off" {
		return
	}

	if setting == "all" || setting == "log" {
		l.logToZap(event)
	}

	if setting == "all" || setting == "db" {
		if err := l.store.Log(ctx, event); err != nil {
			l.zapLog.Error("failed to store audit event",
				zap.Error(err),
				zap.String("event_type", event.EventType),
			)
		}
	}
}

func event(r *http.Request, category, eventType string, actorID primitive.ObjectID, actorRole string, targetID primitive.ObjectID, details map[string]string) audit.Event {
	return audit.Event{
		Category:  category,
		EventType: eventType,
		ActorID:   actorID,
		ActorRole: actorRole,
		TargetID:  &targetID,
		IP:        ratelimit.ClientIP(r),
		Details:   details,
	}
}

// --- Decision events ---

// NGODecision logs an NGO approval or rejection by a Government reviewer.
func (l *Logger) NGODecision(ctx context.Context, r *http.Request, actorID primitive.ObjectID, actorRole string, ngoID primitive.ObjectID, approved bool, reason string) {
	if l == nil {
		return
	}
	eventType := audit.EventNGOApproved
	if !approved {
		eventType = audit.EventNGORejected
	}
	var details map[string]string
	if reason != "" {
		details = map[string]string{"reason": reason}
	}
	l.Log(ctx, event(r, audit.CategoryDecision, eventType, actorID, actorRole, ngoID, details))
}

// VolunteerDecision logs a volunteer approval or rejection.
func (l *Logger) VolunteerDecision(ctx context.Context, r *http.Request, actorID primitive.ObjectID, actorRole string, volunteerID primitive.ObjectID, approved bool, reason string) {
	if l == nil {
		return
	}
	eventType := audit.EventVolunteerApproved
	if !approved {
		eventType = audit.EventVolunteerRejected
	}
	var details map[string]string
	if reason != "" {
		details = map[string]string{"reason": reason}
	}
	l.Log(ctx, event(r, audit.CategoryDecision, eventType, actorID, actorRole, volunteerID, details))
}

// --- Admin events ---

// NGODeleted logs removal of an NGO account and its projects.
func (l *Logger) NGODeleted(ctx context.Context, r *http.Request, actorID primitive.ObjectID, actorRole string, ngoID primitive.ObjectID, orgName string) {
	if l == nil {
		return
	}
	l.Log(ctx, event(r, audit.CategoryAdmin, audit.EventNGODeleted, actorID, actorRole, ngoID,
		map[string]string{"organization_name": orgName}))
}

// ProjectDeleted logs removal of a project.
func (l *Logger) ProjectDeleted(ctx context.Context, r *http.Request, actorID primitive.ObjectID, actorRole string, projectID primitive.ObjectID, title string) {
	if l == nil {
		return
	}
	l.Log(ctx, event(r, audit.CategoryAdmin, audit.EventProjectDeleted, actorID, actorRole, projectID,
		map[string]string{"title": title}))
}
