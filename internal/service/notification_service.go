package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/portfolio-service/internal/events"
)

// NotificationService logs domain events so faculty activity and student
// submissions leave an audit trail. There is no delivery channel beyond the
// log; handlers must never fail the producing operation.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger) *NotificationService {
	return &NotificationService{dispatcher: dispatcher, logger: logger}
}

// RegisterHandlers subscribes to the project events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventProjectCreated, n.handleEvent("ProjectCreated"))
	n.dispatcher.Subscribe(events.EventProjectUpdated, n.handleEvent("ProjectUpdated"))
	n.dispatcher.Subscribe(events.EventProjectStatusChanged, n.handleEvent("ProjectStatusChanged"))
	n.dispatcher.Subscribe(events.EventProjectFeedbackLeft, n.handleEvent("ProjectFeedbackLeft"))
	n.dispatcher.Subscribe(events.EventProjectDeleted, n.handleEvent("ProjectDeleted"))
}

func (n *NotificationService) handleEvent(name string) events.EventHandler {
	return func(_ context.Context, event events.Event) error {
		n.logger.Info(name,
			zap.Int64("project_id", event.ProjectID),
			zap.String("actor_email", event.Actor.Email),
			zap.String("actor_role", string(event.Actor.Role)),
			zap.Any("payload", event.Payload))
		return nil
	}
}
