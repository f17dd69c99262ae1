package worker

import (
	"github.com/spec-kit/portfolio-service/internal/service"
)

// StartNotificationWorker subscribes the notification service to the project
// event stream.
func StartNotificationWorker(notificationService *service.NotificationService) {
	if notificationService == nil {
		return
	}
	notificationService.RegisterHandlers()
}
