package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/interior-market/internal/config"
	"github.com/spec-kit/interior-market/internal/events"
)

// NotificationService handles emitting notifications for domain events.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventConsultationCreated, n.handleConsultationCreated)
	n.dispatcher.Subscribe(events.EventConsultationStatusChanged, n.handleConsultationStatusChanged)
	n.dispatcher.Subscribe(events.EventConsultationNoteAdded, n.handleConsultationNoteAdded)
	n.dispatcher.Subscribe(events.EventDesignLiked, n.handleDesignLiked)
	n.dispatcher.Subscribe(events.EventDesignCommented, n.handleDesignCommented)
	n.dispatcher.Subscribe(events.EventProjectCreated, n.handleProjectCreated)
	n.dispatcher.Subscribe(events.EventPaymentVerified, n.handlePaymentVerified)
}

func (n *NotificationService) handleConsultationCreated(ctx context.Context, event events.Event) error {
	n.logger.Info("ConsultationCreated", zap.String("consultation_id", event.SubjectID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleConsultationStatusChanged(ctx context.Context, event events.Event) error {
	n.logger.Info("ConsultationStatusChanged", zap.String("consultation_id", event.SubjectID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleConsultationNoteAdded(ctx context.Context, event events.Event) error {
	n.logger.Info("ConsultationNoteAdded", zap.String("consultation_id", event.SubjectID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleDesignLiked(ctx context.Context, event events.Event) error {
	n.logger.Info("DesignLiked", zap.String("design_id", event.SubjectID), zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleDesignCommented(ctx context.Context, event events.Event) error {
	n.logger.Info("DesignCommented", zap.String("design_id", event.SubjectID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleProjectCreated(ctx context.Context, event events.Event) error {
	n.logger.Info("ProjectCreated", zap.String("project_id", event.SubjectID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handlePaymentVerified(ctx context.Context, event events.Event) error {
	n.logger.Info("PaymentVerified", zap.String("order_id", event.SubjectID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) sendEmailNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Debug("sendEmailNotificationStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("subject_id", event.SubjectID),
		zap.String("event_type", string(event.Type)))
}

func (n *NotificationService) sendWebhookNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("subject_id", event.SubjectID),
		zap.String("event_type", string(event.Type)))
}
