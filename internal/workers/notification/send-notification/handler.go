// internal/workers/notification/send-notification/handler.go
package sendnotification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"

	"mortgage-workers/internal/common/aws"
	bpmnerrors "mortgage-workers/internal/common/errors"
	"mortgage-workers/internal/common/logger"
	"mortgage-workers/internal/common/metrics"
	"mortgage-workers/internal/models"
)

const (
	TaskType = "send-notification"
)

var (
	ErrNotificationSendFailed = errors.New("NOTIFICATION_SEND_FAILED")
	ErrTemplateNotFound       = errors.New("TEMPLATE_NOT_FOUND")
)

type Handler struct {
	config    *Config
	logger    logger.Logger
	reporter  *bpmnerrors.Reporter
	sesClient aws.EmailSender
	snsClient aws.SMSSender
}

func NewHandler(config *Config, log logger.Logger) (*Handler, error) {
	sesClient, err := aws.NewSESClient(context.Background(), config.AWSRegion, config.FromEmail)
	if err != nil {
		return nil, fmt.Errorf("create SES client: %w", err)
	}
	snsClient, err := aws.NewSNSClient(context.Background(), config.AWSRegion)
	if err != nil {
		return nil, fmt.Errorf("create SNS client: %w", err)
	}
	return NewHandlerWithClients(config, sesClient, snsClient, log), nil
}

// NewHandlerWithClients wires explicit senders, used by tests.
func NewHandlerWithClients(config *Config, sesClient aws.EmailSender, snsClient aws.SMSSender, log logger.Logger) *Handler {
	l := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:    config,
		logger:    l,
		reporter:  bpmnerrors.NewReporter(l),
		sesClient: sesClient,
		snsClient: snsClient,
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		h.failJob(client, job, bpmnerrors.NewInvalidInputFormatError(fmt.Sprintf("unmarshal job variables: %v", err)))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	output, err := h.execute(ctx, &input)
	if err != nil {
		h.failJob(client, job, toStandardError(input.NotificationType, err))
		return
	}

	h.completeJob(client, job, output)
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	template, exists := templates[input.NotificationType]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, input.NotificationType)
	}

	notificationID := uuid.New().String()
	sentAt := time.Now().UTC().Format(time.RFC3339)

	if input.RecipientEmail == "" && input.RecipientPhone == "" {
		h.logger.Warn("no recipient contact available", map[string]interface{}{
			"applicationId":    input.ApplicationID,
			"notificationType": input.NotificationType,
		})
		metrics.NotificationsSent.WithLabelValues("none", models.NotificationStatusDisabled).Inc()
		return &Output{
			NotificationID: notificationID,
			Status:         models.NotificationStatusDisabled,
			SentAt:         sentAt,
		}, nil
	}

	data := map[string]interface{}{
		"applicationId":    input.ApplicationID,
		"notificationType": input.NotificationType,
		"priority":         input.Priority,
	}
	for k, v := range input.Metadata {
		data[k] = v
	}

	subject := renderTemplate(template.Subject, data)
	body := renderTemplate(template.Body, data)

	emailSent := false
	smsSent := false

	if h.config.EmailEnabled && input.RecipientEmail != "" {
		if _, err := h.sesClient.SendEmail(ctx, input.RecipientEmail, subject, body); err != nil {
			metrics.NotificationsSent.WithLabelValues(models.NotificationChannelEmail, models.NotificationStatusFailed).Inc()
			return nil, fmt.Errorf("%w: email to %s: %v", ErrNotificationSendFailed, input.RecipientEmail, err)
		}
		emailSent = true
		metrics.NotificationsSent.WithLabelValues(models.NotificationChannelEmail, models.NotificationStatusSent).Inc()
	}

	// SMS goes out only for high-priority notifications.
	if h.config.SMSEnabled && input.RecipientPhone != "" && input.Priority == models.NotificationPriorityHigh {
		if _, err := h.snsClient.SendSMS(ctx, input.RecipientPhone, body); err != nil {
			metrics.NotificationsSent.WithLabelValues(models.NotificationChannelSMS, models.NotificationStatusFailed).Inc()
			return nil, fmt.Errorf("%w: sms to %s: %v", ErrNotificationSendFailed, input.RecipientPhone, err)
		}
		smsSent = true
		metrics.NotificationsSent.WithLabelValues(models.NotificationChannelSMS, models.NotificationStatusSent).Inc()
	}

	status := models.NotificationStatusDisabled
	if emailSent || smsSent {
		status = models.NotificationStatusSent
	}

	h.logger.Info("notification processed", map[string]interface{}{
		"notificationId": notificationID,
		"status":         status,
		"emailSent":      emailSent,
		"smsSent":        smsSent,
	})

	return &Output{
		NotificationID: notificationID,
		Status:         status,
		SentAt:         sentAt,
	}, nil
}

func (h *Handler) completeJob(client worker.JobClient, job entities.Job, output *Output) {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		h.logger.Error("failed to create complete job command", map[string]interface{}{
			"error": err,
		})
		return
	}
	_, err = cmd.Send(context.Background())
	if err != nil {
		h.logger.Error("failed to send complete job command", map[string]interface{}{
			"error": err,
		})
		return
	}
	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
}

func (h *Handler) failJob(client worker.JobClient, job entities.Job, stdErr *bpmnerrors.StandardError) {
	code := h.reporter.Report(context.Background(), client, job, stdErr)
	metrics.WorkerJobsFailed.WithLabelValues(TaskType, code).Inc()
}

// toStandardError maps the package sentinels onto the shared error taxonomy,
// which decides retry budget and BPMN versus fail-job delivery.
func toStandardError(notificationType string, err error) *bpmnerrors.StandardError {
	if errors.Is(err, ErrTemplateNotFound) {
		return bpmnerrors.NewTemplateNotFoundError(notificationType)
	}
	return bpmnerrors.NewNotificationSendFailedError(notificationType, err)
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
