// internal/workers/intake/receive-application/handler.go
package receiveapplication

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	bpmnerrors "mortgage-workers/internal/common/errors"
	"mortgage-workers/internal/common/logger"
	"mortgage-workers/internal/common/metrics"
	"mortgage-workers/internal/common/validation"
	"mortgage-workers/internal/models"
	"mortgage-workers/internal/parse"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "receive-application"
)

var (
	ErrValidationFailed      = errors.New("APPLICATION_VALIDATION_FAILED")
	ErrDatabaseInsertFailed  = errors.New("DATABASE_INSERT_FAILED")
	ErrDuplicateApplication  = errors.New("DUPLICATE_APPLICATION")
	ErrDuplicateCheckFailed  = errors.New("QUERY_EXECUTION_FAILED")
	ErrDuplicateCheckTimeout = errors.New("QUERY_TIMEOUT")
)

type Handler struct {
	config   *Config
	db       *sql.DB
	logger   logger.Logger
	reporter *bpmnerrors.Reporter
	now      func() time.Time
}

func NewHandler(config *Config, db *sql.DB, log logger.Logger) *Handler {
	l := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:   config,
		db:       db,
		logger:   l,
		reporter: bpmnerrors.NewReporter(l),
		now:      time.Now,
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
		h.failJob(client, job, toStandardError(err))
		return
	}

	h.completeJob(client, job, output)
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	record := input.Parsed
	if record == nil {
		return nil, fmt.Errorf("%w: parsed application is required", ErrValidationFailed)
	}

	if err := validateFormats(record); err != nil {
		return nil, err
	}

	// An applicant who stated a loan amount but no property value is
	// assumed to be at the default loan-to-value ratio.
	propertyValue := 0.0
	if record.PropertyValue != nil {
		propertyValue = *record.PropertyValue
	} else if record.LoanAmount != nil && *record.LoanAmount > 0 {
		propertyValue = *record.LoanAmount / h.config.DefaultLTV
	}

	lastName := ""
	if record.LastName != nil {
		lastName = *record.LastName
	}
	appID := parse.NewApplicationID(h.now(), lastName)

	email := ""
	if record.Email != nil {
		email = *record.Email
	}

	if email != "" {
		var exists bool
		err := h.db.QueryRowContext(ctx, `
			SELECT EXISTS(
				SELECT 1 FROM applications
				WHERE email = $1 AND status NOT IN ('declined', 'withdrawn')
			)`, email).Scan(&exists)
		if err != nil {
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return nil, fmt.Errorf("%w: duplicate check timed out", ErrDuplicateCheckTimeout)
			}
			return nil, fmt.Errorf("%w: duplicate check failed: %v", ErrDuplicateCheckFailed, err)
		}
		if exists {
			return nil, fmt.Errorf("%w: open application already exists for %s", ErrDuplicateApplication, email)
		}
	}

	payloadJSON, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal application data: %v", ErrDatabaseInsertFailed, err)
	}

	applicantName := ""
	if record.FullName != nil {
		applicantName = *record.FullName
	}
	phone := ""
	if record.Phone != nil {
		phone = *record.Phone
	}
	loanPurpose := ""
	if record.LoanPurpose != nil {
		loanPurpose = *record.LoanPurpose
	}
	loanAmount := 0.0
	if record.LoanAmount != nil {
		loanAmount = *record.LoanAmount
	}

	createdAt := h.now().UTC().Format(time.RFC3339)

	_, err = h.db.ExecContext(ctx, `
		INSERT INTO applications (
			application_id, applicant_name, email, phone,
			loan_purpose, loan_amount, property_value,
			application_data, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)`,
		appID,
		applicantName,
		email,
		phone,
		loanPurpose,
		loanAmount,
		propertyValue,
		payloadJSON,
		models.ApplicationStatusReceived,
		createdAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: insert failed: %v", ErrDatabaseInsertFailed, err)
	}

	h.logger.Info("application record created", map[string]interface{}{
		"applicationId": appID,
		"loanPurpose":   loanPurpose,
		"loanAmount":    loanAmount,
		"propertyValue": propertyValue,
	})

	return &Output{
		ApplicationID:     appID,
		ApplicationStatus: models.ApplicationStatusReceived,
		PropertyValue:     propertyValue,
		CreatedAt:         createdAt,
	}, nil
}

// validateFormats rejects malformed contact and identity fields. Absent
// fields are allowed here; completeness is checked separately.
func validateFormats(record *parse.Record) error {
	if record.Email != nil && !validation.ValidateEmail(*record.Email) {
		return fmt.Errorf("%w: invalid email format: %s", ErrValidationFailed, *record.Email)
	}
	if record.Phone != nil && !validation.ValidatePhone(*record.Phone) {
		return fmt.Errorf("%w: invalid phone format: %s", ErrValidationFailed, *record.Phone)
	}
	if record.SSN != nil && !validation.ValidateSSN(*record.SSN) {
		return fmt.Errorf("%w: invalid SSN format", ErrValidationFailed)
	}
	if record.DateOfBirth != nil && !validation.ValidateISODate(*record.DateOfBirth) {
		return fmt.Errorf("%w: invalid date of birth format: %s", ErrValidationFailed, *record.DateOfBirth)
	}
	return nil
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
func toStandardError(err error) *bpmnerrors.StandardError {
	switch {
	case errors.Is(err, ErrDuplicateApplication):
		return bpmnerrors.NewDuplicateApplicationError(err.Error())
	case errors.Is(err, ErrDuplicateCheckTimeout):
		return bpmnerrors.NewQueryTimeoutError("duplicate-check")
	case errors.Is(err, ErrDuplicateCheckFailed):
		return bpmnerrors.NewQueryExecutionFailedError("duplicate-check", err)
	case errors.Is(err, ErrDatabaseInsertFailed):
		return bpmnerrors.NewDatabaseInsertFailedError(err)
	default:
		return bpmnerrors.NewApplicationValidationFailedError(err.Error())
	}
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
