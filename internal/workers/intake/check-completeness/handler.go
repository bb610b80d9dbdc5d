// internal/workers/intake/check-completeness/handler.go
package checkcompleteness

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	bpmnerrors "mortgage-workers/internal/common/errors"
	"mortgage-workers/internal/common/logger"
	"mortgage-workers/internal/common/metrics"
	"mortgage-workers/internal/models"
	"mortgage-workers/internal/parse"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "check-completeness"
)

type Handler struct {
	logger   logger.Logger
	reporter *bpmnerrors.Reporter
}

func NewHandler(config *Config, log logger.Logger) *Handler {
	l := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		logger:   l,
		reporter: bpmnerrors.NewReporter(l),
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

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	output, err := h.execute(ctx, &input)
	if err != nil {
		h.failJob(client, job, bpmnerrors.NewApplicationValidationFailedError(err.Error()))
		return
	}

	h.completeJob(client, job, output)
}

func (h *Handler) execute(_ context.Context, input *Input) (*Output, error) {
	if input.Parsed == nil {
		return nil, fmt.Errorf("parsed application is required")
	}

	missing := missingEssentialFields(input.Parsed)
	total := len(essentialFields)
	present := total - len(missing)
	percentage := math.Round(float64(present)/float64(total)*1000) / 10

	status := models.ApplicationStatusReceived
	if len(missing) > 0 {
		status = models.ApplicationStatusIncomplete
	}

	h.logger.Info("completeness evaluated", map[string]interface{}{
		"fieldsPresent":        present,
		"fieldsTotal":          total,
		"completionPercentage": percentage,
		"missingFields":        missing,
	})

	return &Output{
		Complete:             len(missing) == 0,
		CompletionPercentage: percentage,
		MissingFields:        missing,
		FieldsPresent:        present,
		FieldsTotal:          total,
		Status:               status,
	}, nil
}

// essentialFields are the minimum set needed to open an underwriting file.
var essentialFields = []string{
	FieldFirstName,
	FieldLastName,
	FieldDateOfBirth,
	FieldSSN,
	FieldPhone,
	FieldEmail,
	FieldLoanPurpose,
	FieldLoanAmount,
	FieldPropertyAddress,
	FieldMonthlyIncome,
}

func missingEssentialFields(record *parse.Record) []string {
	missing := []string{}

	checks := map[string]bool{
		FieldFirstName:       record.FirstName != nil,
		FieldLastName:        record.LastName != nil,
		FieldDateOfBirth:     record.DateOfBirth != nil,
		FieldSSN:             record.SSN != nil,
		FieldPhone:           record.Phone != nil,
		FieldEmail:           record.Email != nil,
		FieldLoanPurpose:     record.LoanPurpose != nil,
		FieldLoanAmount:      record.LoanAmount != nil && *record.LoanAmount > 0,
		FieldPropertyAddress: record.Address != nil,
		FieldMonthlyIncome:   record.MonthlyIncome != nil && *record.MonthlyIncome > 0,
	}

	for _, field := range essentialFields {
		if !checks[field] {
			missing = append(missing, field)
		}
	}
	return missing
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

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
