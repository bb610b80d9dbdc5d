// internal/workers/intake/parse-application/handler.go
package parseapplication

import (
	"context"
	"encoding/json"
	"fmt"

	bpmnerrors "mortgage-workers/internal/common/errors"
	"mortgage-workers/internal/common/logger"
	"mortgage-workers/internal/common/metrics"
	"mortgage-workers/internal/parse"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "parse-application"
)

type Handler struct {
	config   *Config
	parser   *parse.Parser
	logger   logger.Logger
	reporter *bpmnerrors.Reporter
}

func NewHandler(config *Config, log logger.Logger) *Handler {
	l := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:   config,
		parser:   parse.New(config.Parser),
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

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	h.completeJob(client, job, h.execute(ctx, &input))
}

// execute never fails: empty or unrecognizable text still yields a record
// with the metadata fields populated, so the workflow can route on
// completeness instead of handling a parse error.
func (h *Handler) execute(_ context.Context, input *Input) *Output {
	record := h.parser.Parse(input.RawText)
	metrics.ApplicationsParsed.WithLabelValues(record.Intent).Inc()

	h.logger.Info("application text parsed", map[string]interface{}{
		"intent":     record.Intent,
		"confidence": record.Confidence,
		"hasName":    record.FirstName != nil,
		"hasIncome":  record.MonthlyIncome != nil,
	})

	return &Output{Parsed: record}
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

func (h *Handler) Execute(ctx context.Context, input *Input) *Output {
	return h.execute(ctx, input)
}
