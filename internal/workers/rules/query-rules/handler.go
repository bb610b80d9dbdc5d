// internal/workers/rules/query-rules/handler.go
package queryrules

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/elastic/go-elasticsearch/v8"

	bpmnerrors "mortgage-workers/internal/common/errors"
	"mortgage-workers/internal/common/logger"
	"mortgage-workers/internal/common/metrics"
	"mortgage-workers/internal/workers/rules/query-rules/queries"
)

const (
	TaskType = "query-rules"
)

var (
	ErrInvalidRuleCategory = errors.New("INVALID_RULE_CATEGORY")
	ErrSearchQueryFailed   = errors.New("SEARCH_QUERY_FAILED")
	ErrSearchTimeout       = errors.New("SEARCH_TIMEOUT")
	ErrIndexNotFound       = errors.New("INDEX_NOT_FOUND")
)

type Handler struct {
	config   *Config
	client   *elasticsearch.Client
	logger   logger.Logger
	reporter *bpmnerrors.Reporter
}

func NewHandler(config *Config, client *elasticsearch.Client, log logger.Logger) *Handler {
	l := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:   config,
		client:   client,
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

	output, err := h.execute(ctx, &input)
	if err != nil {
		h.failJob(client, job, h.toStandardError(input.Category, err))
		return
	}

	h.completeJob(client, job, output)
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	rq := queries.RuleQuery{
		Index:       h.config.Index,
		Category:    input.Category,
		LoanProgram: input.LoanProgram,
	}
	if input.Pagination != nil {
		rq.Pagination.From = input.Pagination.From
		rq.Pagination.Size = input.Pagination.Size
	}

	result, err := queries.Execute(ctx, h.client, rq)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, ErrSearchTimeout
		}
		if errors.Is(err, queries.ErrInvalidCategory) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidRuleCategory, err)
		}
		if errors.Is(err, queries.ErrMissingIndex) {
			return nil, ErrIndexNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrSearchQueryFailed, err)
	}

	h.logger.Info("rules fetched", map[string]interface{}{
		"category":  input.Category,
		"totalHits": result.TotalHits,
		"took":      result.Took,
	})

	return &Output{
		Rules:     result.Rules,
		TotalHits: result.TotalHits,
		Took:      result.Took,
	}, nil
}

// toStandardError maps the package sentinels onto the shared error taxonomy,
// which decides retry budget and BPMN versus fail-job delivery.
func (h *Handler) toStandardError(category string, err error) *bpmnerrors.StandardError {
	switch {
	case errors.Is(err, ErrInvalidRuleCategory):
		return bpmnerrors.NewInvalidRuleCategoryError(category)
	case errors.Is(err, ErrIndexNotFound):
		return bpmnerrors.NewIndexNotFoundError(h.config.Index)
	case errors.Is(err, ErrSearchTimeout):
		return bpmnerrors.NewSearchTimeoutError(category)
	default:
		return bpmnerrors.NewSearchQueryFailedError(category, err)
	}
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
