// internal/workers/underwriting/calculate-dti/handler.go
package calculatedti

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/redis/go-redis/v9"

	bpmnerrors "mortgage-workers/internal/common/errors"
	"mortgage-workers/internal/common/logger"
	"mortgage-workers/internal/common/metrics"
	"mortgage-workers/internal/parse"
)

const (
	TaskType = "calculate-dti"
)

var (
	ErrInvalidIncome = errors.New("APPLICATION_VALIDATION_FAILED")
)

type Handler struct {
	config   *Config
	redis    *redis.Client
	logger   logger.Logger
	reporter *bpmnerrors.Reporter
}

func NewHandler(config *Config, redisClient *redis.Client, log logger.Logger) *Handler {
	l := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:   config,
		redis:    redisClient,
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
		h.failJob(client, job, bpmnerrors.NewApplicationValidationFailedError(err.Error()))
		return
	}

	h.completeJob(client, job, output)
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	if input.MonthlyIncome <= 0 {
		return nil, fmt.Errorf("%w: monthly income must be positive", ErrInvalidIncome)
	}

	result := parse.ComputeDTI(input.MonthlyIncome, input.HousingPayment, input.MonthlyDebts)

	program := strings.ToLower(strings.TrimSpace(input.LoanProgram))
	if program == "" {
		program = "conventional"
	}

	limits, source := h.lookupLimits(ctx, program)

	output := &Output{
		FrontEndDTI:      result.FrontEndDTI,
		BackEndDTI:       result.BackEndDTI,
		FrontEndRatio:    result.FrontEndRatio,
		BackEndRatio:     result.BackEndRatio,
		FrontEndLimit:    limits.FrontEnd,
		BackEndLimit:     limits.BackEnd,
		WithinFrontLimit: result.FrontEndDTI <= limits.FrontEnd,
		WithinBackLimit:  result.BackEndDTI <= limits.BackEnd,
		LoanProgram:      program,
		LimitsSource:     source,
	}

	h.logger.Info("dti calculated", map[string]interface{}{
		"frontEndDti":  output.FrontEndDTI,
		"backEndDti":   output.BackEndDTI,
		"loanProgram":  program,
		"limitsSource": source,
		"withinLimits": output.WithinFrontLimit && output.WithinBackLimit,
	})

	return output, nil
}

// lookupLimits reads program limits from the rule cache. Cache misses and
// cache errors both fall back to the configured defaults; DTI calculation
// must not depend on Redis availability.
func (h *Handler) lookupLimits(ctx context.Context, program string) (programLimits, string) {
	fallback := programLimits{
		FrontEnd: h.config.DefaultFrontEndLimit,
		BackEnd:  h.config.DefaultBackEndLimit,
	}

	if h.redis == nil {
		return fallback, "default"
	}

	val, err := h.redis.Get(ctx, h.config.CachePrefix+program).Result()
	if err != nil {
		if err != redis.Nil {
			h.logger.Warn("rule cache read failed", map[string]interface{}{
				"error":   err,
				"program": program,
			})
		}
		return fallback, "default"
	}

	var limits programLimits
	if err := json.Unmarshal([]byte(val), &limits); err != nil || limits.FrontEnd <= 0 || limits.BackEnd <= 0 {
		h.logger.Warn("rule cache entry malformed", map[string]interface{}{
			"program": program,
		})
		return fallback, "default"
	}

	return limits, "cache"
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
