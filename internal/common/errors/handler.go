// internal/common/errors/handler.go
package errors

import (
	"context"
	"encoding/json"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

type Logger interface {
	Error(msg string, fields map[string]interface{})
}

// Reporter sends job failures to Zeebe. Retryable errors fail the job so the
// broker retries it with the remaining budget; business errors throw a BPMN
// error for the workflow's error boundary events.
type Reporter struct {
	logger Logger
}

func NewReporter(logger Logger) *Reporter {
	return &Reporter{logger: logger}
}

// Report converts stdErr to its BPMN form and sends the matching command.
// It returns the BPMN error code, which callers use as a metric label.
func (r *Reporter) Report(ctx context.Context, client worker.JobClient, job entities.Job, stdErr *StandardError) string {
	bpmnErr := ConvertToBPMNError(stdErr)

	r.logger.Error("job failed", map[string]interface{}{
		"jobKey":    job.Key,
		"taskType":  job.Type,
		"errorCode": bpmnErr.Code,
		"category":  GetErrorCategory(stdErr.Code),
		"details":   bpmnErr.Details,
		"retryable": bpmnErr.Retryable,
	})

	if bpmnErr.Retryable {
		r.failWithRetries(ctx, client, job, bpmnErr)
	} else {
		r.throwBPMNError(ctx, client, job, bpmnErr)
	}
	return bpmnErr.Code
}

func (r *Reporter) failWithRetries(ctx context.Context, client worker.JobClient, job entities.Job, bpmnErr *BPMNError) {
	// The broker hands the job out with its remaining retries; never set
	// more than job.Retries-1 or the job can loop forever.
	retries := bpmnErr.Retries
	if remaining := int(job.Retries) - 1; remaining < retries {
		retries = remaining
	}
	if retries < 0 {
		retries = 0
	}

	cmd := client.NewFailJobCommand().
		JobKey(job.Key).
		Retries(int32(retries)).
		ErrorMessage(bpmnErr.Message)

	if varsJSON, err := json.Marshal(bpmnErr.ToErrorVariables()); err == nil {
		if cmdWithVars, err := cmd.VariablesFromString(string(varsJSON)); err == nil {
			if _, err := cmdWithVars.Send(ctx); err != nil {
				r.logger.Error("failed to fail job", map[string]interface{}{"error": err})
			}
			return
		}
	}

	if _, err := cmd.Send(ctx); err != nil {
		r.logger.Error("failed to fail job", map[string]interface{}{"error": err})
	}
}

func (r *Reporter) throwBPMNError(ctx context.Context, client worker.JobClient, job entities.Job, bpmnErr *BPMNError) {
	cmd := client.NewThrowErrorCommand().
		JobKey(job.Key).
		ErrorCode(bpmnErr.Code).
		ErrorMessage(bpmnErr.Message)

	if varsJSON, err := json.Marshal(bpmnErr.ToErrorVariables()); err == nil {
		if cmdWithVars, err := cmd.VariablesFromString(string(varsJSON)); err == nil {
			if _, err := cmdWithVars.Send(ctx); err != nil {
				r.logger.Error("failed to throw error", map[string]interface{}{"error": err})
			}
			return
		}
	}

	if _, err := cmd.Send(ctx); err != nil {
		r.logger.Error("failed to throw error", map[string]interface{}{"error": err})
	}
}
