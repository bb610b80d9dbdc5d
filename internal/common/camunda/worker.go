// internal/common/camunda/worker.go
package camunda

import (
	"context"
	"time"

	"mortgage-workers/internal/common/logger"
	"mortgage-workers/internal/common/metrics"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"
)

// JobHandler processes a single Zeebe job. Handlers own the job outcome:
// they complete the job, throw a business error, or fail it for retry.
type JobHandler interface {
	Handle(client worker.JobClient, job entities.Job)
}

// WorkerOptions tunes the underlying Zeebe job worker.
type WorkerOptions struct {
	MaxJobsActive int
	Timeout       time.Duration
	PollInterval  time.Duration
}

// DefaultWorkerOptions covers the common case for short-lived task handlers.
var DefaultWorkerOptions = WorkerOptions{
	MaxJobsActive: 5,
	Timeout:       5 * time.Minute,
	PollInterval:  5 * time.Second,
}

type CamundaWorker struct {
	client   zbc.Client
	worker   worker.JobWorker
	logger   logger.Logger
	taskType string
}

func NewWorker(
	client zbc.Client,
	taskType string,
	opts WorkerOptions,
	handler JobHandler,
	log logger.Logger,
) *CamundaWorker {
	if opts.MaxJobsActive <= 0 {
		opts.MaxJobsActive = DefaultWorkerOptions.MaxJobsActive
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultWorkerOptions.Timeout
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = DefaultWorkerOptions.PollInterval
	}

	jobWorker := client.NewJobWorker().
		JobType(taskType).
		Handler(func(jobClient worker.JobClient, job entities.Job) {
			metrics.WorkerJobsActive.WithLabelValues(taskType).Inc()
			start := time.Now()
			handler.Handle(jobClient, job)
			metrics.WorkerJobDuration.WithLabelValues(taskType).Observe(time.Since(start).Seconds())
			metrics.WorkerJobsActive.WithLabelValues(taskType).Dec()
		}).
		MaxJobsActive(opts.MaxJobsActive).
		Timeout(opts.Timeout).
		PollInterval(opts.PollInterval).
		Open()

	return &CamundaWorker{
		client:   client,
		worker:   jobWorker,
		logger:   log,
		taskType: taskType,
	}
}

func (w *CamundaWorker) TaskType() string {
	return w.taskType
}

func (w *CamundaWorker) Start() {
	w.logger.Info("Worker started", map[string]interface{}{"taskType": w.taskType})
}

// Stop closes the job worker. The shared Zeebe client is owned by the
// worker manager and closed there once all workers have drained.
func (w *CamundaWorker) Stop(ctx context.Context) {
	w.logger.Info("Stopping worker", map[string]interface{}{"taskType": w.taskType})
	w.worker.Close()
}
