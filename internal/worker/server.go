package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"tailor-service/internal/consumers"
	"tailor-service/internal/models"

	"github.com/hibiken/asynq"
)

type Worker struct {
	Processor *consumers.CommissionProcessor
}

func NewWorker(processor *consumers.CommissionProcessor) *Worker {
	return &Worker{
		Processor: processor,
	}
}

func (w *Worker) HandleCommissionDistribute(ctx context.Context, t *asynq.Task) error {
	var p consumers.CommissionJobDTO
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("json.Unmarshal failed: %v: %w", err, asynq.SkipRetry)
	}
	return w.Processor.ProcessDistribution(p)
}

// QueueCommissionDispatcher enqueues distributions instead of running them
// in the request path. The worker process picks them up.
type QueueCommissionDispatcher struct {
	Client *asynq.Client
}

func NewQueueCommissionDispatcher(client *asynq.Client) *QueueCommissionDispatcher {
	return &QueueCommissionDispatcher{Client: client}
}

func (d *QueueCommissionDispatcher) Dispatch(orderID, staffID string, stage models.Department) error {
	task, err := NewCommissionDistributeTask(consumers.CommissionJobDTO{
		OrderID: orderID,
		StaffID: staffID,
		Stage:   stage,
	})
	if err != nil {
		return err
	}
	_, err = d.Client.Enqueue(task, asynq.Queue("default"))
	return err
}

func StartWorker(redisOpt asynq.RedisClientOpt, processor *consumers.CommissionProcessor) {
	srv := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"critical": 6,
				"default":  3,
				"low":      1,
			},
		},
	)

	worker := NewWorker(processor)
	mux := asynq.NewServeMux()

	mux.HandleFunc(TypeCommissionDistribute, worker.HandleCommissionDistribute)

	if err := srv.Run(mux); err != nil {
		log.Fatalf("could not run server: %v", err)
	}
}
