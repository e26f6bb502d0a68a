package worker

import (
	"encoding/json"

	"tailor-service/internal/consumers"

	"github.com/hibiken/asynq"
)

// Task Types
const (
	TypeCommissionDistribute = "commission-distribute"
)

// Task Creators

func NewCommissionDistributeTask(payload consumers.CommissionJobDTO) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeCommissionDistribute, data), nil
}
