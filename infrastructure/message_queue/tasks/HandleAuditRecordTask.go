package queue_tasks

import (
	"context"
	"encoding/json"

	"facegate.io/application/repository"
	"facegate.io/entities"
	"facegate.io/infrastructure/logger"
	mq_types "facegate.io/infrastructure/message_queue/types"
	"github.com/hibiken/asynq"
)

var HandleAuditRecordTaskName mq_types.Queues = "record_audit"

type AuditRecordPayload struct {
	IdentityID    *string
	Authenticated bool
	Similarity    float64
	Threshold     float64
	ClientKey     string
}

// HandleAuditRecordTask appends one audit record per authentication
// decision. A failure here is retried by the queue and never reaches
// the caller who already received the decision.
func HandleAuditRecordTask(ctx context.Context, t *asynq.Task) error {
	var payload AuditRecordPayload
	err := json.Unmarshal(t.Payload(), &payload)
	if err != nil {
		logger.Error("an error occured while unmarshalling audit record queue payload", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return err
	}
	auditRepo := repository.AuditRecordRepo()
	_, err = auditRepo.CreateOne(entities.AuditRecord{
		IdentityID:    payload.IdentityID,
		Authenticated: payload.Authenticated,
		Similarity:    payload.Similarity,
		Threshold:     payload.Threshold,
		ClientKey:     payload.ClientKey,
	})
	if err != nil {
		logger.Error("failed to append audit record", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		}, logger.LoggerOptions{
			Key:  "clientKey",
			Data: payload.ClientKey,
		})
		return err
	}
	return nil
}
