package controller

import (
	"encoding/json"
	"net/http"
	"time"

	apperrors "facegate.io/application/appErrors"
	"facegate.io/application/constants"
	"facegate.io/application/controller/dto"
	"facegate.io/application/interfaces"
	"facegate.io/application/repository"
	"facegate.io/entities"
	"facegate.io/infrastructure/auth"
	"facegate.io/infrastructure/biometric"
	biometric_types "facegate.io/infrastructure/biometric/types"
	"facegate.io/infrastructure/logger"
	messagequeue "facegate.io/infrastructure/message_queue"
	queue_tasks "facegate.io/infrastructure/message_queue/tasks"
	mq_types "facegate.io/infrastructure/message_queue/types"
	server_response "facegate.io/infrastructure/serverResponse"
	"facegate.io/infrastructure/validator"
)

// Authenticate runs the probe embedding against the full gallery and
// applies the fixed threshold. Every decision, including the empty
// gallery case, produces exactly one audit record.
func Authenticate(ctx *interfaces.ApplicationContext[dto.AuthenticateDTO]) {
	validationErr := validator.ValidatorInstance.ValidateStruct(ctx.Body)
	if validationErr != nil {
		apperrors.ValidationFailedError(ctx.Ctx, validationErr)
		return
	}

	enrollmentRepo := repository.EnrollmentRepo()
	enrollments, err := enrollmentRepo.FindMany(map[string]interface{}{})
	if err != nil {
		apperrors.FatalServerError(ctx.Ctx, err)
		return
	}

	clientKey := ctx.ClientIP
	if clientKey == "" {
		clientKey = constants.UNKNOWN_CLIENT_KEY
	}

	if len(*enrollments) == 0 {
		decision := biometric_types.AuthDecision{
			Authenticated: false,
			Similarity:    0,
			Threshold:     constants.AUTH_THRESHOLD,
		}
		recordAuditTrail(decision, clientKey)
		server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "no enrolled identities", dto.AuthenticateResponse{
			Authenticated: false,
			Similarity:    0,
			Threshold:     constants.AUTH_THRESHOLD,
		}, nil, nil)
		return
	}

	gallery := make([]biometric_types.GalleryEntry, 0, len(*enrollments))
	for _, enrollment := range *enrollments {
		if len(enrollment.Embedding) == 0 {
			logger.Warning("skipping enrollment with undecodable embedding", logger.LoggerOptions{
				Key:  "identityID",
				Data: enrollment.IdentityID,
			})
			continue
		}
		gallery = append(gallery, biometric_types.GalleryEntry{
			IdentityID:          enrollment.IdentityID,
			Embedding:           enrollment.Embedding,
			QualityAtEnrollment: enrollment.QualityAtEnrollment,
		})
	}

	matchResult := biometric.MatcherInstance.Match(ctx.Body.Embedding, gallery)
	decision := biometric.Decide(matchResult, constants.AUTH_THRESHOLD)
	recordAuditTrail(decision, clientKey)

	response := dto.AuthenticateResponse{
		Authenticated: decision.Authenticated,
		IdentityID:    decision.IdentityID,
		Similarity:    decision.Similarity,
		Threshold:     decision.Threshold,
	}

	if decision.Authenticated {
		now := time.Now()
		token, tokenErr := auth.GenerateAuthToken(auth.ClaimsData{
			IdentityID: *decision.IdentityID,
			Similarity: decision.Similarity,
			UserAgent:  ctx.UserAgent,
			IssuedAt:   now.Unix(),
			ExpiresAt:  now.Add(constants.SESSION_TOKEN_VALIDITY).Unix(),
		})
		if tokenErr != nil {
			// the decision stands even when the session token cannot be minted
			logger.Error("error generating session token after successful match", logger.LoggerOptions{
				Key:  "error",
				Data: tokenErr,
			})
		} else {
			response.SessionToken = token
		}
		server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "face match successful", response, nil, nil)
		return
	}

	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "face match failed", response, nil, nil)
}

// persistAuditRecord writes an audit record straight to storage,
// bypassing the queue.
var persistAuditRecord = func(record entities.AuditRecord) error {
	_, err := repository.AuditRecordRepo().CreateOne(record)
	return err
}

// recordAuditTrail enqueues the audit append, falling back to a
// direct write when the broker is unavailable. Failures are logged
// and swallowed so they can never overturn a decision already
// computed.
func recordAuditTrail(decision biometric_types.AuthDecision, clientKey string) {
	payload, err := json.Marshal(queue_tasks.AuditRecordPayload{
		IdentityID:    decision.IdentityID,
		Authenticated: decision.Authenticated,
		Similarity:    decision.Similarity,
		Threshold:     decision.Threshold,
		ClientKey:     clientKey,
	})
	if err != nil {
		logger.Error("error marshalling audit record payload", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return
	}
	err = messagequeue.TaskQueue.Enqueue(mq_types.QueueTask{
		Name:     queue_tasks.HandleAuditRecordTaskName,
		Payload:  payload,
		Priority: mq_types.High,
		MaxRetry: 5,
	})
	if err == nil {
		return
	}
	logger.Warning("error enqueueing audit record, writing it directly", logger.LoggerOptions{
		Key:  "error",
		Data: err,
	}, logger.LoggerOptions{
		Key:  "clientKey",
		Data: clientKey,
	})
	err = persistAuditRecord(entities.AuditRecord{
		IdentityID:    decision.IdentityID,
		Authenticated: decision.Authenticated,
		Similarity:    decision.Similarity,
		Threshold:     decision.Threshold,
		ClientKey:     clientKey,
	})
	if err != nil {
		logger.Error("direct audit record write failed", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		}, logger.LoggerOptions{
			Key:  "clientKey",
			Data: clientKey,
		})
	}
}
