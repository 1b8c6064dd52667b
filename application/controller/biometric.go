package controller

import (
	"net/http"

	apperrors "facegate.io/application/appErrors"
	"facegate.io/application/constants"
	"facegate.io/application/controller/dto"
	"facegate.io/application/interfaces"
	"facegate.io/infrastructure/biometric"
	server_response "facegate.io/infrastructure/serverResponse"
	"facegate.io/infrastructure/validator"
)

// ScoreCapture normalizes a raw landmark set into an embedding and
// grades its capture quality, mirroring what the capture client runs
// per frame.
func ScoreCapture(ctx *interfaces.ApplicationContext[dto.CaptureScoreDTO]) {
	validationErr := validator.ValidatorInstance.ValidateStruct(ctx.Body)
	if validationErr != nil {
		apperrors.ValidationFailedError(ctx.Ctx, validationErr)
		return
	}

	quality := biometric.ScoreQuality(ctx.Body.Landmarks)
	embedding := biometric.NormalizeLandmarks(ctx.Body.Landmarks, biometric.KeyPointSchema)

	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "capture scored", dto.CaptureScoreResponse{
		Quality:         quality,
		Embedding:       embedding,
		EmbeddingLength: len(embedding),
		EnrollmentReady: quality >= constants.MIN_QUALITY_FOR_ENROLLMENT && len(embedding) == constants.EMBEDDING_LENGTH,
	}, nil, nil)
}
