package controller

import (
	"errors"
	"fmt"
	"net/http"

	apperrors "facegate.io/application/appErrors"
	"facegate.io/application/constants"
	"facegate.io/application/controller/dto"
	"facegate.io/application/interfaces"
	"facegate.io/application/repository"
	"facegate.io/entities"
	mongoRepo "facegate.io/infrastructure/database/repository/mongo"
	server_response "facegate.io/infrastructure/serverResponse"
	"facegate.io/infrastructure/validator"
)

// checkEnrollmentPreconditions gates an enrollment on the shape and
// quality contract before any storage round trip. A zero-quality
// capture is always rejected since the floor sits above zero.
func checkEnrollmentPreconditions(embedding []float64, quality float64) error {
	if len(embedding) != constants.EMBEDDING_LENGTH {
		return fmt.Errorf("embedding must contain exactly %d values, got %d", constants.EMBEDDING_LENGTH, len(embedding))
	}
	if quality < constants.MIN_QUALITY_FOR_ENROLLMENT {
		return fmt.Errorf("quality must be at least %.2f for enrollment, got %.2f", constants.MIN_QUALITY_FOR_ENROLLMENT, quality)
	}
	return nil
}

// Enroll persists a captured embedding as an identity's single gallery
// entry. The abuse guard has already run by the time this is reached;
// checks here follow the contract order: shape, quality, identity
// existence, single-enrollment conflict.
func Enroll(ctx *interfaces.ApplicationContext[dto.EnrollmentDTO]) {
	validationErr := validator.ValidatorInstance.ValidateStruct(ctx.Body)
	if validationErr != nil {
		apperrors.ValidationFailedError(ctx.Ctx, validationErr)
		return
	}

	if err := checkEnrollmentPreconditions(ctx.Body.Embedding, ctx.Body.Quality); err != nil {
		apperrors.ValidationFailedError(ctx.Ctx, &[]error{err})
		return
	}

	identityRepo := repository.IdentityRepo()
	identity, err := identityRepo.FindOneByFilter(map[string]interface{}{
		"_id": ctx.Body.IdentityID,
	})
	if err != nil {
		apperrors.FatalServerError(ctx.Ctx, err)
		return
	}
	if identity == nil {
		apperrors.NotFoundError(ctx.Ctx, "identity does not exist")
		return
	}

	enrollmentRepo := repository.EnrollmentRepo()
	existing, err := enrollmentRepo.CountDocs(map[string]interface{}{
		"identityID": ctx.Body.IdentityID,
	})
	if err != nil {
		apperrors.FatalServerError(ctx.Ctx, err)
		return
	}
	if existing > 0 {
		apperrors.EntityAlreadyExistsError(ctx.Ctx, "identity already has an enrollment")
		return
	}

	clientKey, _ := ctx.GetContextData("ClientKey").(string)
	if clientKey == "" {
		clientKey = constants.UNKNOWN_CLIENT_KEY
	}

	enrollmentID, err := enrollmentRepo.CreateOne(entities.Enrollment{
		IdentityID:          ctx.Body.IdentityID,
		Embedding:           ctx.Body.Embedding,
		QualityAtEnrollment: ctx.Body.Quality,
		ClientKey:           clientKey,
	})
	if err != nil {
		// the unique index catches a racing double-enrollment
		if mongoRepo.IsDuplicateKeyError(err) {
			apperrors.EntityAlreadyExistsError(ctx.Ctx, "identity already has an enrollment")
			return
		}
		apperrors.FatalServerError(ctx.Ctx, err)
		return
	}
	if enrollmentID == nil {
		apperrors.FatalServerError(ctx.Ctx, errors.New("enrollment was not persisted"))
		return
	}

	server_response.Responder.Respond(ctx.Ctx, http.StatusCreated, "enrollment created", dto.EnrollmentResponse{
		EnrollmentID: *enrollmentID,
	}, nil, nil)
}
