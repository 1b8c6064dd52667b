package controller

import (
	"errors"
	"net/http"

	apperrors "facegate.io/application/appErrors"
	"facegate.io/application/controller/dto"
	"facegate.io/application/interfaces"
	"facegate.io/application/repository"
	"facegate.io/entities"
	server_response "facegate.io/infrastructure/serverResponse"
	"facegate.io/infrastructure/validator"
)

func CreateIdentity(ctx *interfaces.ApplicationContext[dto.CreateIdentityDTO]) {
	validationErr := validator.ValidatorInstance.ValidateStruct(ctx.Body)
	if validationErr != nil {
		apperrors.ValidationFailedError(ctx.Ctx, validationErr)
		return
	}

	identityRepo := repository.IdentityRepo()
	identityID, err := identityRepo.CreateOne(entities.Identity{
		DisplayName: ctx.Body.DisplayName,
	})
	if err != nil {
		apperrors.FatalServerError(ctx.Ctx, err)
		return
	}
	if identityID == nil {
		apperrors.FatalServerError(ctx.Ctx, errors.New("identity was not persisted"))
		return
	}

	server_response.Responder.Respond(ctx.Ctx, http.StatusCreated, "identity created", map[string]any{
		"id": *identityID,
	}, nil, nil)
}

func FetchIdentity(ctx *interfaces.ApplicationContext[any], identityID string) {
	identityRepo := repository.IdentityRepo()
	identity, err := identityRepo.FindOneByFilter(map[string]interface{}{
		"_id": identityID,
	})
	if err != nil {
		apperrors.FatalServerError(ctx.Ctx, err)
		return
	}
	if identity == nil {
		apperrors.NotFoundError(ctx.Ctx, "identity does not exist")
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "identity found", identity, nil, nil)
}
