package middlewares

import (
	"errors"

	apperrors "facegate.io/application/appErrors"
	"facegate.io/application/interfaces"
	"facegate.io/infrastructure/useragent"
)

func UserAgentMiddleware(ctx *interfaces.ApplicationContext[any]) (*interfaces.ApplicationContext[any], bool) {
	agent := ctx.GetHeader("User-Agent")
	if agent == nil {
		apperrors.ClientError(ctx.Ctx, "user agent header missing 🤨", []error{errors.New("user agent header missing")})
		return nil, false
	}
	agentDetails := useragent.ParseUserAgent(*agent)
	ctx.UserAgent = *agent
	ctx.DeviceName = agentDetails.Name
	deviceID := ctx.GetHeader("X-Device-Id")
	if deviceID != nil {
		ctx.DeviceID = *deviceID
	}
	return ctx, true
}
