package routev1

import (
	apperrors "facegate.io/application/appErrors"
	"facegate.io/application/controller"
	"facegate.io/application/controller/dto"
	"facegate.io/application/interfaces"
	"facegate.io/application/middlewares"
	"github.com/gin-gonic/gin"
)

func EnrollmentRouter(router *gin.RouterGroup) {
	enrollmentRouter := router.Group("/enrollment")
	{
		enrollmentRouter.POST("/", func(ctx *gin.Context) {
			appContext := ctx.MustGet("AppContext").(*interfaces.ApplicationContext[any])
			appContext.ClientIP = middlewares.ResolveClientKey(ctx)

			// abuse guard runs before any embedding is looked at
			guardedContext, next := middlewares.EnrollmentGuardMiddleware(appContext)
			if !next {
				return
			}

			var body dto.EnrollmentDTO
			if err := ctx.ShouldBindJSON(&body); err != nil {
				apperrors.ErrorProcessingPayload(ctx)
				return
			}
			controller.Enroll(&interfaces.ApplicationContext[dto.EnrollmentDTO]{
				Ctx:       ctx,
				Body:      &body,
				Keys:      guardedContext.Keys,
				DeviceID:  guardedContext.DeviceID,
				UserAgent: guardedContext.UserAgent,
				ClientIP:  guardedContext.ClientIP,
			})
		})
	}
}
