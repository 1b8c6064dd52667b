package middlewares

import (
	"facegate.io/application/interfaces"
	"github.com/gin-gonic/gin"
)

// AppContextMiddleware builds the ApplicationContext every route wrapper
// pulls back out of the gin context.
func AppContextMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		appContext := &interfaces.ApplicationContext[any]{
			Ctx: ctx,
		}
		guardedContext, next := UserAgentMiddleware(appContext)
		if !next {
			return
		}
		ctx.Set("AppContext", guardedContext)
		ctx.Next()
	}
}
