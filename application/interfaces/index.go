package interfaces

import (
	"github.com/gin-gonic/gin"
)

// ApplicationContext carries a parsed request body and the request metadata
// controllers need, decoupled from the transport framework.
type ApplicationContext[T interface{}] struct {
	Ctx        interface{}
	Body       *T
	Keys       map[string]any
	DeviceID   string
	DeviceName string
	UserAgent  string
	ClientIP   string
}

func (ac *ApplicationContext[T]) GetContextData(key string) any {
	if ac.Keys == nil {
		return nil
	}
	return ac.Keys[key]
}

func (ac *ApplicationContext[T]) SetContextData(key string, value any) {
	if ac.Keys == nil {
		ac.Keys = map[string]any{}
	}
	ac.Keys[key] = value
}

func (ac *ApplicationContext[T]) GetHeader(key string) *string {
	ginCtx, ok := (ac.Ctx).(*gin.Context)
	if !ok {
		return nil
	}
	value := ginCtx.GetHeader(key)
	if value == "" {
		return nil
	}
	return &value
}
