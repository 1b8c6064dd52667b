package middlewares

import (
	"fmt"
	"strings"
	"time"

	apperrors "facegate.io/application/appErrors"
	"facegate.io/application/constants"
	"facegate.io/application/interfaces"
	"facegate.io/entities"
	"facegate.io/infrastructure/logger"
	"facegate.io/infrastructure/ratelimit"
	"facegate.io/infrastructure/useragent"
)

// ClassifySuspiciousActivity applies the scripted-client heuristics.
// Returns nil when the request looks fine or when there is no client
// key to evaluate. An unresolvable address means the check cannot run,
// not that the caller is suspicious, so legitimate traffic behind
// unknown proxies still passes through to the rate limiter.
func ClassifySuspiciousActivity(clientKey string, clientAgent string) *entities.SecurityEvent {
	if clientKey == "" || clientKey == constants.UNKNOWN_CLIENT_KEY {
		return nil
	}
	if clientAgent != "" && len(clientAgent) < constants.MIN_CLIENT_AGENT_LENGTH {
		return &entities.SecurityEvent{
			Kind:      "short_user_agent",
			ClientKey: clientKey,
			Timestamp: time.Now(),
			Details:   fmt.Sprintf("user agent %q is shorter than %d characters", clientAgent, constants.MIN_CLIENT_AGENT_LENGTH),
		}
	}
	loweredAgent := strings.ToLower(clientAgent)
	for _, pattern := range constants.SUSPICIOUS_AGENT_PATTERNS {
		if strings.Contains(loweredAgent, pattern) {
			return &entities.SecurityEvent{
				Kind:      "denied_user_agent",
				ClientKey: clientKey,
				Timestamp: time.Now(),
				Details:   fmt.Sprintf("user agent matched deny-list pattern %q", pattern),
			}
		}
	}
	if clientAgent != "" && useragent.ParseUserAgent(clientAgent).Bot {
		return &entities.SecurityEvent{
			Kind:      "bot_user_agent",
			ClientKey: clientKey,
			Timestamp: time.Now(),
			Details:   "user agent parsed as a known bot",
		}
	}
	return nil
}

// EnrollmentGuardMiddleware runs the abuse guard in front of the
// enrollment controller: suspicious-activity check first, then the
// fixed-window rate limit. Details of a rejection go to the security
// log, the caller only sees a generic denial.
func EnrollmentGuardMiddleware(ctx *interfaces.ApplicationContext[any]) (*interfaces.ApplicationContext[any], bool) {
	clientKey := ctx.ClientIP
	if clientKey == "" {
		clientKey = constants.UNKNOWN_CLIENT_KEY
	}

	if event := ClassifySuspiciousActivity(clientKey, ctx.UserAgent); event != nil {
		logger.Warning("suspicious enrollment attempt blocked", logger.LoggerOptions{
			Key:  "kind",
			Data: event.Kind,
		}, logger.LoggerOptions{
			Key:  "clientKey",
			Data: event.ClientKey,
		}, logger.LoggerOptions{
			Key:  "details",
			Data: event.Details,
		})
		apperrors.SecurityError(ctx.Ctx)
		return nil, false
	}

	result := ratelimit.WindowStoreInstance.Hit(clientKey, constants.ENROLLMENT_MAX_REQUESTS, constants.ENROLLMENT_WINDOW)
	if !result.Allowed {
		logger.Warning("enrollment rate limit exceeded", logger.LoggerOptions{
			Key:  "clientKey",
			Data: clientKey,
		}, logger.LoggerOptions{
			Key:  "resetTime",
			Data: result.ResetTime,
		})
		apperrors.RateLimitError(ctx.Ctx, result.ResetTime)
		return nil, false
	}

	ctx.SetContextData("ClientKey", clientKey)
	return ctx, true
}
