package biometric

import (
	"os"

	"facegate.io/infrastructure/logger"
)

var MatcherInstance Matcher = &LinearMatcher{}

func InitialiseMatcher() {
	switch os.Getenv("MATCHER_BACKEND") {
	case "hnsw":
		MatcherInstance = NewIndexedMatcher()
		logger.Info("using hnsw indexed matcher")
	default:
		MatcherInstance = &LinearMatcher{}
		logger.Info("using linear scan matcher")
	}
}
