package startup

import (
	"facegate.io/infrastructure/biometric"
	"facegate.io/infrastructure/database"
	"facegate.io/infrastructure/database/connection/datastore"
	"facegate.io/infrastructure/logger"
	messagequeue "facegate.io/infrastructure/message_queue"
	"facegate.io/infrastructure/ratelimit"
)

// Used to start services such as loggers, databases, queues, etc.
func StartServices() {
	logger.InitializeLogger()
	database.SetUpDatabase()
	biometric.InitialiseMatcher()
	ratelimit.InitialiseWindowStore()
	messagequeue.StartQueue()
}

// Used to clean up after services that have been shutdown.
func CleanUpServices() {
	datastore.CleanUp()
}
