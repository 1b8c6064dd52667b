package repository

import (
	"sync"

	"facegate.io/entities"
	"facegate.io/infrastructure/database/connection/datastore"
	"facegate.io/infrastructure/database/repository/mongo"
)

var auditRecordOnce = sync.Once{}

var auditRecordRepository mongo.MongoRepository[entities.AuditRecord]

func AuditRecordRepo() *mongo.MongoRepository[entities.AuditRecord] {
	auditRecordOnce.Do(func() {
		auditRecordRepository = mongo.MongoRepository[entities.AuditRecord]{Model: datastore.AuditRecordModel}
	})
	return &auditRecordRepository
}
