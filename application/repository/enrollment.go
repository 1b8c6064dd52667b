package repository

import (
	"sync"

	"facegate.io/entities"
	"facegate.io/infrastructure/database/connection/datastore"
	"facegate.io/infrastructure/database/repository/mongo"
)

var enrollmentOnce = sync.Once{}

var enrollmentRepository mongo.MongoRepository[entities.Enrollment]

func EnrollmentRepo() *mongo.MongoRepository[entities.Enrollment] {
	enrollmentOnce.Do(func() {
		enrollmentRepository = mongo.MongoRepository[entities.Enrollment]{Model: datastore.EnrollmentModel}
	})
	return &enrollmentRepository
}
