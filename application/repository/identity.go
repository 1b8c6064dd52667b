package repository

import (
	"sync"

	"facegate.io/entities"
	"facegate.io/infrastructure/database/connection/datastore"
	"facegate.io/infrastructure/database/repository/mongo"
)

var identityOnce = sync.Once{}

var identityRepository mongo.MongoRepository[entities.Identity]

func IdentityRepo() *mongo.MongoRepository[entities.Identity] {
	identityOnce.Do(func() {
		identityRepository = mongo.MongoRepository[entities.Identity]{Model: datastore.IdentityModel}
	})
	return &identityRepository
}
