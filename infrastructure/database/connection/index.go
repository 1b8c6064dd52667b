package connection

import (
	"facegate.io/infrastructure/database/connection/datastore"
)

func ConnectToDatabase() {
	datastore.ConnectMongo()
}
