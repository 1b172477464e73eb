// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"github.com/dalemusser/technavigator/internal/app/system/catalog"
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds the loaded catalog and, for the mongo source, the client it
// was read from. MongoClient and MongoDatabase are nil otherwise.
type DBDeps struct {
	MongoClient   *mongo.Client
	MongoDatabase *mongo.Database
	Catalog       *catalog.Catalog
}
