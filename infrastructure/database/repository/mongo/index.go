package mongo

import (
	"context"
	"errors"
	"time"

	"facegate.io/infrastructure/logger"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (repo *MongoRepository[T]) requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 15*time.Second)
}

// CreateOne persists the payload after running its ParseModel hook and
// returns the inserted id.
func (repo *MongoRepository[T]) CreateOne(payload T) (*string, error) {
	ctx, cancel := repo.requestContext()
	defer cancel()

	parsed := payload.ParseModel()
	result, err := repo.Model.InsertOne(ctx, parsed)
	if err != nil {
		logger.Error("mongo error occured while running CreateOne", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		}, logger.LoggerOptions{
			Key:  "collection",
			Data: repo.Model.Name(),
		})
		return nil, err
	}
	id, ok := result.InsertedID.(string)
	if !ok {
		return nil, errors.New("inserted id is not a string")
	}
	return &id, nil
}

func (repo *MongoRepository[T]) FindOneByFilter(filter map[string]interface{}, opts ...FindOptions) (*T, error) {
	ctx, cancel := repo.requestContext()
	defer cancel()

	findOpts := options.FindOne()
	if len(opts) != 0 {
		if opts[0].Projection != nil {
			findOpts.SetProjection(*opts[0].Projection)
		}
		if opts[0].Sort != nil {
			findOpts.SetSort(*opts[0].Sort)
		}
	}

	var result T
	err := repo.Model.FindOne(ctx, filter, findOpts).Decode(&result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		logger.Error("mongo error occured while running FindOneByFilter", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		}, logger.LoggerOptions{
			Key:  "collection",
			Data: repo.Model.Name(),
		})
		return nil, err
	}
	return &result, nil
}

func (repo *MongoRepository[T]) FindMany(filter map[string]interface{}, opts ...FindOptions) (*[]T, error) {
	ctx, cancel := repo.requestContext()
	defer cancel()

	findOpts := options.Find()
	if len(opts) != 0 {
		if opts[0].Projection != nil {
			findOpts.SetProjection(*opts[0].Projection)
		}
		if opts[0].Sort != nil {
			findOpts.SetSort(*opts[0].Sort)
		}
		if opts[0].Skip != nil {
			findOpts.SetSkip(*opts[0].Skip)
		}
	}

	cursor, err := repo.Model.Find(ctx, filter, findOpts)
	if err != nil {
		logger.Error("mongo error occured while running FindMany", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		}, logger.LoggerOptions{
			Key:  "collection",
			Data: repo.Model.Name(),
		})
		return nil, err
	}
	results := []T{}
	if err := cursor.All(ctx, &results); err != nil {
		logger.Error("mongo error occured while decoding FindMany results", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		}, logger.LoggerOptions{
			Key:  "collection",
			Data: repo.Model.Name(),
		})
		return nil, err
	}
	return &results, nil
}

func (repo *MongoRepository[T]) CountDocs(filter map[string]interface{}) (int64, error) {
	ctx, cancel := repo.requestContext()
	defer cancel()

	count, err := repo.Model.CountDocuments(ctx, filter)
	if err != nil {
		logger.Error("mongo error occured while running CountDocs", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		}, logger.LoggerOptions{
			Key:  "collection",
			Data: repo.Model.Name(),
		})
		return 0, err
	}
	return count, nil
}

func (repo *MongoRepository[T]) DeleteOne(filter map[string]interface{}) (int64, error) {
	ctx, cancel := repo.requestContext()
	defer cancel()

	result, err := repo.Model.DeleteOne(ctx, filter)
	if err != nil {
		logger.Error("mongo error occured while running DeleteOne", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		}, logger.LoggerOptions{
			Key:  "collection",
			Data: repo.Model.Name(),
		})
		return 0, err
	}
	return result.DeletedCount, nil
}

// IsDuplicateKeyError reports whether an insert failed on a unique index.
func IsDuplicateKeyError(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}
