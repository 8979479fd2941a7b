package db

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"slate-seo/pkg/domain"
)

func mockMongoStore(mt *mtest.T) *MongoStore {
	return &MongoStore{
		mongoClient: mt.Client,
		collection:  mt.Coll,
		now:         func() time.Time { return time.Date(2025, 5, 19, 8, 0, 0, 0, time.UTC) },
	}
}

func TestMongoStore(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("set published", func(mt *mtest.T) {
		store := mockMongoStore(mt)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		require.NoError(mt, store.SetPublished(context.Background(), "resume", false))

		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		assert.Equal(mt, "update", started.CommandName)
	})

	mt.Run("set published unknown slug", func(mt *mtest.T) {
		store := mockMongoStore(mt)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 0},
			bson.E{Key: "nModified", Value: 0},
		))

		err := store.SetPublished(context.Background(), "missing", true)
		assert.ErrorIs(mt, err, ErrNotFound)
	})

	mt.Run("insert duplicate slug", func(mt *mtest.T) {
		store := mockMongoStore(mt)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))

		err := store.InsertPage(context.Background(), domain.Page{Slug: "resume", Type: domain.PageTypeCreate})
		assert.ErrorIs(mt, err, ErrSlugExists)
	})

	mt.Run("existing slugs", func(mt *mtest.T) {
		store := mockMongoStore(mt)
		updated := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
				bson.D{{Key: "slug", Value: "resume"}, {Key: "updated_at", Value: updated}},
				bson.D{{Key: "slug", Value: "cover-letter"}, {Key: "updated_at", Value: updated}},
			),
		)

		existing, err := store.ExistingSlugs(context.Background())
		require.NoError(mt, err)
		require.Len(mt, existing, 2)
		assert.True(mt, existing["resume"].Equal(updated))
	})
}
