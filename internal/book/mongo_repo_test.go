package book

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	mongoTC "github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// setupMongoRepo starts a MongoDB container and returns a repository on a fresh database.
func setupMongoRepo(t *testing.T) (*MongoRepo, *mongo.Database) {
	if testing.Short() {
		t.Skip("Skipping MongoDB container test in short mode")
	}
	ctx := context.Background()

	container, err := mongoTC.Run(ctx, "mongo:7")
	if err != nil {
		t.Skipf("Skipping MongoDB container test: %v", err)
	}
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	db := client.Database("readinglog_test")
	return NewMongoRepo(db, 5*time.Second), db
}

func TestMongoRepo(t *testing.T) {
	repo, _ := setupMongoRepo(t)
	runRepositoryContract(t, repo, primitive.NilObjectID.Hex())
}

func TestMongoRepo_DocumentShape(t *testing.T) {
	repo, db := setupMongoRepo(t)
	ctx := context.Background()

	b := &Book{
		Title:           "Dune",
		AuthorFirstName: "Frank",
		AuthorLastName:  "Herbert",
		Genre:           "SciFi",
		PublishedDate:   NewDate(1965, time.January, 1),
		Pages:           412,
	}
	require.NoError(t, repo.Create(ctx, b))

	oid, err := primitive.ObjectIDFromHex(b.ID)
	require.NoError(t, err)

	var raw bson.M
	require.NoError(t, db.Collection(CollectionName).FindOne(ctx, bson.M{"_id": oid}).Decode(&raw))

	assert.Equal(t, "Dune", raw["title"])
	assert.Equal(t, "Frank", raw["authorFirstName"])
	assert.Equal(t, false, raw["readStatus"])
	assert.IsType(t, primitive.DateTime(0), raw["publishedDate"])
}

func TestUpdateSet(t *testing.T) {
	title := "Dune"
	read := true
	set := updateSet(UpdateInput{Title: &title, ReadStatus: &read})

	assert.Equal(t, bson.D{
		{Key: "title", Value: "Dune"},
		{Key: "readStatus", Value: true},
	}, set)
	assert.Empty(t, updateSet(UpdateInput{}))
}
