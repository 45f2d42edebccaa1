package book

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// CollectionName is the collection holding book documents.
const CollectionName = "books"

type bookDocument struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Title           string             `bson:"title"`
	AuthorFirstName string             `bson:"authorFirstName"`
	AuthorLastName  string             `bson:"authorLastName"`
	Genre           string             `bson:"genre"`
	PublishedDate   time.Time          `bson:"publishedDate"`
	Pages           int                `bson:"pages"`
	ReadStatus      bool               `bson:"readStatus"`
}

func newBookDocument(b Book) bookDocument {
	return bookDocument{
		Title:           b.Title,
		AuthorFirstName: b.AuthorFirstName,
		AuthorLastName:  b.AuthorLastName,
		Genre:           b.Genre,
		PublishedDate:   b.PublishedDate.Time,
		Pages:           b.Pages,
		ReadStatus:      b.ReadStatus,
	}
}

func (d bookDocument) book() Book {
	b := Book{
		ID:              d.ID.Hex(),
		Title:           d.Title,
		AuthorFirstName: d.AuthorFirstName,
		AuthorLastName:  d.AuthorLastName,
		Genre:           d.Genre,
		Pages:           d.Pages,
		ReadStatus:      d.ReadStatus,
	}
	if !d.PublishedDate.IsZero() {
		b.PublishedDate = DateOf(d.PublishedDate)
	}
	return b
}

// updateSet translates the provided fields into a $set document.
func updateSet(in UpdateInput) bson.D {
	set := bson.D{}
	if in.Title != nil {
		set = append(set, bson.E{Key: "title", Value: *in.Title})
	}
	if in.AuthorFirstName != nil {
		set = append(set, bson.E{Key: "authorFirstName", Value: *in.AuthorFirstName})
	}
	if in.AuthorLastName != nil {
		set = append(set, bson.E{Key: "authorLastName", Value: *in.AuthorLastName})
	}
	if in.Genre != nil {
		set = append(set, bson.E{Key: "genre", Value: *in.Genre})
	}
	if in.PublishedDate != nil {
		set = append(set, bson.E{Key: "publishedDate", Value: in.PublishedDate.Time})
	}
	if in.Pages != nil {
		set = append(set, bson.E{Key: "pages", Value: *in.Pages})
	}
	if in.ReadStatus != nil {
		set = append(set, bson.E{Key: "readStatus", Value: *in.ReadStatus})
	}
	return set
}

type MongoRepo struct {
	coll    *mongo.Collection
	timeout time.Duration
}

func NewMongoRepo(db *mongo.Database, timeout time.Duration) *MongoRepo {
	return &MongoRepo{coll: db.Collection(CollectionName), timeout: timeout}
}

func (r *MongoRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q: %v", ErrInvalidID, id, err)
	}
	return oid, nil
}

func (r *MongoRepo) List(ctx context.Context) ([]Book, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	cur, err := r.coll.Find(timeoutCtx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find books: %w", err)
	}

	var docs []bookDocument
	if err := cur.All(timeoutCtx, &docs); err != nil {
		return nil, fmt.Errorf("decode books: %w", err)
	}

	out := make([]Book, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.book())
	}
	return out, nil
}

func (r *MongoRepo) Get(ctx context.Context, id string) (Book, error) {
	oid, err := objectID(id)
	if err != nil {
		return Book{}, err
	}

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	var doc bookDocument
	err = r.coll.FindOne(timeoutCtx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Book{}, ErrNotFound
		}
		return Book{}, fmt.Errorf("find book %s: %w", id, err)
	}
	return doc.book(), nil
}

func (r *MongoRepo) Create(ctx context.Context, book *Book) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	doc := newBookDocument(*book)
	doc.ID = primitive.NewObjectID()
	if _, err := r.coll.InsertOne(timeoutCtx, doc); err != nil {
		return fmt.Errorf("insert book: %w", err)
	}
	book.ID = doc.ID.Hex()
	return nil
}

func (r *MongoRepo) Update(ctx context.Context, id string, in UpdateInput) (Book, error) {
	oid, err := objectID(id)
	if err != nil {
		return Book{}, err
	}

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.D{{Key: "$set", Value: updateSet(in)}}

	var doc bookDocument
	err = r.coll.FindOneAndUpdate(timeoutCtx, bson.D{{Key: "_id", Value: oid}}, update, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Book{}, ErrNotFound
		}
		return Book{}, fmt.Errorf("update book %s: %w", id, err)
	}
	return doc.book(), nil
}

func (r *MongoRepo) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	res, err := r.coll.DeleteOne(timeoutCtx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return fmt.Errorf("delete book %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoRepo) Ping(ctx context.Context) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return r.coll.Database().Client().Ping(timeoutCtx, readpref.Primary())
}
