package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"docqa/internal/model"
	"docqa/internal/repository"
)

type documentRecord struct {
	ID          string    `bson:"_id"`
	Seq         int64     `bson:"seq"`
	Filename    string    `bson:"filename"`
	Encoding    string    `bson:"encoding"`
	ContentType string    `bson:"content_type"`
	Size        int64     `bson:"size"`
	Content     string    `bson:"content"`
	StoragePath string    `bson:"storage_path"`
	CreatedAt   time.Time `bson:"created_at"`
}

func (r documentRecord) toModel() *model.Document {
	return &model.Document{
		ID:          r.ID,
		Filename:    r.Filename,
		Encoding:    r.Encoding,
		ContentType: r.ContentType,
		Size:        r.Size,
		Content:     r.Content,
		StoragePath: r.StoragePath,
		CreatedAt:   r.CreatedAt,
	}
}

// DocumentMongo is a MongoDB implementation of repository.DocumentRepository.
type DocumentMongo struct {
	client *mongo.Client
	coll   *mongo.Collection
	seq    sequence
}

// NewDocumentMongo creates a repository over the documents collection of db.
func NewDocumentMongo(db *mongo.Database) *DocumentMongo {
	return &DocumentMongo{
		client: db.Client(),
		coll:   db.Collection(documentsCollection),
		seq:    sequence{counters: db.Collection(countersCollection), name: documentsCollection},
	}
}

var _ repository.DocumentRepository = (*DocumentMongo)(nil)

// Create inserts a new document and returns it.
func (r *DocumentMongo) Create(ctx context.Context, doc *model.Document) (*model.Document, error) {
	seq, err := r.seq.next(ctx)
	if err != nil {
		return nil, err
	}
	rec := documentRecord{
		ID:          doc.ID,
		Seq:         seq,
		Filename:    doc.Filename,
		Encoding:    doc.Encoding,
		ContentType: doc.ContentType,
		Size:        doc.Size,
		Content:     doc.Content,
		StoragePath: doc.StoragePath,
		// BSON dates carry millisecond precision.
		CreatedAt: doc.CreatedAt.Truncate(time.Millisecond),
	}
	if _, err := r.coll.InsertOne(ctx, rec); err != nil {
		return nil, err
	}
	return rec.toModel(), nil
}

// FindByID fetches a single document by its ID.
func (r *DocumentMongo) FindByID(ctx context.Context, id string) (*model.Document, error) {
	return r.findOne(ctx, bson.M{"_id": id}, options.FindOne())
}

// FindLatest fetches the newest document; seq breaks created_at ties.
func (r *DocumentMongo) FindLatest(ctx context.Context) (*model.Document, error) {
	return r.findOne(ctx, bson.M{}, options.FindOne().SetSort(bson.D{
		{Key: "created_at", Value: -1},
		{Key: "seq", Value: -1},
	}))
}

func (r *DocumentMongo) findOne(ctx context.Context, filter bson.M, opts *options.FindOneOptionsBuilder) (*model.Document, error) {
	var rec documentRecord
	if err := r.coll.FindOne(ctx, filter, opts).Decode(&rec); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return rec.toModel(), nil
}

// List returns a page of documents, newest first, and the total count.
func (r *DocumentMongo) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Document], error) {
	total, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "seq", Value: -1}}).
		SetSkip(int64(pq.Offset)).
		SetLimit(int64(pq.Limit)))
	if err != nil {
		return nil, err
	}
	var recs []documentRecord
	if err := cur.All(ctx, &recs); err != nil {
		return nil, err
	}

	items := make([]model.Document, 0, len(recs))
	for _, rec := range recs {
		items = append(items, *rec.toModel())
	}
	return &repository.PageResult[model.Document]{Items: items, Total: int(total)}, nil
}

// Ping checks the primary is reachable.
func (r *DocumentMongo) Ping(ctx context.Context) error {
	return r.client.Ping(ctx, readpref.Primary())
}
