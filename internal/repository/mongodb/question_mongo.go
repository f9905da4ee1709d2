package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"docqa/internal/model"
	"docqa/internal/repository"
)

type questionRecord struct {
	ID         string    `bson:"_id"`
	Seq        int64     `bson:"seq"`
	DocumentID string    `bson:"document_id"`
	Question   string    `bson:"question"`
	CreatedAt  time.Time `bson:"created_at"`
}

func (r questionRecord) toModel() *model.Question {
	return &model.Question{
		ID:         r.ID,
		DocumentID: r.DocumentID,
		Question:   r.Question,
		CreatedAt:  r.CreatedAt,
	}
}

// QuestionMongo is a MongoDB implementation of repository.QuestionRepository.
type QuestionMongo struct {
	coll *mongo.Collection
	seq  sequence
}

// NewQuestionMongo creates a repository over the questions collection of db.
func NewQuestionMongo(db *mongo.Database) *QuestionMongo {
	return &QuestionMongo{
		coll: db.Collection(questionsCollection),
		seq:  sequence{counters: db.Collection(countersCollection), name: questionsCollection},
	}
}

var _ repository.QuestionRepository = (*QuestionMongo)(nil)

// Create appends a question with the next sequence value.
func (r *QuestionMongo) Create(ctx context.Context, q *model.Question) (*model.Question, error) {
	seq, err := r.seq.next(ctx)
	if err != nil {
		return nil, err
	}
	rec := questionRecord{
		ID:         q.ID,
		Seq:        seq,
		DocumentID: q.DocumentID,
		Question:   q.Question,
		CreatedAt:  q.CreatedAt.Truncate(time.Millisecond),
	}
	if _, err := r.coll.InsertOne(ctx, rec); err != nil {
		return nil, err
	}
	return rec.toModel(), nil
}

// FindLatestByDocument returns the question with the highest seq for documentID.
func (r *QuestionMongo) FindLatestByDocument(ctx context.Context, documentID string) (*model.Question, error) {
	var rec questionRecord
	err := r.coll.FindOne(ctx,
		bson.M{"document_id": documentID},
		options.FindOne().SetSort(bson.D{{Key: "seq", Value: -1}}),
	).Decode(&rec)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return rec.toModel(), nil
}
