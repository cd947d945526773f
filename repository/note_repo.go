package repository

import (
	"context"
	"errors"

	"github.com/tieubaoca/studybuddy-be/apperr"
	"github.com/tieubaoca/studybuddy-be/types"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type NoteRepo interface {
	CreateNote(ctx context.Context, note *types.Note) error
	GetNote(ctx context.Context, id string) (*types.Note, error)
	ListNotesByUser(ctx context.Context, userID string) ([]*types.Note, error)
	DeleteNote(ctx context.Context, id string) error
}

type noteRepo struct {
	collection *mongo.Collection
}

func NewNoteRepo(collection *mongo.Collection) NoteRepo {
	return &noteRepo{
		collection: collection,
	}
}

func (r *noteRepo) CreateNote(ctx context.Context, note *types.Note) error {
	_, err := r.collection.InsertOne(ctx, note)
	return err
}

func (r *noteRepo) GetNote(ctx context.Context, id string) (*types.Note, error) {
	var note types.Note
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&note)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &note, nil
}

func (r *noteRepo) ListNotesByUser(ctx context.Context, userID string) ([]*types.Note, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var notes []*types.Note
	for cursor.Next(ctx) {
		var note types.Note
		if err := cursor.Decode(&note); err != nil {
			return nil, err
		}
		notes = append(notes, &note)
	}
	return notes, cursor.Err()
}

func (r *noteRepo) DeleteNote(ctx context.Context, id string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
