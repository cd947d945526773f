package repository

import (
	"context"
	"errors"

	"github.com/tieubaoca/studybuddy-be/apperr"
	"github.com/tieubaoca/studybuddy-be/types"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type QuizRepo interface {
	CreateQuiz(ctx context.Context, quiz *types.Quiz) error
	GetQuiz(ctx context.Context, id string) (*types.Quiz, error)
}

type quizRepo struct {
	collection *mongo.Collection
}

func NewQuizRepo(collection *mongo.Collection) QuizRepo {
	return &quizRepo{
		collection: collection,
	}
}

func (r *quizRepo) CreateQuiz(ctx context.Context, quiz *types.Quiz) error {
	_, err := r.collection.InsertOne(ctx, quiz)
	return err
}

func (r *quizRepo) GetQuiz(ctx context.Context, id string) (*types.Quiz, error) {
	var quiz types.Quiz
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&quiz)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}
