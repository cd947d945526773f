package repository

import (
	"context"

	"github.com/tieubaoca/studybuddy-be/types"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// ConversationRepo stores chat turns. The log is append-only: there is no
// update or delete.
type ConversationRepo interface {
	CreateTurn(ctx context.Context, turn *types.ConversationTurn) error
	ListTurnsByUser(ctx context.Context, userID string) ([]*types.ConversationTurn, error)
}

type conversationRepo struct {
	collection *mongo.Collection
}

func NewConversationRepo(collection *mongo.Collection) ConversationRepo {
	return &conversationRepo{
		collection: collection,
	}
}

func (r *conversationRepo) CreateTurn(ctx context.Context, turn *types.ConversationTurn) error {
	_, err := r.collection.InsertOne(ctx, turn)
	return err
}

func (r *conversationRepo) ListTurnsByUser(ctx context.Context, userID string) ([]*types.ConversationTurn, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var turns []*types.ConversationTurn
	for cursor.Next(ctx) {
		var turn types.ConversationTurn
		if err := cursor.Decode(&turn); err != nil {
			return nil, err
		}
		turns = append(turns, &turn)
	}
	return turns, cursor.Err()
}
