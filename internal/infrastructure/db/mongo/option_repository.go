package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/atelierhub/design-collab/internal/core/domain"
)

const optionsCollection = "options"

type OptionRepository struct {
	coll *mongo.Collection
}

func NewOptionRepository(db *mongo.Database) *OptionRepository {
	return &OptionRepository{coll: db.Collection(optionsCollection)}
}

type mongoOption struct {
	ID   primitive.ObjectID `bson:"_id,omitempty"`
	Name string             `bson:"name"`
	Type string             `bson:"type"`
}

func (r *OptionRepository) FindAll(ctx context.Context) ([]*domain.Option, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list options: %w", err)
	}
	defer cur.Close(ctx)

	options := make([]*domain.Option, 0)
	for cur.Next(ctx) {
		var mo mongoOption
		if err := cur.Decode(&mo); err != nil {
			return nil, fmt.Errorf("decode option: %w", err)
		}
		options = append(options, mo.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list options: %w", err)
	}
	return options, nil
}

// ReplaceAll deletes every option then inserts the new set. The two steps are
// not one transaction: a fault between them leaves the catalogue partially
// populated until the next successful replace. Multi-document transactions
// would need a replica set, which standalone deployments don't have.
func (r *OptionRepository) ReplaceAll(ctx context.Context, opts []*domain.Option) ([]*domain.Option, error) {
	if _, err := r.coll.DeleteMany(ctx, bson.M{}); err != nil {
		return nil, fmt.Errorf("clear options: %w", err)
	}

	if len(opts) == 0 {
		return []*domain.Option{}, nil
	}

	docs := make([]interface{}, 0, len(opts))
	for _, o := range opts {
		docs = append(docs, mongoOption{Name: o.Name, Type: o.Type})
	}

	res, err := r.coll.InsertMany(ctx, docs)
	if err != nil {
		return nil, fmt.Errorf("insert options: %w", err)
	}
	if len(res.InsertedIDs) != len(opts) {
		return nil, errors.New("insert options: partial insert")
	}

	saved := make([]*domain.Option, 0, len(opts))
	for i, o := range opts {
		oid, _ := res.InsertedIDs[i].(primitive.ObjectID)
		saved = append(saved, &domain.Option{ID: oid.Hex(), Name: o.Name, Type: o.Type})
	}
	return saved, nil
}

func (mo mongoOption) toDomain() *domain.Option {
	return &domain.Option{ID: mo.ID.Hex(), Name: mo.Name, Type: mo.Type}
}
