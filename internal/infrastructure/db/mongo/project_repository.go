package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/atelierhub/design-collab/internal/core/domain"
	"github.com/atelierhub/design-collab/internal/core/ports"
)

const projectsCollection = "projects"

type ProjectRepository struct {
	coll *mongo.Collection
}

func NewProjectRepository(db *mongo.Database) *ProjectRepository {
	return &ProjectRepository{coll: db.Collection(projectsCollection)}
}

type mongoProject struct {
	ID                primitive.ObjectID `bson:"_id,omitempty"`
	Name              string             `bson:"name"`
	StartDate         time.Time          `bson:"start_date"`
	EndDate           time.Time          `bson:"end_date"`
	Budget            float64            `bson:"budget"`
	ClientUsername    string             `bson:"client_username"`
	CreatedBy         string             `bson:"created_by"`
	AssociatedClients []string           `bson:"associated_clients"`
	CreatedAt         time.Time          `bson:"created_at"`
	UpdatedAt         time.Time          `bson:"updated_at"`
}

func (r *ProjectRepository) Insert(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	doc := mongoProject{
		Name:              p.Name,
		StartDate:         p.StartDate,
		EndDate:           p.EndDate,
		Budget:            p.Budget,
		ClientUsername:    p.ClientUsername,
		CreatedBy:         p.CreatedBy,
		AssociatedClients: p.AssociatedClients,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert project: %w", err)
	}

	oid, _ := res.InsertedID.(primitive.ObjectID)
	doc.ID = oid
	return doc.toDomain(), nil
}

func (r *ProjectRepository) FindOne(ctx context.Context, id string, scope ports.ProjectScope) (*domain.Project, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrProjectNotFound
	}

	filter := scopeFilter(scope)
	filter["_id"] = oid

	var mp mongoProject
	if err := r.coll.FindOne(ctx, filter).Decode(&mp); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("find project: %w", err)
	}
	return mp.toDomain(), nil
}

func (r *ProjectRepository) List(ctx context.Context, scope ports.ProjectScope) ([]*domain.Project, error) {
	cur, err := r.coll.Find(ctx, scopeFilter(scope))
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer cur.Close(ctx)

	projects := make([]*domain.Project, 0)
	for cur.Next(ctx) {
		var mp mongoProject
		if err := cur.Decode(&mp); err != nil {
			return nil, fmt.Errorf("decode project: %w", err)
		}
		projects = append(projects, mp.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

// Update replaces all mutable fields of the project in a single
// FindOneAndUpdate. The created_by filter enforces ownership: another
// designer's project is indistinguishable from a missing one.
func (r *ProjectRepository) Update(ctx context.Context, id, createdBy string, upd ports.ProjectUpdate) (*domain.Project, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrProjectNotFound
	}

	update := bson.M{"$set": bson.M{
		"name":            upd.Name,
		"start_date":      upd.StartDate,
		"end_date":        upd.EndDate,
		"budget":          upd.Budget,
		"client_username": upd.ClientUsername,
		"updated_at":      time.Now().UTC(),
	}}

	var mp mongoProject
	err = r.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid, "created_by": createdBy},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&mp)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("update project: %w", err)
	}
	return mp.toDomain(), nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id, createdBy string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrProjectNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid, "created_by": createdBy})
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}

// EnsureIndexes creates the indexes backing both read scopes.
func (r *ProjectRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_by", Value: 1}}},
		{Keys: bson.D{{Key: "associated_clients", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

// scopeFilter translates a ProjectScope into a bson filter. A client id
// matches via array membership on associated_clients.
func scopeFilter(scope ports.ProjectScope) bson.M {
	filter := bson.M{}
	if scope.CreatedBy != "" {
		filter["created_by"] = scope.CreatedBy
	}
	if scope.ClientID != "" {
		filter["associated_clients"] = scope.ClientID
	}
	return filter
}

func (mp mongoProject) toDomain() *domain.Project {
	return &domain.Project{
		ID:                mp.ID.Hex(),
		Name:              mp.Name,
		StartDate:         mp.StartDate,
		EndDate:           mp.EndDate,
		Budget:            mp.Budget,
		ClientUsername:    mp.ClientUsername,
		CreatedBy:         mp.CreatedBy,
		AssociatedClients: mp.AssociatedClients,
		CreatedAt:         mp.CreatedAt,
		UpdatedAt:         mp.UpdatedAt,
	}
}
