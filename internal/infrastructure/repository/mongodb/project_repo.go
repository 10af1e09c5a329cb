package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mikiasgoitom/Showcase/internal/domain/contract"
	"github.com/mikiasgoitom/Showcase/internal/domain/entity"
	"github.com/mikiasgoitom/Showcase/internal/infrastructure/database"
)

// ProjectRepository is the MongoDB implementation of contract.IProjectRepository.
type ProjectRepository struct {
	collection *mongo.Collection
	now        func() time.Time
}

func NewProjectRepository(db *mongo.Database) *ProjectRepository {
	return &ProjectRepository{collection: db.Collection(database.ProjectsCollection), now: time.Now}
}

var _ contract.IProjectRepository = (*ProjectRepository)(nil)

func (r *ProjectRepository) CreateProject(ctx context.Context, project *entity.Project) error {
	_, err := r.collection.InsertOne(ctx, project)
	return translate("create project", err)
}

func (r *ProjectRepository) GetProjectByID(ctx context.Context, id string) (*entity.Project, error) {
	var project entity.Project
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&project); err != nil {
		return nil, translate("get project", err)
	}
	return &project, nil
}

func (r *ProjectRepository) ListProjectsByStatus(ctx context.Context, statuses ...entity.ContentStatus) ([]*entity.Project, error) {
	filter := bson.M{}
	if len(statuses) > 0 {
		filter["status"] = bson.M{"$in": statuses}
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, translate("list projects", err)
	}
	defer cursor.Close(ctx)

	projects := make([]*entity.Project, 0)
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, translate("decode projects", err)
	}
	return projects, nil
}

func (r *ProjectRepository) UpdateProject(ctx context.Context, id string, patch entity.ProjectPatch) (*entity.Project, error) {
	updates := bson.M{"updated_at": r.now().UTC()}
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Category != nil {
		updates["category"] = *patch.Category
	}
	if patch.Status != nil {
		updates["status"] = *patch.Status
	}
	if patch.ImageURL != nil {
		updates["image_url"] = *patch.ImageURL
	}
	if patch.ClientName != nil {
		updates["client_name"] = *patch.ClientName
	}
	if patch.GalleryImages != nil {
		updates["gallery_images"] = patch.GalleryImages
	}

	var updated entity.Project
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": updates},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&updated)
	if err != nil {
		return nil, translate("update project", err)
	}
	return &updated, nil
}

func (r *ProjectRepository) DeleteProject(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return translate("delete project", err)
	}
	if res.DeletedCount == 0 {
		return entity.ErrNotFound
	}
	return nil
}
