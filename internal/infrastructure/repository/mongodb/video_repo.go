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

// VideoRepository is the MongoDB implementation of contract.IVideoRepository.
type VideoRepository struct {
	collection *mongo.Collection
	now        func() time.Time
}

func NewVideoRepository(db *mongo.Database) *VideoRepository {
	return &VideoRepository{collection: db.Collection(database.VideosCollection), now: time.Now}
}

var _ contract.IVideoRepository = (*VideoRepository)(nil)

func (r *VideoRepository) CreateVideo(ctx context.Context, video *entity.Video) error {
	_, err := r.collection.InsertOne(ctx, video)
	return translate("create video", err)
}

func (r *VideoRepository) GetVideoByID(ctx context.Context, id string) (*entity.Video, error) {
	var video entity.Video
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&video); err != nil {
		return nil, translate("get video", err)
	}
	return &video, nil
}

func (r *VideoRepository) ListVideosByStatus(ctx context.Context, statuses ...entity.ContentStatus) ([]*entity.Video, error) {
	filter := bson.M{}
	if len(statuses) > 0 {
		filter["status"] = bson.M{"$in": statuses}
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, translate("list videos", err)
	}
	defer cursor.Close(ctx)

	videos := make([]*entity.Video, 0)
	if err := cursor.All(ctx, &videos); err != nil {
		return nil, translate("decode videos", err)
	}
	return videos, nil
}

func (r *VideoRepository) UpdateVideo(ctx context.Context, id string, patch entity.VideoPatch) (*entity.Video, error) {
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
	update := bson.M{}
	if patch.SourceURL != nil {
		updates["source_url"] = *patch.SourceURL
		if patch.Metadata != nil {
			for k, v := range metadataFields(patch.Metadata) {
				updates[k] = v
			}
		} else {
			// The cached fields described the old link.
			update["$unset"] = bson.M{"thumbnail": "", "duration": "", "views": "", "published_at": "", "channel_title": ""}
		}
	}
	update["$set"] = updates

	var updated entity.Video
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&updated)
	if err != nil {
		return nil, translate("update video", err)
	}
	return &updated, nil
}

// UpdateVideoMetadata overwrites only the cached metadata fields.
func (r *VideoRepository) UpdateVideoMetadata(ctx context.Context, id string, meta *entity.VideoMetadata) error {
	if meta == nil {
		return nil
	}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": metadataFields(meta)})
	if err != nil {
		return translate("update video metadata", err)
	}
	if res.MatchedCount == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (r *VideoRepository) DeleteVideo(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return translate("delete video", err)
	}
	if res.DeletedCount == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func metadataFields(m *entity.VideoMetadata) bson.M {
	fields := bson.M{
		"thumbnail":     m.Thumbnail,
		"duration":      m.Duration,
		"views":         m.ViewCount,
		"channel_title": m.ChannelTitle,
	}
	if !m.PublishedAt.IsZero() {
		fields["published_at"] = m.PublishedAt.UTC()
	}
	return fields
}
