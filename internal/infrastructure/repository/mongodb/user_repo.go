package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mikiasgoitom/Showcase/internal/domain/contract"
	"github.com/mikiasgoitom/Showcase/internal/domain/entity"
)

type MongoUserRepository struct {
	collection *mongo.Collection
	now        func() time.Time
}

func NewMongoUserRepository(collection *mongo.Collection) *MongoUserRepository {
	return &MongoUserRepository{collection: collection, now: time.Now}
}

var _ contract.IUserRepository = (*MongoUserRepository)(nil)

func (r *MongoUserRepository) CreateUser(ctx context.Context, user *entity.User) error {
	_, err := r.collection.InsertOne(ctx, user)
	return translate("create user", err)
}

func (r *MongoUserRepository) findOne(ctx context.Context, op string, filter bson.M) (*entity.User, error) {
	var user entity.User
	if err := r.collection.FindOne(ctx, filter).Decode(&user); err != nil {
		return nil, translate(op, err)
	}
	return &user, nil
}

func (r *MongoUserRepository) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	return r.findOne(ctx, "get user by id", bson.M{"_id": id})
}

func (r *MongoUserRepository) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, "get user by email", bson.M{"email": email})
}

func (r *MongoUserRepository) GetUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.findOne(ctx, "get user by username", bson.M{"username": username})
}

func (r *MongoUserRepository) GetUserByApprovalToken(ctx context.Context, token string) (*entity.User, error) {
	return r.findOne(ctx, "get user by approval token", bson.M{
		"approval_token": token,
		"role":           entity.UserRolePending,
	})
}

// ListUsersByRoles returns accounts with any of roles, oldest first.
func (r *MongoUserRepository) ListUsersByRoles(ctx context.Context, roles []entity.UserRole) ([]*entity.User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"role": bson.M{"$in": roles}}, opts)
	if err != nil {
		return nil, translate("list users", err)
	}
	defer cursor.Close(ctx)

	users := make([]*entity.User, 0)
	if err := cursor.All(ctx, &users); err != nil {
		return nil, translate("decode users", err)
	}
	return users, nil
}

// UpdateUser applies patch in a single FindOneAndUpdate. The role guard is
// part of the filter, so a concurrent promotion to a protected role cannot
// slip in between the check and the write.
func (r *MongoUserRepository) UpdateUser(ctx context.Context, id string, patch entity.UserPatch) (*entity.User, error) {
	set := bson.M{"updated_at": r.now().UTC()}
	if patch.Role != nil {
		set["role"] = *patch.Role
	}
	if patch.Status != nil {
		set["status"] = *patch.Status
	}

	filter := bson.M{"_id": id}
	if len(patch.RequireRoleIn) > 0 {
		filter["role"] = bson.M{"$in": patch.RequireRoleIn}
	}

	var updated entity.User
	err := r.collection.FindOneAndUpdate(ctx, filter, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&updated)
	if err == nil {
		return &updated, nil
	}
	err = translate("update user", err)
	if err == entity.ErrNotFound && len(patch.RequireRoleIn) > 0 {
		// Distinguish a missing account from one the guard rejected.
		if _, getErr := r.GetUserByID(ctx, id); getErr == nil {
			return nil, entity.ErrForbidden
		}
	}
	return nil, err
}

// ConsumeApprovalToken promotes the pending holder of token to user. The
// token is removed in the same write, so a second call finds nothing.
func (r *MongoUserRepository) ConsumeApprovalToken(ctx context.Context, token string, approvedAt time.Time) (*entity.User, error) {
	filter := bson.M{
		"approval_token": token,
		"role":           entity.UserRolePending,
	}
	update := bson.M{
		"$set": bson.M{
			"role":        entity.UserRoleUser,
			"status":      entity.UserStatusActive,
			"approved_at": approvedAt.UTC(),
			"updated_at":  r.now().UTC(),
		},
		"$unset": bson.M{"approval_token": ""},
	}

	var approved entity.User
	err := r.collection.FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&approved)
	if err != nil {
		return nil, translate("consume approval token", err)
	}
	return &approved, nil
}

func (r *MongoUserRepository) DeletePendingByToken(ctx context.Context, token string) (*entity.User, error) {
	var deleted entity.User
	err := r.collection.FindOneAndDelete(ctx, bson.M{
		"approval_token": token,
		"role":           entity.UserRolePending,
	}).Decode(&deleted)
	if err != nil {
		return nil, translate("delete pending user", err)
	}
	return &deleted, nil
}

func (r *MongoUserRepository) DeleteUser(ctx context.Context, id string) error {
	filter := bson.M{"_id": id, "role": bson.M{"$ne": entity.UserRoleSuperadmin}}
	res, err := r.collection.DeleteOne(ctx, filter)
	if err != nil {
		return translate("delete user", err)
	}
	if res.DeletedCount == 0 {
		if _, getErr := r.GetUserByID(ctx, id); getErr == nil {
			return entity.ErrForbidden
		}
		return entity.ErrNotFound
	}
	return nil
}
