package mongodb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/mikiasgoitom/Showcase/internal/domain/entity"
)

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newMockUserRepo(mt *mtest.T) *MongoUserRepository {
	return &MongoUserRepository{collection: mt.Coll, now: func() time.Time { return fixedNow }}
}

func userDoc(id string, role entity.UserRole) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "username", Value: "ana"},
		{Key: "email", Value: "ana@example.com"},
		{Key: "role", Value: string(role)},
		{Key: "status", Value: string(entity.UserStatusActive)},
	}
}

// foundResponse answers a findAndModify with the matched document.
func foundResponse(doc bson.D) bson.D {
	return mtest.CreateSuccessResponse(bson.E{Key: "value", Value: doc})
}

// noMatchResponse answers a findAndModify that matched nothing.
func noMatchResponse() bson.D {
	return mtest.CreateSuccessResponse()
}

func findResponse(mt *mtest.T, docs ...bson.D) bson.D {
	ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
	return mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, docs...)
}

func TestConsumeApprovalToken(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	approvedAt := fixedNow.Add(-time.Minute)

	mt.Run("promotes the pending holder and clears the token", func(mt *mtest.T) {
		repo := newMockUserRepo(mt)
		mt.AddMockResponses(foundResponse(userDoc("u1", entity.UserRoleUser)))

		user, err := repo.ConsumeApprovalToken(context.Background(), "tok", approvedAt)
		require.NoError(mt, err)
		assert.Equal(mt, "u1", user.ID)
		assert.Equal(mt, entity.UserRoleUser, user.Role)

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		assert.Equal(mt, "findAndModify", evt.CommandName)
		assert.True(mt, evt.Command.Lookup("new").Boolean())

		var query bson.M
		require.NoError(mt, evt.Command.Lookup("query").Unmarshal(&query))
		assert.Equal(mt, bson.M{"approval_token": "tok", "role": "pending"}, query)

		var update bson.M
		require.NoError(mt, evt.Command.Lookup("update").Unmarshal(&update))
		assert.Equal(mt, bson.M{
			"role":        "user",
			"status":      "active",
			"approved_at": primitive.NewDateTimeFromTime(approvedAt),
			"updated_at":  primitive.NewDateTimeFromTime(fixedNow),
		}, update["$set"])
		assert.Equal(mt, bson.M{"approval_token": ""}, update["$unset"])
	})

	mt.Run("second use of the same token finds nothing", func(mt *mtest.T) {
		repo := newMockUserRepo(mt)
		mt.AddMockResponses(
			foundResponse(userDoc("u1", entity.UserRoleUser)),
			noMatchResponse(),
		)

		_, err := repo.ConsumeApprovalToken(context.Background(), "tok", approvedAt)
		require.NoError(mt, err)

		_, err = repo.ConsumeApprovalToken(context.Background(), "tok", approvedAt)
		assert.ErrorIs(mt, err, entity.ErrNotFound)
	})
}

func TestDeletePendingByToken(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("removes only pending holders", func(mt *mtest.T) {
		repo := newMockUserRepo(mt)
		mt.AddMockResponses(foundResponse(userDoc("u1", entity.UserRolePending)), noMatchResponse())

		user, err := repo.DeletePendingByToken(context.Background(), "tok")
		require.NoError(mt, err)
		assert.Equal(mt, entity.UserRolePending, user.Role)

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		assert.Equal(mt, "findAndModify", evt.CommandName)
		assert.True(mt, evt.Command.Lookup("remove").Boolean())
		var query bson.M
		require.NoError(mt, evt.Command.Lookup("query").Unmarshal(&query))
		assert.Equal(mt, bson.M{"approval_token": "tok", "role": "pending"}, query)

		_, err = repo.DeletePendingByToken(context.Background(), "tok")
		assert.ErrorIs(mt, err, entity.ErrNotFound)
	})
}

func TestUpdateUser(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	admin := entity.UserRoleAdmin
	guarded := entity.UserPatch{Role: &admin, RequireRoleIn: entity.ManagedRoles()}

	mt.Run("guard and patch are sent in one write", func(mt *mtest.T) {
		repo := newMockUserRepo(mt)
		mt.AddMockResponses(foundResponse(userDoc("u1", entity.UserRoleAdmin)))

		user, err := repo.UpdateUser(context.Background(), "u1", guarded)
		require.NoError(mt, err)
		assert.Equal(mt, entity.UserRoleAdmin, user.Role)

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		var query bson.M
		require.NoError(mt, evt.Command.Lookup("query").Unmarshal(&query))
		assert.Equal(mt, bson.M{"_id": "u1", "role": bson.M{"$in": bson.A{"user", "admin"}}}, query)

		var update bson.M
		require.NoError(mt, evt.Command.Lookup("update").Unmarshal(&update))
		assert.Equal(mt, bson.M{"$set": bson.M{
			"role":       "admin",
			"updated_at": primitive.NewDateTimeFromTime(fixedNow),
		}}, update)
	})

	cases := []struct {
		name    string
		lookup  func(mt *mtest.T) bson.D
		wantErr error
	}{
		{
			name:    "guard rejects an existing account",
			lookup:  func(mt *mtest.T) bson.D { return findResponse(mt, userDoc("u1", entity.UserRoleSuperadmin)) },
			wantErr: entity.ErrForbidden,
		},
		{
			name:    "missing account",
			lookup:  func(mt *mtest.T) bson.D { return findResponse(mt) },
			wantErr: entity.ErrNotFound,
		},
	}
	for _, tc := range cases {
		mt.Run(tc.name, func(mt *mtest.T) {
			repo := newMockUserRepo(mt)
			mt.AddMockResponses(noMatchResponse(), tc.lookup(mt))

			_, err := repo.UpdateUser(context.Background(), "u1", guarded)
			assert.ErrorIs(mt, err, tc.wantErr)
		})
	}

	mt.Run("unguarded miss skips the lookup", func(mt *mtest.T) {
		repo := newMockUserRepo(mt)
		mt.AddMockResponses(noMatchResponse())

		_, err := repo.UpdateUser(context.Background(), "u1", entity.UserPatch{Role: &admin})
		assert.ErrorIs(mt, err, entity.ErrNotFound)
		assert.Len(mt, mt.GetAllStartedEvents(), 1)
	})
}

func TestDeleteUser(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("deletes and excludes superadmins in the filter", func(mt *mtest.T) {
		repo := newMockUserRepo(mt)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: int32(1)}))

		require.NoError(mt, repo.DeleteUser(context.Background(), "u1"))

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		assert.Equal(mt, "delete", evt.CommandName)
		var sent struct {
			Deletes []struct {
				Q bson.M `bson:"q"`
			} `bson:"deletes"`
		}
		require.NoError(mt, bson.Unmarshal(evt.Command, &sent))
		require.Len(mt, sent.Deletes, 1)
		assert.Equal(mt, bson.M{"_id": "u1", "role": bson.M{"$ne": "superadmin"}}, sent.Deletes[0].Q)
	})

	cases := []struct {
		name    string
		lookup  func(mt *mtest.T) bson.D
		wantErr error
	}{
		{
			name:    "superadmin survives",
			lookup:  func(mt *mtest.T) bson.D { return findResponse(mt, userDoc("root", entity.UserRoleSuperadmin)) },
			wantErr: entity.ErrForbidden,
		},
		{
			name:    "missing account",
			lookup:  func(mt *mtest.T) bson.D { return findResponse(mt) },
			wantErr: entity.ErrNotFound,
		},
	}
	for _, tc := range cases {
		mt.Run(tc.name, func(mt *mtest.T) {
			repo := newMockUserRepo(mt)
			mt.AddMockResponses(
				mtest.CreateSuccessResponse(bson.E{Key: "n", Value: int32(0)}),
				tc.lookup(mt),
			)

			assert.ErrorIs(mt, repo.DeleteUser(context.Background(), "root"), tc.wantErr)
		})
	}
}
