package repo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"watchmark/internal/model"
	appErr "watchmark/internal/pkg/errors"
)

type BookmarkKind string

const (
	KindMovie  BookmarkKind = "movie"
	KindSeries BookmarkKind = "tvSeries"
)

type BookmarkOp string

const (
	OpAdd    BookmarkOp = "add"
	OpRemove BookmarkOp = "remove"
)

// UserStore is the persistence contract the services program against. Every
// operation is a single atomic document read or update; there are no
// multi-document transactions.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, userID string) (*model.User, error)
	// FindByEmail returns zero or more users. Email uniqueness is assumed,
	// not enforced; callers that need one user take the first match.
	FindByEmail(ctx context.Context, email string) ([]model.User, error)
	// UpdateBookmarks applies one list mutation and returns the updated
	// document. OpAdd appends (no dedup); OpRemove deletes all occurrences.
	UpdateBookmarks(ctx context.Context, userID string, kind BookmarkKind, op BookmarkOp, contentID string) (*model.User, error)
}

type UserRepo struct {
	col *mongo.Collection
}

func NewUserRepo(db *mongo.Database) *UserRepo {
	return &UserRepo{col: db.Collection("users")}
}

func (r *UserRepo) Create(ctx context.Context, user *model.User) error {
	res, err := r.col.InsertOne(ctx, user)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return nil
}

func (r *UserRepo) GetByID(ctx context.Context, userID string) (*model.User, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, appErr.ErrNotFound
	}
	var user model.User
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, appErr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepo) FindByEmail(ctx context.Context, email string) ([]model.User, error) {
	cursor, err := r.col.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	defer func() { _ = cursor.Close(ctx) }()
	var users []model.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepo) UpdateBookmarks(ctx context.Context, userID string, kind BookmarkKind, op BookmarkOp, contentID string) (*model.User, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, appErr.ErrNotFound
	}

	field := "bookmarks.movieIds"
	if kind == KindSeries {
		field = "bookmarks.tvSeriesIds"
	}
	var update bson.M
	switch op {
	case OpAdd:
		update = bson.M{"$push": bson.M{field: contentID}}
	case OpRemove:
		// $pull removes every occurrence, not just the first.
		update = bson.M{"$pull": bson.M{field: contentID}}
	default:
		return nil, appErr.ErrInvalid
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated model.User
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, appErr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
