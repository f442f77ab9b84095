package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Bookmarks holds the two content-id lists attached to a user. They are
// ordered sequences, not sets: add appends, remove deletes every occurrence.
type Bookmarks struct {
	MovieIDs  []string `bson:"movieIds" json:"movieIds"`
	SeriesIDs []string `bson:"tvSeriesIds" json:"tvSeriesIds"`
}

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"passwordHash" json:"-"`
	Bookmarks    Bookmarks          `bson:"bookmarks" json:"bookmarks"`
	Ctime        int64              `bson:"ctime" json:"ctime"`
	Mtime        int64              `bson:"mtime" json:"mtime"`
}
