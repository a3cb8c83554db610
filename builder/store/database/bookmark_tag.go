package database

import "github.com/uptrace/bun"

// BookmarkTag links a bookmark to one of its tags.
type BookmarkTag struct {
	bun.BaseModel `bun:"table:bookmark_tags,alias:bt"`

	BookmarkID int64 `bun:",pk" json:"bookmark_id"`
	TagID      int64 `bun:",pk" json:"tag_id"`
}
