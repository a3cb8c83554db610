package database

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

// createTables is idempotent, every statement uses IF NOT EXISTS.
func createTables(ctx context.Context, db bun.IDB) error {
	if _, err := db.NewCreateTable().
		Model((*Bookmark)(nil)).
		IfNotExists().
		Exec(ctx); err != nil {
		return fmt.Errorf("create table bookmarks: %w", err)
	}

	if _, err := db.NewCreateTable().
		Model((*Tag)(nil)).
		IfNotExists().
		Exec(ctx); err != nil {
		return fmt.Errorf("create table tags: %w", err)
	}

	if _, err := db.NewCreateTable().
		Model((*BookmarkTag)(nil)).
		IfNotExists().
		ForeignKey(`("bookmark_id") REFERENCES "bookmarks" ("id")`).
		ForeignKey(`("tag_id") REFERENCES "tags" ("id")`).
		Exec(ctx); err != nil {
		return fmt.Errorf("create table bookmark_tags: %w", err)
	}

	return nil
}
