package database

import (
	"context"

	"github.com/uptrace/bun"
)

type Tag struct {
	bun.BaseModel `bun:"table:tags,alias:tag"`

	ID   int64  `bun:",pk,autoincrement" json:"id"`
	Name string `bun:",notnull,unique" json:"name"`
}

// findOrCreateTag returns the tag with the given name, inserting it first if
// it does not exist yet. The unique index on tags.name makes the lookup and
// the insert a single atomic statement.
func findOrCreateTag(ctx context.Context, db bun.IDB, name string) (*Tag, error) {
	tag := &Tag{Name: name}
	_, err := db.NewInsert().
		Model(tag).
		On("CONFLICT (name) DO UPDATE").
		Set("name = EXCLUDED.name").
		Returning("id").
		Exec(ctx)
	if err != nil {
		return nil, err
	}
	return tag, nil
}
