package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"
)

// ErrDanglingTagLink is returned when a bookmark links to a tag id that has
// no row in the tags table.
var ErrDanglingTagLink = errors.New("bookmark links to a missing tag")

type Bookmark struct {
	bun.BaseModel `bun:"table:bookmarks,alias:bookmark"`

	ID   int64  `bun:",pk,autoincrement" json:"id"`
	Name string `bun:",notnull" json:"name"`
	Data string `bun:",notnull" json:"data"`
}

// BookmarkTagNames is a bookmark together with the names of its tags.
type BookmarkTagNames struct {
	BookmarkID int64
	Name       string
	Tags       []string
}

type BookmarkStore interface {
	// CreateWithTags inserts the bookmark, resolves every tag name to a tag
	// row and links them, all in one transaction.
	CreateWithTags(ctx context.Context, bookmark *Bookmark, tagNames []string) error
	// ListWithTags returns every bookmark ordered by id, with its tag names
	// ordered by tag id.
	ListWithTags(ctx context.Context) ([]BookmarkTagNames, error)
}

type bookmarkStoreImpl struct {
	db *DB
}

func NewBookmarkStore() BookmarkStore {
	return &bookmarkStoreImpl{
		db: defaultDB,
	}
}

func NewBookmarkStoreWithDB(db *DB) BookmarkStore {
	return &bookmarkStoreImpl{
		db: db,
	}
}

func (s *bookmarkStoreImpl) CreateWithTags(ctx context.Context, bookmark *Bookmark, tagNames []string) error {
	return s.db.Operator.Core.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		tagIDs := make([]int64, 0, len(tagNames))
		for _, name := range tagNames {
			tag, err := findOrCreateTag(ctx, tx, name)
			if err != nil {
				return fmt.Errorf("failed to resolve tag %q: %w", name, err)
			}
			tagIDs = append(tagIDs, tag.ID)
		}

		_, err := tx.NewInsert().Model(bookmark).Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to insert bookmark: %w", err)
		}

		if len(tagIDs) == 0 {
			return nil
		}
		links := make([]BookmarkTag, 0, len(tagIDs))
		for _, tagID := range tagIDs {
			links = append(links, BookmarkTag{
				BookmarkID: bookmark.ID,
				TagID:      tagID,
			})
		}
		// the same tag name may appear twice in one request
		_, err = tx.NewInsert().Model(&links).On("CONFLICT DO NOTHING").Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to link tags to bookmark %d: %w", bookmark.ID, err)
		}
		return nil
	})
}

type bookmarkTagRow struct {
	BookmarkID   int64          `bun:"bookmark_id"`
	BookmarkName string         `bun:"bookmark_name"`
	TagID        sql.NullInt64  `bun:"tag_id"`
	TagName      sql.NullString `bun:"tag_name"`
}

func (s *bookmarkStoreImpl) ListWithTags(ctx context.Context) ([]BookmarkTagNames, error) {
	var rows []bookmarkTagRow
	err := s.db.Operator.Core.NewSelect().
		Model((*Bookmark)(nil)).
		ColumnExpr("bookmark.id AS bookmark_id").
		ColumnExpr("bookmark.name AS bookmark_name").
		ColumnExpr("bt.tag_id AS tag_id").
		ColumnExpr("tag.name AS tag_name").
		Join("LEFT JOIN bookmark_tags AS bt ON bt.bookmark_id = bookmark.id").
		Join("LEFT JOIN tags AS tag ON tag.id = bt.tag_id").
		OrderExpr("bookmark.id ASC, bt.tag_id ASC").
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookmarks with tags: %w", err)
	}

	bookmarks := make([]BookmarkTagNames, 0)
	for _, row := range rows {
		if len(bookmarks) == 0 || bookmarks[len(bookmarks)-1].BookmarkID != row.BookmarkID {
			bookmarks = append(bookmarks, BookmarkTagNames{
				BookmarkID: row.BookmarkID,
				Name:       row.BookmarkName,
				Tags:       []string{},
			})
		}
		if !row.TagID.Valid {
			continue
		}
		if !row.TagName.Valid {
			return nil, fmt.Errorf("bookmark %d, tag %d: %w", row.BookmarkID, row.TagID.Int64, ErrDanglingTagLink)
		}
		last := &bookmarks[len(bookmarks)-1]
		last.Tags = append(last.Tags, row.TagName.String)
	}
	return bookmarks, nil
}
