package component

import (
	"context"
	"fmt"
	"log/slog"

	bldprometheus "opencsg.com/bookmark-server/builder/prometheus"
	"opencsg.com/bookmark-server/builder/store/database"
	"opencsg.com/bookmark-server/common/config"
	"opencsg.com/bookmark-server/common/types"
)

type BookmarkComponent interface {
	Create(ctx context.Context, req *types.CreateBookmarkReq) error
	ListNameTags(ctx context.Context) ([]types.BookmarkNameTags, error)
}

type bookmarkComponentImpl struct {
	bookmarkStore database.BookmarkStore
}

func NewBookmarkComponent(config *config.Config) (BookmarkComponent, error) {
	return &bookmarkComponentImpl{
		bookmarkStore: database.NewBookmarkStore(),
	}, nil
}

func (c *bookmarkComponentImpl) Create(ctx context.Context, req *types.CreateBookmarkReq) error {
	if req == nil || req.Name == nil || req.Data == nil || req.Tag == nil {
		return ErrBadRequest
	}
	tagNames := make([]string, 0, len(req.Tag))
	for _, tag := range req.Tag {
		if tag == nil {
			return fmt.Errorf("null tag: %w", ErrBadRequest)
		}
		tagNames = append(tagNames, *tag)
	}

	bookmark := &database.Bookmark{
		Name: *req.Name,
		Data: *req.Data,
	}
	err := c.bookmarkStore.CreateWithTags(ctx, bookmark, tagNames)
	if err != nil {
		return fmt.Errorf("failed to create bookmark %q: %w", bookmark.Name, err)
	}

	if bldprometheus.BookmarksCreatedTotal != nil {
		bldprometheus.BookmarksCreatedTotal.Inc()
	}
	slog.DebugContext(ctx, "bookmark created", slog.Int64("id", bookmark.ID),
		slog.String("name", bookmark.Name), slog.Int("tags", len(tagNames)))
	return nil
}

func (c *bookmarkComponentImpl) ListNameTags(ctx context.Context) ([]types.BookmarkNameTags, error) {
	bookmarks, err := c.bookmarkStore.ListWithTags(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookmarks: %w", err)
	}

	resp := make([]types.BookmarkNameTags, 0, len(bookmarks))
	for _, b := range bookmarks {
		tags := b.Tags
		if tags == nil {
			tags = []string{}
		}
		resp = append(resp, types.BookmarkNameTags{
			Name: b.Name,
			Tags: tags,
		})
	}
	return resp, nil
}
