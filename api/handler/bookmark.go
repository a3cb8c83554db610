package handler

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"opencsg.com/bookmark-server/api/httpbase"
	"opencsg.com/bookmark-server/common/config"
	"opencsg.com/bookmark-server/common/types"
	"opencsg.com/bookmark-server/component"
)

func NewBookmarkHandler(config *config.Config) (*BookmarkHandler, error) {
	bc, err := component.NewBookmarkComponent(config)
	if err != nil {
		return nil, err
	}
	return &BookmarkHandler{
		bookmark: bc,
	}, nil
}

type BookmarkHandler struct {
	bookmark component.BookmarkComponent
}

// Create godoc
// @Summary      Store a bookmark
// @Description  store a bookmark with its tags, unknown tags are created
// @Tags         Bookmark
// @Accept       json
// @Param        body body types.CreateBookmarkReq true "bookmark"
// @Success      200  "stored"
// @Failure      400  "malformed body"
// @Failure      500  "storage failure"
// @Router       /bookmarkfile [post]
func (h *BookmarkHandler) Create(ctx *gin.Context) {
	var req types.CreateBookmarkReq
	if err := bindStrictJSON(ctx, &req); err != nil {
		httpbase.BadRequest(ctx, err)
		return
	}

	err := h.bookmark.Create(ctx.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, component.ErrBadRequest) {
			httpbase.BadRequest(ctx, err)
			return
		}
		httpbase.ServerError(ctx, err)
		return
	}
	httpbase.OKEmpty(ctx)
}

// List godoc
// @Summary      List bookmarks
// @Description  list every bookmark name with its tag names
// @Tags         Bookmark
// @Produce      json
// @Success      200  {array}  types.BookmarkNameTags "bookmarks"
// @Failure      500  "storage failure"
// @Router       /bookmarkfile [get]
func (h *BookmarkHandler) List(ctx *gin.Context) {
	bookmarks, err := h.bookmark.ListNameTags(ctx.Request.Context())
	if err != nil {
		httpbase.ServerError(ctx, err)
		return
	}
	httpbase.OK(ctx, bookmarks)
}

// bindStrictJSON decodes the whole body as exactly one JSON value and runs the
// binding validator. ShouldBindJSON stops after the first value and would
// accept trailing bytes.
func bindStrictJSON(ctx *gin.Context, obj any) error {
	body, err := ctx.GetRawData()
	if err != nil {
		return fmt.Errorf("failed to read request body: %w", err)
	}
	if err := json.Unmarshal(body, obj); err != nil {
		return fmt.Errorf("failed to decode request body: %w", err)
	}
	if err := binding.Validator.ValidateStruct(obj); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}
