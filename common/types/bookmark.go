package types

// CreateBookmarkReq is the body of POST /bookmarkfile. Every key must be
// present and no value may be null; pointers tell an absent key or a null
// apart from an empty string.
type CreateBookmarkReq struct {
	Name *string   `json:"name" binding:"required" example:"docs"`
	Data *string   `json:"data" binding:"required" example:"https://example.com"`
	Tag  []*string `json:"tag" binding:"required,dive,required"`
}

type BookmarkNameTags struct {
	Name string   `json:"name" example:"docs"`
	Tags []string `json:"tags"`
}
