package tests

import (
	"github.com/stretchr/testify/mock"
	mockdb "opencsg.com/bookmark-server/_mocks/opencsg.com/bookmark-server/builder/store/database"
	"opencsg.com/bookmark-server/builder/store/database"
)

type MockStores struct {
	Bookmark database.BookmarkStore
}

func NewMockStores(t interface {
	Cleanup(func())
	mock.TestingT
}) *MockStores {
	return &MockStores{
		Bookmark: mockdb.NewMockBookmarkStore(t),
	}
}

func (s *MockStores) BookmarkMock() *mockdb.MockBookmarkStore {
	return s.Bookmark.(*mockdb.MockBookmarkStore)
}
