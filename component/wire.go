//go:build wireinject
// +build wireinject

package component

import (
	"context"

	"github.com/google/wire"
	"github.com/stretchr/testify/mock"
)

type testBookmarkWithMocks struct {
	*bookmarkComponentImpl
	mocks *Mocks
}

func initializeTestBookmarkComponent(ctx context.Context, t interface {
	Cleanup(func())
	mock.TestingT
}) *testBookmarkWithMocks {
	wire.Build(
		MockSuperSet, BookmarkComponentSet,
		wire.Struct(new(testBookmarkWithMocks), "*"),
	)
	return &testBookmarkWithMocks{}
}
