package component

import (
	"github.com/google/wire"
	"opencsg.com/bookmark-server/common/config"
	"opencsg.com/bookmark-server/common/tests"
)

type Mocks struct {
	stores *tests.MockStores
}

var MockedStoreSet = wire.NewSet(
	tests.NewMockStores,
)

var MockSuperSet = wire.NewSet(
	MockedStoreSet, ProvideTestConfig,
	wire.Struct(new(Mocks), "*"),
)

func ProvideTestConfig() *config.Config {
	return &config.Config{}
}

func NewTestBookmarkComponent(config *config.Config, stores *tests.MockStores) *bookmarkComponentImpl {
	return &bookmarkComponentImpl{
		bookmarkStore: stores.Bookmark,
	}
}

var BookmarkComponentSet = wire.NewSet(NewTestBookmarkComponent)
