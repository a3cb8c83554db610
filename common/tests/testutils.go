package tests

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"opencsg.com/bookmark-server/builder/store/database"
)

// Init a test db, must call `defer db.Close()` in the test.
//
// Every call gets its own in-memory sqlite database, so tests never see each
// other's rows. The pool is limited to one connection to keep the database
// alive for the lifetime of the returned DB.
func InitTestDB() *database.DB {
	ctx := context.TODO()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	err := database.InitDB(ctx, database.DBConfig{
		Dialect:      database.DialectSQLite,
		DSN:          dsn,
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	})
	if err != nil {
		panic(err)
	}
	return database.GetDB()
}
