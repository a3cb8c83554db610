package main

import (
	"context"
	"os"

	"opencsg.com/bookmark-server/cmd/bookmark-server/cmd"
)

func main() {
	command := cmd.RootCmd
	if err := command.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
