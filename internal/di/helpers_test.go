package di_test

import (
	"time"

	articlescmd "github.com/goliatone/go-blog/internal/commands/articles"
)

func day(n int) time.Time {
	return time.Date(2024, time.March, n, 0, 0, 0, 0, time.UTC)
}

func commandsSyncMessage(path string) articlescmd.SyncIndexCommand {
	return articlescmd.SyncIndexCommand{IndexPath: path}
}
