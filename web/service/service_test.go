package service

import (
	"path/filepath"
	"testing"

	"list-ui/database"
	"list-ui/logger"

	"github.com/op/go-logging"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) {
	t.Setenv("LISTUI_LOG_FOLDER", t.TempDir())
	logger.InitLogger(logging.DEBUG)

	dbPath := filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, database.InitDB(dbPath))
	t.Cleanup(func() {
		database.CloseDB()
	})
}
