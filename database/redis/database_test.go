package redis

import (
	"testing"

	"github.com/tealiumiq/webformtags"
	logging "github.com/tealiumiq/webformtags/logging/zerolog_adapter"
)

// newConnectedTestDatabase returns test database or skips the test when redis is not reachable
func newConnectedTestDatabase(t *testing.T) *DbConnector {
	t.Helper()

	logger, _ := logging.GetLogger("dataBase")
	dataBase := NewTestDatabase(logger)
	if err := dataBase.Ping(); err != nil {
		t.Skipf("redis is not available: %s", err.Error())
	}
	dataBase.Flush()
	t.Cleanup(func() {
		dataBase.Flush()
		dataBase.Close() //nolint
	})
	return dataBase
}

var _ webformtags.Database = (*DbConnector)(nil)
