package bootstrap

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnv(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestNewWithSQLite(t *testing.T) {
	dir := t.TempDir()
	env := writeEnv(t, "DB_DRIVER=sqlite\n"+
		"DB_SQLITE_PATH="+filepath.Join(dir, "clinic.db")+"\n"+
		"REDIS_ENABLED=false\n"+
		"APP_TIMEZONE=UTC\n"+
		"JWT_SECRET=test-secret\n"+
		"LOG_LEVEL=error\n")

	app, err := New(env)
	require.NoError(t, err)
	t.Cleanup(app.Close)

	assert.Nil(t, app.RedisClient)
	require.NotNil(t, app.SlotLocks)

	rec := httptest.NewRecorder()
	app.Server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	app.Server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/appointments", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestNewRejectsBadSettings(t *testing.T) {
	dir := t.TempDir()
	base := "REDIS_ENABLED=false\nLOG_LEVEL=error\nDB_SQLITE_PATH=" + filepath.Join(dir, "clinic.db") + "\n"

	_, err := New(writeEnv(t, base+"DB_DRIVER=mysql\n"))
	assert.ErrorContains(t, err, "unsupported DB_DRIVER")

	_, err = New(writeEnv(t, base+"DB_DRIVER=sqlite\nAPP_TIMEZONE=Mars/Olympus\n"))
	assert.ErrorContains(t, err, "invalid APP_TIMEZONE")
}
