package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	Setup("debug")
	logrus.SetOutput(buf)
	t.Cleanup(func() { Setup("info") })
	return buf
}

func lastEntry(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestWithContext(t *testing.T) {
	buf := capture(t)

	ctx := context.WithValue(context.Background(), UserKey, "admin")
	WithContext(ctx).WithField("work_schedule_id", "ws-1").Info("generated")

	entry := lastEntry(t, buf)
	assert.Equal(t, "admin", entry["user"])
	assert.Equal(t, "ws-1", entry["work_schedule_id"])
	assert.Equal(t, "generated", entry["msg"])
}

func TestWithContext_UnknownUser(t *testing.T) {
	buf := capture(t)

	WithContext(context.Background()).Warn("anonymous")

	assert.Equal(t, "unknown", lastEntry(t, buf)["user"])
}

func TestFromGinContext(t *testing.T) {
	buf := capture(t)
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/", nil)
	c.Set(RequestIDKey, "req-42")

	FromGinContext(c).Info("hello")

	entry := lastEntry(t, buf)
	assert.Equal(t, "req-42", entry["request_id"])
	assert.Equal(t, "unknown", entry["user"])
}

func TestSetupLevels(t *testing.T) {
	Setup("warn")
	assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())
	Setup("bogus")
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}
