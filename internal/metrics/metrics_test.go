package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestSubscriptionsTotal(t *testing.T) {
	before := testutil.ToFloat64(SubscriptionsTotal.WithLabelValues("test", "success"))
	SubscriptionsTotal.WithLabelValues("test", "success").Inc()
	after := testutil.ToFloat64(SubscriptionsTotal.WithLabelValues("test", "success"))

	assert.Equal(t, before+1, after)
}

func TestNewHTTPServer(t *testing.T) {
	srv := NewHTTPServer("127.0.0.1", 0)
	assert.Equal(t, "127.0.0.1:9090", srv.Addr)

	BotUpdatesTotal.WithLabelValues("message").Inc()

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "bot_updates_total"))
}
