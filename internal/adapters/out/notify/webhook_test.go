package notify_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"kurir/internal/adapters/out/notify"
	"kurir/internal/core/domain/model/kernel"
	"kurir/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWebhookNotifier(t *testing.T) {
	t.Run("requires url", func(t *testing.T) {
		notifier, err := notify.NewWebhookNotifier("", time.Second)
		require.Error(t, err)
		assert.Nil(t, notifier)
	})
}

func TestWebhookNotifier_NotifyCourierAssigned(t *testing.T) {
	t.Run("posts assignment payload", func(t *testing.T) {
		var received map[string]string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		}))
		defer server.Close()

		notifier, err := notify.NewWebhookNotifier(server.URL, time.Second)
		require.NoError(t, err)

		orderID := kernel.NewUUID()
		courierID := kernel.NewUUID()
		err = notifier.NotifyCourierAssigned(context.Background(), orderID, courierID, "Budi")
		require.NoError(t, err)

		assert.Equal(t, "courier_assigned", received["event"])
		assert.Equal(t, orderID.String(), received["order_id"])
		assert.Equal(t, courierID.String(), received["courier_id"])
		assert.Equal(t, "Budi", received["courier_name"])
	})

	t.Run("unreachable endpoint is a dependency failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		server.Close()

		notifier, err := notify.NewWebhookNotifier(server.URL, time.Second)
		require.NoError(t, err)

		err = notifier.NotifyCourierAssigned(context.Background(), kernel.NewUUID(), kernel.NewUUID(), "Budi")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrDependencyUnavailable)
	})

	t.Run("non-2xx response is a dependency failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		notifier, err := notify.NewWebhookNotifier(server.URL, time.Second)
		require.NoError(t, err)

		err = notifier.NotifyCourierAssigned(context.Background(), kernel.NewUUID(), kernel.NewUUID(), "Budi")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrDependencyUnavailable)
	})
}
