package chain

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifyTransferPostsEvent(t *testing.T) {
	var got transferEvent
	var apiKey string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/transfers", r.URL.Path)
		apiKey = r.Header.Get("x-api-key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	gateway := NewChainGateway(srv.URL, "secret")
	require.NoError(t, gateway.NotifyTransfer(1, 2, []int64{10, 11}))

	assert.Equal(t, "secret", apiKey)
	assert.Equal(t, int64(1), got.FromAuthID)
	assert.Equal(t, int64(2), got.ToAuthID)
	assert.Equal(t, []int64{10, 11}, got.NFTIDs)
}

func TestNotifyTransferUnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	gateway := NewChainGateway(srv.URL, "")
	err := gateway.NotifyTransfer(1, 2, []int64{10})
	assert.Error(t, err)
}

func TestEmptyBaseURLDisablesNotifications(t *testing.T) {
	gateway := NewChainGateway("", "")
	assert.NoError(t, gateway.NotifyTransfer(1, 2, []int64{10}))
}
