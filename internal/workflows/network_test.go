package workflows

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/PolarWolf314/zlang/internal/configs"
	kerrors "github.com/PolarWolf314/zlang/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetwork_DisabledByDefault(t *testing.T) {
	setupSettings(t)
	onboard(t, false)

	_, err := NetworkTest(context.Background(), NetworkOptions{URL: "http://127.0.0.1:1"})
	assert.ErrorIs(t, err, kerrors.ErrNetworkDisabled)

	_, err = Sync(context.Background(), NetworkOptions{URL: "http://127.0.0.1:1"})
	assert.ErrorIs(t, err, kerrors.ErrNetworkDisabled)
}

func TestNetwork_ProbesConfiguredURLs(t *testing.T) {
	setupSettings(t)
	onboard(t, true)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(r.URL.Path))
	}))
	defer server.Close()

	config, err := configs.LoadUserConfig()
	require.NoError(t, err)
	config.Network.ProbeURL = server.URL + "/zen"
	config.Network.SyncURL = server.URL + "/get"
	require.NoError(t, configs.SaveUserConfig(config))

	result, err := NetworkTest(context.Background(), NetworkOptions{})
	require.NoError(t, err)
	assert.True(t, result.OK())
	assert.Equal(t, "/zen", result.Body)

	result, err = Sync(context.Background(), NetworkOptions{})
	require.NoError(t, err)
	assert.Equal(t, "/get", result.Body)

	assert.Contains(t, auditEvents(t), "sync probe")
}
