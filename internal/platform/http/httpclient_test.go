package http

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient(t *testing.T) {
	t.Parallel()

	c := NewHTTPClient(3 * time.Second)
	assert.Equal(t, 3*time.Second, c.Timeout)

	tr, ok := c.Transport.(*http.Transport)
	require.True(t, ok)
	assert.Equal(t, 3*time.Second, tr.ResponseHeaderTimeout)
	assert.NotNil(t, tr.Proxy)
}

func TestNewHTTPClient_DefaultTimeout(t *testing.T) {
	t.Parallel()

	assert.Equal(t, defaultTimeout, NewHTTPClient(0).Timeout)
	assert.Equal(t, defaultTimeout, NewHTTPClient(-time.Second).Timeout)
}
