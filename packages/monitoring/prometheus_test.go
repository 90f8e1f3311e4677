package monitoring

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveRequest(t *testing.T) {
	ObserveRequest("GET", 200, 15*time.Millisecond)
	ObserveRequest("GET", 0, time.Second)

	assert.GreaterOrEqual(t, RequestRate.Rate(), int64(2))
}

func TestCollectors_Register(t *testing.T) {
	reg := prometheus.NewRegistry()
	require.NoError(t, reg.Register(BungieRequest))
	require.NoError(t, reg.Register(QueueMessages))

	ObserveRequest("POST", 503, time.Millisecond)
	QueueMessages.WithLabelValues("pgcr_lookups", "ack").Inc()

	families, err := reg.Gather()
	require.NoError(t, err)

	names := map[string]bool{}
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["bungie_request_ms"])
	assert.True(t, names["queue_messages_processed"])
	assert.Len(t, Collectors(), 4)
}
