package stats_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lareferencia/harvester/pkg/opensearch"
	"github.com/lareferencia/harvester/pkg/stats"
)

type clusterCall struct {
	method string
	path   string
	body   string
}

// fakeCluster records every request and answers with a benign JSON body.
type fakeCluster struct {
	mu    sync.Mutex
	calls []clusterCall
	srv   *httptest.Server
}

func newFakeCluster(t *testing.T) *fakeCluster {
	t.Helper()
	c := &fakeCluster{}
	c.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		c.mu.Lock()
		c.calls = append(c.calls, clusterCall{r.Method, r.URL.Path, string(body)})
		c.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"errors":false}`))
	}))
	t.Cleanup(c.srv.Close)
	return c
}

func (c *fakeCluster) find(pathSuffix string) (clusterCall, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, call := range c.calls {
		if strings.HasSuffix(call.path, pathSuffix) {
			return call, true
		}
	}
	return clusterCall{}, false
}

func (c *fakeCluster) service(t *testing.T) *stats.Service {
	t.Helper()
	client, err := opensearch.New(context.Background(), opensearch.Config{
		Addresses:    []string{c.srv.URL},
		DisableRetry: true,
	})
	require.NoError(t, err)
	return stats.NewService(client, stats.WithIndex("observations-test"))
}

func TestService(t *testing.T) {
	t.Parallel()

	t.Run("availability probe", func(t *testing.T) {
		cluster := newFakeCluster(t)
		svc := cluster.service(t)

		assert.True(t, svc.IsAvailable(context.Background()))
	})

	t.Run("register bulk-indexes one line pair per observation", func(t *testing.T) {
		cluster := newFakeCluster(t)
		svc := cluster.service(t)

		obs := stats.NewObservation()
		obs.SnapshotID = 42
		obs.NetworkAcronym = "DEMO"
		obs.RecordID = 7
		obs.Identifier = "oai:demo:1"
		obs.Datestamp = time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
		obs.IsValid = true
		obs.ValidRuleIDs = []int64{10}

		require.NoError(t, svc.RegisterObservations(context.Background(), []stats.Observation{obs}))

		call, ok := cluster.find("/observations-test/_bulk")
		require.True(t, ok, "bulk request must target the configured index")

		lines := strings.Split(strings.TrimSpace(call.body), "\n")
		require.Len(t, lines, 2)
		assert.Contains(t, lines[0], obs.ID)
		assert.Contains(t, lines[0], "observations-test")

		var doc map[string]any
		require.NoError(t, json.Unmarshal([]byte(lines[1]), &doc))
		assert.Equal(t, float64(42), doc["snapshot_id"])
		assert.Equal(t, "DEMO", doc["network_acronym"])
		assert.Equal(t, true, doc["is_valid"])
	})

	t.Run("empty batch is a no-op", func(t *testing.T) {
		cluster := newFakeCluster(t)
		svc := cluster.service(t)

		require.NoError(t, svc.RegisterObservations(context.Background(), nil))
		_, ok := cluster.find("/_bulk")
		assert.False(t, ok)
	})

	t.Run("delete targets the snapshot", func(t *testing.T) {
		cluster := newFakeCluster(t)
		svc := cluster.service(t)

		require.NoError(t, svc.DeleteSnapshotObservations(context.Background(), 42))

		call, ok := cluster.find("/observations-test/_delete_by_query")
		require.True(t, ok)
		assert.Contains(t, call.body, `"snapshot_id":42`)
	})

	t.Run("lost cluster surfaces sentinel errors", func(t *testing.T) {
		cluster := newFakeCluster(t)
		svc := cluster.service(t)
		cluster.srv.Close()

		obs := stats.NewObservation()
		err := svc.RegisterObservations(context.Background(), []stats.Observation{obs})
		require.ErrorIs(t, err, stats.ErrRegisterFailed)

		err = svc.DeleteSnapshotObservations(context.Background(), 42)
		require.ErrorIs(t, err, stats.ErrDeleteFailed)

		assert.False(t, svc.IsAvailable(context.Background()))
	})
}
