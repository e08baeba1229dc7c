package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/enerwatch/ewdash/internal/dashboard"
)

var (
	_ dashboard.Recorder     = Recorder{}
	_ dashboard.DropRecorder = Recorder{}
)

func TestRecorderCountsStoreActivity(t *testing.T) {
	before := testutil.ToFloat64(metricCommands.WithLabelValues("insert"))
	failedBefore := testutil.ToFloat64(metricPersistWrites.WithLabelValues("error"))

	storage := dashboard.NewMemoryStorage()
	storage.Err = errors.New("read-only")
	s := dashboard.New(
		dashboard.WithRecorder(Recorder{}),
		dashboard.WithPersister(dashboard.NewKVPersister(storage, "", nil)),
	)
	s.InsertWidgets(dashboard.WidgetCapacitiveLoad)

	require.Equal(t, before+1, testutil.ToFloat64(metricCommands.WithLabelValues("insert")))
	require.Equal(t, failedBefore+1, testutil.ToFloat64(metricPersistWrites.WithLabelValues("error")))
	require.Equal(t, float64(len(s.ActiveWidgets())), testutil.ToFloat64(metricActiveWidgets))
}

func TestRecorderCountsDrops(t *testing.T) {
	before := testutil.ToFloat64(metricDrops.WithLabelValues(dashboard.DropUnknown))
	d := dashboard.NewDropTarget(dashboard.New(), Recorder{}, nil)
	d.Drop("nope", 0, 0)
	require.Equal(t, before+1, testutil.ToFloat64(metricDrops.WithLabelValues(dashboard.DropUnknown)))
}

func TestRouter(t *testing.T) {
	Recorder{}.CommandApplied("reset")
	srv := httptest.NewServer(Router())
	t.Cleanup(srv.Close)

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, string(body), "ewdash_commands_total")

	resp, err = http.Post(srv.URL+"/healthz", "text/plain", nil)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}
