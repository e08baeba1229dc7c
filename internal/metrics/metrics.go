package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	metricCommands = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ewdash",
		Name:      "commands_total",
		Help:      "Dashboard store commands that changed state, by command.",
	}, []string{"command"})
	metricPersistWrites = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ewdash",
		Name:      "persist_writes_total",
		Help:      "Dashboard record writes, by result.",
	}, []string{"result"})
	metricDrops = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ewdash",
		Name:      "drops_total",
		Help:      "Widgets released on the grid, by outcome.",
	}, []string{"outcome"})
	metricActiveWidgets = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "ewdash",
		Name:      "active_widgets",
		Help:      "Number of widgets currently on the dashboard.",
	})
)

// Recorder feeds store and drop activity into the package metrics. It
// satisfies dashboard.Recorder and dashboard.DropRecorder.
type Recorder struct{}

func (Recorder) CommandApplied(command string) {
	metricCommands.WithLabelValues(command).Inc()
}

func (Recorder) PersistFinished(err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	metricPersistWrites.WithLabelValues(result).Inc()
}

func (Recorder) ActiveWidgets(n int) {
	metricActiveWidgets.Set(float64(n))
}

func (Recorder) DropHandled(outcome string) {
	metricDrops.WithLabelValues(outcome).Inc()
}
