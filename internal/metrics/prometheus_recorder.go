package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	registry           *prom.Registry
	generationDuration prom.Histogram
	generations        *prom.CounterVec
	buildTypes         *prom.GaugeVec
	validationProblems prom.Counter
}

// NewPrometheusRecorder constructs and registers the generation metrics.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{registry: reg}
	pr.generationDuration = prom.NewHistogram(prom.HistogramOpts{
		Namespace: "buildsettings",
		Name:      "generate_duration_seconds",
		Help:      "Duration of settings generation runs",
		Buckets:   prom.DefBuckets,
	})
	pr.generations = prom.NewCounterVec(prom.CounterOpts{
		Namespace: "buildsettings",
		Name:      "generations_total",
		Help:      "Settings generation runs by result",
	}, []string{"result"})
	pr.buildTypes = prom.NewGaugeVec(prom.GaugeOpts{
		Namespace: "buildsettings",
		Name:      "build_types",
		Help:      "Build types registered per project in the last generation",
	}, []string{"project"})
	pr.validationProblems = prom.NewCounter(prom.CounterOpts{
		Namespace: "buildsettings",
		Name:      "validation_errors_total",
		Help:      "Problems reported by settings validation",
	})
	reg.MustRegister(pr.generationDuration, pr.generations, pr.buildTypes, pr.validationProblems)
	return pr
}

func (p *PrometheusRecorder) ObserveGeneration(d time.Duration, result ResultLabel) {
	p.generationDuration.Observe(d.Seconds())
	p.generations.WithLabelValues(string(result)).Inc()
}

func (p *PrometheusRecorder) SetBuildTypes(project string, n int) {
	p.buildTypes.WithLabelValues(project).Set(float64(n))
}

func (p *PrometheusRecorder) AddValidationProblems(n int) {
	p.validationProblems.Add(float64(n))
}

// WriteTextfile writes the collected metrics in the text exposition format,
// atomically replacing path.
func (p *PrometheusRecorder) WriteTextfile(path string) error {
	return prom.WriteToTextfile(path, p.registry)
}
