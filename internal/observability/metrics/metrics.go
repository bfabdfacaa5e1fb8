package metrics

import "github.com/prometheus/client_golang/prometheus"

// ScenarioMetrics exposes counters/histograms for scenario generation flows.
type ScenarioMetrics struct {
	generationsTotal  *prometheus.CounterVec
	generationLatency *prometheus.HistogramVec
	promptsComposed   prometheus.Counter
}

func NewScenarioMetrics(reg prometheus.Registerer) *ScenarioMetrics {
	m := &ScenarioMetrics{
		generationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "oper",
			Subsystem: "scenario",
			Name:      "generations_total",
			Help:      "Total scenario generation attempts",
		}, []string{"difficulty", "status"}),
		generationLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "oper",
			Subsystem: "scenario",
			Name:      "generation_latency_seconds",
			Help:      "Latency of scenario generation including the model call",
			Buckets:   prometheus.DefBuckets,
		}, []string{"difficulty"}),
		promptsComposed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "oper",
			Subsystem: "scenario",
			Name:      "prompts_composed_total",
			Help:      "Total voice-agent prompts composed",
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.generationsTotal, m.generationLatency, m.promptsComposed)
	return m
}

func (m *ScenarioMetrics) ObserveGeneration(difficulty, status string) {
	if m == nil {
		return
	}
	m.generationsTotal.WithLabelValues(difficulty, status).Inc()
}

func (m *ScenarioMetrics) ObserveGenerationLatency(difficulty string, seconds float64) {
	if m == nil {
		return
	}
	m.generationLatency.WithLabelValues(difficulty).Observe(seconds)
}

func (m *ScenarioMetrics) ObservePromptComposed() {
	if m == nil {
		return
	}
	m.promptsComposed.Inc()
}
