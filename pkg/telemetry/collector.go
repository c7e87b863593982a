package telemetry

import (
	"context"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/vroute/pkg/history"
	"github.com/vango-dev/vroute/pkg/router"
)

const (
	resultMatch = "match"
	resultMiss  = "miss"
)

// Collector turns navigation and Switch events into metrics and spans.
type Collector struct {
	navigations        *prometheus.CounterVec
	navigationDuration *prometheus.HistogramVec
	subscribers        prometheus.Gauge
	evaluations        *prometheus.CounterVec
	evaluationDuration prometheus.Histogram

	tracer trace.Tracer
}

var (
	_ history.Observer = (*Collector)(nil)
	_ router.Observer  = (*Collector)(nil)
)

// New registers the collectors and returns a Collector.
// It panics if the metrics are already registered with the registry,
// as promauto does.
func New(opts ...Option) *Collector {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	if config.Buckets == nil {
		config.Buckets = prometheus.DefBuckets
	}

	factory := promauto.With(config.Registry)

	return &Collector{
		navigations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "navigations_total",
			Help:        "Total number of navigations dispatched, by kind",
			ConstLabels: config.ConstLabels,
		}, []string{"kind"}),

		navigationDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "navigation_duration_seconds",
			Help:        "Time spent notifying subscribers of a navigation",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"kind"}),

		subscribers: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "navigation_subscribers",
			Help:        "Number of subscribers notified by the last navigation",
			ConstLabels: config.ConstLabels,
		}),

		evaluations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "switch_evaluations_total",
			Help:        "Total number of Switch recomputations, by result and depth",
			ConstLabels: config.ConstLabels,
		}, []string{"result", "depth"}),

		evaluationDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "switch_evaluation_duration_seconds",
			Help:        "Switch recomputation duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),

		tracer: config.tracer(),
	}
}

// ObserveNavigation implements history.Observer.
func (c *Collector) ObserveNavigation(ev history.Event) {
	kind := ev.Kind.String()
	c.navigations.WithLabelValues(kind).Inc()
	c.navigationDuration.WithLabelValues(kind).Observe(ev.Duration.Seconds())
	c.subscribers.Set(float64(ev.Subscribers))

	_, span := c.tracer.Start(context.Background(), "vroute.navigate",
		trace.WithTimestamp(ev.Start),
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("vroute.kind", kind),
			attribute.String("vroute.pathname", ev.Location.Pathname),
			attribute.String("vroute.search", ev.Location.Search),
			attribute.Int("vroute.subscribers", ev.Subscribers),
		),
	)
	span.End(trace.WithTimestamp(ev.Start.Add(ev.Duration)))
}

// ObserveSwitch implements router.Observer.
func (c *Collector) ObserveSwitch(ev router.SwitchEvent) {
	result := resultMiss
	if ev.Matched {
		result = resultMatch
	}
	c.evaluations.WithLabelValues(result, strconv.Itoa(ev.Depth)).Inc()
	c.evaluationDuration.Observe(ev.Duration.Seconds())

	_, span := c.tracer.Start(context.Background(), "vroute.switch.evaluate",
		trace.WithTimestamp(ev.Start),
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("vroute.path", ev.Path),
			attribute.String("vroute.pattern", ev.Pattern),
			attribute.Int("vroute.depth", ev.Depth),
			attribute.Bool("vroute.matched", ev.Matched),
		),
	)
	if ev.Matched {
		span.SetStatus(codes.Ok, "")
	} else {
		span.AddEvent("no route matched")
	}
	span.End(trace.WithTimestamp(ev.Start.Add(ev.Duration)))
}

// Handler serves the metrics gathered by g in the Prometheus text format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
