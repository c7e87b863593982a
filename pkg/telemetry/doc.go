// Package telemetry records navigation and Switch activity as Prometheus
// metrics and OpenTelemetry spans.
//
// A Collector implements both history.Observer and router.Observer, so one
// value can be handed to a Source and a Router:
//
//	c := telemetry.New(telemetry.WithRegistry(reg))
//	src, _ := history.New(h, history.WithObserver(c))
//	r := router.NewRouter(src, router.WithObserver(c))
//
// Spans are created after the fact from the timestamps carried by the
// events, so the observed code never needs a context.Context.
package telemetry
