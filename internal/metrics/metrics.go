// Package metrics collects prometheus counters for the API surface.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Collector struct {
	registry        *prometheus.Registry
	registrations   prometheus.Counter
	logins          *prometheus.CounterVec
	tokenRejections prometheus.Counter
	roomOps         *prometheus.CounterVec
	applianceOps    *prometheus.CounterVec
}

func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		registrations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "currently_registrations_total",
			Help: "Total number of successful account registrations.",
		}),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "currently_logins_total",
			Help: "Total number of login attempts by outcome.",
		}, []string{"success"}),
		tokenRejections: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "currently_token_rejections_total",
			Help: "Total number of requests rejected for a missing or invalid token.",
		}),
		roomOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "currently_room_operations_total",
			Help: "Total number of completed room operations by type.",
		}, []string{"op"}),
		applianceOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "currently_appliance_operations_total",
			Help: "Total number of completed user appliance operations by type.",
		}, []string{"op"}),
	}

	c.registry.MustRegister(
		collectors.NewGoCollector(),
		c.registrations,
		c.logins,
		c.tokenRejections,
		c.roomOps,
		c.applianceOps,
	)

	return c
}

// Handler serves the collector's registry in prometheus exposition
// format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

func (c *Collector) RecordRegistration() {
	c.registrations.Inc()
}

func (c *Collector) RecordLogin(success bool) {
	c.logins.WithLabelValues(strconv.FormatBool(success)).Inc()
}

func (c *Collector) RecordTokenRejection() {
	c.tokenRejections.Inc()
}

func (c *Collector) RecordRoomOp(op string) {
	c.roomOps.WithLabelValues(op).Inc()
}

func (c *Collector) RecordApplianceOp(op string) {
	c.applianceOps.WithLabelValues(op).Inc()
}
