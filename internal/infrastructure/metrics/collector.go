// Package metrics expone contadores Prometheus del almacenamiento y de las sesiones.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "foodorder"

// Collector agrupa las métricas de la aplicación. Un *Collector nil es válido y no registra nada.
type Collector struct {
	registry *prometheus.Registry

	usersCreated   prometheus.Counter
	ordersCreated  prometheus.Counter
	sessionsActive prometheus.Gauge
	sessionsPurged prometheus.Counter
}

// NewCollector crea un registry propio con las métricas de la app más las del runtime Go.
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()
	c := &Collector{
		registry: reg,
		usersCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "storage",
			Name:      "users_created_total",
			Help:      "Usuarios registrados desde el arranque",
		}),
		ordersCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "storage",
			Name:      "orders_created_total",
			Help:      "Pedidos creados desde el arranque",
		}),
		sessionsActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "sessions",
			Name:      "active",
			Help:      "Sesiones guardadas en memoria (incluye expiradas aún no purgadas)",
		}),
		sessionsPurged: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sessions",
			Name:      "purged_total",
			Help:      "Sesiones expiradas eliminadas por el barrido periódico",
		}),
	}
	reg.MustRegister(
		c.usersCreated,
		c.ordersCreated,
		c.sessionsActive,
		c.sessionsPurged,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return c
}

// Handler devuelve el handler HTTP para /metrics.
func (c *Collector) Handler() http.Handler {
	if c == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

func (c *Collector) UserCreated() {
	if c != nil {
		c.usersCreated.Inc()
	}
}

func (c *Collector) OrderCreated() {
	if c != nil {
		c.ordersCreated.Inc()
	}
}

func (c *Collector) SetActiveSessions(n int) {
	if c != nil {
		c.sessionsActive.Set(float64(n))
	}
}

func (c *Collector) SessionsPurged(n int) {
	if c != nil && n > 0 {
		c.sessionsPurged.Add(float64(n))
	}
}
