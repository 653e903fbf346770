package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/niksmo/aqua-plant/internal/adapter/httphandler"
	"github.com/niksmo/aqua-plant/internal/core/domain"
	"github.com/niksmo/aqua-plant/internal/core/port"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ port.StorefrontMetrics = (*Collector)(nil)
var _ httphandler.RequestObserver = (*Collector)(nil)

const namespace = "aqua_plant"

type Collector struct {
	registry        *prometheus.Registry
	cartChanges     *prometheus.CounterVec
	cartRejections  *prometheus.CounterVec
	cartItems       prometheus.Gauge
	filterChanges   prometheus.Counter
	visiblePlants   prometheus.Gauge
	requestDuration *prometheus.HistogramVec
}

// New registers the storefront collectors on a dedicated registry.
func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		cartChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cart_changes_total",
			Help:      "Applied cart mutations by kind.",
		}, []string{"kind"}),
		cartRejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cart_rejections_total",
			Help:      "Rejected cart mutations by reason.",
		}, []string{"reason"}),
		cartItems: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "cart_items",
			Help:      "Total quantity of items in the cart.",
		}),
		filterChanges: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "filter_changes_total",
			Help:      "Filter updates and resets.",
		}),
		visiblePlants: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "visible_plants",
			Help:      "Plants matching the current filter.",
		}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Served HTTP requests.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "pattern", "status"}),
	}

	c.registry.MustRegister(
		c.cartChanges,
		c.cartRejections,
		c.cartItems,
		c.filterChanges,
		c.visiblePlants,
		c.requestDuration,
	)
	return c
}

func (c *Collector) CartChanged(kind domain.CartEventKind, totalItems int) {
	c.cartChanges.WithLabelValues(string(kind)).Inc()
	c.cartItems.Set(float64(totalItems))
}

func (c *Collector) CartRejected(reason error) {
	c.cartRejections.WithLabelValues(rejectionReason(reason)).Inc()
}

func (c *Collector) FilterChanged(visible int) {
	c.filterChanges.Inc()
	c.visiblePlants.Set(float64(visible))
}

func (c *Collector) ObserveRequest(
	method, pattern string, status int, elapsed time.Duration,
) {
	if pattern == "" {
		pattern = "unmatched"
	}
	c.requestDuration.
		WithLabelValues(method, pattern, strconv.Itoa(status)).
		Observe(elapsed.Seconds())
}

// Handler exposes the registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

func (c *Collector) Register(mux *http.ServeMux) {
	mux.Handle("GET /metrics", c.Handler())
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrPlantNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrOutOfStock):
		return "out_of_stock"
	}
	return "other"
}
