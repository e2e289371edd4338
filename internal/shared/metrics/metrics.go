package metrics

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	LogoSetsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "logo_sets_generated_total",
			Help: "Total logo sets generated and stored",
		},
		[]string{"industry"},
	)

	LogoPreviews = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "logo_previews_total",
			Help: "Total logo previews by cache outcome",
		},
		[]string{"cache"},
	)

	LogoRenderDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "logo_render_duration_seconds",
			Help:    "Time spent composing one set of logo documents",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1},
		},
	)

	PNGRenders = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "logo_png_renders_total",
			Help: "Total PNG rasterizations by outcome",
		},
		[]string{"status"},
	)
)

// IncGenerated counts a stored logo set.
func IncGenerated(industry string) {
	LogoSetsGenerated.WithLabelValues(industry).Inc()
}

// IncPreview counts a preview; hit reports whether it came from the cache.
func IncPreview(hit bool) {
	label := "miss"
	if hit {
		label = "hit"
	}
	LogoPreviews.WithLabelValues(label).Inc()
}

// ObserveRender records how long composing took since start.
func ObserveRender(start time.Time) {
	LogoRenderDuration.Observe(time.Since(start).Seconds())
}

// IncPNG counts a rasterization attempt.
func IncPNG(ok bool) {
	status := "error"
	if ok {
		status = "ok"
	}
	PNGRenders.WithLabelValues(status).Inc()
}

// Handler exposes the default registry in Prometheus text format.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
