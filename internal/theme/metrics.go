package theme

import "github.com/prometheus/client_golang/prometheus"

// Stylesheet serving metrics.
var (
	stylesheetsGenerated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "theme_stylesheets_generated_total",
			Help: "Total number of theme stylesheets generated.",
		},
		[]string{"preset", "mode"},
	)
	stylesheetRevalidations = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "theme_stylesheet_revalidations_total",
			Help: "Total number of conditional stylesheet requests answered with 304 Not Modified.",
		},
	)
)

func init() {
	prometheus.MustRegister(stylesheetsGenerated)
	prometheus.MustRegister(stylesheetRevalidations)
}
