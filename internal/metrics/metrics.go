package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Profile selection metrics
var (
	ProfileSelectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "strata_profile_selections_total",
			Help: "Total number of requests for which a profile was selected",
		},
		[]string{"tag", "stream_type"},
	)

	ProfileRejectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "strata_profile_rejections_total",
			Help: "Total number of times a candidate profile declined a request",
		},
		[]string{"tag"},
	)

	ProfileSelectionFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "strata_profile_selection_failures_total",
			Help: "Total number of requests for which no profile matched",
		},
		[]string{"stream_type"},
	)
)
