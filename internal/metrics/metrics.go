package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: Namespace + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    Namespace + "_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	AuthFlowsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: Namespace + "_auth_flows_total",
			Help: "Total number of authentication flows by flow and outcome",
		},
		[]string{"flow", "outcome"},
	)

	AuthErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: Namespace + "_auth_errors_total",
			Help: "Total number of mapped auth errors by type",
		},
		[]string{"type"},
	)

	ProfileRefreshDropsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: Namespace + "_profile_refresh_drops_total",
			Help: "Profile refresh failures downgraded to a signed-out view",
		},
	)

	ProfileFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    Namespace + "_profile_fetch_duration_seconds",
			Help:    "Time to fetch the current user profile from the GraphQL API",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"source"},
	)

	GuardRedirectsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: Namespace + "_guard_redirects_total",
			Help: "Total number of navigations redirected to the sign-in page",
		},
	)

	GuardVerificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: Namespace + "_guard_verifications_total",
			Help: "Session cookie verifications on the server render path",
		},
		[]string{"outcome"},
	)

	GraphQLRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: Namespace + "_graphql_requests_total",
			Help: "Total number of GraphQL operations issued",
		},
		[]string{"operation", "outcome"},
	)
)
