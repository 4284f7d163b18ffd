// Package metrics defines the custom Prometheus metrics for the
// CareerConnect API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "careerconnect"

// HTTPRequestsTotal counts handled HTTP requests.
// Labels:
//   - method: HTTP method
//   - path: route template (not the raw URL)
//   - status: numeric response status
var HTTPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests handled, by route and status.",
	},
	[]string{"method", "path", "status"},
)

// HTTPRequestDuration measures request latency per route.
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP request handling.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "path"},
)

// RegistrationsTotal counts successful user registrations, by role.
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of successful user registrations, by role.",
	},
	[]string{"role"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// MentorshipRequestsTotal counts mentorship request lifecycle events.
// Label:
//   - event: "created", "approved" or "rejected"
var MentorshipRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mentorship_requests_total",
		Help:      "Total number of mentorship request lifecycle events.",
	},
	[]string{"event"},
)

// SessionTransitionsTotal counts applied session status transitions.
// Label:
//   - status: the new session status
var SessionTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_transitions_total",
		Help:      "Total number of session status transitions applied.",
	},
	[]string{"status"},
)

// MessagesSentTotal counts messages sent by students.
var MessagesSentTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "messages_sent_total",
		Help:      "Total number of student-to-mentor messages sent.",
	},
)
