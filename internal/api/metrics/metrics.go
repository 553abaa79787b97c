// Package metrics defines and registers the custom Prometheus metrics for
// the Arcadia zoo API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register themselves with the default registry at package load;
// the /metrics route in the router exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "zoo"

// AuthAttemptsTotal counts token resolutions performed by the authenticator.
// Label:
//   - result: "success" or "failure"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of API token resolutions, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts created accounts.
// Label:
//   - role: the role assigned at registration (e.g. "ROLE_USER")
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts created, by assigned role.",
	},
	[]string{"role"},
)

// LikesTotal counts like increments accepted by the counter endpoint.
var LikesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "likes_total",
		Help:      "Total number of animal likes recorded.",
	},
)
