// Package metrics defines and registers all custom Prometheus metrics for the
// design collaboration API. It is the single source of truth for metric
// names, labels, and help strings; registration happens with the default
// registry at package init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "design_collab"

// RegistrationsTotal counts successful account registrations.
// Label:
//   - role: "designer" or "client"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of user registrations, by role.",
	},
	[]string{"role"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "failure", or "throttled"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ProjectsTotal counts project mutations.
// Label:
//   - action: "created", "updated", or "deleted"
var ProjectsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "projects_total",
		Help:      "Total number of project mutations, by action.",
	},
	[]string{"action"},
)

// OptionReplacementsTotal counts wholesale replacements of the option catalogue.
var OptionReplacementsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "option_replacements_total",
		Help:      "Total number of option catalogue replacements.",
	},
)

// UploadsTotal counts successfully stored image uploads.
var UploadsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "uploads_total",
		Help:      "Total number of images stored.",
	},
)
