// Package metrics defines all custom Prometheus metrics for the ThreadIRC
// API. It is the single source of truth for metric names, labels, and help
// strings. Metrics register themselves with the default registry via
// promauto at package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "threadirc"

// ── Forum metrics ─────────────────────────────────────────────────────────────

// RegistrationsTotal counts successfully registered users.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of users registered.",
	},
)

// ChannelsCreatedTotal counts newly created channels.
var ChannelsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "channels_created_total",
		Help:      "Total number of channels created.",
	},
)

// ThreadsCreatedTotal counts newly created threads.
var ThreadsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "threads_created_total",
		Help:      "Total number of threads created.",
	},
)

// CommentsCreatedTotal counts comments added to threads.
var CommentsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "comments_created_total",
		Help:      "Total number of comments created.",
	},
)

// VotesCastTotal counts vote toggles that were accepted.
// Label:
//   - direction: "up" or "down"
var VotesCastTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "votes_cast_total",
		Help:      "Total number of votes cast, by direction.",
	},
	[]string{"direction"},
)

// PostsDeletedTotal counts deleted posts.
// Label:
//   - kind: "comment", or "thread" when deleting the OP removed the whole thread
var PostsDeletedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "posts_deleted_total",
		Help:      "Total number of posts deleted, by kind.",
	},
	[]string{"kind"},
)

// ── Audit metrics ─────────────────────────────────────────────────────────────

// AuditQueueDepth tracks audit events currently waiting in dispatcher shards.
var AuditQueueDepth = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit events pending in the dispatcher.",
	},
)

// AuditEventsTotal counts audit events leaving the dispatcher.
// Label:
//   - result: "processed" or "error"
var AuditEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_events_total",
		Help:      "Total number of audit events handled, by result.",
	},
	[]string{"result"},
)
