// Package metrics defines and registers all custom Prometheus metrics for
// the catalogue API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register themselves with the default registry via promauto; the
// router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "catalogue"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// RegistrationsTotal counts successfully created accounts.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts registered.",
	},
)

// LoginsTotal counts login attempts that reached credential verification.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// LoginThrottledTotal counts login requests rejected by the rate limiter.
var LoginThrottledTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_throttled_total",
		Help:      "Total number of login requests rejected by the rate limiter.",
	},
)

// ── Product metrics ───────────────────────────────────────────────────────────

var ProductsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "products_created_total",
		Help:      "Total number of products created.",
	},
)

var ProductsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "products_deleted_total",
		Help:      "Total number of products deleted.",
	},
)

// ── Upload metrics ────────────────────────────────────────────────────────────

// UploadsStoredTotal counts files written to the upload directory.
// Label:
//   - field: the multipart field the file arrived on ("cover" or "gallery")
var UploadsStoredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "uploads_stored_total",
		Help:      "Total number of uploaded files stored, labelled by form field.",
	},
	[]string{"field"},
)

// UploadsRejectedTotal counts uploads rejected before any handler ran.
// Label:
//   - reason: "unsupported_format", "too_large" or "too_many_files"
var UploadsRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "uploads_rejected_total",
		Help:      "Total number of uploads rejected at the parsing stage, labelled by reason.",
	},
	[]string{"reason"},
)

// ── Reclaim metrics ───────────────────────────────────────────────────────────

var FilesReclaimedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "files_reclaimed_total",
		Help:      "Total number of upload files removed after their product went away.",
	},
)

var FileReclaimErrorsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "file_reclaim_errors_total",
		Help:      "Total number of reclaim attempts that failed or were dropped.",
	},
)

// ReclaimQueueDepth tracks the number of filenames waiting for deletion.
var ReclaimQueueDepth = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "reclaim_queue_depth",
		Help:      "Current number of filenames pending in the reclaim queue.",
	},
)
