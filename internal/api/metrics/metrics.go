// Package metrics defines and registers all custom Prometheus metrics for
// the recruitment platform API. It is the single source of truth for metric
// names, labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "recruitment"

// LoginsTotal counts login attempts by outcome ("success" / "failure").
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts completed account registrations.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts registered.",
	},
)

// EmailsSentTotal counts outbound mail by kind
// (otp, welcome, password_reset, job_seeker, job_opportunity, support, generic).
var EmailsSentTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "emails_sent_total",
		Help:      "Total number of transactional emails sent, by kind.",
	},
	[]string{"kind"},
)

// OTPVerificationsTotal counts OTP checks by outcome ("valid" / "invalid").
var OTPVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "otp_verifications_total",
		Help:      "Total number of verification code checks, by result.",
	},
	[]string{"result"},
)

// JobsPostedTotal counts job postings created.
var JobsPostedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "jobs_posted_total",
		Help:      "Total number of job postings created.",
	},
)

// CheckoutsTotal counts checkout sessions created, by plan.
var CheckoutsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "checkouts_total",
		Help:      "Total number of checkout sessions created, by plan.",
	},
	[]string{"plan"},
)

// ResumeUploadsTotal counts résumé uploads by outcome ("success" / "rejected").
var ResumeUploadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "resume_uploads_total",
		Help:      "Total number of résumé upload attempts, by result.",
	},
	[]string{"result"},
)
