package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts handled HTTP requests by method, route and status.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fxe_http_requests_total",
		Help: "Count of HTTP requests by method, route and status.",
	}, []string{"method", "route", "status"})

	// ConversionsTotal counts currency conversions by resolution kind:
	// identity, direct, inverted or miss.
	ConversionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fxe_conversions_total",
		Help: "Count of currency conversions by resolution kind.",
	}, []string{"kind"})

	// RatesCreatedTotal counts exchange rates inserted, including bulk imports.
	RatesCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fxe_exchange_rates_created_total",
		Help: "Count of exchange rate records inserted.",
	})

	// HedgingPositionsCreatedTotal counts hedging positions inserted.
	HedgingPositionsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fxe_hedging_positions_created_total",
		Help: "Count of hedging position records inserted.",
	})
)
