package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the hall-operations counters exposed on /metrics.
type Metrics struct {
	RoundsStartedTotal      *prometheus.CounterVec
	CommissionChargedTotal  *prometheus.CounterVec
	ChargeRejectionsTotal   *prometheus.CounterVec
	WinningsRecordedTotal   *prometheus.CounterVec
	SettlementRollupsTotal  prometheus.Counter
	SettlementFailuresTotal prometheus.Counter
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RoundsStartedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bingo_rounds_started_total",
				Help: "Number of game rounds started",
			},
			[]string{"shop_id"},
		),
		CommissionChargedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bingo_commission_charged_total",
				Help: "Total commission amount charged to shops",
			},
			[]string{"shop_id"},
		),
		ChargeRejectionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bingo_charge_rejections_total",
				Help: "Number of commission charges rejected for insufficient balance",
			},
			[]string{"shop_id"},
		),
		WinningsRecordedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bingo_winnings_recorded_total",
				Help: "Number of winning entries recorded",
			},
			[]string{"shop_id"},
		),
		SettlementRollupsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "bingo_settlement_rollups_total",
				Help: "Number of completed weekly settlement rollups",
			},
		),
		SettlementFailuresTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "bingo_settlement_failures_total",
				Help: "Number of failed weekly settlement rollups",
			},
		),
	}
}

func (m *Metrics) RecordRoundStarted(shopID string) {
	m.RoundsStartedTotal.WithLabelValues(shopID).Inc()
}

func (m *Metrics) RecordCommissionCharged(shopID string, amount float64) {
	m.CommissionChargedTotal.WithLabelValues(shopID).Add(amount)
}

func (m *Metrics) RecordChargeRejected(shopID string) {
	m.ChargeRejectionsTotal.WithLabelValues(shopID).Inc()
}

func (m *Metrics) RecordWinning(shopID string) {
	m.WinningsRecordedTotal.WithLabelValues(shopID).Inc()
}

func (m *Metrics) RecordSettlementRollup() {
	m.SettlementRollupsTotal.Inc()
}

func (m *Metrics) RecordSettlementFailure() {
	m.SettlementFailuresTotal.Inc()
}
