// Package metrics exports pool activity to Prometheus.
package metrics

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/event"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/fleshka4/simplepool/internal/pool"
)

const namespace = "simplepool"

// Source is the pool as seen by the collector.
type Source interface {
	Tokens() [2]common.Address
	Reserves() [2]*uint256.Int
	TotalShareSupply() *uint256.Int
	Subscribe(ch chan<- pool.Event) event.Subscription
}

// Collector counts committed pool events and reports the pool's reserves and
// share supply at scrape time.
type Collector struct {
	source Source
	logger *zap.Logger

	operations *prometheus.CounterVec
	volume     *prometheus.CounterVec
	withdrawn  *prometheus.CounterVec

	reserveDesc *prometheus.Desc
	supplyDesc  *prometheus.Desc
}

// New creates a Collector for source.
func New(source Source, logger *zap.Logger) *Collector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Collector{
		source: source,
		logger: logger.With(zap.String("component", "metrics")),
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "pool",
				Name:      "operations_total",
				Help:      "Committed pool operations by kind",
			},
			[]string{"kind"},
		),
		volume: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "pool",
				Name:      "swap_volume_total",
				Help:      "Swapped token amounts by token and direction",
			},
			[]string{"token", "direction"},
		),
		withdrawn: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "pool",
				Name:      "withdrawn_total",
				Help:      "Token amounts paid out by settled withdrawals",
			},
			[]string{"token"},
		),
		reserveDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "pool", "reserve"),
			"Current pool reserve by token",
			[]string{"token"}, nil,
		),
		supplyDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "pool", "share_supply"),
			"Current total share supply",
			nil, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.operations.Describe(ch)
	c.volume.Describe(ch)
	c.withdrawn.Describe(ch)
	ch <- c.reserveDesc
	ch <- c.supplyDesc
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.operations.Collect(ch)
	c.volume.Collect(ch)
	c.withdrawn.Collect(ch)

	tokens := c.source.Tokens()
	reserves := c.source.Reserves()
	for i, token := range tokens {
		ch <- prometheus.MustNewConstMetric(c.reserveDesc, prometheus.GaugeValue, toFloat(reserves[i]), token.Hex())
	}
	ch <- prometheus.MustNewConstMetric(c.supplyDesc, prometheus.GaugeValue, toFloat(c.source.TotalShareSupply()))
}

// Run consumes pool events until ctx is done or the subscription fails.
func (c *Collector) Run(ctx context.Context) error {
	events := make(chan pool.Event, 128)
	sub := c.source.Subscribe(events)
	defer sub.Unsubscribe()

	c.logger.Info("collecting pool events")
	for {
		select {
		case ev := <-events:
			c.Observe(ev)
		case err := <-sub.Err():
			return errors.Wrap(err, "sub.Err")
		case <-ctx.Done():
			return nil
		}
	}
}

// Observe records a single event.
func (c *Collector) Observe(ev pool.Event) {
	switch ev.Kind {
	case pool.EventSwapped:
		c.volume.WithLabelValues(ev.TokenIn.Hex(), "in").Add(toFloat(ev.AmountIn))
		c.volume.WithLabelValues(ev.TokenOut.Hex(), "out").Add(toFloat(ev.AmountOut))
	case pool.EventWithdrawalSettled:
		c.withdrawn.WithLabelValues(ev.TokenOut.Hex()).Add(toFloat(ev.AmountOut))
	}
	c.operations.WithLabelValues(string(ev.Kind)).Inc()
}

func toFloat(v *uint256.Int) float64 {
	if v == nil {
		return 0
	}
	return v.Float64()
}
