package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// CountByStatusFunc reports how many leave requests currently sit in the
// given status.
type CountByStatusFunc func(ctx context.Context, status string) (int, error)

const DefaultQueueExportFrequency = 30 * time.Second

// LeaveQueueCollector periodically exports the size of the leave queue,
// broken down by status.
type LeaveQueueCollector struct {
	ctx       context.Context
	logger    zerolog.Logger
	count     CountByStatusFunc
	statuses  []string
	frequency time.Duration

	queueSize *prometheus.GaugeVec
}

func NewLeaveQueueCollector(ctx context.Context, logger zerolog.Logger, count CountByStatusFunc, statuses []string, frequency time.Duration) *LeaveQueueCollector {
	if frequency == 0 {
		frequency = DefaultQueueExportFrequency
	}

	return &LeaveQueueCollector{
		ctx:       ctx,
		logger:    logger,
		count:     count,
		statuses:  statuses,
		frequency: frequency,
		queueSize: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "leave",
				Name:      "queue_size",
				Help:      "Number of leave requests per status.",
			},
			[]string{"status"},
		),
	}
}

// RunBackgroundUpdate runs a background task that keeps the gauges actual.
func (c *LeaveQueueCollector) RunBackgroundUpdate() {
	go c.backgroundUpdate()
}

func (c *LeaveQueueCollector) backgroundUpdate() {
	c.logger.Info().Msg("leave queue export background task has been started")

	c.update()

	t := time.NewTicker(c.frequency)
	defer t.Stop()

	for {
		select {
		case <-c.ctx.Done():
			c.logger.Info().Msg("leave queue export background task has been finished")
			return

		case <-t.C:
		}

		c.update()
	}
}

func (c *LeaveQueueCollector) update() {
	g, ctx := errgroup.WithContext(c.ctx)

	for _, status := range c.statuses {
		g.Go(func() error {
			count, err := c.count(ctx, status)
			if err != nil {
				return err
			}

			c.queueSize.With(prometheus.Labels{"status": status}).Set(float64(count))

			return nil
		})
	}

	err := g.Wait()
	if err != nil {
		c.logger.Error().Err(err).Msg("leave queue sizes cannot be collected")
	}
}
