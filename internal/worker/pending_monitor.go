package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/pawmart/pawmart/internal/domain/model"
)

// StoreFacade exposes the subset of application functionality required by the monitor.
type StoreFacade interface {
	StalePendingOrders(ctx context.Context, age time.Duration) ([]model.Order, error)
}

// PendingMonitor periodically reports orders stuck in the Pending state.
// Abandoned checkouts are never expired or retried automatically; the
// monitor only surfaces them so an operator can follow up.
type PendingMonitor struct {
	facade       StoreFacade
	pollInterval time.Duration
	alertAge     time.Duration
	logger       *slog.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewPendingMonitor constructs the background monitor.
func NewPendingMonitor(facade StoreFacade, pollInterval, alertAge time.Duration, logger *slog.Logger) *PendingMonitor {
	if pollInterval <= 0 {
		pollInterval = time.Minute
	}
	if alertAge <= 0 {
		alertAge = time.Hour
	}
	return &PendingMonitor{
		facade:       facade,
		pollInterval: pollInterval,
		alertAge:     alertAge,
		logger:       logger,
	}
}

// Start launches background polling. The loop's lifetime is bound to Stop
// rather than the start context: lifecycle hooks cancel their context once
// startup completes, which must not terminate the monitor.
func (m *PendingMonitor) Start(_ context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	runCtx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel

	m.wg.Add(1)
	go m.run(runCtx)
}

// Stop waits for the polling loop to finish.
func (m *PendingMonitor) Stop() {
	m.mu.Lock()
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.mu.Unlock()

	m.wg.Wait()
}

func (m *PendingMonitor) run(ctx context.Context) {
	defer m.wg.Done()
	ticker := time.NewTicker(m.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.report(ctx)
		}
	}
}

func (m *PendingMonitor) report(ctx context.Context) {
	orders, err := m.facade.StalePendingOrders(ctx, m.alertAge)
	if err != nil {
		m.logger.Error("list stale pending orders failed", slog.String("error", err.Error()))
		return
	}
	for _, order := range orders {
		m.logger.Warn("order pending past alert age",
			slog.String("order_id", order.ID),
			slog.String("payment_ref", order.PaymentRef),
			slog.Time("created_at", order.CreatedAt),
		)
	}
}
