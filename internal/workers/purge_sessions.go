package workers

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/bloggers-platform/domain"
)

type purgeSessionsWorker struct {
	deviceRepo domain.DeviceRepository
	interval   time.Duration
	now        func() time.Time
}

var _ domain.Worker = (*purgeSessionsWorker)(nil)

// NewPurgeSessionsWorker removes expired device sessions every interval.
func NewPurgeSessionsWorker(d domain.DeviceRepository, interval time.Duration) *purgeSessionsWorker {
	return &purgeSessionsWorker{
		deviceRepo: d,
		interval:   interval,
		now:        time.Now,
	}
}

func (w *purgeSessionsWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.purge(ctx)
		case <-ctx.Done():
			logrus.Info("shuting down PurgeSessionsWorker")
			return
		}
	}
}

func (w *purgeSessionsWorker) purge(ctx context.Context) {
	n, err := w.deviceRepo.DeleteExpired(ctx, w.now().UTC())
	if err != nil {
		logrus.Errorf("failed to purge expired sessions: %v", err)
		return
	}
	if n > 0 {
		logrus.Infof("purged %d expired sessions", n)
	}
}
