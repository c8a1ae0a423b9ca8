// Package worker holds background loops started with the application.
package worker

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
)

type Purger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

// PurgeFunc adapts a plain function to Purger.
type PurgeFunc func(ctx context.Context) (int64, error)

func (f PurgeFunc) PurgeExpired(ctx context.Context) (int64, error) {
	return f(ctx)
}

// PurgeLoop removes expired rows of one kind on a fixed interval.
type PurgeLoop struct {
	name     string
	purger   Purger
	interval time.Duration
	logger   *slog.Logger

	cancel context.CancelFunc
	group  *errgroup.Group
}

func NewPurgeLoop(name string, purger Purger, interval time.Duration, logger *slog.Logger) *PurgeLoop {
	if interval <= 0 {
		interval = time.Hour
	}
	return &PurgeLoop{
		name:     name,
		purger:   purger,
		interval: interval,
		logger:   logger,
	}
}

func (p *PurgeLoop) Start(ctx context.Context) {
	ctx, p.cancel = context.WithCancel(context.WithoutCancel(ctx))
	p.group, ctx = errgroup.WithContext(ctx)
	p.group.Go(func() error {
		p.run(ctx)
		return nil
	})
	p.logger.Info("Purge worker started", "target", p.name, "interval", p.interval.String())
}

// Stop cancels the loop and waits for an in-flight purge, bounded by ctx.
func (p *PurgeLoop) Stop(ctx context.Context) error {
	if p.cancel == nil {
		return nil
	}
	p.cancel()

	done := make(chan error, 1)
	go func() { done <- p.group.Wait() }()
	select {
	case err := <-done:
		p.logger.Info("Purge worker stopped", "target", p.name)
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *PurgeLoop) run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.purgeOnce(ctx)
		}
	}
}

func (p *PurgeLoop) purgeOnce(ctx context.Context) {
	deleted, err := p.purger.PurgeExpired(ctx)
	if err != nil {
		if ctx.Err() == nil {
			p.logger.Error("Purge failed", "target", p.name, "error", err.Error())
		}
		return
	}
	if deleted > 0 {
		p.logger.Info("Expired rows purged", "target", p.name, "deleted", deleted)
	}
}
