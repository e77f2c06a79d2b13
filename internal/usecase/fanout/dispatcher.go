package fanout

import (
	"context"
	"log/slog"
	"sync"

	"gas-agency/internal/domain/audit"
)

type Relay interface {
	Send(ctx context.Context, to, subject, message string) error
}

type AuditAppender interface {
	Append(ctx context.Context, e audit.Entry) error
}

// Dispatcher runs notification and audit side effects detached from the
// operation that triggered them. A failed side effect is logged and dropped;
// it can never roll back or fail a committed transaction, and no caller ever
// waits on it.
type Dispatcher struct {
	relay  Relay
	audits AuditAppender

	wg sync.WaitGroup
}

func NewDispatcher(relay Relay, audits AuditAppender) *Dispatcher {
	return &Dispatcher{relay: relay, audits: audits}
}

func (d *Dispatcher) Email(ctx context.Context, to, subject, message string) {
	d.detach(ctx, func(ctx context.Context) {
		if err := d.relay.Send(ctx, to, subject, message); err != nil {
			slog.Warn("email dispatch failed", "to", to, "subject", subject, "error", err.Error())
		}
	})
}

func (d *Dispatcher) Audit(ctx context.Context, entry audit.Entry) {
	d.detach(ctx, func(ctx context.Context) {
		if err := d.audits.Append(ctx, entry); err != nil {
			slog.Warn("audit append failed", "action", entry.Action, "error", err.Error())
		}
	})
}

// detach severs the cancellation link to the caller: the request finishing
// (or failing) must not cancel an in-flight side effect.
func (d *Dispatcher) detach(ctx context.Context, fn func(ctx context.Context)) {
	detached := context.WithoutCancel(ctx)
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		fn(detached)
	}()
}

// Flush blocks until all in-flight side effects have finished. Tests use it
// to observe the fan-out deterministically.
func (d *Dispatcher) Flush() {
	d.wg.Wait()
}
