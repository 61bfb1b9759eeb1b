package notify

import (
	"context"

	logger "github.com/sirupsen/logrus"
)

const queueSize = 64

type Sender interface {
	SendWhatsApp(ctx context.Context, body string) error
}

// Dispatcher delivers notifications from a background goroutine, decoupled
// from the request that produced them. Delivery is best effort: failures
// are logged and dropped, never retried, never surfaced to the caller.
type Dispatcher struct {
	sender Sender
	events chan Event
	done   chan struct{}
}

func NewDispatcher(ctx context.Context, sender Sender) *Dispatcher {
	d := &Dispatcher{
		sender: sender,
		events: make(chan Event, queueSize),
		done:   make(chan struct{}),
	}
	go d.run(ctx)
	return d
}

// Disabled returns a dispatcher whose Publish is a no-op, for deployments
// without messaging credentials.
func Disabled() *Dispatcher {
	return &Dispatcher{}
}

// Publish enqueues an event without blocking. When the queue is full the
// event is dropped; an order intake never waits on the ops channel.
func (d *Dispatcher) Publish(e Event) {
	if d.events == nil {
		return
	}
	select {
	case d.events <- e:
	default:
		logger.Warningf("Notification queue full, dropping %s for order %s", e.Kind, e.Reference)
	}
}

func (d *Dispatcher) run(ctx context.Context) {
	defer close(d.done)
	for {
		select {
		case <-ctx.Done():
			logger.Info("Context cancel, stopping notification dispatcher")
			return
		case e, ok := <-d.events:
			if !ok {
				return
			}
			message, known := BuildMessage(e)
			if !known {
				logger.Warningf("No message template for event %s", e.Kind)
				continue
			}
			if err := d.sender.SendWhatsApp(ctx, message); err != nil {
				logger.Warningf("Notification for order %s failed: %s", e.Reference, err.Error())
				continue
			}
			logger.Infof("Sent %s notification for order %s", e.Kind, e.Reference)
		}
	}
}

// Close drains nothing: queued events still in flight are delivered, then
// the background goroutine exits.
func (d *Dispatcher) Close() {
	if d.events == nil {
		return
	}
	close(d.events)
	<-d.done
}
