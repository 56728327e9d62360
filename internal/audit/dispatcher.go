package audit

import "go.uber.org/zap"

type Event struct {
	Action   string
	Entity   string
	EntityID string
	Metadata any
}

// Dispatcher persists audit events off the request path. The queue is
// bounded; when full, events are dropped rather than blocking the API.
type Dispatcher struct {
	logger *Logger
	zlog   *zap.Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger, zlog *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		zlog:   zlog,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(ev.Action, ev.Entity, ev.EntityID, ev.Metadata); err != nil {
			d.zlog.Warn("audit write failed",
				zap.String("action", ev.Action),
				zap.Error(err),
			)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		d.zlog.Warn("audit queue full, dropping event",
			zap.String("action", ev.Action),
		)
	}
}

// Close stops accepting events and lets the worker drain what is queued.
// Dispatching after Close panics; callers close only at shutdown.
func (d *Dispatcher) Close() {
	close(d.queue)
}
