package sender

import (
	"context"
	"errors"
	"time"

	"github.com/chabad360/go-osc-tracker/log"
	"github.com/chabad360/go-osc-tracker/osc"
	"github.com/chabad360/go-osc-tracker/spatial"
)

// BatchConfig configures a BatchSender.
type BatchConfig struct {
	Address string
	RateHz  int
	Kind    Kind
	// Reference is the AED reference frame; nil means Self.
	Reference *spatial.Frame
	// Self is the sender's own frame.
	Self      spatial.Frame
	IndexBase int
	Group     *int
}

// BatchSender sends every tracked position once per eligible tick.
//
// It is driven by a single caller; Tick must not be called concurrently.
type BatchSender struct {
	batch    Batch
	schedule Schedule
	sink     Sink
	source   Source
	logger   log.Logger

	messages int
}

// NewBatchSender validates the configuration and collaborators. Any problem is
// logged once and returned as a *ConfigurationError.
func NewBatchSender(cfg BatchConfig, sink Sink, source Source, logger log.Logger) (*BatchSender, error) {
	if logger == nil {
		logger = log.NewNopLogger()
	}

	fail := func(reason string) (*BatchSender, error) {
		err := &ConfigurationError{Component: "BatchSender", Reason: reason}
		logger.Errorf("%v", err)
		return nil, err
	}

	switch {
	case sink == nil:
		return fail("no sink")
	case source == nil:
		return fail("no tracked positions")
	case len(source.Positions()) == 0:
		return fail("no tracked positions")
	case cfg.RateHz <= 0:
		return fail("update rate must be positive")
	case cfg.Address == "":
		return fail("no address")
	case cfg.Kind != XYZ && cfg.Kind != AED:
		return fail("unknown coordinate system " + cfg.Kind.String())
	}

	return &BatchSender{
		batch: Batch{
			Address:   cfg.Address,
			Kind:      cfg.Kind,
			Reference: cfg.Reference,
			Self:      cfg.Self,
			IndexBase: cfg.IndexBase,
			Group:     cfg.Group,
		},
		schedule: Schedule{Rate: cfg.RateHz},
		sink:     sink,
		source:   source,
		logger:   logger.WithField("address", cfg.Address),
	}, nil
}

// Start makes the first batch due one interval after now.
func (b *BatchSender) Start(now time.Time) {
	b.schedule.Reset(now)
}

// Tick emits one batch if the update interval has elapsed since the last
// one, and returns the number of messages handed to the sink. Failing
// entities are logged and returned joined after the whole batch has been
// attempted.
func (b *BatchSender) Tick(now time.Time) (int, error) {
	if !b.schedule.Due(now) {
		return 0, nil
	}

	msgs, errs := AssembleBatch(b.batch, b.source.Positions())
	sent := 0
	for _, msg := range msgs {
		if err := b.send(msg); err != nil {
			errs = append(errs, err)
			continue
		}
		sent++
	}
	b.schedule.Mark(now)

	b.messages += sent

	for _, err := range errs {
		b.logger.Errorf("%v", err)
	}
	return sent, joinErrors(errs)
}

func (b *BatchSender) send(msg *osc.Message) error {
	b.logger.Debugf("Sending OSC message to %s: %v", msg.Address, msg)
	if err := b.sink.Send(msg.Address, PositionTypeTags, msg.Arguments); err != nil {
		return &EntityError{Index: int(msg.Arguments[1].(int32)) - b.batch.IndexBase, Err: err}
	}
	return nil
}

// Run ticks on every value from ticks until ctx is done or ticks is closed.
func (b *BatchSender) Run(ctx context.Context, ticks <-chan time.Time) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now, ok := <-ticks:
			if !ok {
				return nil
			}
			// Failures are already logged per entity.
			_, _ = b.Tick(now)
		}
	}
}

// Kind returns the coordinate system in use.
func (b *BatchSender) Kind() Kind {
	return b.batch.Kind
}

// Batches returns the number of batches emitted.
func (b *BatchSender) Batches() int {
	return b.schedule.Emissions()
}

// Messages returns the number of messages handed to the sink.
func (b *BatchSender) Messages() int {
	return b.messages
}

func joinErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	return errors.Join(errs...)
}
