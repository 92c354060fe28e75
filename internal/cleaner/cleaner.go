// Package cleaner provides retried, logged teardown on top of the
// defers primitives.
package cleaner

import (
	"context"
	"fmt"
	"time"

	utilerrors "k8s.io/apimachinery/pkg/util/errors"
	"k8s.io/apimachinery/pkg/util/wait"

	"github.com/AhmadAlHallak/defer-go/internal/log"
	"github.com/AhmadAlHallak/defer-go/pkg/defers"
)

// retryInterval is the initial wait between two attempts of the same
// cleanup function.
const retryInterval = 10 * time.Millisecond

// Cleaner collects teardown steps that may fail transiently and runs
// them on Cleanup in reverse registration order, retrying each step
// with exponential backoff.
//
// Like defers.Group, a Cleaner is single-shot and not safe for
// concurrent use.
type Cleaner struct {
	group *defers.Group
	errs  []error
}

// New creates a new Cleaner.
func New() *Cleaner {
	return &Cleaner{group: defers.NewGroup()}
}

// Add registers a named teardown step. Steps run in reverse order of
// registration, the most recently added first.
func (c *Cleaner) Add(ctx context.Context, description string, fn func() error) {
	c.group.Add(func() {
		log.Debugf(ctx, "Running cleanup: %s", description)
		if err := c.retry(ctx, fn); err != nil {
			log.Errorf(ctx, "Cleanup %q failed: %v", description, err)
			c.errs = append(c.errs, fmt.Errorf("%s: %w", description, err))
		}
	})
}

// Cleanup runs every registered step and returns the aggregated error
// of the steps that still failed after retrying.
func (c *Cleaner) Cleanup() error {
	c.group.Run()

	return utilerrors.NewAggregate(c.errs)
}

func (c *Cleaner) retry(ctx context.Context, fn func() error) error {
	var lastErr error
	err := wait.ExponentialBackoff(wait.Backoff{
		Duration: retryInterval,
		Factor:   1.5,
		Steps:    defaultRetryTimes,
	}, func() (bool, error) {
		if err := ctx.Err(); err != nil {
			return false, err
		}

		if lastErr = fn(); lastErr != nil {
			log.Debugf(ctx, "Retrying cleanup: %v", lastErr)

			return false, nil
		}

		return true, nil
	})
	if err != nil && lastErr != nil {
		// Surface the step's own error rather than the backoff timeout.
		return lastErr
	}

	return err
}
