// Package limiter paces outbound requests to the metadata services. The next
// allowed request time is persisted to a file so a restarted run stays
// polite after a rate-limit response. A Limiter is safe for concurrent use:
// Wait reserves the next slot under the lock, so parallel callers are let
// through one delay apart rather than all at once.
package limiter

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"sync"
	"time"
)

func New(filename string, delay time.Duration) *Limiter {
	return &Limiter{
		filename: filename,
		delay:    delay,
	}
}

type Limiter struct {
	filename string
	delay    time.Duration

	mu        sync.Mutex
	nextAt    time.Time
	persisted bool
}

// Load restores a persisted next-request time, if one exists.
func (lim *Limiter) Load() error {
	if _, err := os.Stat(lim.filename); errors.Is(err, os.ErrNotExist) {
		return nil
	} else if err != nil {
		return fmt.Errorf("error statting file: %w", err)
	}

	bs, err := os.ReadFile(lim.filename)
	if err != nil {
		return err
	}

	nextAt, err := time.Parse(time.UnixDate, string(bs))
	if err != nil {
		return err
	}

	lim.mu.Lock()
	lim.nextAt = nextAt
	lim.persisted = true
	lim.mu.Unlock()
	return nil
}

// Wait blocks until the next request is allowed or ctx is canceled. On
// return it has already claimed the slot, scheduling the next request one
// delay out, so concurrent waiters go through in single file.
func (lim *Limiter) Wait(ctx context.Context) error {
	for {
		lim.mu.Lock()
		now := time.Now()
		if !lim.nextAt.After(now) {
			lim.nextAt = now.Add(lim.delay)
			clearFile := lim.persisted
			lim.persisted = false
			lim.mu.Unlock()

			if clearFile {
				if err := os.Remove(lim.filename); err != nil &&
					!errors.Is(err, os.ErrNotExist) {
					return err
				}
			}
			return nil
		}
		nextAt := lim.nextAt
		lim.mu.Unlock()

		dur := time.Until(nextAt)
		if dur > time.Second {
			log.Printf("waiting %s until %s",
				dur.Truncate(time.Second),
				nextAt.Format(time.StampMilli))
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(dur):
		}
	}
}

// SetNextAt schedules and persists the next allowed request, from a
// Retry-After header value in seconds. An empty value means a minute.
func (lim *Limiter) SetNextAt(secondsStr string) error {
	if secondsStr == "" {
		secondsStr = "60"
	}
	seconds, err := strconv.ParseInt(secondsStr, 10, 64)
	if err != nil {
		return err
	}
	waitTime := time.Duration(seconds)*time.Second + time.Second

	lim.mu.Lock()
	lim.nextAt = time.Now().Add(waitTime)
	lim.persisted = true
	nextAt := lim.nextAt
	lim.mu.Unlock()

	if err := os.WriteFile(lim.filename, []byte(nextAt.Format(time.UnixDate)), 0666); err != nil {
		return err
	}
	return nil
}

// Delay schedules the next request one standard delay out from now, used
// after a response to pace from completion rather than from dispatch.
func (lim *Limiter) Delay() {
	lim.DelayBy(lim.delay)
}

func (lim *Limiter) DelayBy(d time.Duration) {
	lim.mu.Lock()
	if at := time.Now().Add(d); at.After(lim.nextAt) {
		lim.nextAt = at
	}
	lim.mu.Unlock()
}
