package roster

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gaurav-prasanna/rosterpipe/core"
)

// ContainerError wraps a failure while building the record for one container.
type ContainerError struct {
	Index int
	Err   error
}

func (e *ContainerError) Error() string {
	return fmt.Sprintf("container %d: %v", e.Index, e.Err)
}

func (e *ContainerError) Unwrap() error { return e.Err }

// IsSkip reports whether err only means the container holds no legislator.
func IsSkip(err error) bool {
	return errors.Is(err, ErrNoProfileLink) || errors.Is(err, ErrNameTooShort)
}

// Scrape builds a record for every container, in order, and returns the
// deduplicated roster. A container that fails is logged and skipped.
func Scrape(ctx context.Context, containers []core.Container, b *Builder, logger *slog.Logger) []core.Legislator {
	if logger == nil {
		logger = slog.Default()
	}

	records := make([]core.Legislator, 0, len(containers))
	for i, c := range containers {
		rec, err := buildSafely(b, i, c)
		if err != nil {
			if IsSkip(err) {
				logger.DebugContext(ctx, "skipping container", "index", i, "err", err)
			} else {
				logger.WarnContext(ctx, "failed to scrape container", "index", i, "err", err)
			}
			continue
		}

		logger.InfoContext(ctx, "scraped",
			"name", rec.Name,
			"party", rec.Party,
			"position", rec.Position,
		)
		records = append(records, rec)
	}

	unique := Dedupe(records)
	if dropped := len(records) - len(unique); dropped > 0 {
		logger.DebugContext(ctx, "dropped duplicate names", "count", dropped)
	}
	return unique
}

// buildSafely converts a panic in Build into a ContainerError.
func buildSafely(b *Builder, index int, c core.Container) (rec core.Legislator, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &ContainerError{Index: index, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	rec, err = b.Build(c)
	if err != nil {
		return core.Legislator{}, &ContainerError{Index: index, Err: err}
	}
	return rec, nil
}
