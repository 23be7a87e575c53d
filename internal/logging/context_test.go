package logging_test

import (
	"context"
	"testing"

	"github.com/evanacox/cascade/internal/logging"
)

func TestFromContext_FallsBackToDefault(t *testing.T) {
	t.Parallel()

	if logging.FromContext(context.Background()) != logging.Default() {
		t.Error("expected the default logger for a bare context")
	}

	//nolint:staticcheck // nil context is exactly the case under test
	if logging.FromContext(nil) != logging.Default() {
		t.Error("expected the default logger for a nil context")
	}
}

func TestWithLogger_RoundTrips(t *testing.T) {
	t.Parallel()

	logger := logging.New("debug")
	ctx := logging.WithLogger(context.Background(), logger)

	if logging.FromContext(ctx) != logger {
		t.Error("expected the attached logger back")
	}
}

func TestWithStage_DerivesChildLogger(t *testing.T) {
	t.Parallel()

	logger := logging.New("debug")
	ctx := logging.WithLogger(context.Background(), logger)

	staged := logging.WithStage(ctx, "parse")

	got := logging.FromContext(staged)
	if got == nil {
		t.Fatal("expected a logger")
	}

	if got == logger {
		t.Error("expected a derived child logger, not the parent")
	}
}
