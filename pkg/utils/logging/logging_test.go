package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/ecorisk-lab/climatevar/pkg/utils/logging"
	"github.com/m-mizutani/gt"
)

func TestFrom_FallsBackToDefault(t *testing.T) {
	gt.Value(t, logging.From(context.Background())).Equal(logging.Default())
}

func TestWith_StoresLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	ctx := logging.With(context.Background(), logger)
	logging.From(ctx).Info("hello", "key", "value")

	gt.String(t, buf.String()).Contains(`"msg":"hello"`)
	gt.String(t, buf.String()).Contains(`"key":"value"`)
}
