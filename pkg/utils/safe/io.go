package safe

import (
	"context"
	"io"
	"net/http"

	"github.com/ecorisk-lab/climatevar/pkg/utils/logging"
)

// Close closes c and logs a failure under the given resource name. A nil closer is a no-op.
func Close(ctx context.Context, c io.Closer, resource string) {
	if c == nil {
		return
	}
	if err := c.Close(); err != nil {
		logging.From(ctx).Error("close failed", "resource", resource, "error", err)
	}
}

// Respond commits status and content type, then writes a fully rendered body.
// Write errors after the header is sent can only be logged.
func Respond(ctx context.Context, w http.ResponseWriter, status int, contentType string, body []byte) {
	if contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		logging.From(ctx).Warn("response write failed", "status", status, "bytes", len(body), "error", err)
	}
}
