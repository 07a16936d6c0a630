package debugctx

import (
	"context"
	"fmt"
	"io"
	"strings"
)

type enabledKey struct{}
type writerKey struct{}
type labelKey struct{}

func WithEnabled(ctx context.Context, enabled bool) context.Context {
	return context.WithValue(ctx, enabledKey{}, enabled)
}

func Enabled(ctx context.Context) bool {
	if ctx == nil {
		return false
	}

	enabled, _ := ctx.Value(enabledKey{}).(bool)
	return enabled
}

func WithWriter(ctx context.Context, writer io.Writer) context.Context {
	if writer == nil {
		return ctx
	}

	return context.WithValue(ctx, writerKey{}, writer)
}

func Writer(ctx context.Context) io.Writer {
	if ctx == nil {
		return nil
	}

	writer, _ := ctx.Value(writerKey{}).(io.Writer)
	return writer
}

// WithLabel tags every debug line printed under ctx, typically with the
// hydration run ID so interleaved fetch output stays attributable.
func WithLabel(ctx context.Context, label string) context.Context {
	label = strings.TrimSpace(label)
	if label == "" {
		return ctx
	}
	return context.WithValue(ctx, labelKey{}, label)
}

func Label(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	label, _ := ctx.Value(labelKey{}).(string)
	return label
}

func Printf(ctx context.Context, format string, args ...any) {
	if !Enabled(ctx) {
		return
	}

	writer := Writer(ctx)
	if writer == nil {
		return
	}

	message := strings.TrimSpace(fmt.Sprintf(format, args...))
	if message == "" {
		return
	}

	if label := Label(ctx); label != "" {
		_, _ = fmt.Fprintf(writer, "debug[%s]: %s\n", label, message)
		return
	}
	_, _ = fmt.Fprintf(writer, "debug: %s\n", message)
}
