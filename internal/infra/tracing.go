package infra

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"

	"github.com/andhikaputrab/vgsales-dashboard/internal/app/appconfig"
	"github.com/andhikaputrab/vgsales-dashboard/internal/pkg/bininfo"
	"github.com/andhikaputrab/vgsales-dashboard/internal/pkg/observability"
)

var ErrUnknownExporter = errors.New("unknown tracing exporter")

func exporter(ctx context.Context, name string) (sdktrace.SpanExporter, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "stdout":
		return stdouttrace.New(stdouttrace.WithPrettyPrint())
	case "otlp":
		return otlptracegrpc.New(ctx)
	case "jaeger":
		return jaeger.New(jaeger.WithCollectorEndpoint())
	default:
		return nil, errors.Wrap(ErrUnknownExporter, name)
	}
}

// TracerProvider registers the global tracer provider. Spans are dropped when tracing is disabled.
func TracerProvider(lc fx.Lifecycle, conf *appconfig.Config) (trace.TracerProvider, error) {
	if !conf.TracingEnabled {
		return trace.NewNoopTracerProvider(), nil
	}

	opts := []sdktrace.TracerProviderOption{
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(conf.TracingSampleRate))),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(observability.ServiceName),
			semconv.ServiceVersionKey.String(bininfo.Version),
			semconv.DeploymentEnvironmentKey.String(conf.AppContext.Env.String()),
		)),
	}
	for _, name := range conf.TracingExporters {
		exp, err := exporter(context.Background(), name)
		if err != nil {
			return nil, err
		}
		opts = append(opts, sdktrace.WithBatcher(exp))
	}

	tp := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)

	log.Info().
		Strs("exporters", conf.TracingExporters).
		Float64("sampleRate", conf.TracingSampleRate).
		Msg("tracing enabled")

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return tp.Shutdown(ctx)
		},
	})

	return tp, nil
}
