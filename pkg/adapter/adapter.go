// Package adapter composes credential validation and envelope building
// around application-supplied data functions, producing fiber handlers that
// speak the dashboard product's JSON API.
package adapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dashkit/widget-adapter/internal/auth"
	"github.com/dashkit/widget-adapter/internal/metrics"
	"github.com/dashkit/widget-adapter/internal/secure"
	"github.com/dashkit/widget-adapter/pkg/widget"
)

// deniedBody is the uniform response for any failed credential check. It
// deliberately does not distinguish a missing key from a wrong one.
const deniedBody = "API key incorrect"

// DataFunc is a business-logic callable. It receives the original request
// untouched and returns a native value matching the endpoint's widget kind.
type DataFunc func(c *fiber.Ctx) (any, error)

// Config is the immutable process configuration the adapter is built from.
type Config struct {
	// APIKey is the shared secret the dashboard product authenticates
	// with. Empty disables the credential check.
	APIKey string
	// EncryptionKey, when set, turns on response sealing.
	EncryptionKey string
}

// Adapter turns (widget kind, data function) pairs into request handlers.
// It holds no per-request state and is safe to share across handlers.
type Adapter struct {
	logger    *zap.Logger
	validator *auth.Validator
	sealer    *secure.Sealer
}

// New builds an adapter from configuration. The logger may be nil.
func New(cfg Config, logger *zap.Logger) (*Adapter, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &Adapter{
		logger:    logger,
		validator: auth.NewValidator(cfg.APIKey),
	}
	if cfg.EncryptionKey != "" {
		sealer, err := secure.NewSealer(cfg.EncryptionKey)
		if err != nil {
			return nil, fmt.Errorf("adapter: %w", err)
		}
		a.sealer = sealer
	}
	return a, nil
}

// Option customises a single widget endpoint.
type Option func(*endpoint)

type endpoint struct {
	params map[string]any
}

// WithParams merges extra top-level keys into the envelope, e.g.
// {"absolute": "true"} on a number widget.
func WithParams(params map[string]any) Option {
	return func(ep *endpoint) { ep.params = params }
}

// Widget wraps fn into a handler serving the given widget kind.
func (a *Adapter) Widget(kind widget.Kind, fn DataFunc, opts ...Option) fiber.Handler {
	var ep endpoint
	for _, opt := range opts {
		opt(&ep)
	}

	return func(c *fiber.Ctx) error {
		start := time.Now()
		requestID := uuid.NewString()

		if err := a.validator.Check(auth.FromRequest(c)); err != nil {
			metrics.AuthDenialsTotal.Inc()
			metrics.WidgetRequestsTotal.WithLabelValues(kind.String(), "denied").Inc()
			a.logger.Warn("widget.request.denied",
				zap.String("request_id", requestID),
				zap.String("kind", kind.String()),
				zap.String("path", c.Path()))
			return c.Status(fiber.StatusForbidden).SendString(deniedBody)
		}

		result, err := fn(c)
		if err != nil {
			a.logger.Error("widget.data.failed",
				zap.String("request_id", requestID),
				zap.String("kind", kind.String()),
				zap.String("path", c.Path()),
				zap.Error(err))
			return a.serverError(c, kind)
		}

		envelope, err := widget.Build(kind, result)
		if err != nil {
			var ive *widget.InvalidValueError
			if errors.As(err, &ive) {
				metrics.EnvelopeErrorsTotal.WithLabelValues(kind.String()).Inc()
			}
			a.logger.Error("widget.build.failed",
				zap.String("request_id", requestID),
				zap.String("kind", kind.String()),
				zap.Error(err))
			return a.serverError(c, kind)
		}
		for k, v := range ep.params {
			envelope[k] = v
		}

		body, err := json.Marshal(envelope)
		if err != nil {
			a.logger.Error("widget.encode.failed",
				zap.String("request_id", requestID),
				zap.String("kind", kind.String()),
				zap.Error(err))
			return a.serverError(c, kind)
		}

		if a.sealer != nil {
			sealed, err := a.sealer.Seal(body)
			if err != nil {
				a.logger.Error("widget.seal.failed",
					zap.String("request_id", requestID),
					zap.Error(err))
				return a.serverError(c, kind)
			}
			body, err = json.Marshal(sealed)
			if err != nil {
				a.logger.Error("widget.encode.failed",
					zap.String("request_id", requestID),
					zap.Error(err))
				return a.serverError(c, kind)
			}
		}

		metrics.WidgetRequestsTotal.WithLabelValues(kind.String(), "ok").Inc()
		metrics.RequestDuration.WithLabelValues(kind.String()).Observe(time.Since(start).Seconds())

		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.Status(fiber.StatusOK).Send(body)
	}
}

func (a *Adapter) serverError(c *fiber.Ctx, kind widget.Kind) error {
	metrics.WidgetRequestsTotal.WithLabelValues(kind.String(), "error").Inc()
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
}

// Number serves a number widget: a bare number, a [current, previous] pair
// or NumberItems.
func (a *Adapter) Number(fn DataFunc, opts ...Option) fiber.Handler {
	return a.Widget(widget.KindNumber, fn, opts...)
}

// RAG serves a red/amber/green widget from exactly three RAGItems.
func (a *Adapter) RAG(fn DataFunc, opts ...Option) fiber.Handler {
	return a.Widget(widget.KindRAG, fn, opts...)
}

// Text serves a text widget from strings or TextItems.
func (a *Adapter) Text(fn DataFunc, opts ...Option) fiber.Handler {
	return a.Widget(widget.KindText, fn, opts...)
}

// PieChart serves a pie chart from labelled PieSlices.
func (a *Adapter) PieChart(fn DataFunc, opts ...Option) fiber.Handler {
	return a.Widget(widget.KindPieChart, fn, opts...)
}

// LineChart serves a line chart from a LineChart value or a plain series.
func (a *Adapter) LineChart(fn DataFunc, opts ...Option) fiber.Handler {
	return a.Widget(widget.KindLineChart, fn, opts...)
}

// GeckOMeter serves a geck-o-meter from a Meter value.
func (a *Adapter) GeckOMeter(fn DataFunc, opts ...Option) fiber.Handler {
	return a.Widget(widget.KindGeckOMeter, fn, opts...)
}

// Funnel serves a funnel widget from a Funnel value.
func (a *Adapter) Funnel(fn DataFunc, opts ...Option) fiber.Handler {
	return a.Widget(widget.KindFunnel, fn, opts...)
}

// Bullet serves a bullet graph from a Bullet value.
func (a *Adapter) Bullet(fn DataFunc, opts ...Option) fiber.Handler {
	return a.Widget(widget.KindBullet, fn, opts...)
}

// List serves a list widget from ListItems.
func (a *Adapter) List(fn DataFunc, opts ...Option) fiber.Handler {
	return a.Widget(widget.KindList, fn, opts...)
}
