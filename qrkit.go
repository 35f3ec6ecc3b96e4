package qrkit

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/ahoikapptn/qrkit/pkg/compose"
	"github.com/ahoikapptn/qrkit/pkg/payload"
	"github.com/ahoikapptn/qrkit/pkg/render"
	"github.com/ahoikapptn/qrkit/pkg/style"
)

// Result bundles a composed artifact with the suggested download name.
type Result struct {
	Artifact *compose.Artifact
	Filename string
}

// Generator ties the payload encoder and the image composer together.
// Compositions are serialized: when calls overlap, they run one after the
// other in call order rather than racing, so the result of the last call
// reflects the last intent.
type Generator struct {
	composer *compose.Composer
	log      *slog.Logger
	mu       sync.Mutex
}

// Option configures a Generator.
type Option func(*Generator)

// WithRenderer swaps the QR renderer backing the composer.
func WithRenderer(r render.Renderer) Option {
	return func(g *Generator) { g.composer = compose.New(r) }
}

// WithLogger sets the logger for composition diagnostics.
func WithLogger(log *slog.Logger) Option {
	return func(g *Generator) {
		if log != nil {
			g.log = log
		}
	}
}

// New creates a Generator with the default skip2-backed renderer.
func New(opts ...Option) *Generator {
	g := &Generator{
		composer: compose.New(nil),
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate encodes the content into its payload string and composes the
// artifact for the requested target. The style config is normalized
// (defaults filled, size and logo bounds clamped) before composition; the
// caller's value is never mutated.
func (g *Generator) Generate(ctx context.Context, content payload.Content, cfg style.Config, target compose.Target) (*Result, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	data, err := payload.Encode(content)
	if err != nil {
		return nil, err
	}

	cfg = cfg.Normalize()
	if cfg.Logo != nil && cfg.ErrorCorrection != cfg.RecommendedLevel() {
		g.log.WarnContext(ctx, "logo covers modules; a stronger error-correction level is recommended",
			slog.String("level", string(cfg.ErrorCorrection)),
			slog.String("recommended", string(cfg.RecommendedLevel())))
	}

	artifact, err := g.composer.Compose(ctx, data, cfg, target)
	if err != nil {
		g.log.ErrorContext(ctx, "composition failed",
			slog.String("type", string(content.Type())),
			slog.String("target", string(target)),
			slog.Any("error", err))
		return nil, err
	}

	return &Result{
		Artifact: artifact,
		Filename: compose.Filename(content.Type(), target),
	}, nil
}
