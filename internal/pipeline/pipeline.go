// Package pipeline wires the classifier, the extraction engines, and
// the formatter registry into the single entry point callers use. A
// Pipeline is stateless per call: concurrent Process calls share no
// mutable state.
package pipeline

import (
	"context"

	"go.uber.org/zap"

	"github.com/fyrsmithlabs/noteflow/internal/classify"
	"github.com/fyrsmithlabs/noteflow/internal/config"
	"github.com/fyrsmithlabs/noteflow/internal/extract"
	"github.com/fyrsmithlabs/noteflow/internal/format"
	"github.com/fyrsmithlabs/noteflow/internal/llm"
	"github.com/fyrsmithlabs/noteflow/internal/metrics"
	"github.com/fyrsmithlabs/noteflow/internal/notes"
)

// Result is everything Process produces for one note: the
// classification, the type-appropriate extracted record (at most one
// of the pointers is set), and display formatting.
type Result struct {
	Classification notes.Classification `json:"classification"`
	Todos          *notes.TodoList      `json:"todos,omitempty"`
	Event          *notes.Event         `json:"event,omitempty"`
	Contact        *notes.Contact       `json:"contact,omitempty"`
	Shopping       *notes.ShoppingList  `json:"shopping,omitempty"`
	Format         format.Result        `json:"format"`
}

// Pipeline is the assembled classification-and-extraction pipeline.
type Pipeline struct {
	classifier *classify.Classifier
	engine     *extract.Engine
	formatters *format.Registry
	registry   *notes.TypeRegistry
	metrics    *metrics.Metrics
	logger     *zap.Logger
}

// New assembles a pipeline from explicit parts. m may be nil.
func New(registry *notes.TypeRegistry, client llm.Client, cfg *config.Config, logger *zap.Logger, m *metrics.Metrics) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{
		classifier: classify.New(registry, client, cfg.Classify, logger),
		engine:     extract.NewEngine(client, cfg.Extract, logger, m),
		formatters: format.NewRegistry(),
		registry:   registry,
		metrics:    m,
		logger:     logger.Named("pipeline"),
	}
}

// FromConfig builds a pipeline with the default type registry and a
// config-selected LLM client.
func FromConfig(cfg *config.Config, logger *zap.Logger, m *metrics.Metrics) (*Pipeline, error) {
	client, err := llm.NewClient(cfg.LLM)
	if err != nil {
		return nil, err
	}
	return New(notes.DefaultTypeRegistry(), client, cfg, logger, m), nil
}

// Classifier exposes the classifier for callers that only classify.
func (p *Pipeline) Classifier() *classify.Classifier {
	return p.classifier
}

// Engine exposes the extraction engines.
func (p *Pipeline) Engine() *extract.Engine {
	return p.engine
}

// Process classifies text and runs the extraction engine matching the
// resulting type. It always returns a usable Result: classification
// always resolves and extraction is best-effort.
func (p *Pipeline) Process(ctx context.Context, text, explicitTrigger string) Result {
	cls := p.classifier.Classify(ctx, text, explicitTrigger)
	p.metrics.ObserveClassification(cls.Type.String(), string(cls.Method))
	p.logger.Debug("classified note",
		zap.String("type", cls.Type.String()),
		zap.String("method", string(cls.Method)),
		zap.Float64("confidence", cls.Confidence))

	res := Result{
		Classification: cls,
		Format:         p.formatters.Format(cls.Type, text),
	}

	switch cls.Type {
	case notes.TypeTodo:
		p.metrics.ObserveExtraction("todo")
		list := p.engine.Todos(ctx, text)
		res.Todos = &list
	case notes.TypeShopping:
		p.metrics.ObserveExtraction("shopping")
		list := p.engine.Shopping(ctx, text)
		res.Shopping = &list
	case notes.TypeEvent, notes.TypeMeeting:
		p.metrics.ObserveExtraction("event")
		ev := p.engine.Event(ctx, text)
		res.Event = &ev
	case notes.TypeContact:
		p.metrics.ObserveExtraction("contact")
		c := p.engine.Contact(ctx, text)
		res.Contact = &c
	}

	return res
}
