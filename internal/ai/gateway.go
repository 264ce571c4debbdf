package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/example/wordlearner/internal/logger"
	"github.com/example/wordlearner/pkg/models"
)

var (
	// ErrUnavailable is returned when a session cannot be created because the
	// capability is not ready
	ErrUnavailable = errors.New("ai unavailable")
	// ErrGeneration wraps any failure while prompting
	ErrGeneration = errors.New("generation failed")
	// ErrParse is returned when an evaluation reply carries no usable JSON object
	ErrParse = errors.New("failed to parse evaluation response")
)

// Gateway owns the single session to the text-generation capability.
// The session is created on first use and dropped after any failure, so the
// next call starts a fresh one. Nothing is retried automatically.
type Gateway struct {
	capability Capability
	log        *logger.Logger

	mu      sync.Mutex
	session Session
}

// NewGateway creates a gateway over capability
func NewGateway(capability Capability, log *logger.Logger) *Gateway {
	if log == nil {
		log = logger.Nop()
	}
	return &Gateway{
		capability: capability,
		log:        log.With("component", "ai"),
	}
}

// CheckAvailability reports whether prompts can be served, with a reason when not
func (g *Gateway) CheckAvailability(ctx context.Context) Availability {
	status, err := g.capability.Availability(ctx)
	if err != nil {
		return Availability{Available: false, Status: StatusUnavailable, Reason: err.Error()}
	}
	return Availability{
		Available: status == StatusAvailable,
		Status:    status,
		Reason:    reasonFor(status),
	}
}

func (g *Gateway) ensureSession(ctx context.Context) (Session, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.session != nil {
		return g.session, nil
	}

	a := g.CheckAvailability(ctx)
	if !a.Available {
		reason := a.Reason
		if reason == "" {
			reason = "AI not available"
		}
		return nil, fmt.Errorf("%w: %s", ErrUnavailable, reason)
	}

	session, err := g.capability.CreateSession(ctx, systemPrompt)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	g.session = session
	g.log.Debug("ai session created")
	return session, nil
}

func (g *Gateway) discardSession() {
	g.mu.Lock()
	g.session = nil
	g.mu.Unlock()
}

// Download forces the session to be created
func (g *Gateway) Download(ctx context.Context) error {
	_, err := g.ensureSession(ctx)
	return err
}

// Generate sends prompt to the session. Any failure drops the session and is
// returned wrapped in ErrGeneration.
func (g *Gateway) Generate(ctx context.Context, prompt string) (string, error) {
	session, err := g.ensureSession(ctx)
	if err == nil {
		var content string
		content, err = session.Prompt(ctx, prompt)
		if err == nil {
			return content, nil
		}
	}

	g.discardSession()
	g.log.Warn("ai generation failed", "error", err)
	return "", fmt.Errorf("%w: %w", ErrGeneration, err)
}

// ExtractBaseForm returns the dictionary form of word. It never fails: any
// problem yields the lower-cased word instead.
func (g *Gateway) ExtractBaseForm(ctx context.Context, word, snippet string) string {
	fallback := strings.ToLower(strings.TrimSpace(word))

	content, err := g.Generate(ctx, baseFormPrompt(word, snippet))
	if err != nil {
		return fallback
	}

	base := cleanBaseForm(content)
	if base == "" {
		return fallback
	}
	return base
}

// cleanBaseForm keeps the first line of the reply, lower-cased and without
// quotes or trailing punctuation
func cleanBaseForm(content string) string {
	line := strings.TrimSpace(content)
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	line = strings.Trim(line, " \t\"'`.,;:!?")
	return strings.ToLower(line)
}

// GenerateExample asks for one short sentence using word
func (g *Gateway) GenerateExample(ctx context.Context, word string) (string, error) {
	return g.Generate(ctx, examplePrompt(word))
}

// Evaluate grades a sentence the user wrote with word
func (g *Gateway) Evaluate(ctx context.Context, sentence, word string) (*models.Evaluation, error) {
	content, err := g.Generate(ctx, evaluationPrompt(sentence, word))
	if err != nil {
		return nil, err
	}
	return ParseEvaluation(content)
}

// ParseEvaluation decodes the first JSON object found in a model reply
func ParseEvaluation(content string) (*models.Evaluation, error) {
	obj, ok := firstJSONObject(content)
	if !ok {
		return nil, ErrParse
	}

	var evaluation models.Evaluation
	if err := json.Unmarshal([]byte(obj), &evaluation); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if !evaluation.Rating.IsValid() {
		return nil, fmt.Errorf("%w: unknown rating %q", ErrParse, evaluation.Rating)
	}
	return &evaluation, nil
}
