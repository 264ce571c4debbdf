package words

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/example/wordlearner/internal/ai"
	"github.com/example/wordlearner/internal/database"
	"github.com/example/wordlearner/internal/logger"
	"github.com/example/wordlearner/internal/stats"
	"github.com/example/wordlearner/pkg/models"
)

// ErrEmptyWord is returned by Save when the word is blank
var ErrEmptyWord = errors.New("word is empty")

// BaseFormer derives dictionary forms. *ai.Gateway satisfies it.
type BaseFormer interface {
	CheckAvailability(ctx context.Context) ai.Availability
	ExtractBaseForm(ctx context.Context, word, snippet string) string
}

// SaveResult is the outcome of Save. Exactly one of Word or Duplicate is set.
type SaveResult struct {
	Word *models.WordRecord
	// Duplicate is true when an existing record blocked the save
	Duplicate    bool
	ExistingWord string
	// BaseForm is set when the duplicate was found through the base form
	BaseForm string
}

// Service manages the saved words
type Service struct {
	repo     *database.WordRepository
	engine   *stats.Engine
	baseForm BaseFormer
	log      *logger.Logger

	mu sync.Mutex
}

// NewService creates a word service. baseForm may be nil, in which case base
// forms are the lower-cased words.
func NewService(repo *database.WordRepository, engine *stats.Engine, baseForm BaseFormer, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo:     repo,
		engine:   engine,
		baseForm: baseForm,
		log:      log.With("component", "words"),
	}
}

// Save stores a new word unless it duplicates an existing one by surface
// text or, when the AI is available, by base form.
func (s *Service) Save(ctx context.Context, word, snippet, sourceURL string) (SaveResult, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return SaveResult{}, ErrEmptyWord
	}
	if strings.TrimSpace(snippet) == "" {
		snippet = word
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	words, err := s.repo.GetAll(ctx)
	if err != nil {
		return SaveResult{}, err
	}

	for _, w := range words {
		if w.SameWord(word) {
			return SaveResult{Duplicate: true, ExistingWord: w.Word}, nil
		}
	}

	baseForm := strings.ToLower(word)
	if s.baseForm != nil && s.baseForm.CheckAvailability(ctx).Available {
		baseForm = s.baseForm.ExtractBaseForm(ctx, word, snippet)
		for _, w := range words {
			if w.SameBaseForm(baseForm) {
				return SaveResult{Duplicate: true, ExistingWord: w.Word, BaseForm: baseForm}, nil
			}
		}
	}

	record := models.WordRecord{
		ID:        uuid.NewString(),
		Word:      word,
		BaseForm:  baseForm,
		Context:   snippet,
		SourceURL: sourceURL,
		CreatedAt: s.engine.Clock().Now(),
	}
	words = append(words, record)

	if err := s.repo.SaveAll(ctx, words); err != nil {
		return SaveResult{}, err
	}
	s.log.Info("word saved", "word", record.Word, "base_form", record.BaseForm, "total", len(words))

	// The word is stored at this point; a later attempt would only report a duplicate
	if _, err := s.engine.CheckAchievements(ctx, len(words)); err != nil {
		s.log.Warn("failed to check achievements after save", "word", record.Word, "error", err)
	}
	return SaveResult{Word: &record}, nil
}

// List returns all words in storage order
func (s *Service) List(ctx context.Context) ([]models.WordRecord, error) {
	return s.repo.GetAll(ctx)
}

// Count returns the number of saved words
func (s *Service) Count(ctx context.Context) (int, error) {
	words, err := s.repo.GetAll(ctx)
	if err != nil {
		return 0, err
	}
	return len(words), nil
}

// Get returns the word with the given id
func (s *Service) Get(ctx context.Context, id string) (models.WordRecord, bool, error) {
	words, err := s.repo.GetAll(ctx)
	if err != nil {
		return models.WordRecord{}, false, err
	}
	for _, w := range words {
		if w.ID == id {
			return w, true, nil
		}
	}
	return models.WordRecord{}, false, nil
}

// Delete removes the word with the given id. Unknown ids are ignored.
func (s *Service) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	words, err := s.repo.GetAll(ctx)
	if err != nil {
		return err
	}

	kept := words[:0]
	for _, w := range words {
		if w.ID != id {
			kept = append(kept, w)
		}
	}
	if len(kept) == len(words) {
		return nil
	}
	return s.repo.SaveAll(ctx, kept)
}

// RecordPractice marks the word as practiced now and counts the sentence in
// the daily statistics. The statistics are updated even for unknown ids.
func (s *Service) RecordPractice(ctx context.Context, id string, rating models.Rating) (*models.Stats, []string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	words, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, nil, err
	}

	for i := range words {
		if words[i].ID != id {
			continue
		}
		now := s.engine.Clock().Now()
		words[i].PracticeCount++
		words[i].LastPracticed = &now
		if err := s.repo.SaveAll(ctx, words); err != nil {
			return nil, nil, err
		}
		break
	}

	return s.engine.RecordPractice(ctx, rating, len(words))
}

// SetExample caches sentence on the first record matching word. It reports
// whether a record was updated.
func (s *Service) SetExample(ctx context.Context, word, sentence string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	words, err := s.repo.GetAll(ctx)
	if err != nil {
		return false, err
	}
	for i := range words {
		if words[i].SameWord(word) {
			words[i].ExampleSentence = sentence
			return true, s.repo.SaveAll(ctx, words)
		}
	}
	return false, nil
}

// Clear removes every saved word
func (s *Service) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.Clear(ctx)
}
