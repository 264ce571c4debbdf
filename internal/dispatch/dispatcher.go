package dispatch

import (
	"context"
	"errors"
	"fmt"

	"github.com/example/wordlearner/internal/ai"
	"github.com/example/wordlearner/internal/database"
	"github.com/example/wordlearner/internal/excel"
	"github.com/example/wordlearner/internal/logger"
	"github.com/example/wordlearner/internal/spaced_repetition"
	"github.com/example/wordlearner/internal/stats"
	"github.com/example/wordlearner/internal/words"
	"github.com/example/wordlearner/pkg/models"
)

// Messages returned as result fields
const (
	MsgUnknownAction  = "Unknown action"
	MsgDuplicate      = "Word already saved"
	MsgEmptyWord      = "Word is empty"
	MsgGoalOutOfRange = "Daily goal must be between 1 and 50"
	MsgNoWord         = "No word available"
)

// Dispatcher routes requests to the component that owns them
type Dispatcher struct {
	words    *words.Service
	engine   *stats.Engine
	selector *spaced_repetition.Selector
	gateway  *ai.Gateway
	errors   *database.ErrorRepository
	settings *database.SettingsRepository
	log      *logger.Logger
}

// Deps are the components a Dispatcher routes to
type Deps struct {
	Words    *words.Service
	Engine   *stats.Engine
	Selector *spaced_repetition.Selector
	Gateway  *ai.Gateway
	Errors   *database.ErrorRepository
	Settings *database.SettingsRepository
	Log      *logger.Logger
}

func New(d Deps) *Dispatcher {
	log := d.Log
	if log == nil {
		log = logger.Nop()
	}
	return &Dispatcher{
		words:    d.Words,
		engine:   d.Engine,
		selector: d.Selector,
		gateway:  d.Gateway,
		errors:   d.Errors,
		settings: d.Settings,
		log:      log.With("component", "dispatch"),
	}
}

// ValidGoal reports whether goal is an accepted daily goal
func ValidGoal(goal int) bool {
	return goal >= models.MinDailyGoal && goal <= models.MaxDailyGoal
}

// HandleJSON decodes a raw request and handles it
func (d *Dispatcher) HandleJSON(ctx context.Context, data []byte) Response {
	req, err := Decode(data)
	if errors.Is(err, ErrUnknownAction) {
		d.log.Warn("unknown action", "error", err)
		return fail(MsgUnknownAction)
	}
	if err != nil {
		return failErr(err)
	}
	return d.Handle(ctx, req)
}

// Handle runs req and returns its result
func (d *Dispatcher) Handle(ctx context.Context, req Request) Response {
	d.log.Debug("handling request", "action", req.Action())

	switch r := req.(type) {
	case SaveWord:
		return d.saveWord(ctx, r)
	case GetWords:
		return d.getWords(ctx)
	case DeleteWord:
		return d.deleteWord(ctx, r)
	case GenerateSentence:
		return d.generateSentence(ctx, r)
	case EvaluateSentence:
		return d.evaluateSentence(ctx, r)
	case GetStats:
		return d.getStats(ctx)
	case UpdateStats:
		return d.updateStats(ctx, r)
	case GetRandomWord:
		return d.getRandomWord(ctx)
	case RecordPractice:
		return d.recordPractice(ctx, r)
	case CheckAI:
		return d.checkAI(ctx)
	case DownloadAI:
		return d.downloadAI(ctx)
	case LogError:
		return d.logError(ctx, r)
	case GetErrors:
		return d.getErrors(ctx)
	case ClearErrors:
		return d.clearErrors(ctx)
	case GetSettings:
		return d.getSettings(ctx)
	case SaveSettings:
		return d.saveSettings(ctx, r)
	case ExportData:
		return d.exportData(ctx)
	case ClearData:
		return d.clearData(ctx, r)
	case GetAchievements:
		return d.getAchievements(ctx)
	default:
		return fail(MsgUnknownAction)
	}
}

func (d *Dispatcher) saveWord(ctx context.Context, r SaveWord) Response {
	res, err := d.words.Save(ctx, r.Word, r.Context, r.URL)
	if errors.Is(err, words.ErrEmptyWord) {
		return fail(MsgEmptyWord)
	}
	if err != nil {
		d.log.Error("save word failed", "word", r.Word, "error", err)
		resp := Response{Success: false, Error: err.Error()}
		if _, logErr := d.errors.Log(ctx, err.Error(), "", fmt.Sprintf("saveWord failed: %s", r.Word)); logErr != nil {
			d.log.Error("failed to log error", "error", logErr)
		} else {
			resp.Logged = true
		}
		return resp
	}
	if res.Duplicate {
		return Response{
			Success:      false,
			Error:        MsgDuplicate,
			Duplicate:    true,
			ExistingWord: res.ExistingWord,
			BaseForm:     res.BaseForm,
		}
	}
	return Response{Success: true, Word: res.Word}
}

func (d *Dispatcher) getWords(ctx context.Context) Response {
	list, err := d.words.List(ctx)
	if err != nil {
		return failErr(err)
	}
	if list == nil {
		list = []models.WordRecord{}
	}
	return Response{Success: true, Words: list}
}

func (d *Dispatcher) deleteWord(ctx context.Context, r DeleteWord) Response {
	if err := d.words.Delete(ctx, r.ID); err != nil {
		return failErr(err)
	}
	return Response{Success: true}
}

func (d *Dispatcher) generateSentence(ctx context.Context, r GenerateSentence) Response {
	content, err := d.gateway.GenerateExample(ctx, r.Word)
	if err != nil {
		return failErr(err)
	}
	if _, err := d.words.SetExample(ctx, r.Word, content); err != nil {
		d.log.Warn("failed to cache example", "word", r.Word, "error", err)
	}
	return Response{Success: true, Content: content}
}

func (d *Dispatcher) evaluateSentence(ctx context.Context, r EvaluateSentence) Response {
	evaluation, err := d.gateway.Evaluate(ctx, r.UserSentence, r.Word)
	if err != nil {
		return failErr(err)
	}
	return Response{Success: true, Evaluation: evaluation}
}

func (d *Dispatcher) getStats(ctx context.Context) Response {
	s, err := d.engine.Get(ctx)
	if err != nil {
		return failErr(err)
	}
	return Response{Success: true, Stats: s, Badge: stats.Badge(s)}
}

func (d *Dispatcher) updateStats(ctx context.Context, r UpdateStats) Response {
	if r.Updates.DailyGoal != nil && !ValidGoal(*r.Updates.DailyGoal) {
		return fail(MsgGoalOutOfRange)
	}
	s, err := d.engine.Update(ctx, r.Updates)
	if err != nil {
		return failErr(err)
	}
	return Response{Success: true, Stats: s, Badge: stats.Badge(s)}
}

func (d *Dispatcher) getRandomWord(ctx context.Context) Response {
	list, err := d.words.List(ctx)
	if err != nil {
		return failErr(err)
	}
	w, ok := d.selector.Pick(list)
	if !ok {
		return fail(MsgNoWord)
	}
	return Response{Success: true, Word: &w}
}

func (d *Dispatcher) recordPractice(ctx context.Context, r RecordPractice) Response {
	s, unlocked, err := d.words.RecordPractice(ctx, r.WordID, r.Rating)
	if err != nil {
		return failErr(err)
	}
	return Response{Success: true, Stats: s, Unlocked: unlocked, Badge: stats.Badge(s)}
}

func (d *Dispatcher) checkAI(ctx context.Context) Response {
	a := d.gateway.CheckAvailability(ctx)
	return Response{Success: true, Available: &a.Available, Status: a.Status, Reason: a.Reason}
}

func (d *Dispatcher) downloadAI(ctx context.Context) Response {
	if err := d.gateway.Download(ctx); err != nil {
		return failErr(err)
	}
	return Response{Success: true}
}

func (d *Dispatcher) logError(ctx context.Context, r LogError) Response {
	entry, err := d.errors.Log(ctx, r.Error.Message, r.Error.Stack, r.Context)
	if err != nil {
		return failErr(err)
	}
	d.log.Warn("client error logged", "id", entry.ID, "message", entry.Message, "context", entry.Context)
	return Response{Success: true}
}

func (d *Dispatcher) getErrors(ctx context.Context) Response {
	entries, err := d.errors.List(ctx)
	if err != nil {
		return failErr(err)
	}
	if entries == nil {
		entries = []models.ErrorEntry{}
	}
	return Response{Success: true, Errors: entries}
}

func (d *Dispatcher) clearErrors(ctx context.Context) Response {
	if err := d.errors.Clear(ctx); err != nil {
		return failErr(err)
	}
	return Response{Success: true}
}

func (d *Dispatcher) getSettings(ctx context.Context) Response {
	settings, err := d.settings.Get(ctx)
	if err != nil {
		return failErr(err)
	}
	s, err := d.engine.Get(ctx)
	if err != nil {
		return failErr(err)
	}
	return Response{Success: true, Settings: &settings, Stats: s}
}

func (d *Dispatcher) saveSettings(ctx context.Context, r SaveSettings) Response {
	if r.DailyGoal != nil && !ValidGoal(*r.DailyGoal) {
		return fail(MsgGoalOutOfRange)
	}

	settings := r.Settings
	if settings.TargetLanguage == "" {
		settings.TargetLanguage = models.DefaultSettings().TargetLanguage
	}
	if err := d.settings.Save(ctx, settings); err != nil {
		return failErr(err)
	}

	resp := Response{Success: true, Settings: &settings}
	if r.DailyGoal != nil {
		s, err := d.engine.Update(ctx, models.StatsUpdate{DailyGoal: r.DailyGoal})
		if err != nil {
			return failErr(err)
		}
		resp.Stats = s
		resp.Badge = stats.Badge(s)
	}
	return resp
}

func (d *Dispatcher) exportData(ctx context.Context) Response {
	list, err := d.words.List(ctx)
	if err != nil {
		return failErr(err)
	}
	s, err := d.engine.Get(ctx)
	if err != nil {
		return failErr(err)
	}
	doc := excel.NewExportDocument(list, s, d.engine.Clock().Now())
	return Response{Success: true, Export: &doc}
}

func (d *Dispatcher) clearData(ctx context.Context, r ClearData) Response {
	goal := 0
	if r.DailyGoal != nil {
		if !ValidGoal(*r.DailyGoal) {
			return fail(MsgGoalOutOfRange)
		}
		goal = *r.DailyGoal
	} else {
		current, err := d.engine.Get(ctx)
		if err != nil {
			return failErr(err)
		}
		goal = current.DailyGoal
	}

	if err := d.words.Clear(ctx); err != nil {
		return failErr(err)
	}
	s, err := d.engine.Reset(ctx, goal)
	if err != nil {
		return failErr(err)
	}
	d.log.Info("all data cleared")
	return Response{Success: true, Stats: s, Badge: stats.Badge(s)}
}

func (d *Dispatcher) getAchievements(ctx context.Context) Response {
	s, err := d.engine.Get(ctx)
	if err != nil {
		return failErr(err)
	}
	return Response{Success: true, Achievements: stats.Achievements(s)}
}
