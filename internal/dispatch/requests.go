package dispatch

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/example/wordlearner/pkg/models"
)

// Action names as sent in the "action" field
const (
	ActionSaveWord         = "saveWord"
	ActionGetWords         = "getWords"
	ActionDeleteWord       = "deleteWord"
	ActionGenerateSentence = "generateSentence"
	ActionEvaluateSentence = "evaluateSentence"
	ActionGetStats         = "getStats"
	ActionUpdateStats      = "updateStats"
	ActionGetRandomWord    = "getRandomWord"
	ActionRecordPractice   = "recordPractice"
	ActionCheckAI          = "checkAI"
	ActionDownloadAI       = "downloadAI"
	ActionLogError         = "logError"
	ActionGetErrors        = "getErrors"
	ActionClearErrors      = "clearErrors"
	ActionGetSettings      = "getSettings"
	ActionSaveSettings     = "saveSettings"
	ActionExportData       = "exportData"
	ActionClearData        = "clearData"
	ActionGetAchievements  = "getAchievements"
)

// ErrUnknownAction is returned by Decode for an action tag outside the request set
var ErrUnknownAction = errors.New("unknown action")

// Request is one of the request kinds declared in this package. The set is
// closed: only types here implement it.
type Request interface {
	Action() string
	request()
}

type SaveWord struct {
	Word    string `json:"word"`
	Context string `json:"context"`
	URL     string `json:"url"`
}

type GetWords struct{}

type DeleteWord struct {
	ID string `json:"id"`
}

type GenerateSentence struct {
	Word string `json:"word"`
}

type EvaluateSentence struct {
	UserSentence string `json:"userSentence"`
	Word         string `json:"word"`
}

type GetStats struct{}

type UpdateStats struct {
	Updates models.StatsUpdate `json:"updates"`
}

type GetRandomWord struct{}

type RecordPractice struct {
	WordID string        `json:"wordId"`
	Rating models.Rating `json:"rating"`
}

type CheckAI struct{}

type DownloadAI struct{}

// ErrorInfo is the error object a client reports
type ErrorInfo struct {
	Message string `json:"message"`
	Stack   string `json:"stack,omitempty"`
}

type LogError struct {
	Error   ErrorInfo `json:"error"`
	Context string    `json:"context"`
}

type GetErrors struct{}

type ClearErrors struct{}

type GetSettings struct{}

// SaveSettings stores the settings and, when set, the daily goal
type SaveSettings struct {
	Settings  models.Settings `json:"settings"`
	DailyGoal *int            `json:"dailyGoal,omitempty"`
}

type ExportData struct{}

// ClearData drops words and statistics. DailyGoal is kept when nil.
type ClearData struct {
	DailyGoal *int `json:"dailyGoal,omitempty"`
}

type GetAchievements struct{}

func (SaveWord) Action() string         { return ActionSaveWord }
func (GetWords) Action() string         { return ActionGetWords }
func (DeleteWord) Action() string       { return ActionDeleteWord }
func (GenerateSentence) Action() string { return ActionGenerateSentence }
func (EvaluateSentence) Action() string { return ActionEvaluateSentence }
func (GetStats) Action() string         { return ActionGetStats }
func (UpdateStats) Action() string      { return ActionUpdateStats }
func (GetRandomWord) Action() string    { return ActionGetRandomWord }
func (RecordPractice) Action() string   { return ActionRecordPractice }
func (CheckAI) Action() string          { return ActionCheckAI }
func (DownloadAI) Action() string       { return ActionDownloadAI }
func (LogError) Action() string         { return ActionLogError }
func (GetErrors) Action() string        { return ActionGetErrors }
func (ClearErrors) Action() string      { return ActionClearErrors }
func (GetSettings) Action() string      { return ActionGetSettings }
func (SaveSettings) Action() string     { return ActionSaveSettings }
func (ExportData) Action() string       { return ActionExportData }
func (ClearData) Action() string        { return ActionClearData }
func (GetAchievements) Action() string  { return ActionGetAchievements }

func (SaveWord) request()         {}
func (GetWords) request()         {}
func (DeleteWord) request()       {}
func (GenerateSentence) request() {}
func (EvaluateSentence) request() {}
func (GetStats) request()         {}
func (UpdateStats) request()      {}
func (GetRandomWord) request()    {}
func (RecordPractice) request()   {}
func (CheckAI) request()          {}
func (DownloadAI) request()       {}
func (LogError) request()         {}
func (GetErrors) request()        {}
func (ClearErrors) request()      {}
func (GetSettings) request()      {}
func (SaveSettings) request()     {}
func (ExportData) request()       {}
func (ClearData) request()        {}
func (GetAchievements) request()  {}

func decodeAs[T Request](data []byte) (Request, error) {
	var req T
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, err
	}
	return req, nil
}

var decoders = map[string]func([]byte) (Request, error){
	ActionSaveWord:         decodeAs[SaveWord],
	ActionGetWords:         decodeAs[GetWords],
	ActionDeleteWord:       decodeAs[DeleteWord],
	ActionGenerateSentence: decodeAs[GenerateSentence],
	ActionEvaluateSentence: decodeAs[EvaluateSentence],
	ActionGetStats:         decodeAs[GetStats],
	ActionUpdateStats:      decodeAs[UpdateStats],
	ActionGetRandomWord:    decodeAs[GetRandomWord],
	ActionRecordPractice:   decodeAs[RecordPractice],
	ActionCheckAI:          decodeAs[CheckAI],
	ActionDownloadAI:       decodeAs[DownloadAI],
	ActionLogError:         decodeAs[LogError],
	ActionGetErrors:        decodeAs[GetErrors],
	ActionClearErrors:      decodeAs[ClearErrors],
	ActionGetSettings:      decodeAs[GetSettings],
	ActionSaveSettings:     decodeAs[SaveSettings],
	ActionExportData:       decodeAs[ExportData],
	ActionClearData:        decodeAs[ClearData],
	ActionGetAchievements:  decodeAs[GetAchievements],
}

// Decode parses a JSON request carrying an "action" tag next to its payload fields
func Decode(data []byte) (Request, error) {
	var envelope struct {
		Action string `json:"action"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode request: %w", err)
	}

	decode, ok := decoders[envelope.Action]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, envelope.Action)
	}
	req, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s request: %w", envelope.Action, err)
	}
	return req, nil
}
