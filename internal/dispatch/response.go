package dispatch

import (
	"encoding/json"

	"github.com/example/wordlearner/internal/ai"
	"github.com/example/wordlearner/internal/excel"
	"github.com/example/wordlearner/internal/stats"
	"github.com/example/wordlearner/pkg/models"
)

// Response is the plain result object returned for every request. Only the
// fields relevant to the action are set.
type Response struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	// Logged is true when the failure was already written to the error log
	Logged bool `json:"logged,omitempty"`

	Word         *models.WordRecord  `json:"word,omitempty"`
	Words        []models.WordRecord `json:"words,omitempty"`
	Duplicate    bool                `json:"duplicate,omitempty"`
	ExistingWord string              `json:"existingWord,omitempty"`
	BaseForm     string              `json:"baseForm,omitempty"`

	Content    string             `json:"content,omitempty"`
	Evaluation *models.Evaluation `json:"evaluation,omitempty"`

	Stats        *models.Stats       `json:"stats,omitempty"`
	Unlocked     []string            `json:"unlocked,omitempty"`
	Badge        string              `json:"badge,omitempty"`
	Achievements []stats.Achievement `json:"achievements,omitempty"`

	Available *bool     `json:"available,omitempty"`
	Status    ai.Status `json:"status,omitempty"`
	Reason    string    `json:"reason,omitempty"`

	Errors   []models.ErrorEntry   `json:"errors,omitempty"`
	Settings *models.Settings      `json:"settings,omitempty"`
	Export   *excel.ExportDocument `json:"export,omitempty"`
}

// MarshalJSON writes a non-nil empty Words or Errors as [] so list actions
// always carry their list.
func (r Response) MarshalJSON() ([]byte, error) {
	type plain Response
	out := struct {
		plain
		Words  *[]models.WordRecord `json:"words,omitempty"`
		Errors *[]models.ErrorEntry `json:"errors,omitempty"`
	}{plain: plain(r)}
	if r.Words != nil {
		out.Words = &r.Words
	}
	if r.Errors != nil {
		out.Errors = &r.Errors
	}
	return json.Marshal(out)
}

func fail(msg string) Response {
	return Response{Success: false, Error: msg}
}

func failErr(err error) Response {
	return fail(err.Error())
}
