package ai

import "context"

// Status is the readiness of the text-generation capability
type Status string

const (
	StatusAvailable    Status = "available"
	StatusDownloadable Status = "downloadable"
	StatusDownloading  Status = "downloading"
	StatusUnavailable  Status = "unavailable"
)

// Capability is the external text-generation backend. The gateway treats it as opaque.
type Capability interface {
	Availability(ctx context.Context) (Status, error)
	CreateSession(ctx context.Context, systemPrompt string) (Session, error)
}

// Session answers prompts. Callers must not prompt one session concurrently.
type Session interface {
	Prompt(ctx context.Context, text string) (string, error)
}

// Availability is what CheckAvailability reports to callers
type Availability struct {
	Available bool   `json:"available"`
	Status    Status `json:"status,omitempty"`
	Reason    string `json:"reason,omitempty"`
}

func reasonFor(status Status) string {
	switch status {
	case StatusUnavailable:
		return "AI is not available on this device"
	case StatusDownloadable:
		return "AI model needs to be downloaded"
	case StatusDownloading:
		return "AI model is downloading..."
	default:
		return ""
	}
}
