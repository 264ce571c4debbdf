package models

// Settings holds user preferences that are not part of the practice statistics
type Settings struct {
	TargetLanguage string `json:"targetLanguage"`
}

// DefaultSettings returns the settings used before the user saves any
func DefaultSettings() Settings {
	return Settings{TargetLanguage: "en"}
}
