package config

import "testing"

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("WORDLEARNER_STORE", "SQLite")
	t.Setenv("WORDLEARNER_DB_PATH", "/tmp/wl.db")
	t.Setenv("AI_MODEL", "llama3.2")
	t.Setenv("AI_TEMPERATURE", "0.2")
	t.Setenv("TELEGRAM_CHAT_ID", "-1001234567890")
	t.Setenv("NOTIFICATION_END_HOUR", "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Store != StoreSQLite {
		t.Errorf("Store = %q", cfg.Store)
	}
	if cfg.DBPath != "/tmp/wl.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.AIModel != "llama3.2" {
		t.Errorf("AIModel = %q", cfg.AIModel)
	}
	if cfg.AITemperature < 0.19 || cfg.AITemperature > 0.21 {
		t.Errorf("AITemperature = %v", cfg.AITemperature)
	}
	if cfg.TelegramChatID != -1001234567890 {
		t.Errorf("TelegramChatID = %d", cfg.TelegramChatID)
	}
	if cfg.NotificationEndHour != 22 {
		t.Errorf("invalid int should fall back to default, got %d", cfg.NotificationEndHour)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"unknown store", func(c *Config) { c.Store = "mongo" }, true},
		{"postgres without url", func(c *Config) { c.Store = StorePostgres }, true},
		{"postgres with url", func(c *Config) { c.Store = StorePostgres; c.DatabaseURL = "postgres://x" }, false},
		{"redis without addr", func(c *Config) { c.Store = StoreRedis; c.RedisAddr = "" }, true},
		{"bad hour", func(c *Config) { c.NotificationStartHour = 24 }, true},
		{"start after end", func(c *Config) { c.NotificationStartHour = 22; c.NotificationEndHour = 8 }, true},
		{"single hour window", func(c *Config) { c.NotificationStartHour = 9; c.NotificationEndHour = 9 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
