package config

// Defaults applied by Normalize.
const (
	DefaultAddr          = ":8080"
	DefaultDatabasePath  = "quietspot.db"
	DefaultQuestionsPath = "questions.yml"
	DefaultUIMode        = "auto"
	DefaultLimiterCount  = 10
	DefaultLimiterWindow = 60
)

// Normalize fills unset fields with defaults. The venues fixture path stays
// empty when unset; ingest requires it explicitly.
func Normalize(cfg *Config) {
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = DefaultAddr
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = DefaultDatabasePath
	}
	if cfg.Quiz.QuestionsPath == "" {
		cfg.Quiz.QuestionsPath = DefaultQuestionsPath
	}
	if cfg.UI.Mode == "" {
		cfg.UI.Mode = DefaultUIMode
	}
	if cfg.Limiter.Requests == 0 {
		cfg.Limiter.Requests = DefaultLimiterCount
	}
	if cfg.Limiter.WindowSeconds == 0 {
		cfg.Limiter.WindowSeconds = DefaultLimiterWindow
	}
}
