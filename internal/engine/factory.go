package engine

import (
	"github.com/sjoshi/digitdrill/internal/domain"
	"github.com/sjoshi/digitdrill/internal/input"
	"github.com/sjoshi/digitdrill/internal/provider"
	"github.com/sjoshi/digitdrill/internal/tracker"
)

// DefaultConfig returns the strategy bundle for a mode:
//
//	learn       sequential  simple(pool)      keyboard
//	practice    random      mastery(0.8, 5)   keyboard
//	timed       random      timed(60s)        keyboard
//	accuracy    random      mastery(0.9, 5)   keyboard
//	fluency     adaptive    mastery(0.9, 5)   voice
//	assessment  adaptive    assessment        keyboard
//
// Callers merge overrides by assigning over the returned config before
// passing it to New.
func DefaultConfig(mode Mode, plugin domain.Plugin, poolSize int) Config {
	cfg := Config{Mode: mode, Plugin: plugin}

	switch mode {
	case ModePractice:
		cfg.Provider = provider.NewRandom()
		cfg.Tracker = tracker.NewMastery(plugin, tracker.DefaultMasteryThreshold, tracker.DefaultRequiredMastered)
		cfg.Input = input.NewKeyboard()
	case ModeTimed:
		cfg.Provider = provider.NewRandom()
		cfg.Tracker = tracker.NewTimed(plugin, tracker.DefaultTimedDuration)
		cfg.Input = input.NewKeyboard()
	case ModeAccuracy:
		cfg.Provider = provider.NewRandom()
		cfg.Tracker = tracker.NewMastery(plugin, 0.9, tracker.DefaultRequiredMastered)
		cfg.Input = input.NewKeyboard()
	case ModeFluency:
		cfg.Provider = provider.NewAdaptive()
		cfg.Tracker = tracker.NewMastery(plugin, 0.9, tracker.DefaultRequiredMastered)
		cfg.Input = input.NewVoice(plugin)
	case ModeAssessment:
		cfg.Provider = provider.NewAdaptive()
		cfg.Tracker = tracker.NewAssessment(plugin, tracker.DefaultAssessmentMin, tracker.DefaultAssessmentMax)
		cfg.Input = input.NewKeyboard()
	default: // ModeLearn
		cfg.Provider = provider.NewSequential()
		cfg.Tracker = tracker.NewSimple(plugin, poolSize)
		cfg.Input = input.NewKeyboard()
	}

	return cfg
}
