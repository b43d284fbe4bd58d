package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sjoshi/digitdrill/internal/app"
	"github.com/sjoshi/digitdrill/internal/domain"
	"github.com/sjoshi/digitdrill/internal/engine"
	"github.com/sjoshi/digitdrill/internal/problemgen"
	"github.com/sjoshi/digitdrill/internal/screens/home"
	"github.com/sjoshi/digitdrill/internal/store"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a practice session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
}

func init() {
	playCmd.Flags().StringP("mode", "m", "", "Start directly in a mode (learn, practice, timed, accuracy, fluency, assessment)")
	playCmd.Flags().IntP("questions", "n", 10, "Questions per session pool")
	playCmd.Flags().DurationP("duration", "d", 0, "Timed mode duration (default 60s)")
	viper.BindPFlag("mode", playCmd.Flags().Lookup("mode"))
	viper.BindPFlag("questions", playCmd.Flags().Lookup("questions"))
	viper.BindPFlag("duration", playCmd.Flags().Lookup("duration"))
}

func runPlay(cmd *cobra.Command) error {
	logger := newLogger(true)

	var startMode engine.Mode
	if m := viper.GetString("mode"); m != "" {
		var err error
		if startMode, err = engine.ParseMode(m); err != nil {
			return err
		}
	}

	dbPath, err := resolveDBPath()
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	return app.Run(home.Options{
		Plugin:    domain.NewArithmetic(),
		Generator: problemgen.NewGenerator(),
		Store:     st,
		PoolSize:  viper.GetInt("questions"),
		Duration:  viper.GetDuration("duration"),
		Logger:    logger,
	}, startMode)
}
