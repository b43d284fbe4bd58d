package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sjoshi/digitdrill/internal/domain"
	"github.com/sjoshi/digitdrill/internal/problemgen"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print generated questions without starting a session",
	RunE: func(cmd *cobra.Command, args []string) error {
		n, _ := cmd.Flags().GetInt("count")
		seed, _ := cmd.Flags().GetUint64("seed")
		showAnswers, _ := cmd.Flags().GetBool("answers")

		gen := problemgen.NewGenerator()
		if cmd.Flags().Changed("seed") {
			gen = problemgen.NewGeneratorWithSeed(seed)
		}
		plugin := domain.NewArithmetic()

		for _, q := range gen.GenerateN(n) {
			line := plugin.RenderQuestion(&q)
			if showAnswers {
				line = fmt.Sprintf("%s = %s", q.Content.Expression, plugin.FormatAnswer(q.CorrectAnswer))
			}
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().IntP("count", "n", 10, "Number of questions to generate")
	generateCmd.Flags().Uint64("seed", 0, "Deterministic generator seed")
	generateCmd.Flags().Bool("answers", false, "Show answers")
}
