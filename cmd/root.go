/*
Copyright © 2025 tieubaoca
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "studybuddy-be",
	Short: "Backend for the StudyBuddy notes application",
	Long: `Backend for the StudyBuddy notes application.

Uploads PDF notes to cloud storage, extracts their text with OCR and answers
questions about them (or generates quizzes from them) through a completion
API. Run "studybuddy-be start" to serve the HTTP API.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config/config.yaml", "config file")
}
