package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/daisy-days/daisyd/internal/adapters/driving/editor"
)

var slashCmd = &cobra.Command{
	Use:   "slash",
	Short: "Editor slash-command bridge",
	Long: `Runs the editor slash commands directly.

Editor integrations call this to execute a command and read its
markdown output, or to list commands and argument completions.`,
}

var slashListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the slash commands",
	RunE:  runSlashList,
}

var slashRunCmd = &cobra.Command{
	Use:   "run [command] [args...]",
	Short: "Run a slash command",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSlashRun,
}

var slashCompleteCmd = &cobra.Command{
	Use:   "complete [command]",
	Short: "List argument completions for a slash command",
	Args:  cobra.ExactArgs(1),
	RunE:  runSlashComplete,
}

func init() {
	slashCmd.AddCommand(slashListCmd)
	slashCmd.AddCommand(slashRunCmd)
	slashCmd.AddCommand(slashCompleteCmd)
	rootCmd.AddCommand(slashCmd)
}

func slashHandler() (*editor.Handler, error) {
	if docService == nil || conceptService == nil || layoutService == nil {
		return nil, errors.New("services not configured")
	}
	return editor.NewHandler(docService, conceptService, layoutService), nil
}

func runSlashList(cmd *cobra.Command, _ []string) error {
	handler, err := slashHandler()
	if err != nil {
		return err
	}

	for _, spec := range handler.Commands() {
		args := ""
		if spec.RequiresArgs {
			args = " [args]"
		}
		cmd.Printf("  /%s%s\n      %s\n", spec.Name, args, spec.Description)
	}
	return nil
}

func runSlashRun(cmd *cobra.Command, args []string) error {
	handler, err := slashHandler()
	if err != nil {
		return err
	}

	out, err := handler.Run(cmd.Context(), args[0], args[1:])
	if err != nil {
		return err
	}
	cmd.Println(out.Text)
	return nil
}

func runSlashComplete(cmd *cobra.Command, args []string) error {
	handler, err := slashHandler()
	if err != nil {
		return err
	}

	completions, err := handler.Complete(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	for _, completion := range completions {
		cmd.Println(completion.Label)
	}
	return nil
}
