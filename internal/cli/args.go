package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/hashify/pkg/hashify"
)

// RequireTranscodeArgs validates that exactly the three positional arguments
// input_file, output_file and column_name are provided. Returns a helpful
// error message with usage and an example if missing or too many.
func RequireTranscodeArgs(cmd *cobra.Command, args []string) error {
	if len(args) < 3 {
		return fmt.Errorf(`%w: missing required arguments

Usage: %s

Example:
  %s users.csv users_hashed.csv email -a sha256`,
			hashify.ErrUsage, cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 3 {
		return fmt.Errorf("%w: accepts 3 arg(s), received %d", hashify.ErrUsage, len(args))
	}
	return nil
}
