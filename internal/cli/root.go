package cli

import (
	"fmt"
	"os"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/vvka-141/hashify/internal/digest"
	"github.com/vvka-141/hashify/internal/logging"
	"github.com/vvka-141/hashify/internal/transcode"
	"github.com/vvka-141/hashify/pkg/hashify"
)

const asciiLogo = `  _               _     _  __
 | |__   __ _ ___| |__ (_)/ _|_   _
 | '_ \ / _' / __| '_ \| | |_| | | |
 | | | | (_| \__ \ | | | |  _| |_| |
 |_| |_|\__,_|___/_| |_|_|_|  \__, |
                              |___/`

var rootCmd = &cobra.Command{
	Use:   "hashify <input_file> <output_file> <column_name>",
	Short: "Replace one CSV column with cryptographic digests",
	Long: asciiLogo + `

hashify reads a CSV file, replaces every value in one named column with the
hex digest of that value, and writes the transformed rows to a new CSV file.
Use it to pseudonymize a single field (an email or identifier column) across
a dataset.

The header is copied verbatim and all other columns pass through unchanged.
Empty values stay empty rather than becoming the digest of the empty string.
Paths ending in .gz are read and written as gzip-compressed CSV.

Arguments:
  input_file     Path to the input CSV file (UTF-8, comma-delimited, header row)
  output_file    Path to the output CSV file (created or overwritten)
  column_name    Name of the column to hash (case-sensitive exact match)

Examples:
  # Pseudonymize the email column with the default SHA-256
  hashify users.csv users_hashed.csv email

  # Pick an algorithm
  hashify users.csv users_hashed.csv email -a blake2b

  # Compressed input and output, plus a JSON run summary on stdout
  hashify export.csv.gz clean.csv.gz user_id --summary

Exit Codes:
  0 - Success
  1 - Validation or runtime error (missing file, unknown column, I/O failure)
  2 - CLI usage error (invalid arguments or flags)
  3 - Panic or unexpected system error`,
	Args:          RequireTranscodeArgs,
	RunE:          runTranscode,
	SilenceUsage:  true,
	SilenceErrors: true,
}

type rootFlagValues struct {
	algorithm string
	summary   bool
}

var rootFlags rootFlagValues

// Execute runs the root command and renders any error once on stderr.
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: ")+err.Error())
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
	rootCmd.Flags().StringVarP(&rootFlags.algorithm, "algorithm", "a", hashify.DefaultAlgorithm,
		"Hash algorithm: md5|sha1|sha256|sha512|blake2b|blake2s")
	rootCmd.Flags().BoolVar(&rootFlags.summary, "summary", false,
		"Print a machine-readable JSON run summary to stdout")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}

func runTranscode(cmd *cobra.Command, args []string) error {
	logger := logging.NewConsoleLogger(getVerboseFlag(cmd))

	algo, err := digest.Resolve(rootFlags.algorithm)
	if err != nil {
		return err
	}

	inputPath, outputPath, column := args[0], args[1], args[2]

	transcoder := &transcode.Transcoder{
		Algorithm: algo,
		Column:    column,
		Logger:    logger,
	}
	result, err := transcoder.Run(inputPath, outputPath)
	if err != nil {
		return err
	}

	// Success message to stderr; stdout is reserved for machine output.
	logger.Info("%s", successStyle.Render(fmt.Sprintf(
		"Successfully hashed column %q using %s and saved to %q (%d rows: %d hashed, %d empty)",
		column, strings.ToUpper(algo.Name()), outputPath,
		result.Rows, result.Hashed, result.Skipped)))

	if rootFlags.summary {
		enc := json.NewEncoder(cmd.OutOrStdout())
		if err := enc.Encode(result); err != nil {
			return fmt.Errorf("encode summary: %w", err)
		}
	}
	return nil
}
