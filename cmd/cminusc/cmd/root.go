package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags).
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "cminusc --input PATH --output-directory DIR",
	Short: "C-minus compiler front-end",
	Long: `cminusc scans, parses and translates a C-minus source file into flat
three-address code for a stack-machine emulator.

It never fails on a malformed program: lexical, syntactic and semantic
errors are all recorded and written to the output directory alongside
the token stream, symbol table and parse tree. output.txt, the emitted
program itself, is only omitted when a semantic error was found.`,
	Version:      Version,
	SilenceUsage: true,
	RunE:         runCompile,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.Flags().StringVar(&inputPath, "input", "", "path to the C-minus source file (required)")
	rootCmd.Flags().StringVar(&outputDir, "output-directory", "", "directory to write the seven diagnostic files into (required)")
	rootCmd.Flags().StringVar(&configPath, "config", "", "optional YAML file overriding memory layout and diagnostics settings")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "echo errors to stderr with source context as well as writing them to files")
	rootCmd.Flags().BoolVar(&jsonSummary, "json", false, "additionally write diagnostics.json, a structured summary of all three error logs")

	_ = rootCmd.MarkFlagRequired("input")
	_ = rootCmd.MarkFlagRequired("output-directory")
}

var (
	inputPath   string
	outputDir   string
	configPath  string
	verbose     bool
	jsonSummary bool
)
