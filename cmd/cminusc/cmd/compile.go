package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cwbudde/cminus-compiler/internal/codegen"
	"github.com/cwbudde/cminus-compiler/internal/config"
	"github.com/cwbudde/cminus-compiler/internal/diagnostics"
	compilererrors "github.com/cwbudde/cminus-compiler/internal/errors"
	"github.com/cwbudde/cminus-compiler/internal/lexer"
	"github.com/cwbudde/cminus-compiler/internal/parser"
)

// runCompile drives one compilation session end to end. Per the CLI
// contract, a malformed C-minus program is never a CLI failure: only
// an operational problem (unreadable input, an output directory that
// can't be created or written to) returns an error here, which is what
// makes main.go exit non-zero. Everything the compiler itself finds
// wrong with the program goes into the output files instead.
func runCompile(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	source, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("read input %s: %w", inputPath, err)
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory %s: %w", outputDir, err)
	}

	session := compile(string(source), cfg.Memory)

	for _, artifact := range diagnostics.Render(session) {
		path := filepath.Join(outputDir, artifact.Name)
		if err := os.WriteFile(path, []byte(artifact.Content), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}

	if jsonSummary || cfg.Diagnostics.JSON {
		summary, err := diagnostics.Summary(session)
		if err != nil {
			return fmt.Errorf("build diagnostics summary: %w", err)
		}
		path := filepath.Join(outputDir, "diagnostics.json")
		if err := os.WriteFile(path, []byte(summary), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}

	if verbose {
		echoErrors(session, string(source), cfg.Diagnostics.Color)
	}

	return nil
}

func compile(source string, memCfg codegen.Config) diagnostics.Session {
	lex := lexer.New(source)
	gen := codegen.New(memCfg)
	p := parser.New(lex, gen)
	tree := p.Parse()
	return diagnostics.Session{Lex: lex, Tree: tree, Gen: gen}
}

// echoErrors prints every recorded diagnostic to stderr with source
// context, on top of the plain files the session always writes. color
// turns on ANSI highlighting.
func echoErrors(s diagnostics.Session, source string, color bool) {
	var lines []int
	var messages []string

	for _, e := range s.Lex.Errors() {
		lines = append(lines, e.Line)
		messages = append(messages, fmt.Sprintf("%s: %s", e.Lexeme, e.Message))
	}
	for _, e := range s.Tree.Log.Entries() {
		lines = append(lines, e.Line)
		messages = append(messages, "syntax error, "+e.Message)
	}
	for _, e := range s.Gen.Errors.Entries() {
		lines = append(lines, e.Line)
		messages = append(messages, e.Message)
	}
	if len(messages) == 0 {
		return
	}

	errs := compilererrors.FromLines(lines, messages, source, inputPath)
	fmt.Fprint(os.Stderr, compilererrors.FormatErrors(errs, color))
	fmt.Fprintln(os.Stderr)
}
