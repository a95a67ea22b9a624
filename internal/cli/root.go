// Package cli implements the command-line interface for licenser.
package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/brunobernard/licenser/internal/config"
	"github.com/brunobernard/licenser/internal/core"
	"github.com/brunobernard/licenser/internal/models"
	"github.com/spf13/cobra"
)

var (
	flagCheck       bool
	flagFix         bool
	flagDir         string
	flagYear        string
	flagNoRecursive bool
	flagVerbose     bool
	flagIgnoreFile  string
	flagNoticeTmpl  string
)

var rootCmd = &cobra.Command{
	Use:   "licenser <license-id> <author> [files...]",
	Short: "Add or update SPDX license headers in source files",
	Long: `Licenser adds or updates SPDX license identifiers and copyright
notices at the top of source files. It detects each file's comment
syntax, recognizes existing headers, and performs minimal idempotent
rewrites. Designed for use in pre-commit hooks.

Examples:
  licenser GPL-2.0-or-later "John Doe" --check
  licenser MIT "Jane Smith" --fix --dir src/
  licenser Apache-2.0 "ACME Corp" --ignore-file .licenseignore --fix`,
	Args: cobra.ArbitraryArgs,
	RunE: runRoot,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().BoolVar(&flagCheck, "check", false, "Check files without modifying (default)")
	rootCmd.Flags().BoolVar(&flagFix, "fix", false, "Fix files by adding/updating headers")
	rootCmd.Flags().StringVar(&flagDir, "dir", ".", "Root directory to process")
	rootCmd.Flags().StringVar(&flagYear, "year", "", "Copyright year (default: current year)")
	rootCmd.Flags().BoolVar(&flagNoRecursive, "no-recursive", false, "Don't process subdirectories")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Show all files")
	rootCmd.Flags().StringVar(&flagIgnoreFile, "ignore-file", "", "Path to ignore file (default: .licenseignore or .gitignore)")
	rootCmd.Flags().StringVar(&flagNoticeTmpl, "notice-template", "", "Path to notice template appended after the copyright line")
	rootCmd.MarkFlagsMutuallyExclusive("check", "fix")
}

func runRoot(cmd *cobra.Command, args []string) error {
	workDir, err := os.Getwd()
	if err != nil {
		exitError("%v", err)
	}

	cfg, err := config.Load(workDir)
	if err != nil {
		exitError("%v", err)
	}

	licenseID, author, files, err := resolveTarget(cfg, args)
	if err != nil {
		return err
	}
	cmd.SilenceUsage = true

	year := flagYear
	if year == "" {
		year = cfg.Year
	}
	if year == "" {
		year = strconv.Itoa(time.Now().Year())
	}

	ignoreArg := flagIgnoreFile
	if ignoreArg == "" {
		ignoreArg = cfg.IgnoreFile
	}
	rules := core.LoadIgnoreRules(core.ResolveIgnoreFile(ignoreArg, workDir))

	noticePath := flagNoticeTmpl
	if noticePath == "" {
		noticePath = cfg.NoticeTemplate
	}
	notice := core.LoadNotice(noticePath)

	fix := flagFix

	manager := core.NewManager(licenseID, author, year, notice)
	matcher := core.NewIgnoreMatcher(rules, workDir)
	scanner := core.NewScanner(manager, matcher)

	summary, err := scanner.Run(core.Options{
		Dir:       flagDir,
		Files:     files,
		Recursive: !flagNoRecursive,
		Fix:       fix,
	}, func(res models.FileResult) {
		printResult(res, flagVerbose)
	})
	if err != nil {
		exitError("%v", err)
	}

	printSummary(summary, fix)

	if (!fix && summary.Updated > 0) || summary.Errors > 0 {
		os.Exit(1)
	}
	return nil
}

// resolveTarget determines the license id, author, and explicit file
// list from the positional arguments, falling back to config defaults
// for the first two.
func resolveTarget(cfg *config.Config, args []string) (string, string, []string, error) {
	if len(args) >= 2 {
		return args[0], args[1], args[2:], nil
	}
	if len(args) == 0 && cfg.License != "" && cfg.Author != "" {
		return cfg.License, cfg.Author, nil, nil
	}
	return "", "", nil, fmt.Errorf("requires a license identifier and an author (or defaults in %s)", config.ConfigFile)
}

// printSummary prints the end-of-run totals
func printSummary(summary models.Summary, fix bool) {
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Total files processed: %d\n", summary.Total)
	if fix {
		fmt.Printf("Files updated: %d\n", summary.Updated)
	} else {
		fmt.Printf("Files needing update: %d\n", summary.Updated)
		if summary.Updated > 0 {
			fmt.Println("Run with --fix to update headers")
		}
	}
	if summary.Errors > 0 {
		fmt.Printf("Errors: %d\n", summary.Errors)
	}
}

// exitError prints an error and exits
func exitError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(1)
}
