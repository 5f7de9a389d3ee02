// Command mdcheck is a thin CLI over the mdcheck package: it finds and
// reports style violations in Markdown files, exiting non-zero when any are
// found.
package main

import (
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jcorbin/mdcheck/internal/outwriter"
	"github.com/jcorbin/mdcheck/internal/projectroot"
	"github.com/jcorbin/mdcheck/internal/srclint"
	"github.com/jcorbin/mdcheck/mdcheck"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatalln(err)
	}
}

func newRootCmd() *cobra.Command {
	var selectCodes, excludeCodes, ignorePatterns []string
	var root string

	rootCmd := &cobra.Command{
		Use:           "mdcheck",
		Short:         "Check Markdown files for style violations",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	flags := pflag.NewFlagSet("mdcheck", pflag.ContinueOnError)
	flags.StringSliceVar(&selectCodes, "select", nil, "restrict checking to these rule codes")
	flags.StringSliceVar(&excludeCodes, "exclude", nil, "exclude these rule codes")
	flags.StringSliceVar(&ignorePatterns, "ignore", nil, "additional glob pattern(s) to ignore (repeatable)")
	flags.StringVar(&root, "root", "", "project root diagnostic paths are rendered relative to (default: discovered .git root)")
	rootCmd.PersistentFlags().AddFlagSet(flags)

	rootCmd.AddCommand(newCheckCmd(&selectCodes, &excludeCodes, &root))
	rootCmd.AddCommand(newCheckDirCmd(&selectCodes, &excludeCodes, &ignorePatterns, &root))
	rootCmd.AddCommand(newCheckSourceCmd(&excludeCodes, &root))
	return rootCmd
}

func resolveOptions(selectCodes, excludeCodes, ignorePatterns *[]string, root *string) (mdcheck.Options, error) {
	resolvedRoot, err := projectroot.Find(*root)
	if err != nil {
		return mdcheck.Options{}, fmt.Errorf("resolving project root: %w", err)
	}
	return mdcheck.Options{
		Select:         *selectCodes,
		Exclude:        *excludeCodes,
		IgnorePatterns: *ignorePatterns,
		ProjectRoot:    resolvedRoot,
	}, nil
}

func newCheckCmd(selectCodes, excludeCodes *[]string, root *string) *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>...",
		Short: "Check one or more Markdown files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := resolveOptions(selectCodes, excludeCodes, &[]string{}, root)
			if err != nil {
				return err
			}
			var all []string
			for _, path := range args {
				all = append(all, mdcheck.Check(path, opts)...)
			}
			n, err := outwriter.Diagnostics(cmd.OutOrStdout(), all)
			if err != nil {
				return fmt.Errorf("writing diagnostics: %w", err)
			}
			if n > 0 {
				os.Exit(1)
			}
			return nil
		},
	}
}

func newCheckSourceCmd(excludeCodes *[]string, root *string) *cobra.Command {
	return &cobra.Command{
		Use:   "check-source <path>...",
		Short: "Check Go source files for stray Cyrillic letters and old-style docstrings",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolvedRoot, err := projectroot.Find(*root)
			if err != nil {
				return fmt.Errorf("resolving project root: %w", err)
			}
			exclude := make(map[string]bool, len(*excludeCodes))
			for _, code := range *excludeCodes {
				exclude[code] = true
			}
			checker := srclint.New(resolvedRoot)

			var all []string
			for _, path := range args {
				info, err := os.Stat(path)
				if err != nil {
					return fmt.Errorf("stat %s: %w", path, err)
				}
				if info.IsDir() {
					results, err := checker.CheckDirectory(path, exclude)
					if err != nil {
						return fmt.Errorf("walking %s: %w", path, err)
					}
					files := make([]string, 0, len(results))
					for f := range results {
						files = append(files, f)
					}
					sort.Strings(files)
					for _, f := range files {
						all = append(all, results[f]...)
					}
					continue
				}
				all = append(all, checker.Check(path, exclude)...)
			}
			n, err := outwriter.Diagnostics(cmd.OutOrStdout(), all)
			if err != nil {
				return fmt.Errorf("writing diagnostics: %w", err)
			}
			if n > 0 {
				os.Exit(1)
			}
			return nil
		},
	}
}

func newCheckDirCmd(selectCodes, excludeCodes, ignorePatterns *[]string, root *string) *cobra.Command {
	return &cobra.Command{
		Use:   "check-dir <dir>",
		Short: "Check every Markdown file under a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := resolveOptions(selectCodes, excludeCodes, ignorePatterns, root)
			if err != nil {
				return err
			}
			results, err := mdcheck.CheckDirectory(args[0], opts)
			if err != nil {
				return fmt.Errorf("walking %s: %w", args[0], err)
			}

			files := make([]string, 0, len(results))
			for f := range results {
				files = append(files, f)
			}
			sort.Strings(files)

			var all []string
			for _, f := range files {
				all = append(all, results[f]...)
			}
			n, err := outwriter.Diagnostics(cmd.OutOrStdout(), all)
			if err != nil {
				return fmt.Errorf("writing diagnostics: %w", err)
			}
			if n > 0 {
				os.Exit(1)
			}
			return nil
		},
	}
}
