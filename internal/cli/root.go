// Package cli implements the monosync command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version, Commit, and Date are set at build time via ldflags
	Version = "dev"
	Commit  = ""
	Date    = ""
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	g := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "monosync",
		Short: "Monosync - Keep package.json manifests consistent across a monorepo",
		Long: `Monosync keeps the package.json files of a multi-package repository consistent.

It discovers workspace packages, normalizes field order, fills common fields
from a shared template, generates manifests from central package configs and
propagates the root version to every package.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetVersionTemplate(fmt.Sprintf("monosync version %s\ncommit: %s\ndate: %s\n", Version, Commit, Date))

	cmd.PersistentFlags().BoolVar(&g.verbose, "verbose", false, "Print debug logging to stderr")
	cmd.PersistentFlags().StringVar(&g.root, "root", "", "Repository root (default: current directory)")

	cmd.AddCommand(newSyncCmd(g))
	cmd.AddCommand(newGenerateCmd(g))
	cmd.AddCommand(newValidateCmd(g))
	cmd.AddCommand(newVersionsCmd(g))
	cmd.AddCommand(newInitCmd(g))
	return cmd
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "[ERROR]", err)
		os.Exit(1)
	}
}

// GetRootCmd returns the root command for documentation generation.
func GetRootCmd() *cobra.Command {
	return rootCmd
}
