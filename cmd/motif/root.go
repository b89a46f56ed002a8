package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vsariola/motif"
	"github.com/vsariola/motif/script"
	"github.com/vsariola/motif/version"
)

// NewRootCommand creates the motif command with all its subcommands.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "motif",
		Short: "Build MIDI sequences from step scripts",
		Long: `motif compiles YAML step scripts into MIDI sequences: notes, chords,
program and control changes placed on a timeline with anchors, repeats and
replayed patterns.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.VersionOrHash,
	}
	cmd.AddCommand(NewBuildCommand())
	cmd.AddCommand(NewEventsCommand())
	cmd.AddCommand(NewProgramsCommand())
	cmd.AddCommand(NewRecordCommand())
	cmd.AddCommand(NewVersionCommand())
	return cmd
}

// NewVersionCommand prints the version, or the VCS hash if no version was
// set at build time.
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.VersionOrHash)
		},
	}
}

// compile reads and builds a script file. pattern selects a named pattern
// instead of the main steps.
func compile(path, pattern string) (motif.Sequence, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return motif.Sequence{}, fmt.Errorf("could not read %v: %w", path, err)
	}
	s, err := script.Parse(data)
	if err != nil {
		return motif.Sequence{}, fmt.Errorf("%v: %w", path, err)
	}
	res, err := s.Build()
	if err != nil {
		return motif.Sequence{}, fmt.Errorf("%v: %w", path, err)
	}
	if pattern == "" {
		return res.Sequence, nil
	}
	seq, ok := res.Patterns[pattern]
	if !ok {
		return motif.Sequence{}, fmt.Errorf("%v: no pattern named %q", path, pattern)
	}
	return seq, nil
}
