package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/vsariola/motif/gm"
	"github.com/vsariola/motif/gm2"
)

func NewProgramsCommand() *cobra.Command {
	var level2 bool
	cmd := &cobra.Command{
		Use:   "programs",
		Short: "List the General MIDI program names",
		Long: `List the General MIDI program names usable in "program" steps. With --gm2,
list the General MIDI Level 2 sounds with their bank select values instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if level2 {
				return listGM2(cmd.OutOrStdout())
			}
			return listGM(cmd.OutOrStdout())
		},
	}
	cmd.Flags().BoolVar(&level2, "gm2", false, "list General MIDI Level 2 sounds")
	return cmd
}

func listGM(w io.Writer) error {
	for i := 0; i < gm.NumPrograms; i++ {
		if _, err := fmt.Fprintf(w, "%3d  %v\n", i, gm.Program(i)); err != nil {
			return err
		}
	}
	return nil
}

func listGM2(w io.Writer) error {
	for i := 0; i < gm2.NumPrograms; i++ {
		p := gm2.Program(i)
		bank, err := gm2.Info(p)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%3d  %-28v msb=%#02x lsb=%d base=%v\n", i, p, bank.MSB, bank.LSB, bank.Base); err != nil {
			return err
		}
	}
	return nil
}
