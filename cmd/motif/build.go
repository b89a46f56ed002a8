package main

import (
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"text/template"

	"github.com/Masterminds/sprig"
	"github.com/spf13/cobra"
	"github.com/vsariola/motif"
	"gopkg.in/yaml.v3"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

type buildOptions struct {
	format   string
	template string
	pattern  string
}

// listing is what the text templates see of one compiled file.
type listing struct {
	Name    string
	End     motif.Ticks
	Actions []row
}

type row struct {
	Time   motif.Ticks
	Kind   string
	Detail string
}

func NewBuildCommand() *cobra.Command {
	opts := &buildOptions{}
	cmd := &cobra.Command{
		Use:   "build FILE...",
		Short: "Compile scripts and print the sequences",
		Long: `Compile each script and print its sequence as YAML, JSON or text.

Text output is rendered with a Go text/template; the sprig functions are
available. The template is executed once per file with .Name, .End and
.Actions, each action having .Time, .Kind and .Detail.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(opts, args, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&opts.format, "format", "f", "yaml", "output format (yaml|json|text)")
	cmd.Flags().StringVarP(&opts.template, "template", "t", "", "template file for text output, instead of the built-in one")
	cmd.Flags().StringVarP(&opts.pattern, "pattern", "p", "", "print this pattern instead of the main steps")
	return cmd
}

func runBuild(opts *buildOptions, paths []string, w io.Writer) error {
	var output func(name string, seq motif.Sequence) error
	switch opts.format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		output = func(_ string, seq motif.Sequence) error { return enc.Encode(seq) }
	case "json":
		output = func(_ string, seq motif.Sequence) error {
			b, err := json.MarshalIndent(seq, "", "  ")
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(w, "%s\n", b)
			return err
		}
	case "text":
		tmpl, err := loadTemplate(opts.template)
		if err != nil {
			return err
		}
		output = func(name string, seq motif.Sequence) error {
			return tmpl.Execute(w, newListing(name, seq))
		}
	default:
		return fmt.Errorf("invalid format %q: must be one of yaml, json, text", opts.format)
	}
	for _, path := range paths {
		seq, err := compile(path, opts.pattern)
		if err != nil {
			return err
		}
		if err := output(filepath.Base(path), seq); err != nil {
			return fmt.Errorf("could not output %v: %w", path, err)
		}
	}
	return nil
}

func loadTemplate(path string) (*template.Template, error) {
	tmpl := template.New("base").Funcs(sprig.TxtFuncMap())
	name := "listing.txt.tmpl"
	var err error
	if path == "" {
		_, err = tmpl.ParseFS(templateFS, "templates/"+name)
	} else {
		name = filepath.Base(path)
		_, err = tmpl.ParseFiles(path)
	}
	if err != nil {
		return nil, fmt.Errorf("could not parse template: %w", err)
	}
	return tmpl.Lookup(name), nil
}

func newListing(name string, seq motif.Sequence) listing {
	l := listing{Name: name, End: seq.End(), Actions: make([]row, 0, seq.Len())}
	for _, a := range seq.Actions() {
		var r row
		switch a := a.(type) {
		case motif.Note:
			r = row{a.Time, "note", fmt.Sprintf("%v len=%d vel=%d ch=%d", a.Pitch, a.Length, a.Velocity, a.Channel)}
		case motif.Control:
			r = row{a.Time, "control", fmt.Sprintf("cc=%d value=%d ch=%d", a.Controller, a.Value, a.Channel)}
		case motif.ProgramNumber:
			r = row{a.Time, "program", fmt.Sprintf("number=%d ch=%d", a.Number, a.Channel)}
		case motif.ProgramGM:
			r = row{a.Time, "program", fmt.Sprintf("%v ch=%d", a.Program, a.Channel)}
		}
		l.Actions = append(l.Actions, r)
	}
	return l
}
