package main

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"
	"github.com/viant/smarty/model/codegen"
	"github.com/viant/smarty/model/diagram"
	"github.com/viant/smarty/model/project"
	"github.com/viant/smarty/model/reverse"
)

func (a *app) newCmd() *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "new <file>",
		Short: "Create a bootstrapped project document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			exists, err := a.store.Exists(ctx, args[0])
			if err != nil {
				return err
			}
			if exists {
				return fmt.Errorf("%v already exists", args[0])
			}
			options := append(a.cfg.Options(), project.WithLogger(a.logger))
			if name != "" {
				options = append(options, project.WithName(name))
			}
			aProject := project.New(options...)
			if err = a.cfg.Apply(aProject); err != nil {
				return err
			}
			if err = a.store.Save(ctx, aProject, args[0]); err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), aProject.ID())
			return err
		},
	}
	cmd.Flags().StringVarP(&name, "name", "n", "", "project name")
	return cmd
}

func (a *app) diagramCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diagram <file> <kind> [name]",
		Short: "Add an empty diagram of the kind (Feature, UseCase, Class, Component, Sequence, Activity)",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := diagram.ParseKind(args[1])
			if kind == "" {
				return fmt.Errorf("unknown diagram kind %q", args[1])
			}
			aProject, err := a.store.Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			name := ""
			if len(args) > 2 {
				name = args[2]
			}
			id, err := aProject.AddDiagram(diagram.New(kind, name))
			if err != nil {
				return err
			}
			if err = a.store.Save(cmd.Context(), aProject, ""); err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), id)
			return err
		},
	}
}

func (a *app) exportCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Print the canonical project document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			aProject, err := a.store.Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if output != "" {
				return a.store.Save(cmd.Context(), aProject, output)
			}
			_, err = io.WriteString(cmd.OutOrStdout(), aProject.Export())
			return err
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the document to this location instead of stdout")
	return cmd
}

func (a *app) verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <file>",
		Short: "Check that the document is in canonical form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := a.store.Read(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			aProject, err := project.Load(bytes.NewReader(content), project.WithLogger(a.logger))
			if err != nil {
				return err
			}
			exported := aProject.Export()
			if exported == string(content) {
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "%v: ok\n", args[0])
				return err
			}
			if _, err = io.WriteString(cmd.OutOrStdout(), lineDiff(string(content), exported)); err != nil {
				return err
			}
			return fmt.Errorf("%v is not in canonical form", args[0])
		},
	}
}

// lineDiff renders line level differences, removed lines prefixed with "-" and added with "+"
func lineDiff(before, after string) string {
	dmp := diffmatchpatch.New()
	beforeChars, afterChars, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(beforeChars, afterChars, false), lines)
	builder := &strings.Builder{}
	for _, diff := range diffs {
		prefix := ""
		switch diff.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		default:
			continue
		}
		for _, line := range strings.SplitAfter(diff.Text, "\n") {
			if line == "" {
				continue
			}
			builder.WriteString(prefix + line)
			if !strings.HasSuffix(line, "\n") {
				builder.WriteString("\n")
			}
		}
	}
	return builder.String()
}

func (a *app) inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file>",
		Short: "Print project statistics as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			aProject, err := a.store.Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			content, err := aProject.Summary().YAML()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(content)
			return err
		},
	}
}

func (a *app) checksumCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "checksum <file>",
		Short: "Print checksum of the canonical document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			aProject, err := a.store.Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			checksum, err := aProject.Checksum()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%016x\n", checksum)
			return err
		},
	}
}

func (a *app) generateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate <file> [dir]",
		Short: "Generate Java source of class diagram entities",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			aProject, err := a.store.Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			dir := a.cfg.Generate.Output
			if len(args) > 1 {
				dir = args[1]
			}
			files, err := codegen.NewJava(aProject).Files(cmd.Context(), a.cfg.Generate.Validate)
			if err != nil {
				return err
			}
			if err = a.store.WriteFiles(cmd.Context(), dir, files); err != nil {
				return err
			}
			a.logger.Info("generated java source", "project", aProject.ID(), "dir", dir, "files", len(files))
			for _, aFile := range files {
				if _, err = fmt.Fprintln(cmd.OutOrStdout(), aFile.Path); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func (a *app) importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file> <diagram> <source.java>...",
		Short: "Import Java classes and interfaces into a class diagram",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			aProject, err := a.store.Load(ctx, args[0])
			if err != nil {
				return err
			}
			importer := reverse.New(aProject)
			for _, location := range args[2:] {
				source, err := a.store.Read(ctx, location)
				if err != nil {
					return err
				}
				ids, err := importer.Import(ctx, args[1], source)
				if err != nil {
					return fmt.Errorf("failed to import %v: %w", location, err)
				}
				for _, id := range ids {
					if _, err = fmt.Fprintln(cmd.OutOrStdout(), id); err != nil {
						return err
					}
				}
			}
			if !aProject.Modified() {
				return nil
			}
			return a.store.Save(ctx, aProject, "")
		},
	}
}
