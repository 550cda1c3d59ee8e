// Command nerspan renders, edits, and converts labeled span annotations
// over tokenized text.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/forward-it/ner-span-annotator/core"
	"github.com/forward-it/ner-span-annotator/editor"
	"github.com/forward-it/ner-span-annotator/export"
	"github.com/forward-it/ner-span-annotator/importer"
	"github.com/forward-it/ner-span-annotator/render"
	"github.com/forward-it/ner-span-annotator/terminal"
)

// Version is set at build time.
var Version = "dev"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "nerspan:", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "nerspan",
		Usage:   "Render and edit labeled span annotations over text",
		Version: Version,
		Commands: []*cli.Command{
			viewCmd(),
			editCmd(),
			exportCmd(),
			convertCmd(),
		},
	}
}

func viewCmd() *cli.Command {
	return &cli.Command{
		Name:      "view",
		Usage:     "Render an annotated document to the terminal",
		ArgsUsage: "[file]",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "no-color", Usage: "Disable ANSI colors"},
		},
		Action: func(c *cli.Context) error {
			doc, err := loadDocument(c.Args().First())
			if err != nil {
				return err
			}
			ed := editor.FromDocument(doc, nil)

			r := render.NewTextRenderer(render.NewPalette(doc.Options.WithDefaults().Colors))
			r.Color = !c.Bool("no-color")
			if len(doc.Units) == 0 && doc.Text != "" {
				r.Sep = ""
			}
			fmt.Print(r.Render(ed.Positions()))
			return nil
		},
	}
}

func editCmd() *cli.Command {
	return &cli.Command{
		Name:      "edit",
		Usage:     "Annotate a document interactively",
		ArgsUsage: "file",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "Save path (defaults to the input file)"},
		},
		Action: func(c *cli.Context) error {
			path := c.Args().First()
			if path == "" {
				return fmt.Errorf("edit requires a file argument")
			}
			doc, err := loadDocument(path)
			if err != nil {
				return err
			}
			out := c.String("output")
			if out == "" {
				out = path
			}
			return terminal.Run(doc, out)
		},
	}
}

func exportCmd() *cli.Command {
	return &cli.Command{
		Name:      "export",
		Usage:     "Export an annotated document to another format",
		ArgsUsage: "[file]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: "html", Usage: "Output format: html|conll|json"},
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "Output file (defaults to stdout)"},
		},
		Action: func(c *cli.Context) error {
			doc, err := loadDocument(c.Args().First())
			if err != nil {
				return err
			}
			exp, err := export.ForFormat(c.String("format"))
			if err != nil {
				return err
			}
			ed := editor.FromDocument(doc, nil)
			out, err := exp.Export(ed.Units().Units(), ed.Spans())
			if err != nil {
				return err
			}
			return writeOutput(c.String("output"), out)
		},
	}
}

func convertCmd() *cli.Command {
	return &cli.Command{
		Name:      "convert",
		Usage:     "Normalize any supported input to the JSON document format",
		ArgsUsage: "[file]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "Output file (defaults to stdout)"},
		},
		Action: func(c *cli.Context) error {
			doc, err := loadDocument(c.Args().First())
			if err != nil {
				return err
			}
			ed := editor.FromDocument(doc, nil)
			out, err := export.NewJSONExporter().Export(ed.Units().Units(), ed.Spans())
			if err != nil {
				return err
			}
			return writeOutput(c.String("output"), out)
		},
	}
}

// loadDocument reads a document from a file or stdin and auto-detects the
// format.
func loadDocument(path string) (core.Document, error) {
	var data []byte
	var err error
	if path == "" || path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return core.Document{}, fmt.Errorf("failed to read input: %w", err)
	}
	return importer.NewRegistry().Import(string(data))
}

func writeOutput(path, content string) error {
	if path == "" || path == "-" {
		fmt.Print(content)
		return nil
	}
	return os.WriteFile(path, []byte(content), 0644)
}
