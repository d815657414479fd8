package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	arabify "github.com/riverfjs/arabify-go"
)

// renderFlags are shared by the text and render commands.
type renderFlags struct {
	strategy    string
	swallow     bool
	arabicClass string
	markdown    bool
}

func (rf *renderFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&rf.strategy, "strategy", "s", "character", "run boundary policy: character, token or sentence")
	fs.BoolVar(&rf.swallow, "swallow-unmatched", false, "treat text after an unmatched [lang=\"ar\"] marker as Arabic")
	fs.StringVar(&rf.arabicClass, "class", "", "class attribute of Arabic spans")
	fs.BoolVar(&rf.markdown, "markdown", false, "parse multi-paragraph fields as Markdown")
}

func (rf *renderFlags) options() ([]arabify.Option, error) {
	strategy, ok := arabify.ParseStrategy(rf.strategy)
	if !ok {
		return nil, fmt.Errorf("unknown strategy %q", rf.strategy)
	}
	opts := []arabify.Option{
		arabify.WithStrategy(strategy),
		arabify.WithMarkdown(rf.markdown),
	}
	if rf.swallow {
		opts = append(opts, arabify.WithUnmatchedMarker(arabify.MarkerSwallow))
	}
	if rf.arabicClass != "" {
		opts = append(opts, arabify.WithArabicClass(rf.arabicClass))
	}
	return opts, nil
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "arabify",
		Short: "Render form text with Arabic runs as HTML snippets",
	}

	var textFlags renderFlags
	textCmd := &cobra.Command{
		Use:          "text [text]",
		Short:        "Segment one string (or stdin) and print the HTML fragment",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := textFlags.options()
			if err != nil {
				return err
			}
			var text string
			if len(args) == 1 {
				text = args[0]
			} else {
				b, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				text = strings.TrimSuffix(string(b), "\n")
			}
			fmt.Fprintln(cmd.OutOrStdout(), arabify.NewSegmenter(opts...).Segment(text))
			return nil
		},
	}
	textFlags.register(textCmd.Flags())
	rootCmd.AddCommand(textCmd)

	var (
		renderOpts renderFlags
		inputPath  string
		outputPath string
		download   bool
	)
	renderCmd := &cobra.Command{
		Use:   "render <doa|fatwa|additional|arabic-multi-lines|span-reducer>",
		Short: "Render a form record",
		Long: "Render a form record. doa and fatwa read a YAML record; the other\n" +
			"kinds read their content as plain text.",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ct, ok := arabify.ParseContentType(args[0])
			if !ok {
				return fmt.Errorf("unknown form %q", args[0])
			}
			opts, err := renderOpts.options()
			if err != nil {
				return err
			}
			data, err := readInput(cmd.InOrStdin(), inputPath)
			if err != nil {
				return err
			}
			form, err := decodeForm(ct, data)
			if err != nil {
				return err
			}

			if download && outputPath == "" {
				outputPath = arabify.DefaultFileName(ct)
			}
			if outputPath == "" || outputPath == "-" {
				html, err := arabify.Render(form, opts...)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), html)
				return nil
			}
			if err := arabify.RenderFile(outputPath, form, opts...); err != nil {
				return err
			}
			fmt.Fprintln(cmd.ErrOrStderr(), color.GreenString("wrote %s", outputPath))
			return nil
		},
	}
	renderOpts.register(renderCmd.Flags())
	renderCmd.Flags().StringVarP(&inputPath, "file", "f", "", "input file (default stdin)")
	renderCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file (default stdout)")
	renderCmd.Flags().BoolVar(&download, "download", false, "write to <form>-content.html")
	rootCmd.AddCommand(renderCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("Error: %v", err))
		os.Exit(1)
	}
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "" || path == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return b, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return b, nil
}

// decodeForm builds the form record for ct. doa and fatwa are YAML records;
// the other forms take the input verbatim as their content.
func decodeForm(ct arabify.ContentType, data []byte) (arabify.Form, error) {
	switch ct {
	case arabify.ContentTypeDoa, arabify.ContentTypeFatwa:
		form := arabify.NewForm(ct)
		if err := yaml.Unmarshal(data, form); err != nil {
			return nil, fmt.Errorf("decode %s form: %w", ct, err)
		}
		return form, nil
	case arabify.ContentTypeAdditional:
		return arabify.AdditionalForm{Content: string(data)}, nil
	case arabify.ContentTypeArabicMultiLines:
		return arabify.ArabicMultiLinesForm{Content: string(data)}, nil
	case arabify.ContentTypeSpanReducer:
		return arabify.SpanReducerForm{Content: string(data)}, nil
	}
	return nil, fmt.Errorf("unknown form %v", ct)
}
