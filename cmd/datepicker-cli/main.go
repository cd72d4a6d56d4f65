package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-formwidgets/internal/logging"
	"github.com/goliatone/go-formwidgets/internal/wizard"
	"github.com/goliatone/go-formwidgets/pkg/datepicker"
	"github.com/goliatone/go-formwidgets/pkg/head"
	"github.com/goliatone/go-formwidgets/pkg/markup"
)

var (
	verbose     bool
	configPath  string
	format      string
	lang        string
	markupID    string
	assetPrefix string
	interactive bool

	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "datepicker-cli",
	Short: "Print the head markup and activation script of a datepicker field",
	Long: `datepicker-cli renders a datepicker text field outside of a page and
prints the stylesheet and script references plus the DOM-ready activation
script it would contribute. Options come from a YAML file, flags, or an
interactive prompt.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = logging.New(verbose)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync(logger)
	},
	RunE: render,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML file with datepicker options")
	rootCmd.Flags().StringVar(&format, "format", "", "Date pattern, e.g. dd.MM.yyyy (overrides the file)")
	rootCmd.Flags().StringVar(&lang, "language", "", "Datepicker language (overrides the file)")
	rootCmd.Flags().StringVar(&markupID, "id", "date", "Markup id of the input element")
	rootCmd.Flags().StringVar(&assetPrefix, "assets", datepicker.DefaultAssetPrefix, "URL prefix of the datepicker assets")
	rootCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Ask for the options interactively")
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func render(cmd *cobra.Command, _ []string) error {
	spec := datepicker.ConfigSpec{}
	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return fmt.Errorf("read config: %w", err)
		}
		if spec, err = datepicker.ParseConfigSpecYAML(data); err != nil {
			return err
		}
		logger.Debug("config loaded", zap.String("path", configPath))
	}
	if format != "" {
		spec.Format = format
	}
	if lang != "" {
		spec.Language = lang
	}

	if interactive {
		answered, err := wizard.Ask(cmd.Context(), wizard.NewSurveyDriver(), spec)
		if errors.Is(err, wizard.ErrAborted) {
			return nil
		}
		if err != nil {
			return err
		}
		spec = answered
	}

	cfg, err := spec.Build()
	if err != nil {
		return err
	}

	field := datepicker.NewTextField(markupID,
		datepicker.WithConfig(cfg),
		datepicker.WithReferences(datepicker.DefaultReferences(assetPrefix)),
		datepicker.WithLogger(logger),
	)
	if err := field.Attach(markup.NewTag("input", markup.Attr{Key: "name", Val: markupID})); err != nil {
		return err
	}
	tag, err := field.RenderTag()
	if err != nil {
		return err
	}

	resp := head.NewResponse(head.WithLogger(logger))
	if err := field.RenderResources(resp); err != nil {
		return err
	}
	headMarkup, err := resp.Markup()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "pattern: %s\n", field.Pattern())
	fmt.Fprintf(out, "options: %s\n\n", cfg.JSON())
	fmt.Fprintln(out, tag.String())
	fmt.Fprintln(out)
	fmt.Fprint(out, headMarkup)
	return nil
}
