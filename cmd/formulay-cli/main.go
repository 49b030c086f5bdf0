package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"

	"go.uber.org/zap"

	formulay "github.com/goliatone/go-formulay"
	"github.com/goliatone/go-formulay/pkg/controller"
	"github.com/goliatone/go-formulay/pkg/model"
	"github.com/goliatone/go-formulay/pkg/record"
	"github.com/goliatone/go-formulay/pkg/render"
	"github.com/goliatone/go-formulay/pkg/renderers/html"
	"github.com/goliatone/go-formulay/pkg/renderers/tui"
	"github.com/goliatone/go-formulay/pkg/schema"
)

type options struct {
	schemaPath  string
	openAPIPath string
	component   string
	initPath    string
	enforce     bool
	renderer    string
	format      string
	action      string
	output      string
	debug       bool
}

func main() {
	var opts options
	flag.StringVar(&opts.schemaPath, "schema", "", "record definition (YAML or JSON)")
	flag.StringVar(&opts.openAPIPath, "openapi", "", "OpenAPI 3 document; used with -component instead of -schema")
	flag.StringVar(&opts.component, "component", "", "component schema name inside the OpenAPI document")
	flag.StringVar(&opts.initPath, "init", "", "JSON file with the initial record")
	flag.BoolVar(&opts.enforce, "enforce", true, "refuse submission while required fields are unset")
	flag.StringVar(&opts.renderer, "renderer", tui.Name, "runtime to use: tui or html")
	flag.StringVar(&opts.format, "format", string(tui.OutputFormatJSON), "tui output format: json, form or pretty")
	flag.StringVar(&opts.action, "action", "", "form action URL for html output")
	flag.StringVar(&opts.output, "output", "", "output file (stdout if empty)")
	flag.BoolVar(&opts.debug, "debug", false, "enable development logging")
	flag.Parse()

	logger, err := newLogger(opts.debug)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	out, err := run(ctx, opts, logger, nil)
	if err != nil {
		if errors.Is(err, tui.ErrAborted) {
			os.Exit(130)
		}
		log.Fatalf("formulay: %v", err)
	}

	if opts.output != "" {
		if err := os.WriteFile(opts.output, out, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Output written to %s\n", opts.output)
		return
	}
	fmt.Println(string(out))
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}

// run loads the schema, builds a controller and drives the selected runtime.
// driver overrides the terminal prompts; nil uses survey.
func run(ctx context.Context, opts options, logger *zap.Logger, driver tui.PromptDriver) ([]byte, error) {
	recordSchema, err := loadSchema(ctx, opts, logger)
	if err != nil {
		return nil, err
	}
	def, err := controller.Compile(recordSchema)
	if err != nil {
		return nil, err
	}

	ctrlOptions := []controller.Option{
		controller.WithEnforceRequiredFields(opts.enforce),
		controller.WithLogger(logger),
	}
	if opts.initPath != "" {
		initial, err := loadInitial(recordSchema, opts.initPath)
		if err != nil {
			return nil, err
		}
		ctrlOptions = append(ctrlOptions, controller.WithInitialRecord(initial))
	}
	ctrl, err := def.New(ctrlOptions...)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(strings.TrimSpace(opts.renderer)) {
	case html.Name:
		renderOptions := render.RenderOptions{Action: opts.action}.WithHidden(render.SessionField(ctrl.SessionID()))
		return formulay.RenderHTML(ctx, ctrl, renderOptions, html.WithLogger(logger))
	case tui.Name:
		runner := tui.New(
			tui.WithPromptDriver(driver),
			tui.WithOutputFormat(tui.OutputFormat(opts.format)),
			tui.WithLogger(logger),
			tui.WithTheme(tui.Theme{ErrorPrefix: "! "}),
		)
		rec, err := runner.Run(ctx, ctrl)
		if err != nil {
			return nil, err
		}
		return runner.Format(rec)
	default:
		return nil, fmt.Errorf("unknown renderer %q (want %s or %s)", opts.renderer, tui.Name, html.Name)
	}
}

func loadSchema(ctx context.Context, opts options, logger *zap.Logger) (model.Schema, error) {
	schemaOptions := []schema.Option{schema.WithLogger(logger)}
	switch {
	case opts.openAPIPath != "":
		if opts.component == "" {
			return model.Schema{}, errors.New("-component is required with -openapi")
		}
		return formulay.LoadOpenAPISchema(ctx, schema.SourceFromFile(opts.openAPIPath), opts.component, schemaOptions...)
	case opts.schemaPath != "":
		return formulay.LoadSchema(ctx, schema.SourceFromFile(opts.schemaPath), schemaOptions...)
	default:
		return model.Schema{}, errors.New("one of -schema or -openapi is required")
	}
}

func loadInitial(recordSchema model.Schema, path string) (model.Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return model.Record{}, fmt.Errorf("open initial record: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return model.Record{}, fmt.Errorf("read initial record: %w", err)
	}
	return record.Decode(recordSchema, data)
}
