package cli

import (
	"context"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/builddetails/cli/cmd"
	"github.com/ardnew/builddetails/config"
	"github.com/ardnew/builddetails/detail"
	"github.com/ardnew/builddetails/pkg"
)

// CLI is the top-level command-line interface for builddetails.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Config  string           `default:"${config}" help:"Selection file" placeholder:"FILE" short:"c" type:"path"`
	Version kong.VersionFlag `help:"Print version and exit"`

	Generate cmd.Generate `cmd:"" default:"withargs" help:"Generate build details"`
	Kinds    cmd.Kinds    `cmd:""                    help:"List detail kinds"`
	Init     cmd.Init     `cmd:""                    help:"Initialize selection file"`
}

// Run executes the builddetails CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
//
// Commands read the build environment from ctx if it carries one (see
// [cmd.WithEnvironment]), and the process environment otherwise.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	// The selection file is decoded during parsing, so its path must be known
	// before kong sees the --config flag.
	configPath := scanConfigPath(args)
	selection := config.Default()

	vars := kong.Vars{
		cmd.ConfigIdentifier: configPath,
		cmd.SyntaxIdentifier: strings.Join(detail.Syntaxes(), ","),
		"version":            pkg.Version,
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Pre-scan for logger flags to ensure early configuration regardless of
	// flag position. TextUnmarshaler on logFormat/logLevel handles those flags
	// during normal parsing, but this early scan also catches boolean flags
	// like --log-pretty.
	cli.Log.scan(args)

	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				Tree:                true,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(resolve(&selection), configPath),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	ctx = cmd.WithContext(ctx, ktx)
	ctx = cmd.WithConfigPath(ctx, cli.Config)
	ctx = cmd.WithSelection(ctx, selection)

	// Finalize logger configuration with all parsed values including
	// TimeLayout and Caller which don't use TextUnmarshaler.
	defer cli.Log.start(ctx)()

	// [pprofConfig.start] is no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	return ktx.Run(ctx, &cli)
}
