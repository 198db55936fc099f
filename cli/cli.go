package cli

import (
	"context"

	"github.com/alecthomas/kong"

	"github.com/ardnew/uenv/cli/cmd"
	"github.com/ardnew/uenv/env"
	"github.com/ardnew/uenv/inline"
	"github.com/ardnew/uenv/pkg"
)

// CLI is the top-level command-line interface for uenv.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Dir     string `default:"."           help:"Directory containing the dotenv files." short:"C" type:"path"`
	Base    string `default:"${base}"     help:"Base name of the dotenv files."         short:"b"`
	ModeVar string `default:"${modeVar}"  help:"Environment variable naming the mode."`
	Mode    string `default:""            help:"Mode overriding the mode variable."     short:"m"`

	Version kong.VersionFlag `help:"Print version and exit." short:"V"`

	Resolve cmd.Resolve `cmd:"" default:"withargs" help:"Print the merged dotenv mapping"`
	ModeCmd cmd.Mode    `cmd:"" help:"Print the resolved mode"             name:"mode"`
	Files   cmd.Files   `cmd:"" help:"List candidate dotenv files"`
	Rewrite cmd.Rewrite `cmd:"" help:"Substitute resolved values into an expression"`
	Eval    cmd.Eval    `cmd:"" help:"Evaluate an expression with resolved values"`
	Browse  cmd.Browse  `cmd:"" help:"Interactively browse the merged mapping"`
	Init    cmd.Init    `cmd:"" help:"Initialize configuration file"`
}

func (c *CLI) vars() kong.Vars {
	return kong.Vars{
		"base":    env.DefaultBase,
		"modeVar": env.DefaultModeKey,
		"object":  inline.DefaultObject,
		"version": pkg.Name + " " + pkg.Version,
	}
}

func (c *CLI) settings() cmd.Settings {
	return cmd.Settings{
		Dir:     c.Dir,
		Base:    c.Base,
		ModeKey: c.ModeVar,
		Mode:    c.Mode,
	}
}

// Run executes the uenv CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	err := mkdirAllRequired()
	if err != nil {
		return err
	}

	configFilePath := configPath(baseConfig + ".yaml")
	jsonFilePath := configPath(baseConfig + ".json")

	vars := kong.Vars{
		cmd.ConfigIdentifier: configFilePath,
		cmd.CacheIdentifier:  cacheDir(),
	}.
		CloneWith(cli.vars()).
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Pre-scan for logger flags to ensure early configuration regardless of
	// flag position.
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
				FlagsLast:           false,
				NoAppSummary:        false,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(loadJSONC(jsonFilePath), jsonFilePath),
		kong.Configuration(loadYAML(configFilePath), configFilePath),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Stuff additional context values for use by commands
	ctx = cmd.WithContext(ctx, ktx)
	ctx = cmd.WithSettings(ctx, cli.settings())

	// Finalize logger configuration with all parsed values including
	// TimeLayout and Caller which don't use TextUnmarshaler.
	cli.Log.start(ctx)

	// [pprofConfig.start] is no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	return ktx.Run(ctx, &cli)
}
