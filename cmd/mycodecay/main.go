package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/mycodecay/internal/config"
	"github.com/san-kum/mycodecay/internal/decay"
	"github.com/san-kum/mycodecay/internal/experiment"
	"github.com/san-kum/mycodecay/internal/logging"
	"github.com/san-kum/mycodecay/internal/plot"
	"github.com/san-kum/mycodecay/internal/report"
	"github.com/san-kum/mycodecay/internal/strain"
	"github.com/san-kum/mycodecay/internal/viz"
)

var (
	strainName    string
	days          int
	initialFibers float64
	configFile    string
	preset        string
	plotPath      string
	outputDir     string
	noView        bool
	openPlot      bool
	theme         string
	logLevel      string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the CLI and returns the process exit status.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(ctx)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, context.Canceled):
		fmt.Fprintln(stdout, "\nSimulation interrupted by user.")
		return 0
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "mycodecay",
		Short:         "fungal bioremediation simulator for asbestos fiber decay",
		Args:          cobra.NoArgs,
		RunE:          runSimulation,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.Flags()
	flags.StringVar(&strainName, "strain", strain.Default, fmt.Sprintf("fungal strain %v", strain.Names()))
	flags.IntVar(&days, "days", config.DefaultDays, "simulation duration in days")
	flags.Float64Var(&initialFibers, "initial_fibers", config.DefaultInitialFibers, "initial fiber mass (arbitrary units)")
	flags.StringVar(&configFile, "config", "", "run file path (yaml)")
	flags.StringVar(&preset, "preset", "", "use preset run configuration")
	flags.StringVar(&plotPath, "plot", plot.DefaultPath, "plot image path (.png or .svg)")
	flags.StringVar(&outputDir, "output-dir", report.DefaultDir, "report directory")
	flags.BoolVar(&noView, "no-view", false, "skip the interactive plot viewer")
	flags.BoolVar(&openPlot, "open", false, "open the plot in the system image viewer")
	flags.StringVar(&theme, "theme", viz.ThemeMycelium.Name, fmt.Sprintf("terminal theme %v", viz.ThemeNames()))
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	strainsCmd := &cobra.Command{
		Use:   "strains",
		Short: "list available strains",
		Args:  cobra.NoArgs,
		RunE:  listStrains,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range config.ListPresets() {
				p, _ := config.GetPreset(name)
				fmt.Fprintf(out, "  %-10s %s, %d days, %g fibers\n", name, p.Strain, p.Days, p.InitialFibers)
			}
			return nil
		},
	}

	rootCmd.AddCommand(strainsCmd, presetsCmd)
	return rootCmd
}

// resolveConfig layers defaults, preset, run file and explicitly set flags,
// in increasing precedence.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p, err := config.GetPreset(preset)
		if err != nil {
			return nil, err
		}
		cfg = p
	}

	if configFile != "" {
		fileCfg, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = fileCfg
	}

	flags := cmd.Flags()
	if flags.Changed("strain") || (preset == "" && configFile == "") {
		cfg.Strain = strainName
	}
	if flags.Changed("days") || (preset == "" && configFile == "") {
		cfg.Days = days
	}
	if flags.Changed("initial_fibers") || (preset == "" && configFile == "") {
		cfg.InitialFibers = initialFibers
	}
	return cfg, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	logger := logging.NewLogger(logLevel, cmd.ErrOrStderr())
	selected := viz.GetTheme(theme)

	exp := experiment.New(experiment.Config{
		Strain:        cfg.Strain,
		Days:          cfg.Days,
		InitialFibers: cfg.InitialFibers,
		PlotPath:      plotPath,
		OutputDir:     outputDir,
		Theme:         selected,
	})

	presenter := experiment.PresenterFunc(func(ctx context.Context, run *decay.Run, a viz.Artifacts) error {
		return viz.Present(ctx, run, a, viz.PresentOptions{
			Interactive: !noView,
			Open:        openPlot,
			Theme:       selected,
			Out:         cmd.OutOrStdout(),
			Logger:      logger,
		})
	})
	exp.Setup(logger, cmd.OutOrStdout(), presenter)

	_, err = exp.Run(cmd.Context())
	return err
}

func listStrains(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tDECAY RATE\tTOXIN REDUCTION\tOPTIMAL TEMP")

	for _, p := range strain.All() {
		fmt.Fprintf(w, "%s\t%s\t%.3f/day\t%.0f%%\t%.0f°C\n",
			p.ID,
			p.DisplayName,
			p.DecayRate,
			p.ToxinReduction*100,
			p.OptimalTemperature,
		)
	}

	return w.Flush()
}
