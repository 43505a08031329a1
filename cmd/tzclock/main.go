package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/tzclock/internal/app"
	"github.com/san-kum/tzclock/internal/config"
	"github.com/san-kum/tzclock/internal/logging"
	"github.com/san-kum/tzclock/internal/storage"
	"github.com/san-kum/tzclock/internal/timer"
	"github.com/san-kum/tzclock/internal/viz"
	"github.com/san-kum/tzclock/internal/zone"
)

var (
	dataDir    string
	configFile string
	hour12     bool
	analog     bool
	themeName  string
	mode       string
	preset     string
	outFile    string
	braille    bool
	days       int
)

// main runs the interactive clock when no subcommand is given.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd registers the commands and binds the flags to their variables,
// resetting them to the defaults.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "tzclock",
		Short:        "world clocks and a countdown timer in the terminal",
		SilenceUsage: true,
		RunE:         runInteractive,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml); defaults to <data>/config.yaml when present")
	rootCmd.PersistentFlags().BoolVar(&hour12, "12h", false, "12-hour clock")
	rootCmd.PersistentFlags().BoolVar(&analog, "analog", false, "analog clock faces")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", "", "color theme")
	rootCmd.Flags().StringVar(&mode, "mode", config.DefaultMode, "start in clock or timer mode")

	zonesCmd := &cobra.Command{
		Use:   "zones",
		Short: "list supported time zones",
		RunE:  listZones,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "show the saved clocks",
		RunE:  listClocks,
	}

	addCmd := &cobra.Command{
		Use:   "add [zone...]",
		Short: "add clocks",
		Args:  cobra.MinimumNArgs(1),
		RunE:  addClocks,
	}

	removeCmd := &cobra.Command{
		Use:     "remove [zone...]",
		Aliases: []string{"rm"},
		Short:   "remove clocks",
		Args:    cobra.MinimumNArgs(1),
		RunE:    removeClocks,
	}

	nowCmd := &cobra.Command{
		Use:   "now [zone...]",
		Short: "print the current time of the saved clocks or the given zones",
		RunE:  printNow,
	}

	timerCmd := &cobra.Command{
		Use:   "timer [duration]",
		Short: "start the countdown timer (HH:MM:SS, MM:SS, seconds or 25m)",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runTimer,
	}
	timerCmd.Flags().StringVar(&preset, "preset", "", "use a preset duration")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list timer presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Printf("%-12s %s\n", name, timer.FormatDuration(config.GetPreset(name).Duration()))
			}
		},
	}

	themeCmd := &cobra.Command{
		Use:   "theme [name]",
		Short: "show or set the color theme",
		Args:  cobra.MaximumNArgs(1),
		RunE:  selectTheme,
	}

	offsetsCmd := &cobra.Command{
		Use:   "offsets [zone]",
		Short: "chart the UTC offset of a zone over the coming days",
		Args:  cobra.ExactArgs(1),
		RunE:  plotOffsets,
	}
	offsetsCmd.Flags().IntVar(&days, "days", 365, "number of days to chart")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "export the saved clocks as analog faces in SVG",
		RunE:  snapshot,
	}
	snapshotCmd.Flags().StringVarP(&outFile, "output", "o", "", "output file (default stdout)")
	snapshotCmd.Flags().BoolVar(&braille, "braille", false, "draw the faces as the terminal does, in Braille dots")

	rootCmd.AddCommand(zonesCmd, listCmd, addCmd, removeCmd, nowCmd, timerCmd, presetsCmd, themeCmd, offsetsCmd, snapshotCmd)
	return rootCmd
}

// env is what every command needs.
type env struct {
	cfg   *config.Config
	log   *zap.Logger
	store *storage.Store
}

func (e *env) Close() {
	_ = e.log.Sync()
}

func setup(cmd *cobra.Command) (*env, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log, err := logging.New(cfg.Log)
	if err != nil {
		return nil, err
	}

	if cfg.ThemesDir != "" {
		loaded, err := viz.LoadThemesDir(cfg.ThemesDir)
		if err != nil {
			log.Warn("load themes", zap.Error(err))
		}
		log.Debug("themes loaded", zap.Int("count", len(loaded)))
	}

	st := storage.New(cfg.DataDir)
	if err := st.Init(); err != nil {
		return nil, err
	}
	if err := st.Load(); err != nil {
		// a damaged state file is replaced on the next write
		log.Warn("load state", zap.String("path", st.Path()), zap.Error(err))
	}

	return &env{cfg: cfg, log: log, store: st}, nil
}

// loadConfig merges defaults, the config file and changed flags, in that order.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Flags()

	path := configFile
	if path == "" {
		path = filepath.Join(dataDir, "config.yaml")
		if _, err := os.Stat(path); err != nil {
			path = ""
		}
	}

	cfg := config.DefaultConfig()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if flags.Changed("data") || cfg.DataDir == "" {
		cfg.DataDir = dataDir
	}
	if flags.Changed("12h") {
		cfg.Hour12 = hour12
	}
	if flags.Changed("analog") {
		cfg.View = "digital"
		if analog {
			cfg.View = "analog"
		}
	}
	if flags.Changed("theme") {
		cfg.Theme = themeName
	}
	if flags.Changed("mode") {
		cfg.Mode = mode
	}
	if flags.Changed("preset") {
		cfg.Timer.Preset = preset
	}
	return cfg, nil
}

// resolveTheme picks the flag or config theme over the saved one.
func resolveTheme(cmd *cobra.Command, e *env) viz.Theme {
	name := e.cfg.Theme
	if saved, ok := e.store.Get(app.ThemeKey); ok && !cmd.Flags().Changed("theme") {
		name = saved
	}
	t, ok := viz.GetTheme(name)
	if !ok {
		e.log.Debug("unknown theme, using default", zap.String("theme", name))
	}
	return t
}

// newApp builds the application on top of v.
func newApp(e *env, v *viz.View) (*app.App, error) {
	m, err := app.ParseMode(e.cfg.Mode)
	if err != nil {
		return nil, err
	}
	style, err := app.ParseStyle(e.cfg.View)
	if err != nil {
		return nil, err
	}
	return app.New(app.Options{
		Store:         e.store,
		View:          v,
		Resolver:      zone.NewResolver(e.log),
		Log:           e.log,
		Mode:          m,
		Style:         style,
		Hour12:        e.cfg.Hour12,
		ClockInterval: e.cfg.Refresh.Clock,
		TimerInterval: e.cfg.Refresh.Timer,
		TimerColor:    e.cfg.Timer.Color,
		AlertColor:    e.cfg.Timer.AlertColor,
	})
}

func runInteractive(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	v := viz.NewView(resolveTheme(cmd, e))
	a, err := newApp(e, v)
	if err != nil {
		return err
	}
	return runProgram(e, a, v)
}

func runTimer(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	d, err := timerDuration(e.cfg, args)
	if err != nil {
		return err
	}

	e.cfg.Mode = app.TimerView.String()
	v := viz.NewView(resolveTheme(cmd, e))
	a, err := newApp(e, v)
	if err != nil {
		return err
	}
	// the refresh is installed when the program starts
	a.StartTimerDuration(d)
	return runProgram(e, a, v)
}

func timerDuration(cfg *config.Config, args []string) (time.Duration, error) {
	if len(args) == 1 {
		return timer.ParseHMS(args[0])
	}
	if cfg.Timer.Preset != "" {
		p := config.GetPreset(cfg.Timer.Preset)
		if p == nil {
			return 0, fmt.Errorf("unknown preset: %s (available: %v)", cfg.Timer.Preset, config.ListPresets())
		}
		return p.Duration(), nil
	}
	return 0, errors.New("give a duration or --preset")
}

func runProgram(e *env, a *app.App, v *viz.View) error {
	m := viz.NewModel(a, v)
	if p := config.GetPreset(e.cfg.Timer.Preset); p != nil {
		m = m.WithDefaultDuration(p.Duration())
	}

	e.log.Info("starting", zap.String("mode", a.Mode().String()), zap.String("data", e.cfg.DataDir))
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
