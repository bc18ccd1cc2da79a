// Copyright (c) 2026 liuyuxun, 1225
// bigcalc - arbitrary-precision integer calculator
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the command-line interface for bigcalc using the Cobra
// library. It defines the root command, the subcommands (eval, history,
// version), flags, and the shared startup sequence. Running without a
// subcommand launches the interactive TUI.

package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	log "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/liuyuxun641102/liuyuxun/buildvars"
	"github.com/liuyuxun641102/liuyuxun/internal/calc"
	"github.com/liuyuxun641102/liuyuxun/internal/config"
	"github.com/liuyuxun641102/liuyuxun/internal/db"
	"github.com/liuyuxun641102/liuyuxun/internal/diag"
	"github.com/liuyuxun641102/liuyuxun/internal/i18n"
	"github.com/liuyuxun641102/liuyuxun/internal/logging"
	"github.com/liuyuxun641102/liuyuxun/internal/tui"
)

var version = "dev"   // this will be set by the linker
var gitCommit = "dev" // set at build time with the short commit SHA
var buildDate = ""    // set at build time (RFC3339)
var cfgFile string
var verbose bool
var showVersionFlag bool
var noHistory bool // eval flag: skip recording into the history store
var lsdFirst bool  // eval flag: print digits least-significant first

var appConfig config.Config
var tracker *diag.Tracker
var engine *calc.Engine

// setupDefaultServices loads the configuration and brings up i18n, the
// history store and the calculation engine. It runs before every command.
func setupDefaultServices(cmd *cobra.Command, args []string) error {
	optionalConfigPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	appConfig, err = config.LoadConfig(cmd, config.Defaults(), optionalConfigPath)
	// A "file not found" error is expected on first run; anything else is
	// fatal.
	if errors.As(err, &viper.ConfigFileNotFoundError{}) {
		if writeErr := config.WriteConfigFile(&appConfig, false); writeErr != nil {
			// The app can run on defaults, so only warn.
			log.Warnf("could not write default config file: %v", writeErr)
		}
	} else if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	// Guard against a config file with the critical values blanked out.
	defaults := config.Defaults()
	if appConfig.Database.Type == "" {
		appConfig.Database.Type = defaults["database.type"].(string)
	}
	if appConfig.Database.Dsn == "" {
		appConfig.Database.Dsn = defaults["database.dsn"].(string)
	}
	if appConfig.Language == "" {
		appConfig.Language = defaults["language"].(string)
	}

	i18n.Init(appConfig.Language)

	if appConfig.History.Enabled && !db.HasStore() && !noHistory {
		if _, err := db.New(appConfig.Database.Type, appConfig.Database.Dsn); err != nil {
			return errors.New(i18n.T("cli.config_error_init_db", err))
		}
	}

	tracker = diag.New()
	engine = calc.New(calc.Limits{
		ExponentLimit: appConfig.Engine.ExponentLimit,
		ExponentWarn:  appConfig.Engine.ExponentWarn,
	}, tracker)

	return nil
}

// Execute runs the CLI entrypoint. The main package should call this
// function and handle process exit.
func Execute() error {
	rootCmd := NewRootCmd()

	err := rootCmd.Execute()

	tracker.Report()
	if prev := db.SetStore(nil); prev != nil {
		if closeErr := prev.Close(); closeErr != nil {
			log.Errorf("error closing history store: %v", closeErr)
		}
	}
	return err
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	// Only honor --config when the user explicitly set it.
	if !cmd.Flags().Changed("config") {
		return nil, nil
	}
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("could not read --config flag: %w", err)
	}
	if path == "" {
		return nil, nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
	}
	return &path, nil
}

// NewRootCmd creates and configures a new root cobra command. Tests call
// it to get fresh, isolated instances.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bigcalc",
		Short: "bigcalc is an arbitrary-precision integer calculator.",
		Long: `bigcalc evaluates integer expressions of unbounded size using
schoolbook arithmetic on decimal digit sequences. It supports addition,
subtraction, multiplication, division with remainder and exponentiation.

Running without a subcommand will launch the interactive TUI.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if showVersionFlag {
				v, c, d := resolveBuildVersion(nil)
				composite := v
				if c != "" && c != "dev" {
					composite = composite + " (" + c + ")"
				}
				if d != "" {
					composite = composite + " built: " + d
				}
				fmt.Printf("%s\n", composite)
				os.Exit(0)
			}
			logging.SetDebug(verbose)
			return setupDefaultServices(cmd, args)
		},
		Run: func(cmd *cobra.Command, args []string) {
			// Config, i18n and the history store are already up.
			tui.Run(tui.Options{
				Engine:     engine,
				Tracker:    tracker,
				Config:     &appConfig,
				SaveConfig: func() error { return config.WriteConfigFile(&appConfig, false) },
				Version:    buildvars.VersionOrDefault(version),
			})
			fmt.Println(i18n.T("cli.goodbye"))
		},
	}

	v, c, d := resolveBuildVersion(nil)
	composite := v
	if c != "" && c != "dev" {
		composite = composite + " (" + c + ")"
	}
	if d != "" {
		composite = composite + " built: " + d
	}
	cmd.Version = composite

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	cmd.PersistentFlags().BoolVarP(&showVersionFlag, "version", "V", false, "Print version and exit")
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file")
	cmd.PersistentFlags().String("language", "en", `UI language ("en", "zh")`)

	cmd.AddCommand(
		newEvalCmd(),
		newHistoryCmd(),
		newVersionCmd(),
	)

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			v, c, d := resolveBuildVersion(nil)
			fmt.Printf("version: %s\n", v)
			fmt.Printf("commit: %s\n", c)
			if d != "" {
				fmt.Printf("built: %s\n", d)
			}
		},
	}
}

// resolveBuildVersion computes the best-available version, commit and
// build date for the running binary. If info is nil, it reads build info
// from the runtime. Separated out to keep it unit-testable.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := version
	resolvedCommit := gitCommit
	resolvedDate := buildDate

	if info == nil {
		info, _ = debug.ReadBuildInfo()
	}

	if info != nil {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			resolvedVersion = info.Main.Version
		}
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if s.Value != "" {
					resolvedCommit = s.Value
				}
			case "vcs.time":
				if s.Value != "" {
					resolvedDate = s.Value
				}
			}
		}
	}

	return resolvedVersion, resolvedCommit, resolvedDate
}
