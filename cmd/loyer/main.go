package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/vanmarkic/loyer-brussels/internal/calculation"
	"github.com/vanmarkic/loyer-brussels/internal/config"
	"github.com/vanmarkic/loyer-brussels/internal/domain"
	"github.com/vanmarkic/loyer-brussels/internal/form"
	"github.com/vanmarkic/loyer-brussels/internal/lookup"
	"github.com/vanmarkic/loyer-brussels/internal/navigation"
	"github.com/vanmarkic/loyer-brussels/internal/session"
	"github.com/vanmarkic/loyer-brussels/internal/submission"
	"github.com/vanmarkic/loyer-brussels/internal/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	root := rootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var configPath string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "loyer",
		Short: "Brussels reference-rent calculator",
		Long: "Estimates a fair reference rent for a Brussels property, compares it\n" +
			"to the rent you pay, and puts you in touch with the tenants' union.",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to YAML configuration")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(tuiCmd(&configPath, &verbose))
	cmd.AddCommand(calcCmd(&configPath))
	cmd.AddCommand(sessionCmd(&configPath, &verbose))
	cmd.AddCommand(submitCmd(&configPath, &verbose))
	cmd.AddCommand(versionCmd())
	return cmd
}

func loadConfig(path string) (*config.AppConfig, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.NewParser().LoadFromFile(path)
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

func tuiCmd(configPath *string, verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the interactive step-by-step calculator",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			logger := newLogger(*verbose)

			fileStore := session.NewFileStore(cfg.Session.StorageDir,
				session.WithStoreLogger(logger),
				session.WithMaxAge(cfg.Session.MaxSessionAge))

			// The store is created exactly once, here, seeded from the
			// snapshot when one is restorable. Everything below receives
			// this instance; nothing ever constructs a second one.
			store, restored := session.Bootstrap(fileStore, form.WithLogger(logger))

			saver := session.NewAutosaver(store, fileStore,
				session.WithDebounce(cfg.Session.DebounceDelay),
				session.WithInterval(cfg.Session.SaveInterval),
				session.WithAutosaverLogger(logger))
			defer saver.Stop()

			controller := navigation.NewController(store, cfg.Locale,
				navigation.WithControllerLogger(logger))

			engine := calculation.NewEngineWithRates(cfg.Rates)
			resolver := lookup.NewStaticResolver(cfg.Rates.DifficultyIndexes)

			recordStore, err := submission.NewFileRecordStore(
				filepath.Join(cfg.Session.StorageDir, "submissions.ndjson"))
			if err != nil {
				return err
			}
			service := submission.NewService(recordStore, nil, logger)

			model := tui.NewModel(tui.Deps{
				Store:      store,
				Controller: controller,
				FileStore:  fileStore,
				Saver:      saver,
				Engine:     engine,
				Resolver:   resolver,
				Service:    service,
				Restored:   restored,
			})

			program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithReportFocus())
			_, err = program.Run()
			return err
		},
	}
}

func calcCmd(configPath *string) *cobra.Command {
	var (
		propertyType string
		size         int
		postalCode   string
		energyClass  string
		garages      int
		actualRent   string
	)

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Compute a reference rent non-interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}

			state := domain.NewFormState(domain.NewSessionID(), time.Now())
			state.PropertyInfo.PropertyType = domain.PropertyType(propertyType)
			state.PropertyInfo.Size = size
			state.PropertyInfo.PostalCode = postalCode
			state.PropertyInfo.EnergyClass = domain.EnergyClass(energyClass)
			state.PropertyInfo.NumberOfGarages = garages

			engine := calculation.NewEngineWithRates(cfg.Rates)
			result := engine.ReferenceRent(state)
			if result == nil {
				return fmt.Errorf("not enough inputs: property type, size and postal code are required")
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Median rent:  %s €/month\n", result.MedianRent.StringFixed(0))
			fmt.Fprintf(out, "Fair range:   %s – %s €/month\n",
				result.MinimumRent.StringFixed(0), result.MaximumRent.StringFixed(0))

			if actualRent != "" {
				userRent, ok := calculation.ParseRent(actualRent)
				if !ok {
					return fmt.Errorf("cannot parse rent amount %q", actualRent)
				}
				comparison := calculation.CompareRent(userRent, *result)
				fmt.Fprintf(out, "Your rent:    %s €/month (%s, %s € vs median)\n",
					userRent.StringFixed(0), comparison.Status,
					comparison.Difference.StringFixed(0))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&propertyType, "type", "", "property type (studio, apartment-1, apartment-2, apartment-3, house)")
	cmd.Flags().IntVar(&size, "size", 0, "living space in m²")
	cmd.Flags().StringVar(&postalCode, "postal-code", "", "postal code")
	cmd.Flags().StringVar(&energyClass, "energy", "", "PEB energy class A-G")
	cmd.Flags().IntVar(&garages, "garages", 0, "number of garages")
	cmd.Flags().StringVar(&actualRent, "rent", "", "your actual rent, for comparison")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("size")
	_ = cmd.MarkFlagRequired("postal-code")
	return cmd
}

func sessionCmd(configPath *string, verbose *bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Inspect or clear the saved session",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "stats",
		Short: "Show age, size and completion of the saved session",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			fileStore := session.NewFileStore(cfg.Session.StorageDir,
				session.WithStoreLogger(newLogger(*verbose)))

			stats := fileStore.Stats()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Age:        %d minutes\n", stats.SessionAgeMinutes)
			fmt.Fprintf(out, "Size:       %.1f KB\n", stats.ApproxSizeKB)
			fmt.Fprintf(out, "Completion: %d%%\n", stats.CompletionPercent)
			fmt.Fprintf(out, "Health:     %s\n", stats.Health)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Delete the saved session and start fresh",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			fileStore := session.NewFileStore(cfg.Session.StorageDir,
				session.WithStoreLogger(newLogger(*verbose)))
			fileStore.Clear()
			fmt.Fprintln(cmd.OutOrStdout(), "Session cleared.")
			return nil
		},
	})

	return cmd
}

func submitCmd(configPath *string, verbose *bool) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit the saved session to the tenants' union",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			logger := newLogger(*verbose)

			fileStore := session.NewFileStore(cfg.Session.StorageDir,
				session.WithStoreLogger(logger),
				session.WithMaxAge(cfg.Session.MaxSessionAge))
			state := fileStore.Load()
			if state == nil {
				return fmt.Errorf("no saved session to submit; run the calculator first")
			}
			if email != "" {
				state.UserProfile.Email = email
			}

			// Fill in the calculation if the session was saved before the
			// results step.
			if state.CalculationResults.MedianRent == nil {
				if result := calculation.NewEngineWithRates(cfg.Rates).ReferenceRent(*state); result != nil {
					state.CalculationResults = result.ApplyTo(state.CalculationResults)
				}
			}

			recordStore, err := submission.NewFileRecordStore(
				filepath.Join(cfg.Session.StorageDir, "submissions.ndjson"))
			if err != nil {
				return err
			}
			service := submission.NewService(recordStore, nil, logger)

			id, err := service.Submit(cmd.Context(), submission.NewRecord(*state))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Submitted, reference %s.\n", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "contact email (overrides the saved one)")
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "loyer %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Path)
			}
		},
	}
}
