package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/abatilo/spin/internal/config"
	"github.com/abatilo/spin/internal/output"
	"github.com/abatilo/spin/internal/sampler"
	"github.com/abatilo/spin/internal/spinner"
	"github.com/abatilo/spin/internal/storage"
	"github.com/abatilo/spin/internal/task"
)

//nolint:gochecknoglobals // CLI flags and formatter are package-level
var (
	jsonOutput bool
	debug      bool
	configPath string
	listPath   string
	formatter  output.Formatter
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd assembles the command tree.
func newRootCmd() *cobra.Command {
	var sel selectionFlags
	var stats bool

	rootCmd := &cobra.Command{
		Use:   "spin",
		Short: "Pick your next task by weighted chance",
		Long: "spin - assigns you one task from a priority-weighted task list,\n" +
			"with a fixed chance of telling you to take a break instead.",
		Args: cobra.NoArgs,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if jsonOutput {
				formatter = output.NewJSONFormatter()
			} else {
				formatter = output.NewHumanFormatter()
			}
		},
		Run: func(cmd *cobra.Command, _ []string) {
			s, tasks, err := sel.build(cmd)
			if err != nil {
				printError(err)
			}

			res, err := s.Spin(tasks)
			if err != nil {
				printError(err)
			}
			printOutput(formatter.FormatResult(res))

			if stats && res.Kind != spinner.KindEmpty {
				odds, err := s.Odds(tasks)
				if err != nil {
					printError(err)
				}
				printOutput("\n" + formatter.FormatOdds(odds))
			}
		},
	}

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Log weighting and draw details to stderr")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Settings file (default $SPIN_CONFIG or <config dir>/spin/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&listPath, "file", "f", "", "Task list file (default: nearest "+storage.ListFile+")")
	sel.register(rootCmd)
	rootCmd.Flags().BoolVar(&stats, "stats", false, "Also show the probability breakdown")

	rootCmd.AddCommand(
		oddsCmd(),
		weightsCmd(),
		initCmd(),
		addCmd(),
		rmCmd(),
		listCmd(),
	)
	return rootCmd
}

func getStore() (*storage.Store, error) {
	if listPath != "" {
		return storage.NewStoreWithPath(listPath), nil
	}
	return storage.NewStore()
}

func newLogger() *zerolog.Logger {
	if !debug {
		return nil
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(zerolog.DebugLevel).
		With().Timestamp().Logger()
	return &logger
}

func printOutput(s string) {
	os.Stdout.WriteString(s) //nolint:gosec // stdout write errors are unrecoverable
}

func printError(err error) {
	os.Stdout.WriteString(formatter.FormatError(err)) //nolint:gosec // stdout write errors are unrecoverable
	os.Exit(1)
}

// selectionFlags are shared by every command that builds a distribution.
type selectionFlags struct {
	critical    []string
	important   []string
	maintenance []string
	breakValue  float64
	policy      string
	preset      string
	seed        uint64
}

func (f *selectionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&f.critical, "critical", "c", nil, "Critical task (repeatable)")
	cmd.Flags().StringArrayVarP(&f.important, "important", "i", nil, "Important task (repeatable)")
	cmd.Flags().StringArrayVarP(&f.maintenance, "maintenance", "m", nil, "Maintenance task (repeatable)")
	cmd.Flags().Float64Var(&f.breakValue, "break", 0, "Break probability: 0 disables, 0-1 fraction, or 1-99 percent (default 15)")
	cmd.Flags().StringVar(&f.policy, "policy", "", "Selection policy: unified or gate (default unified)")
	cmd.Flags().StringVar(&f.preset, "preset", "", "Multiplier preset: default (5/2/1) or classic (6/2/1)")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "Seed for a reproducible draw")
}

// build resolves configuration and tasks, then constructs the spinner.
// Precedence: defaults, settings file, environment, task list frontmatter, flags.
func (f *selectionFlags) build(cmd *cobra.Command) (*spinner.Spinner, []task.Task, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}

	var tasks []task.Task
	if len(f.critical)+len(f.important)+len(f.maintenance) > 0 {
		tasks = task.FromLists(f.critical, f.important, f.maintenance)
	} else {
		store, storeErr := getStore()
		if storeErr != nil {
			return nil, nil, storeErr
		}
		list, loadErr := store.Load()
		if loadErr != nil {
			return nil, nil, loadErr
		}
		if err = cfg.Apply(list.Settings); err != nil {
			return nil, nil, err
		}
		tasks = list.Tasks
	}

	overrides := config.Settings{Preset: f.preset, Policy: f.policy}
	if cmd.Flags().Changed("break") {
		overrides.Break = &f.breakValue
	}
	if err = cfg.Apply(overrides); err != nil {
		return nil, nil, err
	}
	if err = cfg.Validate(); err != nil {
		return nil, nil, err
	}

	var seed *uint64
	if cmd.Flags().Changed("seed") {
		seed = &f.seed
	}

	s, err := spinner.New(spinner.Options{
		Policy:      spinner.Policy(cfg.Policy),
		Multipliers: cfg.Multipliers,
		Break:       cfg.Break,
		Sampler:     sampler.New(seed),
		Logger:      newLogger(),
	})
	if err != nil {
		return nil, nil, err
	}
	return s, tasks, nil
}

// oddsCmd implements 'spin odds'.
func oddsCmd() *cobra.Command {
	var sel selectionFlags
	cmd := &cobra.Command{
		Use:   "odds",
		Short: "Show the chance of each category and of a break",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			s, tasks, err := sel.build(cmd)
			if err != nil {
				printError(err)
			}
			odds, err := s.Odds(tasks)
			if err != nil {
				printError(err)
			}
			printOutput(formatter.FormatOdds(odds))
		},
	}
	sel.register(cmd)
	return cmd
}

// weightsCmd implements 'spin weights'.
func weightsCmd() *cobra.Command {
	var sel selectionFlags
	cmd := &cobra.Command{
		Use:   "weights",
		Short: "Show the normalized weight of every task",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			s, tasks, err := sel.build(cmd)
			if err != nil {
				printError(err)
			}
			items, err := s.Distribution(tasks)
			if err != nil {
				printError(err)
			}
			printOutput(formatter.FormatDistribution(items))
		},
	}
	sel.register(cmd)
	return cmd
}
