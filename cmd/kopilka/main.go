package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"

	"github.com/mkraev/kopilka/pkg/config"
	"github.com/mkraev/kopilka/pkg/reports"
	"github.com/mkraev/kopilka/pkg/service"
)

var (
	cfgFile     string
	columnsFile string
	saveReport  bool
	debugDump   bool
)

var rootCmd = &cobra.Command{
	Use:   "kopilka",
	Short: "Personal banking analytics: card spending, cashback, savings and search",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

var dashboardCmd = &cobra.Command{
	Use:   "dashboard [operations-file]",
	Short: "Month-to-date dashboard: greeting, cards, top expenses, rates",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		proc, err := newProcessor(cmd)
		if err != nil {
			return err
		}

		date, _ := cmd.Flags().GetString("date")
		resp, err := proc.Dashboard(cmd.Context(), fileArg(args), date)
		if err != nil {
			return err
		}
		return emit(proc, "dashboard", resp)
	},
}

var cashbackCmd = &cobra.Command{
	Use:   "cashback [operations-file]",
	Short: "Estimate per-category cashback for a year and month",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		proc, err := newProcessor(cmd)
		if err != nil {
			return err
		}

		year, _ := cmd.Flags().GetInt("year")
		month, _ := cmd.Flags().GetInt("month")
		result, err := proc.Cashback(fileArg(args), year, month)
		if err != nil {
			return err
		}
		return emit(proc, "cashback", result)
	},
}

var savingsCmd = &cobra.Command{
	Use:   "savings [operations-file]",
	Short: "Compute round-up savings for a month",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		proc, err := newProcessor(cmd)
		if err != nil {
			return err
		}

		month, _ := cmd.Flags().GetString("month")
		limit, _ := cmd.Flags().GetInt64("limit")
		total, err := proc.Savings(fileArg(args), month, limit)
		if err != nil {
			return err
		}
		return emit(proc, "savings", map[string]float64{"total_saved": total})
	},
}

var searchCmd = &cobra.Command{
	Use:   "search [operations-file]",
	Short: "Search transactions by keyword, phone numbers or personal transfers",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		proc, err := newProcessor(cmd)
		if err != nil {
			return err
		}

		mode := service.SearchKeyword
		if phones, _ := cmd.Flags().GetBool("phones"); phones {
			mode = service.SearchPhones
		}
		if transfers, _ := cmd.Flags().GetBool("transfers"); transfers {
			mode = service.SearchTransfers
		}
		query, _ := cmd.Flags().GetString("query")

		found, err := proc.Search(fileArg(args), mode, query)
		if err != nil {
			return err
		}

		if asCSV, _ := cmd.Flags().GetBool("csv"); asCSV {
			return reports.WriteCSV(os.Stdout, found, nil)
		}
		return emit(proc, "search", found)
	},
}

func newLogger() *log.Logger {
	opts := log.Options{
		ReportTimestamp: true,
		Prefix:          "kopilka",
	}
	if debugDump {
		opts.Level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, opts)
}

func newProcessor(cmd *cobra.Command) (*service.Processor, error) {
	logger := newLogger()

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}

	proc := service.NewProcessor(cfg, logger)
	if columnsFile != "" {
		if err := proc.LoadAliases(columnsFile); err != nil {
			return nil, err
		}
	}

	if debugDump {
		if path := firstArg(cmd); path != "" {
			if txs, err := proc.LoadOperations(path); err == nil {
				pp.Fprintln(os.Stderr, txs)
			}
		}
	}

	return proc, nil
}

func firstArg(cmd *cobra.Command) string {
	if cmd.Flags().NArg() > 0 {
		return cmd.Flags().Arg(0)
	}
	return ""
}

func fileArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}

// emit prints the result as indented JSON and optionally saves it as a
// report file.
func emit(proc *service.Processor, kind string, v any) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))

	if saveReport {
		if _, err := proc.SaveReport(kind, v); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Settings file (default is user_settings.json)")
	rootCmd.PersistentFlags().StringVar(&columnsFile, "columns", "", "YAML file with extra column aliases")
	rootCmd.PersistentFlags().BoolVar(&saveReport, "save", false, "Save the result to the reports directory")
	rootCmd.PersistentFlags().BoolVar(&debugDump, "debug", false, "Debug logging and a dump of parsed records")

	now := time.Now()
	dashboardCmd.Flags().String("date", now.Format(time.RFC3339), "Reference date (ISO-8601)")
	cashbackCmd.Flags().Int("year", now.Year(), "Target year")
	cashbackCmd.Flags().Int("month", int(now.Month()), "Target month (1-12)")
	savingsCmd.Flags().String("month", now.Format("2006-01"), "Target month (YYYY-MM)")
	savingsCmd.Flags().Int64("limit", 50, "Round-up limit")
	searchCmd.Flags().String("query", "", "Keyword to search for")
	searchCmd.Flags().Bool("phones", false, "Find transactions with phone numbers")
	searchCmd.Flags().Bool("transfers", false, "Find transfers to individuals")
	searchCmd.Flags().Bool("csv", false, "Print results as CSV")

	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(cashbackCmd)
	rootCmd.AddCommand(savingsCmd)
	rootCmd.AddCommand(searchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
