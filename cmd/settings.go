package main

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/loi-rocket/dealflow-cli/internal/export"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show the effective deal settings",
	Long: `Prints the deal settings after merging defaults, config file, and
environment overrides, so operators can verify what a run will use.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := cfg.Deal.Validate(); err != nil {
			return err
		}

		asYAML, _ := cmd.Flags().GetBool("yaml")
		if asYAML {
			out, err := yaml.Marshal(cfg.Deal)
			if err != nil {
				return eris.Wrap(err, "settings: marshal")
			}
			fmt.Print(string(out))
			return nil
		}

		printSettingsTable()
		return nil
	},
}

func init() {
	settingsCmd.Flags().Bool("yaml", false, "print settings as YAML")
	rootCmd.AddCommand(settingsCmd)
}

func printSettingsTable() {
	d := cfg.Deal
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	_, _ = fmt.Fprintf(w, "Agent fee (traditional):\t%.1f%%\n", d.TraditionalAgentFeePct*100)
	_, _ = fmt.Fprintf(w, "Closing costs:\t%.1f%%\n", d.TraditionalClosingCostsPct*100)
	_, _ = fmt.Fprintf(w, "Agent fee (new):\t%.1f%%\n", d.NewAgentFeePct*100)
	_, _ = fmt.Fprintf(w, "Cash offer range:\t%.0f%% - %.0f%% of value\n", d.CashOfferLowPct*100, d.CashOfferHighPct*100)
	_, _ = fmt.Fprintf(w, "Max cash to seller:\t%s\n", export.Currency(d.MaxStandardCashToSeller))
	_, _ = fmt.Fprintf(w, "Cash-to-seller option:\t%s (factor %.2f)\n", d.CashToSellerOption, d.CashToSellerFactor)
	_, _ = fmt.Fprintf(w, "Round values:\t%v (unit %s)\n", d.RoundValues, export.Currency(d.RoundingFactor))
	_, _ = fmt.Fprintf(w, "Assignment fee:\t%s\n", export.Currency(d.AverageAssignmentFee))
	_, _ = fmt.Fprintf(w, "Max interest rate:\t%.1f%%\n", d.MaxInterestRatePct*100)
	_, _ = fmt.Fprintf(w, "Max equity:\t%.1f%%\n", d.MaxEquityPct*100)

	_, _ = fmt.Fprintln(w, "\nNegative proceeds tiers:")
	for _, t := range d.NegativeTiers {
		if math.IsInf(t.Min, -1) {
			_, _ = fmt.Fprintf(w, "  below previous tier:\t%s\n", export.Currency(t.Value))
			continue
		}
		_, _ = fmt.Fprintf(w, "  down to %s:\t%s\n", export.Currency(t.Min), export.Currency(t.Value))
	}

	_ = w.Flush()
}
