// fxinspect is a command-line companion to the resolver service. It
// answers one-off questions about currencies, rate resolution, rounding
// and the sampling generators without starting the HTTP server.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/mhartwell/fxresolver/internal/application/service"
	"github.com/mhartwell/fxresolver/internal/domain/currency"
	"github.com/mhartwell/fxresolver/internal/domain/entity"
	"github.com/mhartwell/fxresolver/internal/numeric"
	"github.com/mhartwell/fxresolver/internal/random"
)

func main() {
	root := &cobra.Command{
		Use:           "fxinspect",
		Short:         "Inspect currencies, exchange rates, rounding and samplers",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		currencyCmd(),
		lookupCmd(),
		roundCmd(),
		mt19937Cmd(),
		sobolCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func currencyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "currency <CODE>",
		Short: "Print the metadata of a registered currency",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cur, err := currency.Get(strings.ToUpper(args[0]))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Name: %s\n", cur.Name)
			fmt.Fprintf(out, "Code: %s\n", cur.Code)
			fmt.Fprintf(out, "NumericCode: %d\n", cur.NumericCode)
			fmt.Fprintf(out, "Symbol: %s\n", cur.Symbol)
			fmt.Fprintf(out, "FractionSymbol: %s\n", cur.FractionSymbol)
			fmt.Fprintf(out, "FractionsPerUnit: %d\n", cur.FractionsPerUnit)
			fmt.Fprintf(out, "RoundingType: %s\n", cur.Rounding.Type)
			fmt.Fprintf(out, "RoundingPrecision: %d\n", cur.Rounding.Precision)
			fmt.Fprintf(out, "RoundingDigit: %d\n", cur.Rounding.Digit)
			return nil
		},
	}
}

func lookupCmd() *cobra.Command {
	var kindFlag string

	cmd := &cobra.Command{
		Use:   "lookup <SOURCE> <TARGET> <DATE>",
		Short: "Resolve an exchange rate from the seeded baseline table",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := strings.ToUpper(args[0])
			target := strings.ToUpper(args[1])

			date, err := time.Parse("2006-01-02", args[2])
			if err != nil {
				return fmt.Errorf("date must be in YYYY-MM-DD format: %w", err)
			}

			kind := service.KindAny
			switch kindFlag {
			case "":
			case string(entity.Direct):
				kind = entity.Direct
			case string(entity.Derived):
				kind = entity.Derived
			default:
				return fmt.Errorf("kind must be Direct or Derived, got %q", kindFlag)
			}

			if _, err := currency.Get(source); err != nil {
				return err
			}
			if _, err := currency.Get(target); err != nil {
				return err
			}

			manager := service.NewRateManager(nil)
			rate, err := manager.Lookup(source, target, date, kind)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "RATE_VALUE: %g\n", rate.Rate)
			fmt.Fprintf(out, "RATE_SOURCE: %s\n", rate.Source)
			fmt.Fprintf(out, "RATE_TARGET: %s\n", rate.Target)
			fmt.Fprintf(out, "RATE_TYPE: %s\n", rate.Kind)
			return nil
		},
	}

	cmd.Flags().StringVar(&kindFlag, "kind", "", "constrain the result kind (Direct or Derived)")
	return cmd
}

func roundCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "round <type> <precision> <digit> <value>",
		Short: "Apply a rounding rule to a decimal value",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			roundingType, ok := numeric.ParseRoundingType(args[0])
			if !ok {
				return fmt.Errorf("unknown rounding type %q", args[0])
			}

			precision, err := strconv.ParseInt(args[1], 10, 32)
			if err != nil {
				return fmt.Errorf("precision must be an integer: %w", err)
			}
			digit, err := strconv.ParseInt(args[2], 10, 32)
			if err != nil {
				return fmt.Errorf("digit must be an integer: %w", err)
			}

			value, err := decimal.NewFromString(args[3])
			if err != nil {
				return fmt.Errorf("value must be a decimal number: %w", err)
			}

			rounding := numeric.NewRounding(int32(precision), roundingType, int32(digit))
			fmt.Fprintln(cmd.OutOrStdout(), rounding.Apply(value).String())
			return nil
		},
	}
}

func mt19937Cmd() *cobra.Command {
	var seed uint32

	cmd := &cobra.Command{
		Use:   "mt19937 <n>",
		Short: "Draw n uniform samples from a Mersenne Twister generator",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 {
				return fmt.Errorf("n must be a positive integer, got %q", args[0])
			}

			gen := random.NewMT19937(seed)
			out := cmd.OutOrStdout()
			for i := 0; i < n; i++ {
				s := gen.NextSample()
				fmt.Fprintf(out, "Sample %d : %v weight: %v\n", i, s.Value, s.Weight)
			}
			return nil
		},
	}

	cmd.Flags().Uint32Var(&seed, "seed", 42, "generator seed")
	return cmd
}

func sobolCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sobol <dimensions> <n>",
		Short: "Generate n points of a Sobol low-discrepancy sequence",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dimensions, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("dimensions must be an integer, got %q", args[0])
			}
			n, err := strconv.Atoi(args[1])
			if err != nil || n < 1 {
				return fmt.Errorf("n must be a positive integer, got %q", args[1])
			}

			seq, err := random.NewSobolSequence(dimensions)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i := 0; i < n; i++ {
				p := seq.NextSequence()
				values := make([]string, len(p.Values))
				for d, v := range p.Values {
					values[d] = strconv.FormatFloat(v, 'g', -1, 64)
				}
				fmt.Fprintf(out, "Sample %d : %s weight: %v\n", i, strings.Join(values, " "), p.Weight)
			}
			return nil
		},
	}
}
