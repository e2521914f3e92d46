package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"go-agency/internal/commission"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// batchInput adalah satu file batch: semua yang dibutuhkan kalkulator untuk satu periode.
type batchInput struct {
	Month       int                             `json:"month"`
	Year        int                             `json:"year"`
	Plans       []commission.CompPlan           `json:"plans"`
	Assignments []commission.ProducerAssignment `json:"assignments"`
	Promos      []commission.Promo              `json:"promos"`
	Producers   []commission.SubProducerMetrics `json:"producers"`
	Overrides   []commission.ManualOverride     `json:"overrides"`
}

func newCalculateCommand() *cobra.Command {
	var (
		input  string
		pretty bool
	)

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Hitung draft payout dari file batch JSON",
		Example: "  payoutcalc calculate --input batch.json\n" +
			"  cat batch.json | payoutcalc calculate --input -",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			batch, err := readBatch(cmd.InOrStdin(), input)
			if err != nil {
				return err
			}
			return runCalculate(cmd.OutOrStdout(), batch, pretty)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "f", "", "Batch JSON file, '-' for stdin")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent JSON output")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func readBatch(stdin io.Reader, path string) (batchInput, error) {
	var r io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return batchInput{}, fmt.Errorf("open batch: %w", err)
		}
		defer f.Close()
		r = f
	}

	var batch batchInput
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&batch); err != nil {
		return batchInput{}, fmt.Errorf("decode batch: %w", err)
	}
	return batch, nil
}

func runCalculate(w io.Writer, batch batchInput, pretty bool) error {
	plans := commission.NewAssignmentSet(batch.Plans, batch.Assignments)

	result, err := commission.CalculatePayouts(
		plans,
		batch.Promos,
		batch.Producers,
		batch.Month,
		batch.Year,
		batch.Overrides,
	)
	if err != nil {
		return err
	}

	zap.L().Named("payoutcalc").Info("batch calculated",
		zap.Int("payouts", len(result.Payouts)),
		zap.Int("warnings", len(result.Warnings)),
	)

	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(result)
}
