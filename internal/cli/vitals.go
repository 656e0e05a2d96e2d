package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func fmtIntPtr(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v)
}

func fmtFloatPtr(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', 1, 64)
}

func newVitalsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vitals",
		Short: "Inspect vital signs",
	}
	cmd.AddCommand(newVitalsListCmd(), newVitalsStatsCmd(), newVitalsAlertsCmd())
	return cmd
}

func newVitalsListCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list <patient-id>",
		Short: "List a patient's measurements, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid patient id %q", args[0])
			}

			result, err := client.PatientVitals(cmd.Context(), id, limit)
			if err != nil {
				return err
			}
			if len(result.Items) == 0 {
				fmt.Println("No measurements recorded.")
				return nil
			}

			fmt.Printf("%-17s  %-5s  %-9s  %-6s  %-6s  %s\n", "RECORDED", "HR", "BP", "TEMP", "SPO2", "GLUCOSE")
			for _, v := range result.Items {
				bp := fmtIntPtr(v.SystolicPressure) + "/" + fmtIntPtr(v.DiastolicPressure)
				fmt.Printf("%-17s  %-5s  %-9s  %-6s  %-6s  %s\n",
					v.RecordedAt.Format("2006-01-02 15:04"),
					fmtIntPtr(v.HeartRate), bp,
					fmtFloatPtr(v.Temperature), fmtFloatPtr(v.OxygenSaturation),
					fmtFloatPtr(v.GlucoseLevel))
			}
			fmt.Printf("\n(%d of %d shown)\n", len(result.Items), result.Total)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum measurements to show")
	return cmd
}

func newVitalsStatsCmd() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "stats <patient-id>",
		Short: "Aggregate a patient's measurements",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid patient id %q", args[0])
			}

			stats, err := client.VitalStats(cmd.Context(), id, days)
			if err != nil {
				return err
			}

			fmt.Printf("Last %d days, %d records\n", days, stats.TotalRecords)
			fmt.Printf("Avg heart rate:   %s bpm", fmtFloatPtr(stats.AvgHeartRate))
			if stats.MinHeartRate != nil && stats.MaxHeartRate != nil {
				fmt.Printf(" (min %d, max %d)", *stats.MinHeartRate, *stats.MaxHeartRate)
			}
			fmt.Println()
			fmt.Printf("Avg pressure:     %s/%s mmHg\n", fmtFloatPtr(stats.AvgSystolic), fmtFloatPtr(stats.AvgDiastolic))
			fmt.Printf("Avg temperature:  %s C\n", fmtFloatPtr(stats.AvgTemperature))
			fmt.Printf("Avg SpO2:         %s%%\n", fmtFloatPtr(stats.AvgOxygen))
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 30, "Aggregation window in days")
	return cmd
}

func newVitalsAlertsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "alerts",
		Short: "Show recent out-of-range measurements",
		RunE: func(cmd *cobra.Command, args []string) error {
			vitals, err := client.CriticalVitals(cmd.Context())
			if err != nil {
				return err
			}
			if len(vitals) == 0 {
				fmt.Println("No critical measurements.")
				return nil
			}

			fmt.Printf("%-10s  %-17s  %-5s  %-9s  %-6s  %s\n", "PATIENT", "RECORDED", "HR", "BP", "SPO2", "TEMP")
			for _, v := range vitals {
				bp := fmtIntPtr(v.SystolicPressure) + "/" + fmtIntPtr(v.DiastolicPressure)
				fmt.Printf("%-10d  %-17s  %-5s  %-9s  %-6s  %s\n",
					v.PatientID, v.RecordedAt.Format("2006-01-02 15:04"),
					fmtIntPtr(v.HeartRate), bp,
					fmtFloatPtr(v.OxygenSaturation), fmtFloatPtr(v.Temperature))
			}
			return nil
		},
	}
}
