package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/me/vita/pkg/model"
)

func newPatientsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patients",
		Short: "Manage patients",
	}
	cmd.AddCommand(newPatientsListCmd(), newPatientsShowCmd())
	return cmd
}

func newPatientsListCmd() *cobra.Command {
	var (
		page     int
		pageSize int
		search   string
		all      bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List patients",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := model.ListOptions{Page: page, PageSize: pageSize, Search: search}
			if !all {
				active := true
				opts.IsActive = &active
			}

			result, err := client.Patients(cmd.Context(), opts)
			if err != nil {
				return err
			}
			if len(result.Items) == 0 {
				fmt.Println("No patients found.")
				return nil
			}

			fmt.Printf("%-6s  %-30s  %-14s  %-15s  %s\n", "ID", "NAME", "CPF", "PHONE", "ACTIVE")
			for _, p := range result.Items {
				fmt.Printf("%-6d  %-30s  %-14s  %-15s  %t\n", p.ID, p.FullName, p.CPF, p.Phone, p.IsActive)
			}
			if result.HasMore() {
				fmt.Printf("\n(page %d of %d, %d total)\n", result.Page, result.TotalPages, result.Total)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "Page number")
	cmd.Flags().IntVar(&pageSize, "page-size", 20, "Patients per page")
	cmd.Flags().StringVar(&search, "search", "", "Filter by name or CPF")
	cmd.Flags().BoolVar(&all, "all", false, "Include inactive patients")
	return cmd
}

func newPatientsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one patient with latest vitals",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid patient id %q", args[0])
			}

			p, err := client.Patient(cmd.Context(), id)
			if err != nil {
				return err
			}

			fmt.Printf("%s (id %d)\n", p.FullName, p.ID)
			fmt.Printf("CPF:        %s\n", p.CPF)
			fmt.Printf("Born:       %s\n", p.BirthDate)
			fmt.Printf("Phone:      %s\n", p.Phone)
			if p.BloodType != "" {
				fmt.Printf("Blood type: %s\n", p.BloodType)
			}
			if p.Allergies != "" {
				fmt.Printf("Allergies:  %s\n", p.Allergies)
			}
			if v := p.LatestVitals; v != nil {
				fmt.Printf("\nLatest vitals (%s):\n", v.RecordedAt.Format("2006-01-02 15:04"))
				if v.HeartRate != nil {
					fmt.Printf("  Heart rate:  %d bpm\n", *v.HeartRate)
				}
				if v.SystolicPressure != nil && v.DiastolicPressure != nil {
					fmt.Printf("  Pressure:    %d/%d mmHg\n", *v.SystolicPressure, *v.DiastolicPressure)
				}
				if v.Temperature != nil {
					fmt.Printf("  Temperature: %.1f C\n", *v.Temperature)
				}
				if v.OxygenSaturation != nil {
					fmt.Printf("  SpO2:        %.1f%%\n", *v.OxygenSaturation)
				}
			}
			if len(p.UpcomingAppointments) > 0 {
				fmt.Println("\nUpcoming appointments:")
				for _, a := range p.UpcomingAppointments {
					fmt.Printf("  %s  %s\n", a.ScheduledAt.Format("2006-01-02 15:04"), a.Status)
				}
			}
			return nil
		},
	}
}
