package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/me/vita/pkg/model"
)

func newAppointmentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "appointments",
		Aliases: []string{"appts"},
		Short:   "Manage appointments",
	}
	cmd.AddCommand(newAppointmentsListCmd(), newAppointmentsTodayCmd(), newAppointmentsUpcomingCmd())
	return cmd
}

func printAppointmentTable(appts []model.Appointment) {
	fmt.Printf("%-6s  %-17s  %-10s  %-12s  %s\n", "ID", "WHEN", "PATIENT", "STATUS", "TYPE")
	for _, a := range appts {
		fmt.Printf("%-6d  %-17s  %-10d  %-12s  %s\n",
			a.ID, a.ScheduledAt.Format("2006-01-02 15:04"), a.PatientID, a.Status, a.AppointmentType)
	}
}

func newAppointmentsListCmd() *cobra.Command {
	var (
		page   int
		status string
		from   string
		to     string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List appointments",
		RunE: func(cmd *cobra.Command, args []string) error {
			f := model.AppointmentFilter{
				Page:     page,
				Status:   model.AppointmentStatus(status),
				DateFrom: from,
				DateTo:   to,
			}

			result, err := client.Appointments(cmd.Context(), f)
			if err != nil {
				return err
			}
			if len(result.Items) == 0 {
				fmt.Println("No appointments found.")
				return nil
			}

			printAppointmentTable(result.Items)
			if result.HasMore() {
				fmt.Printf("\n(page %d of %d, %d total)\n", result.Page, result.TotalPages, result.Total)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "Page number")
	cmd.Flags().StringVar(&status, "status", "", "Filter by status (scheduled, confirmed, completed, cancelled)")
	cmd.Flags().StringVar(&from, "from", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "End date (YYYY-MM-DD)")
	return cmd
}

func newAppointmentsTodayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Show today's appointments",
		RunE: func(cmd *cobra.Command, args []string) error {
			appts, err := client.TodayAppointments(cmd.Context())
			if err != nil {
				return err
			}
			if len(appts) == 0 {
				fmt.Println("No appointments today.")
				return nil
			}

			fmt.Printf("%-6s  %-6s  %-30s  %-12s  %s\n", "ID", "TIME", "PATIENT", "STATUS", "REASON")
			for _, a := range appts {
				fmt.Printf("%-6d  %-6s  %-30s  %-12s  %s\n",
					a.ID, a.ScheduledAt.Format("15:04"), a.Patient.FullName, a.Status, a.Reason)
			}
			return nil
		},
	}
}

func newAppointmentsUpcomingCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "upcoming",
		Short: "Show the next scheduled appointments",
		RunE: func(cmd *cobra.Command, args []string) error {
			appts, err := client.UpcomingAppointments(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(appts) == 0 {
				fmt.Println("Nothing scheduled.")
				return nil
			}

			fmt.Printf("%-6s  %-17s  %-30s  %s\n", "ID", "WHEN", "PATIENT", "STATUS")
			for _, a := range appts {
				fmt.Printf("%-6d  %-17s  %-30s  %s\n",
					a.ID, a.ScheduledAt.Format("2006-01-02 15:04"), a.Patient.FullName, a.Status)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum appointments to show")
	return cmd
}
