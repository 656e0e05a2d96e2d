package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show summary statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := client.DashboardStats(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Printf("Patients:             %d\n", stats.TotalPatients)
			fmt.Printf("Appointments:         %d\n", stats.TotalAppointments)
			fmt.Printf("  today:              %d\n", stats.AppointmentsToday)
			fmt.Printf("  this week:          %d\n", stats.AppointmentsThisWeek)
			fmt.Printf("  completed:          %d\n", stats.CompletedAppointments)
			fmt.Printf("  pending:            %d\n", stats.PendingAppointments)
			fmt.Printf("Patients with alerts: %d\n", stats.PatientsWithAlerts)
			return nil
		},
	}
}
