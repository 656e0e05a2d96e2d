package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/me/vita/pkg/model"
)

func newRegisterCmd() *cobra.Command {
	var req model.RegisterRequest
	var role string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		Long:  "Create a new account on the Vita API. The account is not signed in; run 'vita login' afterwards.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if req.Email == "" || req.Password == "" || req.FullName == "" {
				return fmt.Errorf("--email, --password and --name are required")
			}
			req.Role = model.UserRole(role)
			if !req.Role.Valid() {
				return fmt.Errorf("invalid role %q (doctor, nurse, admin)", role)
			}

			user, err := client.Register(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("register: %w", err)
			}

			fmt.Printf("Account created for %s. Run 'vita login' to sign in.\n", user.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Email, "email", "", "Account email")
	cmd.Flags().StringVar(&req.Password, "password", "", "Account password")
	cmd.Flags().StringVar(&req.FullName, "name", "", "Full name")
	cmd.Flags().StringVar(&req.CRM, "crm", "", "Medical council registration")
	cmd.Flags().StringVar(&req.Specialty, "specialty", "", "Medical specialty")
	cmd.Flags().StringVar(&role, "role", "doctor", "Account role (doctor, nurse, admin)")
	return cmd
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			user := client.Session().Current()
			if user == nil {
				return fmt.Errorf("not signed in; run 'vita login'")
			}

			fmt.Printf("%s <%s>\n", user.FullName, user.Email)
			fmt.Printf("Role:         %s\n", user.Role)
			if user.CRM != "" {
				fmt.Printf("CRM:          %s\n", user.CRM)
			}
			if user.Specialty != "" {
				fmt.Printf("Specialty:    %s\n", user.Specialty)
			}
			fmt.Printf("Patients:     %d\n", user.PatientCount)
			fmt.Printf("Appointments: %d\n", user.AppointmentCount)
			return nil
		},
	}
}
