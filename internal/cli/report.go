package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"pawcare/internal/adapters/remote"
	"pawcare/internal/adapters/storage/local"
	"pawcare/internal/config"
	"pawcare/internal/domain/reports"
)

// ReportCmd imprime el resumen de actividad de la clínica para una ventana.
func ReportCmd() *cobra.Command {
	var (
		period  string
		from    string
		to      string
		baseURL string
		token   string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the clinic summary for a time window",
		Long: `Print the clinic summary for a time window.

Periods: day (default), week, month, custom (requires --from and --to).

Examples:
  pawcare report
  pawcare report --period week
  pawcare report --period custom --from 2026-08-01 --to 2026-08-15`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromEnv()
			if err != nil {
				return err
			}
			// --base-url consulta un backend remoto aunque el env diga local.
			if baseURL != "" {
				cfg.Mode = config.ModeRemote
				cfg.APIBaseURL = baseURL
			}
			if token != "" {
				cfg.APIToken = token
			}

			var sum reports.Summarizer
			if cfg.Mode == config.ModeRemote {
				client, err := remote.NewClient(remote.Config{
					BaseURL: cfg.APIBaseURL,
					Token:   cfg.APIToken,
				})
				if err != nil {
					return err
				}
				sum = remote.NewReports(client)
			} else {
				store, err := openStore(cmd.Context(), cfg)
				if err != nil {
					return err
				}
				defer store.Close()

				actLog := local.NewActivityLog(store)
				sum = reports.NewEngine(
					local.NewPetsRepo(store, actLog, cfg.UploadDir),
					local.NewOwnersRepo(store, actLog),
					local.NewAppointmentsRepo(store, actLog),
					local.NewPrescriptionsRepo(store, actLog),
					actLog,
				)
			}

			s, err := sum.Summarize(cmd.Context(), period, from, to)
			if err != nil {
				return err
			}

			printSummary(s)
			return nil
		},
	}

	cmd.Flags().StringVar(&period, "period", "day", "day, week, month or custom")
	cmd.Flags().StringVar(&from, "from", "", "window start (YYYY-MM-DD, custom only)")
	cmd.Flags().StringVar(&to, "to", "", "window end (YYYY-MM-DD, custom only)")
	cmd.Flags().StringVar(&baseURL, "base-url", "", "query a remote backend instead of the local store")
	cmd.Flags().StringVar(&token, "token", "", "bearer token for the remote backend")
	return cmd
}

func printSummary(s reports.Summary) {
	bold := color.New(color.Bold)
	bold.Printf("Summary (%s) %s .. %s\n\n", s.Period, s.From, s.To)

	fmt.Printf("  Appointments done:       %d\n", s.AppointmentsDone)
	fmt.Printf("  Prescriptions dispensed: %d\n", s.PrescriptionsDispensed)
	fmt.Printf("  Pets added:              %d\n", s.PetsAdded)

	if len(s.NewPatients) > 0 {
		fmt.Println()
		bold.Println("New patients")
		for _, p := range s.NewPatients {
			owner := p.OwnerName
			if owner == "" {
				owner = "-"
			}
			fmt.Printf("  %s (owner: %s)\n", p.PetName, owner)
		}
	}

	if len(s.Finished) > 0 {
		fmt.Println()
		bold.Println("Finished appointments")
		for _, f := range s.Finished {
			fmt.Printf("  %s  %s %s  %s  %s/%s  %.2f\n",
				f.Code, f.Date, f.Time, f.Vet, f.Pet, f.Owner, f.Cost)
		}
	}

	fmt.Println()
	color.Green("Total profit: %.2f", s.TotalProfit)
}
