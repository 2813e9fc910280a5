package cli

import (
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/corvidae/daywise/internal/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the scheduler profile",
	}
	cmd.AddCommand(newConfigShowCmd())
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective scheduler profile as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := config.LoadProfile(path)
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(os.Stdout)
			defer enc.Close()
			return enc.Encode(profile)
		},
	}
	cmd.Flags().StringVar(&path, "profile", "", "path to a daywise.yaml profile (defaults apply if absent)")
	return cmd
}
