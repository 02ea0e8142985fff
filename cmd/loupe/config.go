package main

import (
	"fmt"

	"github.com/phanxgames/loupe"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigCommand() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective viewport config as YAML",
		Long: `Print the viewport config that "loupe view" would use, with every
default filled in. Pass --config to check a file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loupe.DefaultConfig()
			if path != "" {
				var err error
				if cfg, err = loupe.LoadConfig(path); err != nil {
					return err
				}
			}
			out, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("encode config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	cmd.Flags().StringVarP(&path, "config", "c", "", "YAML viewport config file")
	return cmd
}
