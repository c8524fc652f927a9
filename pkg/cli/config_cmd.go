package cli

import (
	"github.com/spf13/cobra"

	"github.com/getchurch/church/internal/output"
	"github.com/getchurch/church/pkg/config"
)

// ConfigOutput is the JSON shape of 'church config'.
type ConfigOutput struct {
	Config  *config.Config    `json:"config"`
	Sources map[string]string `json:"sources"`
	Files   ConfigFiles       `json:"files"`
}

// ConfigFiles lists the paths searched for config files.
type ConfigFiles struct {
	Global []string `json:"global"`
	Local  []string `json:"local"`
}

func (a *app) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show effective configuration",
		Long: `Show the effective configuration and where each value came from:
default, global, local, env or flag.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.cfg.JSON {
				return output.JSON(cmd.OutOrStdout(), ConfigOutput{
					Config:  a.cfg,
					Sources: a.cfg.Sources,
					Files: ConfigFiles{
						Global: a.loader.GlobalConfigPaths(),
						Local:  a.loader.LocalConfigPaths(),
					},
				})
			}
			b, err := a.cfg.Dump()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
}
