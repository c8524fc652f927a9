package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/getchurch/church/internal/output"
	"github.com/getchurch/church/pkg/provider"
)

func (a *app) genCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen <field>...",
		Short: "Generate values of one or more fields",
		Long: `Generate values of catalog fields such as personal.full_name or address.city.
Run 'church fields' for the full catalog.

With one field each value is printed on its own line. With several fields a
table with one column per field is printed.`,
		Example: `  church gen personal.full_name
  church gen -l ru_ru -n 5 personal.full_name address.city
  church gen --seed 42 --json network.ipv4 personal.email`,
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: completeFields,
		RunE:              a.runGen,
	}
	addCountFlag(cmd, &a.flags.count)
	return cmd
}

func (a *app) runGen(cmd *cobra.Command, fields []string) error {
	g, err := a.generator()
	if err != nil {
		return err
	}
	for _, f := range fields {
		if _, err := g.Field(f); err != nil {
			return fmt.Errorf("%w (run 'church fields' to list them)", err)
		}
	}

	rows := make([][]string, a.cfg.Count)
	for i := range rows {
		row := make([]string, len(fields))
		for j, f := range fields {
			v, err := g.Generate(f)
			if err != nil {
				return fmt.Errorf("generating %s: %w", f, err)
			}
			row[j] = v
		}
		rows[i] = row
	}

	out := cmd.OutOrStdout()
	if a.cfg.JSON {
		records := make([]map[string]string, len(rows))
		for i, row := range rows {
			rec := make(map[string]string, len(fields))
			for j, f := range fields {
				rec[f] = row[j]
			}
			records[i] = rec
		}
		return output.JSON(out, records)
	}

	if len(fields) == 1 {
		values := make([]string, len(rows))
		for i, row := range rows {
			values[i] = row[0]
		}
		return output.Lines(out, values)
	}

	t := output.Table(out)
	fmt.Fprintln(t, strings.ToUpper(strings.Join(fields, "\t")))
	for _, row := range rows {
		fmt.Fprintln(t, strings.Join(row, "\t"))
	}
	return t.Flush()
}

// completeFields offers catalog field names for shell completion.
func completeFields(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var names []string
	for _, f := range provider.New().Fields() {
		if strings.HasPrefix(f, toComplete) {
			names = append(names, f)
		}
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

func (a *app) fieldsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fields [prefix]",
		Short: "List the fields 'gen' and templates accept",
		Example: `  church fields
  church fields address`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fields := provider.New(provider.WithResolver(a.resolver)).Fields()
			if len(args) == 1 {
				prefix := strings.TrimSuffix(args[0], ".") + "."
				filtered := fields[:0]
				for _, f := range fields {
					if strings.HasPrefix(f, prefix) {
						filtered = append(filtered, f)
					}
				}
				fields = filtered
				if len(fields) == 0 {
					return fmt.Errorf("no fields under %q", args[0])
				}
			}
			if a.cfg.JSON {
				return output.JSON(cmd.OutOrStdout(), fields)
			}
			return output.Lines(cmd.OutOrStdout(), fields)
		},
	}
}
