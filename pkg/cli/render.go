package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/getchurch/church/internal/output"
	"github.com/getchurch/church/pkg/template"
)

func (a *app) renderCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "render [template]",
		Short: "Render a template, replacing {{expressions}} with fake data",
		Long: `Render a template. Expressions are catalog fields ({{personal.full_name}}),
{{uuid}}, {{random.int(1, 10)}}, {{random.float(0, 1, 2)}}, {{random.string(8)}},
{{sequence("id")}}, and the functions upper, lower and default.

The template is taken from the argument, from --file, or from stdin when
neither is given or the argument is "-". Sequences continue across -n renders.`,
		Example: `  church render 'Hello, {{personal.name}}!'
  church render -n 3 '{"id": {{sequence("id")}}, "city": "{{address.city}}"}'
  church render -f invoice.tmpl --seed 7`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tmpl, err := readTemplate(cmd, file, args)
			if err != nil {
				return err
			}
			g, err := a.generator()
			if err != nil {
				return err
			}
			engine := template.New(g)

			results := make([]string, a.cfg.Count)
			for i := range results {
				if results[i], err = engine.Process(tmpl); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			if a.cfg.JSON {
				return output.JSON(out, results)
			}
			for _, r := range results {
				fmt.Fprint(out, r)
				if !strings.HasSuffix(r, "\n") {
					fmt.Fprintln(out)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Read the template from a file")
	addCountFlag(cmd, &a.flags.count)
	return cmd
}

func readTemplate(cmd *cobra.Command, file string, args []string) (string, error) {
	switch {
	case file != "" && len(args) > 0:
		return "", fmt.Errorf("use either a template argument or --file, not both")
	case file != "":
		b, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("reading template: %w", err)
		}
		return string(b), nil
	case len(args) == 1 && args[0] != "-":
		return args[0], nil
	}
	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading template from stdin: %w", err)
	}
	return string(b), nil
}
