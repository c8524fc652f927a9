package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/getchurch/church/internal/output"
	"github.com/getchurch/church/pkg/resolver"
)

// LocaleInfo is the JSON shape of one 'locales' row.
type LocaleInfo struct {
	Locale     string `json:"locale"`
	Default    bool   `json:"default"`
	Categories int    `json:"categories"`
}

func (a *app) localesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "locales",
		Short: "List supported locales",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var infos []LocaleInfo
			for _, loc := range a.resolver.Locales() {
				cats, err := a.resolver.Categories(loc)
				if err != nil {
					return err
				}
				infos = append(infos, LocaleInfo{
					Locale:     loc,
					Default:    loc == a.resolver.DefaultLocale(),
					Categories: len(cats),
				})
			}

			if a.cfg.JSON {
				return output.JSON(cmd.OutOrStdout(), infos)
			}
			t := output.Table(cmd.OutOrStdout())
			fmt.Fprintln(t, "LOCALE\tCATEGORIES\tDEFAULT")
			for _, info := range infos {
				def := ""
				if info.Default {
					def = "*"
				}
				fmt.Fprintf(t, "%s\t%d\t%s\n", info.Locale, info.Categories, def)
			}
			return t.Flush()
		},
	}
}

// CategoryInfo is the JSON shape of one 'categories' row.
type CategoryInfo struct {
	Name    string `json:"name"`
	Entries int    `json:"entries"`
	// Shared is set for locale-independent datasets served from the
	// default locale.
	Shared bool `json:"shared,omitempty"`
}

func (a *app) categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the datasets available to a locale",
		Long: `List the datasets available to the selected locale with their entry counts.
Locale-independent datasets the locale does not ship itself are marked shared.
Every dataset is loaded, so this also checks the store for empty files.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireLocale(); err != nil {
				return err
			}
			loc := a.cfg.Locale
			if err := a.resolver.Preload(cmd.Context(), loc); err != nil {
				return err
			}

			own, err := a.resolver.Categories(loc)
			if err != nil {
				return err
			}
			names := slices.Clone(own)
			shared := map[string]bool{}
			defaults, err := a.resolver.Categories(a.resolver.DefaultLocale())
			if err != nil {
				return err
			}
			for _, name := range defaults {
				if resolver.IsLocaleIndependent(name) && !slices.Contains(own, name) {
					names = append(names, name)
					shared[name] = true
				}
			}
			slices.Sort(names)

			infos := make([]CategoryInfo, 0, len(names))
			for _, name := range names {
				entries, err := a.resolver.Resolve(name, loc)
				if err != nil {
					return err
				}
				infos = append(infos, CategoryInfo{Name: name, Entries: len(entries), Shared: shared[name]})
			}

			if a.cfg.JSON {
				return output.JSON(cmd.OutOrStdout(), infos)
			}
			t := output.Table(cmd.OutOrStdout())
			fmt.Fprintln(t, "CATEGORY\tENTRIES\tSHARED")
			for _, info := range infos {
				sh := ""
				if info.Shared {
					sh = "yes"
				}
				fmt.Fprintf(t, "%s\t%d\t%s\n", info.Name, info.Entries, sh)
			}
			return t.Flush()
		},
	}
}

func (a *app) naughtyCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "naughty",
		Short: "Print strings that commonly break input handling",
		Long: `Print entries of the naughty strings list: strings likely to cause trouble
when used as user input. Without --all, -n random entries are printed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.generator()
			if err != nil {
				return err
			}
			var values []string
			if all {
				if values, err = g.Text.NaughtyStrings(); err != nil {
					return err
				}
			} else {
				values = make([]string, a.cfg.Count)
				for i := range values {
					if values[i], err = g.Text.NaughtyString(); err != nil {
						return err
					}
				}
			}
			if a.cfg.JSON {
				return output.JSON(cmd.OutOrStdout(), values)
			}
			return output.Lines(cmd.OutOrStdout(), values)
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "Print the whole list")
	addCountFlag(cmd, &a.flags.count)
	return cmd
}
