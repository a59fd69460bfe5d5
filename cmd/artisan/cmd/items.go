package cmd

import (
	"github.com/spf13/cobra"

	"github.com/wexinc/artisan/internal/catalog"
	"github.com/wexinc/artisan/internal/logging"
)

func newItemsCmd(a *app) *cobra.Command {
	var search, category, sortKey string

	cmd := &cobra.Command{
		Use:     "items",
		Aliases: []string{"products"},
		Short:   "List catalog items",
		Long: `List catalog items, filtered and sorted locally.

Category and sort default to the catalog section of the config file.

Examples:
  artisan items                      # Everything, sorted by name
  artisan items -c "Home & Garden" --sort price-low
  artisan items -s mug -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			criteria := a.cfg.Catalog.Criteria()
			if cmd.Flags().Changed("search") {
				criteria.Search = search
			}
			if cmd.Flags().Changed("category") {
				criteria.Category = catalog.ParseCategory(category)
			}
			if cmd.Flags().Changed("sort") {
				criteria.Sort = catalog.ParseSortKey(sortKey)
			}
			return runItems(cmd, a, criteria)
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "Case-insensitive name search")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Category name, e.g. \"Home & Garden\" (case-insensitive)")
	cmd.Flags().StringVar(&sortKey, "sort", "", "Sort: name, price-low, price-high or rating")
	return cmd
}

func runItems(cmd *cobra.Command, a *app, criteria catalog.FilterCriteria) error {
	// The catalog is public; a stored session is sent when there is one.
	if sess, err := a.sessions.Load(); err == nil && sess.Valid() {
		a.client.SetToken(sess.Token)
	}

	items, err := a.client.ListItems(cmd.Context())
	if err != nil {
		return a.check(err)
	}

	visible := catalog.FilterAndSort(items, criteria)
	logging.Debug("items filtered", "visible", len(visible), "total", len(items))
	return a.renderer(cmd).Items(visible, len(items), criteria)
}
