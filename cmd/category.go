package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/google/subcommands"

	finance "github.com/dev-sufyaan/personal-finance-manager"
	"github.com/dev-sufyaan/personal-finance-manager/renderer"
)

type categoryCmd struct {
	add string
	rm  string
}

func (*categoryCmd) Name() string     { return "category" }
func (*categoryCmd) Synopsis() string { return "list or edit the category registry" }
func (*categoryCmd) Usage() string {
	return `pfm category [-add <name> | -rm <name>]

  Without flags, lists the registered categories. With -add or -rm,
  adds or removes one name. Matching is case-sensitive.

Usage Examples:
$ pfm category
$ pfm category -add Rent
$ pfm category -rm Rent
`
}

func (c *categoryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.add, "add", "", "Add a category to the registry.")
	f.StringVar(&c.rm, "rm", "", "Remove a category from the registry.")
}

func (c *categoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.add != "" && c.rm != "" {
		fmt.Fprintln(os.Stderr, "Error: -add and -rm flags cannot be used together.")
		return subcommands.ExitUsageError
	}

	categories, err := LoadCategories()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	switch {
	case c.add != "":
		name := strings.TrimSpace(c.add)
		if name == "" {
			fmt.Fprintln(os.Stderr, "Error: a category name cannot be blank.")
			return subcommands.ExitUsageError
		}
		if slices.Contains(categories, name) {
			fmt.Fprintf(os.Stderr, "Error: category %q already exists.\n", name)
			return subcommands.ExitFailure
		}
		categories = append(categories, name)
		slices.Sort(categories)
		if err := finance.SaveCategories(*categoriesFile, categories); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("✅ Added category %q.\n", name)

	case c.rm != "":
		name := strings.TrimSpace(c.rm)
		i := slices.Index(categories, name)
		if i < 0 {
			fmt.Fprintf(os.Stderr, "Error: category %q is not registered.\n", name)
			return subcommands.ExitFailure
		}
		categories = slices.Delete(categories, i, i+1)
		if err := finance.SaveCategories(*categoriesFile, categories); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("✅ Removed category %q. Existing transactions keep it.\n", name)

	default:
		printMarkdown(renderer.Categories(categories))
	}
	return subcommands.ExitSuccess
}
