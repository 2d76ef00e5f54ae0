package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/curtisnewbie/dating/catalog"
	"github.com/curtisnewbie/dating/util/errs"
	"github.com/curtisnewbie/dating/zone"
	"github.com/spf13/cobra"
)

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats [date|time|datetime]",
		Short: "List format keys and patterns of the current locale",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cats := catalog.Categories()
			if len(args) > 0 {
				c, err := catalog.ParseCategory(args[0])
				if err != nil {
					return err
				}
				cats = []catalog.Category{c}
			}

			cl := catalog.Default()
			lister, ok := cl.(catalog.Lister)
			if !ok {
				return errs.ErrIllegalArgument.WithInternalMsg("catalog %T cannot list formats", cl)
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, c := range cats {
				for _, k := range lister.Formats(c) {
					p, err := cl.LookupPattern(c, k)
					if err != nil {
						return err
					}
					fmt.Fprintf(w, "%v\t%v\t%v\n", c, k, p)
				}
			}
			return w.Flush()
		},
	}
}

func newZonesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "zones",
		Short: "List zone display names and their IANA names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "current\t%v\n", zone.Current())
			for _, n := range zone.Names() {
				fmt.Fprintf(w, "%v\t%v\n", n, zone.IANAName(n))
			}
			return w.Flush()
		},
	}
}
