package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/starford/miti/internal/dateservice"
)

func printDetail(cmd *cli.Command, d *dateservice.DateDetail) {
	fmt.Fprintf(out(cmd), "BS %s  %s, %s %s, %s\nAD %s  %s\n",
		d.Text, d.WeekdayName, d.MonthName, d.Components.Date, d.Components.Year,
		d.ADText, d.ADMonthName)
}

func todayCommand() *cli.Command {
	return &cli.Command{
		Name:  "today",
		Usage: "Print today's date in both calendars",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "layout", Usage: "Print only the date rendered with this layout"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			svc, err := service(cmd)
			if err != nil {
				return err
			}
			if layout := cmd.String("layout"); layout != "" {
				today, err := svc.TodayDate()
				if err != nil {
					return err
				}
				text, err := svc.Format(ctx, today.String(), layout, cmd.String("lang"))
				if err != nil {
					return err
				}
				fmt.Fprintln(out(cmd), text)
				return nil
			}
			d, err := svc.Today(ctx, cmd.String("lang"))
			if err != nil {
				return err
			}
			printDetail(cmd, d)
			return nil
		},
	}
}

func toADCommand() *cli.Command {
	return &cli.Command{
		Name:      "to-ad",
		Usage:     "Convert a BS date to AD",
		ArgsUsage: "<YYYY-MM-DD>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a, err := args(cmd, 1, "<YYYY-MM-DD>")
			if err != nil {
				return err
			}
			svc, err := service(cmd)
			if err != nil {
				return err
			}
			d, err := svc.ToAD(ctx, a[0], cmd.String("lang"))
			if err != nil {
				return err
			}
			printDetail(cmd, d)
			return nil
		},
	}
}

func toBSCommand() *cli.Command {
	return &cli.Command{
		Name:      "to-bs",
		Usage:     "Convert an AD date to BS",
		ArgsUsage: "<YYYY-MM-DD>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a, err := args(cmd, 1, "<YYYY-MM-DD>")
			if err != nil {
				return err
			}
			svc, err := service(cmd)
			if err != nil {
				return err
			}
			d, err := svc.ToBS(ctx, a[0], cmd.String("lang"))
			if err != nil {
				return err
			}
			printDetail(cmd, d)
			return nil
		},
	}
}

func formatCommand() *cli.Command {
	return &cli.Command{
		Name:      "format",
		Usage:     "Render a BS date with a layout such as 'dddd, MMMM D YYYY'",
		ArgsUsage: "<YYYY-MM-DD> <layout>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a, err := args(cmd, 2, "<YYYY-MM-DD> <layout>")
			if err != nil {
				return err
			}
			svc, err := service(cmd)
			if err != nil {
				return err
			}
			text, err := svc.Format(ctx, a[0], a[1], cmd.String("lang"))
			if err != nil {
				return err
			}
			fmt.Fprintln(out(cmd), text)
			return nil
		},
	}
}

// addCommand skips flag parsing so that negative amounts are not taken for
// flags; use the global --lang before the command name.
func addCommand() *cli.Command {
	return &cli.Command{
		Name:            "add",
		Usage:           "Add days, weeks, months or years to a BS date; negative values subtract",
		ArgsUsage:       "<YYYY-MM-DD> <value> <day|week|month|year>",
		SkipFlagParsing: true,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a, err := args(cmd, 3, "<YYYY-MM-DD> <value> <day|week|month|year>")
			if err != nil {
				return err
			}
			value, err := strconv.Atoi(a[1])
			if err != nil {
				return fmt.Errorf("value %q is not a whole number", a[1])
			}
			svc, err := service(cmd)
			if err != nil {
				return err
			}
			d, err := svc.Shift(ctx, a[0], value, a[2], cmd.String("lang"))
			if err != nil {
				return err
			}
			printDetail(cmd, d)
			return nil
		},
	}
}
