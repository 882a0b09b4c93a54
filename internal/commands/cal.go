package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/starford/miti/internal/calendar"
	"github.com/starford/miti/internal/dateservice"
	"github.com/starford/miti/internal/grid"
	"github.com/starford/miti/internal/view"
)

func calCommand() *cli.Command {
	return &cli.Command{
		Name:      "cal",
		Usage:     "Print a month grid; defaults to the current month",
		ArgsUsage: "[year month]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "kind", Aliases: []string{"k"}, Usage: "Calendar, BS or AD (default from config)"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			svc, err := service(cmd)
			if err != nil {
				return err
			}
			q := dateservice.MonthQuery{Kind: cmd.String("kind"), Lang: cmd.String("lang")}
			switch cmd.Args().Len() {
			case 0:
				today, err := svc.TodayDate()
				if err != nil {
					return err
				}
				kind, err := svc.Kind(q.Kind)
				if err != nil {
					return err
				}
				d := today.BS()
				if kind == calendar.AD {
					d = today.AD()
				}
				q.Year, q.Month = d.Year, d.Month+1
			case 2:
				if q.Year, err = strconv.Atoi(cmd.Args().Get(0)); err != nil {
					return fmt.Errorf("year %q is not a number", cmd.Args().Get(0))
				}
				if q.Month, err = strconv.Atoi(cmd.Args().Get(1)); err != nil {
					return fmt.Errorf("month %q is not a number", cmd.Args().Get(1))
				}
			default:
				return fmt.Errorf("usage: miti cal [--kind BS|AD] [year month]")
			}

			page, err := svc.Month(ctx, q)
			if err != nil {
				return err
			}
			fmt.Fprint(out(cmd), renderMonth(page))
			return nil
		},
	}
}

// renderMonth draws the page as text. Days of the neighbouring months are
// left blank and today is marked with a trailing asterisk.
func renderMonth(page *view.Month) string {
	const cellWidth = 4
	var b strings.Builder
	width := cellWidth * len(page.Weekdays)
	title := page.Title
	if pad := (width - len([]rune(title))) / 2; pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}
	b.WriteString(title)
	b.WriteByte('\n')
	for _, w := range page.Weekdays {
		fmt.Fprintf(&b, "%*s", cellWidth, w)
	}
	b.WriteByte('\n')
	for _, week := range page.Weeks {
		for _, c := range week {
			text := ""
			if c.Month == grid.Current {
				text = c.Text
				if c.Today {
					text += "*"
				} else {
					text += " "
				}
			}
			fmt.Fprintf(&b, "%*s", cellWidth, text)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
