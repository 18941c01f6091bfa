package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/ardnew/builddetails/detail"
	"github.com/ardnew/builddetails/log"
)

// Kinds lists every detail kind with its constant, type and source.
type Kinds struct {
	Syntax string `default:"" enum:",${syntaxEnum}" help:"Syntax the constant types are shown in (default: from the selection file)"`
}

// Run executes the kinds command.
func (k *Kinds) Run(ctx context.Context) error {
	file := selectionFrom(ctx)
	if k.Syntax != "" {
		file.Syntax = k.Syntax
	}

	syntax, err := file.TargetSyntax()
	if err != nil {
		return err
	}

	status := map[detail.Kind]string{}

	// An invalid selection file still lists the kinds.
	if set, err := file.Build(EnvironmentFrom(ctx)); err == nil {
		for _, kind := range set.Optional() {
			status[kind] = "optional"
		}

		for _, kind := range set.Required() {
			status[kind] = "required"
		}
	} else {
		log.WarnContext(ctx, "selection file not applied", slog.Any("error", err))
	}

	w := stdout(ctx)
	r := lipgloss.NewRenderer(w)
	header := r.NewStyle().Bold(true).Padding(0, 1)
	cell := r.NewStyle().Padding(0, 1)
	dim := cell.Foreground(lipgloss.Color("8"))

	rows := make([][]string, 0, 16)

	for kind := range detail.Kinds() {
		selected, ok := status[kind]
		if !ok {
			selected = "-"
		}

		rows = append(rows, []string{
			kind.String(),
			kind.Constant(),
			syntax.Type(kind.Type()),
			kind.Source(),
			selected,
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.NewStyle().Foreground(lipgloss.Color("8"))).
		Headers("KIND", "CONSTANT", "TYPE", "SOURCE", "SELECTED").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return header
			case row >= 0 && row < len(rows) && rows[row][4] == "-":
				return dim
			default:
				return cell
			}
		})

	_, err = fmt.Fprintln(w, t.Render())

	return err
}
