package tui

import (
	"context"
	"fmt"
	"strings"

	"algoway/pkg/config"
	"algoway/pkg/present"
	"algoway/pkg/query"
	"algoway/pkg/route"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/lipgloss"
)

var sortOptions = []huh.Option[string]{
	huh.NewOption("Скорости", string(route.SortFastest)),
	huh.NewOption("Комфорту", string(route.SortComfort)),
	huh.NewOption("Стоимости", string(route.SortCheapest)),
}

// runSearchTUI collects the query, runs it behind a spinner and prints the outcome
func runSearchTUI(ctx context.Context, ctl *query.Controller) error {
	state := ctl.Snapshot()

	var from, to string
	if state.Origin != nil {
		from = string(*state.Origin)
	}
	if state.Destination != nil {
		to = string(*state.Destination)
	}

	sortBy := string(state.Sort)
	if sortBy == "" {
		if cfg, err := config.Load(); err == nil {
			sortBy = string(cfg.Sort())
		}
	}

	maxPrice := state.Filters.MaxPrice
	minComfort := state.Filters.MinComfort

	cityOptions := make([]huh.Option[string], 0, len(state.Catalog))
	for _, c := range state.Catalog {
		cityOptions = append(cityOptions, huh.NewOption(string(c), string(c)))
	}

	form := huh.NewForm(
		huh.NewGroup(
			citySelect("Откуда", cityOptions, &from),
			citySelect("Куда", cityOptions, &to),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Сортировать по").
				Options(sortOptions...).
				Value(&sortBy),

			huh.NewInput().
				Title("Макс. стоимость").
				Description("Только цифры. Пусто = без ограничения.").
				Value(&maxPrice),

			huh.NewInput().
				Title("Мин. комфорт").
				Description("От 0 до 100. Пусто = без ограничения.").
				Value(&minComfort),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	if err := applyForm(ctl, from, to, sortBy, maxPrice, minComfort); err != nil {
		fmt.Println(errorStyle.Render(err.Error()))
		return nil
	}

	var searchErr error

	_ = spinner.New().
		Title("Поиск...").
		Action(func() {
			_, searchErr = ctl.SearchAndWait(ctx)
		}).
		Run()

	if searchErr != nil && ctx.Err() != nil {
		return searchErr
	}

	showState(ctl.Snapshot())
	return nil
}

// citySelect is a type-to-filter city picker over the catalog
func citySelect(title string, options []huh.Option[string], value *string) *huh.Select[string] {
	return huh.NewSelect[string]().
		Title(title).
		Options(options...).
		Value(value).
		Filtering(true).
		Height(10)
}

// applyForm pushes the form values into the controller. Filter values that are
// not plain digits are dropped by the controller and the previous value stays.
func applyForm(ctl *query.Controller, from, to, sortBy, maxPrice, minComfort string) error {
	if err := ctl.SelectCity(query.Origin, optionalCity(from)); err != nil {
		return err
	}
	if err := ctl.SelectCity(query.Destination, optionalCity(to)); err != nil {
		return err
	}

	if sortBy != "" {
		criterion, err := route.ParseSortCriterion(sortBy)
		if err != nil {
			return err
		}
		ctl.SetSortCriterion(criterion)
	}

	ctl.SetFilter(query.MaxPrice, maxPrice)
	ctl.SetFilter(query.MinComfort, minComfort)
	return nil
}

func optionalCity(name string) *route.City {
	if name == "" {
		return nil
	}
	c := route.City(name)
	return &c
}

// showState prints either the current error or the result list
func showState(s query.State) {
	if s.Err != nil {
		fmt.Println(errorStyle.Render(present.Message(s.Err)))
		fmt.Println()
		return
	}

	if len(s.Results) == 0 {
		fmt.Println(mutedStyle.Render("Результатов пока нет.\n"))
		return
	}

	fmt.Print(renderResults(s.Results))
}

func renderResults(routes []route.Route) string {
	var b strings.Builder

	rankStyle := lipgloss.NewStyle().Bold(true)
	timeChip := lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	costChip := lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	comfortChip := lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	pathStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	card := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1)

	b.WriteString(accentStyle.Render(fmt.Sprintf("\n--- 🧭 %s ---", present.Header(len(routes)))))
	b.WriteString("\n")

	for i, r := range routes {
		s := present.Summarize(r, i+1)

		var c strings.Builder
		fmt.Fprintf(&c, "%s  %s\n", rankStyle.Render(s.RankLabel), strings.Join(s.Modes, " "))
		fmt.Fprintf(&c, "%s  %s  %s\n",
			timeChip.Render("⏱ "+s.Duration),
			costChip.Render("💰 "+s.Cost),
			comfortChip.Render("⭐ "+s.Comfort))
		if s.Transfers > 0 {
			c.WriteString(mutedStyle.Render(fmt.Sprintf("пересадок: %d", s.Transfers)))
			c.WriteString("\n")
		}
		c.WriteString(pathStyle.Render("📍 " + s.Path))

		if rows := present.Breakdown(r); rows != nil {
			c.WriteString("\n\n")
			c.WriteString(rankStyle.Render("Этапы маршрута:"))
			for _, row := range rows {
				fmt.Fprintf(&c, "\n%s %s\n", row.Glyph, row.Leg)
				c.WriteString(mutedStyle.Render(fmt.Sprintf("   %s • %s • %s", row.Duration, row.Cost, row.Comfort)))
				if row.Divider {
					c.WriteString("\n")
					c.WriteString(mutedStyle.Render("   ──────"))
				}
			}
		}

		b.WriteString(card.Render(c.String()))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	return b.String()
}
