package tui

import (
	"context"
	"fmt"

	"algoway/pkg/config"
	"algoway/pkg/present"
	"algoway/pkg/query"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/lipgloss"
)

const defaultAccent = "99"

var (
	// These act as fallbacks initially, but are re-created by GetTheme()
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(defaultAccent))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// GetTheme loads the user's saved accent color and constructs the UI theme.
func GetTheme() *huh.Theme {
	cfg, err := config.Load()
	baseColor := defaultAccent

	if err == nil && cfg != nil && cfg.AccentColor != "" {
		baseColor = cfg.AccentColor
	}

	// Keep the lipgloss accent in sync so printed results use the same color
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(baseColor))

	return GetCustomTheme(baseColor)
}

// GetCustomTheme returns a new huh.Theme built around the provided lipgloss color string.
func GetCustomTheme(baseColor string) *huh.Theme {
	t := huh.ThemeCharm()
	p := lipgloss.Color(baseColor)

	t.Focused.Title = t.Focused.Title.Foreground(p).Bold(true)
	t.Focused.Base = t.Focused.Base.Border(lipgloss.RoundedBorder()).BorderForeground(p).Padding(0, 1)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(p)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(p)
	t.Focused.SelectedPrefix = t.Focused.SelectedPrefix.Foreground(p)
	t.Focused.UnselectedPrefix = t.Focused.UnselectedPrefix.Foreground(lipgloss.AdaptiveColor{Light: "", Dark: "235"})
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(p)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(p)
	t.Focused.FocusedButton = t.Focused.FocusedButton.Foreground(lipgloss.Color("0")).Background(p)

	// Softer borders for unfocused elements
	t.Blurred.Base = t.Blurred.Base.Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1)

	return t
}

// ensureCatalog loads the city catalog unless a usable one is already there.
// Failures are printed and the caller stays in the menu.
func ensureCatalog(ctx context.Context, ctl *query.Controller) bool {
	if len(ctl.Snapshot().Catalog) >= 2 {
		return true
	}

	var loadErr error

	_ = spinner.New().
		Title("Загружаем список городов...").
		Action(func() {
			loadErr = ctl.LoadCatalog(ctx)
		}).
		Run()

	if msg := catalogProblem(ctl.Snapshot(), loadErr); msg != "" {
		fmt.Println(errorStyle.Render(msg))
		fmt.Println(mutedStyle.Render("Проверьте адрес сервера в настройках.\n"))
		return false
	}
	return true
}

// catalogProblem returns the text to show when the catalog can't be searched, or ""
func catalogProblem(s query.State, loadErr error) string {
	if loadErr != nil {
		return present.Message(loadErr)
	}
	if len(s.Catalog) < 2 {
		return "Каталог городов пуст: искать нечего."
	}
	return ""
}

// RunTUI loads the city catalog and then loops over the main menu until the user quits
func RunTUI(ctx context.Context, ctl *query.Controller) error {
	ensureCatalog(ctx, ctl)

	for {
		var action string

		menu := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Путеводитель").
					Options(
						huh.NewOption("🔍 Найти маршруты", "search"),
						huh.NewOption("📋 Последние результаты", "results"),
						huh.NewOption("🧹 Сброс", "reset"),
						huh.NewOption("⚙️ Настройки", "config"),
						huh.NewOption("🚪 Выход", "quit"),
					).
					Value(&action),
			),
		).WithTheme(GetTheme())

		if err := menu.Run(); err != nil {
			return err
		}

		var err error
		switch action {
		case "search":
			if ensureCatalog(ctx, ctl) {
				err = runSearchTUI(ctx, ctl)
			}
		case "results":
			showState(ctl.Snapshot())
		case "reset":
			ctl.Reset()
			fmt.Println(mutedStyle.Render("Результаты очищены.\n"))
		case "config":
			err = RunConfigTUI()
		case "quit":
			return nil
		}

		if err != nil {
			return err
		}
	}
}
