package tui

import (
	"fmt"
	"net/url"
	"strings"

	"algoway/pkg/config"
	"algoway/pkg/route"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// RunConfigTUI launches the interactive experience for managing configurations
func RunConfigTUI() error {
	for {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		var action string

		initialForm := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Настройки").
					Options(
						huh.NewOption("Цвет акцента", "theme"),
						huh.NewOption("Адрес сервера", "base-url"),
						huh.NewOption("Сортировка по умолчанию", "sort"),
						huh.NewOption("Показать текущие настройки", "view"),
						huh.NewOption("Назад", "back"),
					).
					Value(&action),
			),
		).WithTheme(GetTheme())

		if err := initialForm.Run(); err != nil {
			return err
		}

		switch action {
		case "back":
			return nil
		case "theme":
			err = runSetThemeTUI(cfg)
		case "base-url":
			err = runSetBaseURLTUI(cfg)
		case "sort":
			err = runSetSortTUI(cfg)
		case "view":
			printConfig(cfg)
		}

		if err != nil {
			return err
		}
	}
}

func printConfig(cfg *config.AppConfig) {
	orDefault := func(v, def string) string {
		if v == "" {
			return def
		}
		return v
	}

	fmt.Println(accentStyle.Render("\n--- Текущие настройки (~/.algoway.yaml) ---"))
	fmt.Printf("Сервер: %s\n", orDefault(cfg.BaseURL, "по умолчанию"))
	fmt.Printf("Сортировка: %s\n", orDefault(cfg.DefaultSort, "не выбрана"))
	fmt.Printf("Таймаут запроса: %s\n", orDefault(cfg.RequestTimeout, "нет"))
	fmt.Printf("Кэш: %s\n", orDefault(cfg.CacheTTL, "выключен"))
	if cfg.RedisAddr != "" {
		fmt.Printf("Redis: %s\n", cfg.RedisAddr)
	}
	fmt.Printf("Цвет акцента: %s\n", orDefault(cfg.AccentColor, defaultAccent))
	fmt.Println()
}

func validateBaseURL(s string) error {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil {
		return err
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("нужен адрес вида http://host:port")
	}
	return nil
}

func runSetBaseURLTUI(cfg *config.AppConfig) error {
	input := cfg.BaseURL

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Адрес сервера маршрутов").
				Placeholder("http://127.0.0.1:8000").
				Value(&input).
				Validate(validateBaseURL),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.BaseURL = strings.TrimSpace(input)
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Сервер сохранён: %s", cfg.BaseURL)))
	fmt.Println(mutedStyle.Render("Новый адрес начнёт работать после перезапуска algoway.\n"))
	return nil
}

func runSetSortTUI(cfg *config.AppConfig) error {
	selected := cfg.DefaultSort

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Сортировать по умолчанию по").
				Options(sortOptions...).
				Value(&selected),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	if _, err := route.ParseSortCriterion(selected); err != nil {
		return err
	}

	cfg.DefaultSort = selected
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Сортировка по умолчанию: %s\n", selected)))
	return nil
}

func colorBlock(color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("██")
}

// validateHex accepts #RRGGBB
func validateHex(str string) error {
	if !strings.HasPrefix(str, "#") || config.ValidateAccent(str) != nil {
		return fmt.Errorf("must be a valid 6-character hex code starting with #")
	}
	return nil
}

func runSetThemeTUI(cfg *config.AppConfig) error {
	var input string

	inputForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Цвет акцента для algoway").
				Description("Выберите готовый цвет или введите свой hex-код.").
				Options(
					huh.NewOption(fmt.Sprintf("%s Фиолетовый", colorBlock("99")), "99"),
					huh.NewOption(fmt.Sprintf("%s Розовый", colorBlock("205")), "205"),
					huh.NewOption(fmt.Sprintf("%s Бирюзовый", colorBlock("86")), "86"),
					huh.NewOption(fmt.Sprintf("%s Зелёный", colorBlock("42")), "42"),
					huh.NewOption("✨ Свой hex-код", "custom"),
				).
				Value(&input),
		),
	).WithTheme(GetTheme())

	if err := inputForm.Run(); err != nil {
		return err
	}

	if input == "custom" {
		var hexInput string
		hexForm := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Hex-код цвета").
					Description("Со знаком `#`. Например: #FF00FF").
					Placeholder("#").
					Value(&hexInput).
					Validate(validateHex),
			),
		).WithTheme(GetTheme())

		if err := hexForm.Run(); err != nil {
			return err
		}
		cfg.AccentColor = hexInput
	} else {
		cfg.AccentColor = input
	}

	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("\n✅ Цвет сохранён.\n"))
	return nil
}
