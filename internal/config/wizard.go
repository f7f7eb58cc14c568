package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to distread! Let's configure your dashboard.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Data file.
	dataPrompt := promptui.Prompt{
		Label:   "Analysis results (path or URL)",
		Default: cfg.DataPath,
	}
	dataPath, err := dataPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("data path: %w", err)
	}
	cfg.DataPath = dataPath

	if _, err := os.Stat(dataPath); err != nil && !strings.Contains(dataPath, "://") {
		fmt.Printf("\nNote: %s does not exist yet. The dashboard will report a load error until it does.\n\n", dataPath)
	}

	// 2. Title.
	titlePrompt := promptui.Prompt{
		Label:   "Dashboard title",
		Default: cfg.Title,
	}
	if cfg.Title, err = titlePrompt.Run(); err != nil {
		return nil, fmt.Errorf("title: %w", err)
	}

	// 3. Texts, in navigation order.
	textsPrompt := promptui.Prompt{
		Label:   "Text ids (comma-separated, navigation order)",
		Default: strings.Join(cfg.Texts, ","),
	}
	textsStr, err := textsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("texts: %w", err)
	}
	cfg.Texts = splitAndTrim(textsStr)
	if len(cfg.Texts) > 0 {
		cfg.DefaultText = cfg.Texts[0]
	}
	if len(cfg.Texts) >= 2 {
		cfg.Comparison.Left, cfg.Comparison.Right = cfg.Texts[0], cfg.Texts[1]
	}

	// 4. Port.
	portPrompt := promptui.Prompt{
		Label:   "Dashboard port",
		Default: strconv.Itoa(cfg.Port),
		Validate: func(s string) error {
			_, err := strconv.Atoi(s)
			return err
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	// 5. Static site output.
	outputPrompt := promptui.Prompt{
		Label:   "Output directory for the static site",
		Default: cfg.OutputDir,
	}
	if cfg.OutputDir, err = outputPrompt.Run(); err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
