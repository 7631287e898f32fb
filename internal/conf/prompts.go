package conf

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cryptopulse/telegram-sentiment-bridge/internal/biz/usecase"

	"gopkg.in/yaml.v3"
)

// PromptsConfig contains the classifier prompt templates loaded from YAML.
// Templates embed the queue snapshot via {{messages}} / {{news}}.
type PromptsConfig struct {
	PumpDumpPrompt string `yaml:"pump_and_dump_prompt"`
	NewsPrompt     string `yaml:"news_prompt"`
}

// LoadPromptsConfig loads prompt templates from a YAML file
func LoadPromptsConfig(configPath string) (*PromptsConfig, error) {
	// Try multiple paths
	paths := []string{configPath}
	if configPath == "" {
		paths = []string{
			"configs/prompts.yaml",
			"./configs/prompts.yaml",
			"/etc/telegram-sentiment-bridge/prompts.yaml",
		}
		if execPath, err := os.Executable(); err == nil {
			paths = append(paths, filepath.Join(filepath.Dir(execPath), "configs", "prompts.yaml"))
		}
		if wd, err := os.Getwd(); err == nil {
			paths = append(paths, filepath.Join(wd, "configs", "prompts.yaml"))
		}
	}

	var data []byte
	var loadedPath string
	var err error

	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			loadedPath = p
			break
		}
	}

	if data == nil {
		// Return default templates if no file found
		fmt.Println("[Config] No prompts.yaml found, using defaults")
		return DefaultPromptsConfig(), nil
	}

	fmt.Printf("[Config] Loading prompts from: %s\n", loadedPath)

	var config PromptsConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse prompts.yaml: %w", err)
	}

	config.fillDefaults()
	return &config, nil
}

// fillDefaults fills in default values for empty fields
func (c *PromptsConfig) fillDefaults() {
	defaults := DefaultPromptsConfig()
	if c.PumpDumpPrompt == "" {
		c.PumpDumpPrompt = defaults.PumpDumpPrompt
	}
	if c.NewsPrompt == "" {
		c.NewsPrompt = defaults.NewsPrompt
	}
}

// DefaultPromptsConfig returns the built-in prompt templates
func DefaultPromptsConfig() *PromptsConfig {
	return &PromptsConfig{
		PumpDumpPrompt: usecase.DefaultPromptConfig.PumpDumpTemplate,
		NewsPrompt:     usecase.DefaultPromptConfig.NewsTemplate,
	}
}
