package conf

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ChannelsConfig contains the monitored channel lists, one per category.
// Entries may be t.me links or bare channel usernames.
type ChannelsConfig struct {
	PumpDump []string `yaml:"pump_and_dump"`
	News     []string `yaml:"news"`
}

// LoadChannelsConfig loads channel lists from a YAML file
func LoadChannelsConfig(configPath string) (*ChannelsConfig, error) {
	// Try multiple paths
	paths := []string{configPath}
	if configPath == "" {
		paths = []string{
			"configs/channels.yaml",
			"./configs/channels.yaml",
			"/etc/telegram-sentiment-bridge/channels.yaml",
		}
		if execPath, err := os.Executable(); err == nil {
			paths = append(paths, filepath.Join(filepath.Dir(execPath), "configs", "channels.yaml"))
		}
		if wd, err := os.Getwd(); err == nil {
			paths = append(paths, filepath.Join(wd, "configs", "channels.yaml"))
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
		// Return default lists if no file found
		fmt.Println("[Config] No channels.yaml found, using defaults")
		return DefaultChannelsConfig(), nil
	}

	fmt.Printf("[Config] Loading channels from: %s\n", loadedPath)

	var config ChannelsConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse channels.yaml: %w", err)
	}

	// Fill in defaults for empty lists
	defaults := DefaultChannelsConfig()
	if len(config.PumpDump) == 0 {
		config.PumpDump = defaults.PumpDump
	}
	if len(config.News) == 0 {
		config.News = defaults.News
	}

	return &config, nil
}

// DefaultChannelsConfig returns the built-in channel lists
func DefaultChannelsConfig() *ChannelsConfig {
	return &ChannelsConfig{
		PumpDump: []string{
			"https://t.me/sharks_pump",
			"https://t.me/cryptoclubpump",
			"https://t.me/VerifiedCryptoNews",
			"https://t.me/mega_pump_group",
			"https://t.me/mega_pump_group_signals",
			"https://t.me/cryptoflashsignals",
			"https://t.me/RocketWallet_Official",
			"https://t.me/testing_scraping",
		},
		News: []string{
			"https://t.me/ethereumnews",
			"https://t.me/VerifiedCryptoNews",
			"https://t.me/coinlistofficialchannel",
		},
	}
}
