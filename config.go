package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const configFileName = ".kudosrc"

type Config struct {
	SaveDirectory string
	Confirmations bool
	Image         string
	Video         string
	Content       string
	LogFile       string
	Recipient     string
	Question      string
	ShowNumbers   bool
}

func defaultConfig() *Config {
	return &Config{
		SaveDirectory: "",
		Confirmations: true,
		Recipient:     "friend",
	}
}

func defaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, configFileName)
}

// loadConfig reads key = value lines from path. A missing or unreadable file
// yields the defaults.
func loadConfig(path string) *Config {
	config := defaultConfig()
	if path == "" {
		return config
	}

	file, err := os.Open(path)
	if err != nil {
		return config
	}
	defer file.Close()

	homeDir, _ := os.UserHomeDir()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch strings.ToLower(key) {
		case "savedirectory", "save_directory", "savedir":
			config.SaveDirectory = expandPath(value, homeDir)
		case "confirmations", "confirm":
			config.Confirmations = strings.ToLower(value) == "true"
		case "image", "picture":
			config.Image = expandPath(value, homeDir)
		case "video":
			config.Video = expandPath(value, homeDir)
		case "content", "cards":
			if isRemote(value) {
				config.Content = value
			} else {
				config.Content = expandPath(value, homeDir)
			}
		case "logfile", "log_file", "log":
			config.LogFile = expandPath(value, homeDir)
		case "recipient", "to":
			config.Recipient = value
		case "question", "prompt":
			config.Question = value
		case "numbers", "show_numbers":
			config.ShowNumbers = strings.ToLower(value) == "true"
		}
	}

	return config
}

func expandPath(value, homeDir string) string {
	if value == "" {
		return value
	}
	if strings.HasPrefix(value, "~") && homeDir != "" {
		value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
	}
	if !filepath.IsAbs(value) {
		if absPath, err := filepath.Abs(value); err == nil {
			value = absPath
		}
	}
	return value
}

func isRemote(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// GetSavePath places filename in the save directory, creating it if needed.
func (c *Config) GetSavePath(filename string) (string, error) {
	if c.SaveDirectory == "" {
		return filename, nil
	}
	if err := os.MkdirAll(c.SaveDirectory, 0755); err != nil {
		return "", fmt.Errorf("create save directory: %w", err)
	}
	return filepath.Join(c.SaveDirectory, filename), nil
}

func (c *Config) prompt() string {
	if c.Question != "" {
		return c.Question
	}
	return "Hey " + c.Recipient + ", do you have a minute for something small?"
}
