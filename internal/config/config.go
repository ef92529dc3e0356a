// Package config loads and validates the assistant configuration document.
// Configuration is read once at startup from a YAML file; the running
// assistant never mutates it.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
)

// LanguageCodes pairs the recognition and synthesis codes for one language.
type LanguageCodes struct {
	// STT is the BCP-47 code passed to the speech recognizer (e.g. "en-IN").
	STT string `yaml:"stt"`

	// GTTS is the synthesis code passed to the speech engine (e.g. "en").
	GTTS string `yaml:"gtts"`
}

// Config is the immutable assistant configuration.
type Config struct {
	// AssistantName is the spoken name of the assistant.
	AssistantName string `yaml:"assistant_name"`

	// WakeWords are the phrases that wake the assistant. Stored lower-cased.
	WakeWords []string `yaml:"wake_words"`

	// DefaultLanguage is the language active at startup.
	// Must be a key of LanguageMap.
	DefaultLanguage string `yaml:"default_language"`

	// UseGTTS selects the network synthesis engine as the primary voice.
	// The local command-line engine remains the fallback either way.
	UseGTTS bool `yaml:"use_gtts"`

	// GTTSTempPath is where synthesized audio is written before playback.
	GTTSTempPath string `yaml:"gtts_temp_path"`

	// NotesPath is the append-only note log file.
	NotesPath string `yaml:"notes_path"`

	// SiteDir is the output directory for generated website scaffolds.
	SiteDir string `yaml:"site_dir"`

	// LanguageMap maps language names to their recognition/synthesis codes.
	LanguageMap map[string]LanguageCodes `yaml:"language_map"`
}

// DefaultConfig returns the stock Nova configuration: English default,
// "nova" wake word, and the full supported language map.
func DefaultConfig() *Config {
	return &Config{
		AssistantName:   "Nova",
		WakeWords:       []string{"nova"},
		DefaultLanguage: "english",
		UseGTTS:         true,
		GTTSTempPath:    "data/tts_temp.mp3",
		NotesPath:       "data/notes.txt",
		SiteDir:         "output/website",
		LanguageMap: map[string]LanguageCodes{
			"english":    {STT: "en-IN", GTTS: "en"},
			"hindi":      {STT: "hi-IN", GTTS: "hi"},
			"marathi":    {STT: "mr-IN", GTTS: "mr"},
			"spanish":    {STT: "es-ES", GTTS: "es"},
			"french":     {STT: "fr-FR", GTTS: "fr"},
			"german":     {STT: "de-DE", GTTS: "de"},
			"portuguese": {STT: "pt-PT", GTTS: "pt"},
			"russian":    {STT: "ru-RU", GTTS: "ru"},
			"chinese":    {STT: "zh-CN", GTTS: "zh-CN"},
			"japanese":   {STT: "ja-JP", GTTS: "ja"},
			"korean":     {STT: "ko-KR", GTTS: "ko"},
			"arabic":     {STT: "ar-SA", GTTS: "ar"},
			"bengali":    {STT: "bn-IN", GTTS: "bn"},
			"urdu":       {STT: "ur-PK", GTTS: "ur"},
			"punjabi":    {STT: "pa-IN", GTTS: "pa"},
			"tamil":      {STT: "ta-IN", GTTS: "ta"},
			"telugu":     {STT: "te-IN", GTTS: "te"},
			"kannada":    {STT: "kn-IN", GTTS: "kn"},
		},
	}
}

// Load reads a YAML configuration file. Missing fields fall back to
// DefaultConfig values; the result is validated before being returned.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// normalize lower-cases wake words and language names so matching is
// case-insensitive everywhere downstream.
func (c *Config) normalize() {
	for i, w := range c.WakeWords {
		c.WakeWords[i] = strings.ToLower(strings.TrimSpace(w))
	}
	c.DefaultLanguage = strings.ToLower(strings.TrimSpace(c.DefaultLanguage))

	normalized := make(map[string]LanguageCodes, len(c.LanguageMap))
	for name, codes := range c.LanguageMap {
		normalized[strings.ToLower(strings.TrimSpace(name))] = codes
	}
	c.LanguageMap = normalized
}

// Validate checks the configuration invariants.
func (c *Config) Validate() error {
	if c.AssistantName == "" {
		return fmt.Errorf("config: assistant_name is required")
	}
	if len(c.WakeWords) == 0 {
		return fmt.Errorf("config: at least one wake word is required")
	}
	if len(c.LanguageMap) == 0 {
		return fmt.Errorf("config: language_map must not be empty")
	}
	if _, ok := c.LanguageMap[c.DefaultLanguage]; !ok {
		return fmt.Errorf("config: default_language %q is not in language_map", c.DefaultLanguage)
	}
	for name, codes := range c.LanguageMap {
		if codes.STT == "" || codes.GTTS == "" {
			return fmt.Errorf("config: language %q is missing stt or gtts code", name)
		}
	}
	return nil
}
