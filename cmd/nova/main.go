// Command nova runs the voice assistant: it loads the configuration, wires
// the speech, routing and side-effect components, and drives the wake loop
// until a spoken shutdown or an interrupt.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	cli "github.com/spf13/pflag"

	"github.com/novalabs/go-nova/internal/config"
	ilog "github.com/novalabs/go-nova/internal/log"
	"github.com/novalabs/go-nova/pkg/actions"
	"github.com/novalabs/go-nova/pkg/assistant"
	"github.com/novalabs/go-nova/pkg/intent"
	"github.com/novalabs/go-nova/pkg/knowledge"
	"github.com/novalabs/go-nova/pkg/lang"
	"github.com/novalabs/go-nova/pkg/notes"
	"github.com/novalabs/go-nova/pkg/session"
	"github.com/novalabs/go-nova/pkg/site"
	"github.com/novalabs/go-nova/pkg/stt"
	"github.com/novalabs/go-nova/pkg/tts"
)

func main() {
	configPath := cli.StringP("config", "c", "", "Config file path (YAML); defaults apply when omitted")
	envFile := cli.StringP("env", "e", ".env", "Env file path")
	logLevel := cli.StringP("log", "l", "info", "Log level (debug|info|warn|error)")
	cli.Parse()

	ilog.Init(*logLevel)
	logger := ilog.L()

	// Optional env file for API keys and the messaging gateway.
	_ = godotenv.Load(*envFile)

	cfg := config.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			logger.Error("failed to load config", "path", *configPath, "error", err)
			os.Exit(1)
		}
	}

	codes := make(map[string]lang.Codes, len(cfg.LanguageMap))
	for name, c := range cfg.LanguageMap {
		codes[name] = lang.Codes{STT: c.STT, GTTS: c.GTTS}
	}
	catalog := lang.NewCatalog(codes)

	defaultCodes, _ := catalog.Codes(cfg.DefaultLanguage)
	recognizer, err := stt.NewGoogle(
		stt.WithLanguage(defaultCodes.STT),
		stt.WithAPIKey(os.Getenv("SPEECH_API_KEY")),
	)
	if err != nil {
		logger.Error("failed to open microphone", "error", err)
		os.Exit(1)
	}

	var voices []tts.Speaker
	if cfg.UseGTTS {
		voices = append(voices, tts.NewGTTS(catalog, tts.WithTempPath(cfg.GTTSTempPath)))
	}
	voices = append(voices, tts.NewCommand(catalog, os.Getenv("TTS_COMMAND")))
	speaker, err := tts.NewChain(voices...)
	if err != nil {
		logger.Error("failed to build speaker chain", "error", err)
		os.Exit(1)
	}

	sess, err := session.New(catalog, cfg.DefaultLanguage, cfg.WakeWords, recognizer, speaker)
	if err != nil {
		logger.Error("failed to create session", "error", err)
		os.Exit(1)
	}

	browser := actions.NewExecBrowser()
	router := intent.NewRouter(intent.Deps{
		Session:   sess,
		Detector:  lang.NewDetector(),
		Knowledge: knowledge.NewWikipedia(),
		Browser:   browser,
		Media:     actions.NewYouTube(browser),
		Messenger: actions.NewGateway(os.Getenv("MESSAGE_GATEWAY_URL")),
		Notes:     notes.NewLog(cfg.NotesPath),
		Site:      site.NewBuilder(cfg.SiteDir),
	})

	a := assistant.New(sess, recognizer, speaker, router, assistant.DefaultConfig())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("starting",
		"assistant", cfg.AssistantName,
		"wake_words", cfg.WakeWords,
		"language", cfg.DefaultLanguage,
	)

	if err := a.Run(ctx); err != nil {
		logger.Error("assistant stopped with error", "error", err)
		os.Exit(1)
	}
}
