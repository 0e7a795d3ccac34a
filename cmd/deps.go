package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/quizai/internal/analysis"
	"github.com/abhisek/quizai/internal/cache"
	"github.com/abhisek/quizai/internal/config"
	"github.com/abhisek/quizai/internal/llm"
	"github.com/abhisek/quizai/internal/logger"
	"github.com/abhisek/quizai/internal/quiz"
	"github.com/abhisek/quizai/internal/service"
	"github.com/abhisek/quizai/internal/store"
)

// deps is everything a command needs, built from config.
type deps struct {
	cfg      *config.Config
	store    *store.Store
	svc      *service.Service
	analyzer analysis.Analyzer

	closers []func()
}

// Close releases resources in reverse order of acquisition.
func (d *deps) Close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		d.closers[i]()
	}
}

// loadConfig reads config with the persistent flag overrides applied.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfgFile, _ := cmd.Flags().GetString("config")
	dbPath, _ := cmd.Flags().GetString("db")
	level, _ := cmd.Flags().GetString("log-level")
	return config.Load(config.Options{ConfigFile: cfgFile, DBPath: dbPath, LogLevel: level})
}

// resolveDBPath returns the configured database path, falling back to the
// default XDG location.
func resolveDBPath(cfg *config.Config) (string, error) {
	if cfg.DB.Path != "" {
		return cfg.DB.Path, store.EnsureDir(cfg.DB.Path)
	}
	return store.DefaultDBPath()
}

// openStore loads config, starts logging and opens the database. Commands
// that never call a model stop here.
func openStore(cmd *cobra.Command, tui bool) (*deps, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	// The TUI owns the terminal, so logs go to a file unless one is set.
	logCfg := cfg.Log
	if tui && logCfg.File == "" {
		if dir, err := store.DataDir(); err == nil {
			logCfg.File = filepath.Join(dir, "quizai.log")
		}
	}
	closeLog, err := logger.Initialize(logCfg)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	d := &deps{cfg: cfg, closers: []func(){closeLog}}

	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		d.Close()
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		d.Close()
		return nil, fmt.Errorf("open database: %w", err)
	}
	d.store = st
	d.closers = append(d.closers, func() { st.Close() })

	logger.Get().Debug("store opened", zap.String("path", dbPath), zap.String("config", cfg.File))
	return d, nil
}

// openDeps builds the full dependency set including the model and cache.
// Without a configured model it warns once and falls back to the Noop
// generator and analyzer. A provider that is selected but cannot be built
// is an error.
func openDeps(cmd *cobra.Command, tui bool) (*deps, error) {
	d, err := openStore(cmd, tui)
	if err != nil {
		return nil, err
	}
	ctx := cmd.Context()
	log := logger.Get()

	var (
		gen   quiz.Generator
		model string
	)

	switch {
	case !d.cfg.LLMConfigured():
		warn("No LLM configured. Set QUIZAI_LLM_PROVIDER and an API key (e.g. GEMINI_API_KEY); quizzes and analyses will be empty.")
	default:
		// A selected provider must work: discovery only selects providers
		// whose key was found, so a failure here is a configuration error.
		provider, err := llm.NewProvider(ctx, d.cfg.LLM, d.store.EventRepo())
		if err != nil {
			d.Close()
			return nil, fmt.Errorf("llm provider %s: %w", d.cfg.LLM.Provider, err)
		}
		model = provider.ModelID()

		qcfg := quiz.DefaultConfig()
		if t := d.cfg.Generation.Temperature; t > 0 {
			qcfg.Temperature = t
		}
		if n := d.cfg.Generation.MaxTokens; n > 0 {
			qcfg.MaxTokens = n
		}
		gen = quiz.New(provider, qcfg)

		acfg := analysis.DefaultConfig()
		if n := d.cfg.Analysis.MaxAttempts; n > 0 {
			acfg.MaxAttempts = n
		}
		if n := d.cfg.Analysis.MaxTokens; n > 0 {
			acfg.MaxTokens = n
		}
		d.analyzer = analysis.NewLLMAnalyzer(provider, acfg)

		if d.cfg.Cache.Enabled() {
			c, err := cache.Dial(ctx, cache.Options{
				Addr:     d.cfg.Cache.RedisAddr,
				Password: d.cfg.Cache.RedisPassword,
				DB:       d.cfg.Cache.RedisDB,
			})
			if err != nil {
				log.Warn("quiz cache disabled", zap.String("addr", d.cfg.Cache.RedisAddr), zap.Error(err))
			} else {
				gen = quiz.NewCachedGenerator(gen, c, d.cfg.Cache.TTL)
				d.closers = append(d.closers, func() { c.Close() })
			}
		}
		log.Info("llm provider ready", zap.String("provider", provider.Name()), zap.String("model", model))
	}

	d.svc = service.New(service.Deps{
		Generator: gen,
		Analyzer:  d.analyzer,
		Quizzes:   d.store.QuizRepo(),
		Attempts:  d.store.AttemptRepo(),
		Reports:   d.store.ReportRepo(),
		Model:     model,
	})
	return d, nil
}

var warnColor = color.New(color.FgYellow)

func warn(msg string) {
	warnColor.Fprintln(os.Stderr, "warning: "+msg)
}

// newReadService builds a service over the store alone, for commands that
// never call a model.
func newReadService(d *deps) *service.Service {
	return service.New(service.Deps{
		Quizzes:  d.store.QuizRepo(),
		Attempts: d.store.AttemptRepo(),
		Reports:  d.store.ReportRepo(),
	})
}
