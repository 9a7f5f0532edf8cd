// Package app wires configuration, logging, the fetch pipeline, the
// scheduler and the Fyne window together.
package app

import (
	"fmt"
	"net/http"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"

	"github.com/cpnews/cpnews/internal/cache"
	"github.com/cpnews/cpnews/internal/config"
	"github.com/cpnews/cpnews/internal/feed"
	"github.com/cpnews/cpnews/internal/fetch"
	"github.com/cpnews/cpnews/internal/logger"
	"github.com/cpnews/cpnews/internal/scheduler"
	"github.com/cpnews/cpnews/internal/session"
	"github.com/cpnews/cpnews/internal/ui"
	"github.com/cpnews/cpnews/internal/update"
)

const (
	AppID   = "com.cpnews.cpnews"
	AppName = "CP News"
)

// Services is the non-UI part of the application
type Services struct {
	Config  *config.Config
	Store   *cache.Store
	Updates *update.Channel
	Fetcher *fetch.Service
	State   *session.State
}

// NewServices builds the fetch pipeline and restores the cached lists
func NewServices(cfg *config.Config, settings *config.Settings) *Services {
	store := cache.NewStore(cfg.Cache.Dir)
	updates := update.NewChannel(cfg.Updates.ChannelCapacity)

	fetcher := fetch.NewService(&http.Client{Timeout: cfg.HTTP.Timeout}, feed.Defaults(cfg.Endpoints()), store, updates)
	fetcher.SetUserAgent(cfg.HTTP.UserAgent)

	state := session.NewState(settings.GetLanguage(), fetcher, updates)
	cn, en := store.Load()
	state.Restore(cn, en)
	logger.Infof("[app] cache %s restored: cn=%d en=%d", store.Dir(), len(cn), len(en))

	return &Services{
		Config:  cfg,
		Store:   store,
		Updates: updates,
		Fetcher: fetcher,
		State:   state,
	}
}

// loadConfig reads the config file; problems fall back to defaults
func loadConfig() *config.Config {
	cfg, path, err := config.LoadDefault()
	if err != nil {
		logger.Warnf("[app] config %s: %v; using defaults", path, err)
		return config.Default()
	}
	if path != "" {
		logger.Infof("[app] config %s", path)
	}
	return cfg
}

// Run starts the GUI and blocks until the window is closed
func Run(version string) {
	cfg := loadConfig()
	if err := logger.Init(cfg.LoggerConfig()); err != nil {
		logger.Warnf("[app] logger init: %v", err)
	}
	defer logger.Sync()

	logger.Infof("%s v%s starting...", AppName, version)

	a := fyneapp.NewWithID(AppID)
	a.Settings().SetTheme(ui.NewCompactTheme())

	w := a.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	w.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	settings := config.NewSettings(a)
	svc := NewServices(cfg, settings)

	var root *ui.RootUI
	sched, err := scheduler.New(cfg.RefreshSpec(), func() {
		fyne.Do(func() { root.RequestRefresh() })
	})
	if err != nil {
		logger.Warnf("[app] refresh spec %q: %v; auto-refresh disabled", cfg.RefreshSpec(), err)
		sched = nil
	}
	sched.SetEnabled(settings.GetAutoRefresh())

	root = ui.NewRootUI(w, ui.Options{
		State:       svc.State,
		Settings:    settings,
		AutoRefresh: sched,
		CacheDir:    svc.Store.Dir(),
		Version:     version,
	})

	// First launch or empty cache
	if len(svc.State.CurrentItems()) == 0 {
		root.RequestRefresh()
	}

	root.StartFrameLoop()
	sched.Start()
	defer sched.Stop()

	w.ShowAndRun()
	logger.Infof("%s stopped", AppName)
}
