// Package panel holds the commands that stand in for the in-page capture
// panel: capture, export and the limit preference.
package panel

import (
	"github.com/dreamerjackson/harvester/config"
	"github.com/dreamerjackson/harvester/extractor"
	"github.com/dreamerjackson/harvester/harvest"
	"github.com/dreamerjackson/harvester/log"
	"github.com/dreamerjackson/harvester/page"
	"github.com/dreamerjackson/harvester/prefs"
	"github.com/dreamerjackson/harvester/tasklib"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// env is what every panel command needs, built from the config file.
type env struct {
	cfg    config.Config
	log    *log.Logger
	logger *zap.Logger
	prefs  prefs.Store
}

func newEnv(cmd *cobra.Command) (*env, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil || path == "" {
		path = config.DefaultPath
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	e := &env{cfg: cfg}

	e.log = log.New(log.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		File:   cfg.LogFile,
	})
	e.logger = e.log.Logger
	zap.ReplaceGlobals(e.logger)

	e.prefs = prefs.NewFileStore(cfg.PrefsDir, cfg.Profile)

	return e, nil
}

func (e *env) close() {
	e.log.Close()
}

func (e *env) selector() (*extractor.Selector, error) {
	store := extractor.NewStore()
	tasklib.Register(store, e.logger.Named("generic"))
	if err := tasklib.RegisterScripts(store, e.cfg.Scripts); err != nil {
		return nil, err
	}

	return extractor.NewSelector(
		extractor.WithStore(store),
		extractor.WithLogger(e.logger.Named("selector")),
	), nil
}

// capture stores a limit given on the command line, then runs one capture
// with the stored limit.
func (e *env) capture(cmd *cobra.Command, file, rawURL string, limit int) (*harvest.Record, error) {
	if cmd.Flags().Changed("limit") {
		if err := e.prefs.SetLimitChars(limit); err != nil {
			return nil, err
		}
	}

	limitChars, err := e.prefs.LimitChars()
	if err != nil {
		e.logger.Warn("read limit failed, using default", zap.Error(err))
	}

	sel, err := e.selector()
	if err != nil {
		return nil, err
	}

	h := harvest.New(
		page.FileSource{Path: file, URL: rawURL},
		harvest.WithSelector(sel),
		harvest.WithLogger(e.logger.Named("harvest")),
	)

	return h.Capture(limitChars)
}

func addPageFlags(cmd *cobra.Command, file, rawURL *string, limit *int) {
	cmd.Flags().StringVar(file, "file", "", "saved page to capture")
	cmd.Flags().StringVar(rawURL, "url", "", "address the page was loaded from")
	cmd.Flags().IntVar(limit, "limit", prefs.DefaultLimitChars, "store a new size limit before capturing")
}
