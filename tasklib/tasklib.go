// Package tasklib registers the built-in site extractors. Order of Add is
// priority order; append new sites at the end.
package tasklib

import (
	"github.com/dreamerjackson/harvester/extractor"
	"github.com/dreamerjackson/harvester/tasklib/generic"
	"github.com/dreamerjackson/harvester/tasklib/reddit"
	"github.com/dreamerjackson/harvester/tasklib/twitter"
	"github.com/dreamerjackson/harvester/tasklib/youtube"
	"go.uber.org/zap"
)

func init() {
	Register(extractor.Registry, zap.NewNop())
}

// Register adds the built-in sites to store and sets the generic fallback.
func Register(store *extractor.Store, logger *zap.Logger) {
	store.MustAdd(reddit.Extractor)
	store.MustAdd(youtube.Extractor)
	store.MustAdd(twitter.Extractor)
	store.SetFallback(generic.New(logger))
}

// RegisterScripts appends configured scripted sites after the built-in ones.
func RegisterScripts(store *extractor.Store, models []extractor.ScriptModel) error {
	for _, m := range models {
		e, err := extractor.NewScript(m)
		if err != nil {
			return err
		}
		if err := store.Add(e); err != nil {
			return err
		}
	}

	return nil
}
