package panel

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/dreamerjackson/harvester/export"
	"github.com/dreamerjackson/harvester/generator"
	"github.com/dreamerjackson/harvester/harvest"
	"github.com/dreamerjackson/harvester/storage/sqlstorage"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const nothingToExport = "Nothing to export. Hit Capture first."

func NewExportCmd() *cobra.Command {
	var (
		file    string
		rawURL  string
		limit   int
		payload string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "capture a page and save the artifact to a file.",
		Long: "capture a saved page and write harvest_<host>_<id>.json to the export dir. " +
			"With --payload an artifact printed earlier by capture is saved instead.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd)
			if err != nil {
				return err
			}
			defer e.close()

			ids, err := generator.New(e.cfg.ExportNode)
			if err != nil {
				return err
			}

			var a *export.Artifact
			if payload != "" {
				a, err = readArtifact(cmd, payload, rawURL, ids, e.logger.Named("export"))
			} else {
				var rec *harvest.Record
				if rec, err = e.capture(cmd, file, rawURL, limit); err != nil {
					return err
				}
				a, err = export.FromRecord(rec, ids)
			}
			if errors.Is(err, export.ErrNothingToExport) {
				fmt.Fprintln(cmd.OutOrStdout(), nothingToExport)
				return nil
			}
			if err != nil {
				return err
			}

			sink := export.FileSink{Dir: e.cfg.ExportDir, Logger: e.logger.Named("export")}
			if err := sink.Save(a); err != nil {
				return err
			}

			if err := e.archive(a); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), sink.Path(a))

			return nil
		},
	}

	addPageFlags(cmd, &file, &rawURL, &limit)
	cmd.Flags().StringVar(&payload, "payload", "", "artifact file to export, - for stdin")

	return cmd
}

// archive copies a into the configured storage, if any.
func (e *env) archive(a *export.Artifact) error {
	switch e.cfg.StorageType {
	case "":
		return nil
	case "mysql":
		s, err := sqlstorage.New(
			sqlstorage.WithSQLURL(e.cfg.SQLURL),
			sqlstorage.WithLogger(e.logger.Named("sqlDB")),
			sqlstorage.WithBatchCount(e.cfg.BatchCount),
		)
		if err != nil {
			e.logger.Error("create sqlstorage failed", zap.Error(err))
			return err
		}
		if err := s.Save(a); err != nil {
			s.Close()
			return err
		}
		return s.Close()
	default:
		return fmt.Errorf("unknown storage type %q", e.cfg.StorageType)
	}
}

// readArtifact wraps a previously printed artifact. The filename host comes
// from the artifact's own location, then from --url.
func readArtifact(cmd *cobra.Command, path, rawURL string, ids export.IDSource, logger *zap.Logger) (*export.Artifact, error) {
	var (
		raw []byte
		err error
	)
	if path == "-" {
		raw, err = io.ReadAll(cmd.InOrStdin())
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read payload failed:%w", err)
	}

	var head struct {
		Source   string           `json:"source"`
		Location harvest.Location `json:"location"`
	}
	// a payload that is not an artifact still exports under --url
	if err := json.Unmarshal(raw, &head); err != nil {
		logger.Debug("payload is not an artifact, naming it after --url",
			zap.String("payload", path),
			zap.String("url", rawURL),
			zap.Error(err),
		)
	}

	host := export.Hostname(head.Location)
	if host == "" {
		if u, err := url.Parse(rawURL); err == nil {
			host = strings.ToLower(u.Hostname())
		}
	}

	a, err := export.New(host, raw, ids)
	if err != nil {
		return nil, err
	}
	a.Source = head.Source
	a.URL = head.Location.Href

	return a, nil
}
