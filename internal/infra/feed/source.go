package feed

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"catalog/config"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/service"
	"catalog/internal/util"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/s3blob"
)

// source implements service.FeedSource. The feed comes from an http(s) URL, a gocloud
// bucket, or is expected to already be at the local path.
type source struct {
	cfg    *config.FeedConfig
	client *http.Client
	logger *slog.Logger
}

// NewSource is the constructor for source.
func NewSource(cfg *config.Config, logger *slog.Logger) service.FeedSource {
	feedCfg := &config.FeedConfig{}
	if cfg != nil && cfg.Feed != nil {
		feedCfg = cfg.Feed
	}

	return &source{
		cfg:    feedCfg,
		client: &http.Client{Timeout: feedCfg.Timeout},
		logger: logger,
	}
}

// Fetch replaces the local feed with a fresh copy and returns its path. A download that is
// not valid JSON leaves the previous local copy in place.
func (s *source) Fetch(ctx context.Context) (string, error) {
	var (
		data   []byte
		err    error
		origin string
	)

	switch {
	case s.cfg.URL != "":
		origin = s.cfg.URL
		data, err = s.download(ctx)
	case s.cfg.BucketURL != "":
		origin = s.cfg.BucketURL + "/" + s.cfg.Key
		data, err = s.readObject(ctx)
	default:
		if _, err := os.Stat(s.cfg.LocalPath); err != nil {
			return "", domainerrors.NewFeedError(domainerrors.ErrFeedParse, errors.WithStack(err), s.cfg.LocalPath)
		}
		s.logger.InfoContext(ctx, "No feed source configured, using local copy", slog.String("path", s.cfg.LocalPath))

		return s.cfg.LocalPath, nil
	}
	if err != nil {
		return "", errors.Wrapf(err, "failed to fetch feed from %s", origin)
	}

	if !gjson.ValidBytes(data) {
		return "", domainerrors.NewFeedError(domainerrors.ErrFeedParse, errors.New("fetched feed is not valid JSON"), origin)
	}

	checksum := util.Checksum(data)
	if previous, err := util.FileChecksum(s.cfg.LocalPath); err == nil && previous == checksum {
		s.logger.InfoContext(ctx, "Feed unchanged", slog.String("origin", origin), slog.String("sha256", checksum))

		return s.cfg.LocalPath, nil
	}

	if err := writeFileAtomic(s.cfg.LocalPath, data); err != nil {
		return "", err
	}

	s.logger.InfoContext(ctx, "Feed fetched",
		slog.String("origin", origin),
		slog.String("path", s.cfg.LocalPath),
		slog.String("size", util.FormatBytes(int64(len(data)))),
		slog.String("sha256", checksum),
	)

	return s.cfg.LocalPath, nil
}

func (s *source) download(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.URL, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read feed body")
	}

	return data, nil
}

func (s *source) readObject(ctx context.Context) ([]byte, error) {
	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	bucket, err := blob.OpenBucket(ctx, s.cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "open bucket")
	}
	defer bucket.Close()

	data, err := bucket.ReadAll(ctx, s.cfg.Key)
	if err != nil {
		return nil, errors.Wrapf(err, "read object %s", s.cfg.Key)
	}

	return data, nil
}

// writeFileAtomic writes data next to path and renames it into place.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "create %s", dir)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*")
	if err != nil {
		return errors.WithStack(err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()

		return errors.Wrapf(err, "write %s", tmp.Name())
	}
	if err := tmp.Close(); err != nil {
		return errors.WithStack(err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(os.Rename(tmp.Name(), path))
}
