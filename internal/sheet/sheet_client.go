package sheet

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	sheeterrors "go-yourtask/internal/sheet/errors"
	"go-yourtask/internal/shared/contextutil"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

//go:generate mockgen -source=sheet_client.go -destination=mock/sheet_client_mock.go -package=mock
type Fetcher interface {
	// Fetch mengambil satu tab spreadsheet (gid) dan mengembalikan semua baris, termasuk header.
	Fetch(ctx context.Context, gid string) ([][]string, error)
}

type httpFetcher struct {
	client  *http.Client
	baseURL string
	sheetID string
	sf      *singleflight.Group
	logger  *zap.Logger
}

func NewHTTPFetcher(client *http.Client, baseURL, sheetID string, logger ...*zap.Logger) Fetcher {
	l := zap.L().Named("sheet.fetcher")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("sheet.fetcher")
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &httpFetcher{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		sheetID: sheetID,
		sf:      &singleflight.Group{},
		logger:  l,
	}
}

// ExportURL membentuk URL export CSV untuk satu gid.
func ExportURL(baseURL, sheetID, gid string) string {
	q := url.Values{}
	q.Set("format", "csv")
	q.Set("gid", gid)
	return fmt.Sprintf("%s/spreadsheets/d/%s/export?%s",
		strings.TrimRight(baseURL, "/"), url.PathEscape(sheetID), q.Encode())
}

func (f *httpFetcher) Fetch(ctx context.Context, gid string) ([][]string, error) {
	// request paralel untuk gid yang sama cukup satu kali ke upstream.
	// Request bersama tidak ikut batal saat salah satu pemanggil batal;
	// batasnya tetap timeout http.Client.
	ch := f.sf.DoChan(gid, func() (interface{}, error) {
		return f.fetch(context.WithoutCancel(ctx), gid)
	})

	select {
	case <-ctx.Done():
		return nil, sheeterrors.FetchFailed(ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared {
			contextutil.GetLogger(ctx, f.logger).Debug("sheet fetch shared", zap.String("gid", gid))
		}
		return res.Val.([][]string), nil
	}
}

func (f *httpFetcher) fetch(ctx context.Context, gid string) ([][]string, error) {
	log := contextutil.GetLogger(ctx, f.logger)
	target := ExportURL(f.baseURL, f.sheetID, gid)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, sheeterrors.FetchFailed(err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		log.Error("sheet fetch failed", zap.String("gid", gid), zap.Error(err))
		return nil, sheeterrors.FetchFailed(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Error("sheet fetch non-success status",
			zap.String("gid", gid),
			zap.Int("status", resp.StatusCode),
		)
		return nil, sheeterrors.FetchFailed(fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, sheeterrors.FetchFailed(err)
	}

	rows := ParseRows(string(body))
	log.Debug("sheet fetched", zap.String("gid", gid), zap.Int("rows", len(rows)))
	return rows, nil
}
