package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/shopinsight"
	"github.com/fwojciec/shopinsight/mock"
	shopslog "github.com/fwojciec/shopinsight/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingCatalogService_FetchCatalog(t *testing.T) {
	t.Parallel()

	t.Run("logs product count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		inner := &mock.CatalogService{
			FetchCatalogFn: func(_ context.Context, _ string) ([]shopinsight.Product, error) {
				return []shopinsight.Product{{Title: "a"}, {Title: "b"}}, nil
			},
		}

		svc := shopslog.NewLoggingCatalogService(inner, logger)
		products, err := svc.FetchCatalog(context.Background(), "https://shop.example.com")

		require.NoError(t, err)
		assert.Len(t, products, 2)
		output := buf.String()
		assert.Contains(t, output, "msg=catalog")
		assert.Contains(t, output, "store=https://shop.example.com")
		assert.Contains(t, output, "products=2")
	})

	t.Run("logs error and passes it through", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		inner := &mock.CatalogService{
			FetchCatalogFn: func(_ context.Context, _ string) ([]shopinsight.Product, error) {
				return nil, errors.New("bad url")
			},
		}

		svc := shopslog.NewLoggingCatalogService(inner, logger)
		_, err := svc.FetchCatalog(context.Background(), "::")

		require.EqualError(t, err, "bad url")
		assert.Contains(t, buf.String(), `err="bad url"`)
	})

	t.Run("stays quiet above debug level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.CatalogService{
			FetchCatalogFn: func(_ context.Context, _ string) ([]shopinsight.Product, error) {
				return nil, nil
			},
		}

		_, err := shopslog.NewLoggingCatalogService(inner, logger).FetchCatalog(context.Background(), "https://shop.example.com")

		require.NoError(t, err)
		assert.Empty(t, buf.String())
	})
}
