package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fwojciec/shopinsight"
	main "github.com/fwojciec/shopinsight/cmd/shopinsight"
	"github.com/fwojciec/shopinsight/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists brands with ID, store and fingerprint", func(t *testing.T) {
		t.Parallel()

		brands := &mock.BrandService{
			FindBrandsFn: func(_ context.Context, _ shopinsight.BrandFilter) ([]*shopinsight.BrandProfile, error) {
				return []*shopinsight.BrandProfile{
					{
						ID:          "brand-123",
						StoreName:   "wool.example",
						Fingerprint: "aaaaaaaaaaaaaaaa",
						CreatedAt:   time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC),
					},
					{
						ID:          "brand-456",
						StoreName:   "socks.example",
						Fingerprint: "bbbbbbbbbbbbbbbb",
						CreatedAt:   time.Date(2025, 1, 16, 11, 0, 0, 0, time.UTC),
					},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Brands: brands,
		}

		err := (&main.ListCmd{}).Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "brand-123  wool.example")
		assert.Contains(t, output, "brand-456  socks.example")
		assert.Contains(t, output, "aaaaaaaaaaaaaaaa")
		assert.Contains(t, output, "2025-01-16 11:00:00")
	})

	t.Run("filters by store", func(t *testing.T) {
		t.Parallel()

		var got shopinsight.BrandFilter
		brands := &mock.BrandService{
			FindBrandsFn: func(_ context.Context, filter shopinsight.BrandFilter) ([]*shopinsight.BrandProfile, error) {
				got = filter
				return nil, nil
			},
		}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: &bytes.Buffer{},
			Brands: brands,
		}

		require.NoError(t, (&main.ListCmd{Store: "wool.example"}).Run(deps))
		require.NotNil(t, got.StoreName)
		assert.Equal(t, "wool.example", *got.StoreName)
	})

	t.Run("shows helpful message when no brands exist", func(t *testing.T) {
		t.Parallel()

		brands := &mock.BrandService{
			FindBrandsFn: func(_ context.Context, _ shopinsight.BrandFilter) ([]*shopinsight.BrandProfile, error) {
				return []*shopinsight.BrandProfile{}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Brands: brands,
		}

		require.NoError(t, (&main.ListCmd{}).Run(deps))
		assert.Contains(t, stdout.String(), "No brands found")
	})

	t.Run("returns error when service fails", func(t *testing.T) {
		t.Parallel()

		brands := &mock.BrandService{
			FindBrandsFn: func(_ context.Context, _ shopinsight.BrandFilter) ([]*shopinsight.BrandProfile, error) {
				return nil, errors.New("database error")
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Brands: brands,
		}

		err := (&main.ListCmd{}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error:")
	})
}
