package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/fwojciec/shopinsight"
	main "github.com/fwojciec/shopinsight/cmd/shopinsight"
	"github.com/fwojciec/shopinsight/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints profile and FAQs", func(t *testing.T) {
		t.Parallel()

		brands := &mock.BrandService{
			FindBrandByIDFn: func(_ context.Context, id string) (*shopinsight.BrandProfile, error) {
				b := sampleProfile()
				b.ID = id
				return b, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Brands: brands,
		}

		err := (&main.ShowCmd{ID: "brand-1"}).Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "ID:        brand-1")
		assert.Contains(t, output, "[catalog] Socks  12.50  https://shop.example/products/socks")
		assert.Contains(t, output, "[hero] Beanie  -  https://shop.example/products/beanie")
		assert.Contains(t, output, "Q: Ship?\nA: Yes.")
	})

	t.Run("prints JSON with --json", func(t *testing.T) {
		t.Parallel()

		brands := &mock.BrandService{
			FindBrandByIDFn: func(_ context.Context, id string) (*shopinsight.BrandProfile, error) {
				b := sampleProfile()
				b.ID = id
				return b, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Brands: brands,
		}

		require.NoError(t, (&main.ShowCmd{ID: "brand-1", JSON: true}).Run(deps))

		var profile shopinsight.BrandProfile
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &profile))
		assert.Equal(t, "brand-1", profile.ID)
	})

	t.Run("reports missing brand", func(t *testing.T) {
		t.Parallel()

		brands := &mock.BrandService{
			FindBrandByIDFn: func(_ context.Context, id string) (*shopinsight.BrandProfile, error) {
				return nil, shopinsight.Errorf(shopinsight.ENOTFOUND, "brand not found")
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Brands: brands,
		}

		err := (&main.ShowCmd{ID: "missing"}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, shopinsight.ENOTFOUND, shopinsight.ErrorCode(err))
		assert.Contains(t, stderr.String(), `brand "missing" not found`)
	})
}
