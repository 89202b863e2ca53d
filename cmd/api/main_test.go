package main

import (
	"testing"

	"loadtracker/internal/core/config"
	usagedomain "loadtracker/internal/features/usage/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBillingPolicy(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		policy, err := billingPolicy(config.BillingConfig{DefaultTier: "starter", AdminFee: "25.00", AdminFeeMode: "per_resource"})
		require.NoError(t, err)
		assert.Equal(t, "starter", policy.DefaultTier)
		assert.True(t, policy.AdminFee.Amount.Equal(decimal.NewFromInt(25)))
		assert.Equal(t, usagedomain.AdminFeePerResource, policy.AdminFee.Mode)
		assert.Len(t, policy.Rates, len(usagedomain.AllResources()))
	})

	t.Run("Invalid", func(t *testing.T) {
		cases := []config.BillingConfig{
			{AdminFee: "twenty", AdminFeeMode: "per_resource"},
			{AdminFee: "-1", AdminFeeMode: "per_resource"},
			{AdminFee: "25", AdminFeeMode: "weekly"},
		}
		for _, c := range cases {
			_, err := billingPolicy(c)
			assert.Error(t, err, c)
		}
	})
}
