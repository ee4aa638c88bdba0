package response

import (
	"encoding/json"
	"testing"
	"time"

	"topup_store/internal/domain/entities"
	"topup_store/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromOrder(t *testing.T) {
	created := time.Date(2026, 10, 16, 10, 0, 0, 0, time.UTC)
	o := entities.Order{RefID: "T1", MerchantRef: "INV-1", SKU: "ML100", Amount: 17000, Status: entities.OrderStatusPaid, QRURL: "https://qr", CreatedAt: created}

	res := FromOrder(o)
	assert.Equal(t, "T1", res.RefID)
	assert.Equal(t, "PAID", res.Status)
	assert.Equal(t, created.Add(24*time.Hour), res.ExpiredAt)

	b, err := json.Marshal(res)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "pay_code")
}

func TestFromCreatedOrder(t *testing.T) {
	o := entities.Order{RefID: "T1", MerchantRef: "INV-1", PayCode: "8808", CheckoutURL: "https://c", Amount: 17000, Status: entities.OrderStatusUnpaid}
	res := FromCreatedOrder(o)
	assert.Equal(t, "8808", res.PayCode)
	assert.Empty(t, res.QRURL)
	assert.Equal(t, "UNPAID", res.Status)
}

func TestFromInitData_HidesCost(t *testing.T) {
	res := FromInitData(usecase.InitData{Products: []entities.Product{{SKU: "ML100", PriceModal: 15000, Markup: 2000, PriceSell: 17000}}})

	b, err := json.Marshal(res)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "price_modal")
	assert.Contains(t, string(b), `"sliders":[]`)
	assert.Contains(t, string(b), `"banners":{}`)
	assert.True(t, res.Success)
}

func TestFromAdminConfig_HidesPassword(t *testing.T) {
	res := FromAdminConfig(usecase.AdminConfig{General: entities.GeneralSettings{TripayMode: "sandbox", AdminPassword: "secret"}}, nil)

	b, err := json.Marshal(res)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "secret")
	assert.True(t, res.General.HasAdminPassword)
	assert.Empty(t, res.Products)
}
