package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderFromResponseMapsFields(t *testing.T) {
	body := map[string]interface{}{
		"id":       "order_abc",
		"amount":   float64(49900),
		"currency": "INR",
		"receipt":  "rcpt_1",
		"status":   "created",
	}

	order, err := orderFromResponse(body, 49900)

	assert.NoError(t, err)
	assert.Equal(t, "order_abc", order.ID)
	assert.Equal(t, int64(49900), order.Amount)
	assert.Equal(t, "INR", order.Currency)
	assert.Equal(t, "rcpt_1", order.Receipt)
	assert.Equal(t, "created", order.Status)
}

func TestOrderFromResponseKeepsRequestedAmountWhenMissing(t *testing.T) {
	body := map[string]interface{}{
		"id":       "order_abc",
		"currency": "INR",
	}

	order, err := orderFromResponse(body, 12345)

	assert.NoError(t, err)
	assert.Equal(t, int64(12345), order.Amount)
}

func TestOrderFromResponseRequiresOrderID(t *testing.T) {
	body := map[string]interface{}{
		"amount":   float64(49900),
		"currency": "INR",
	}

	_, err := orderFromResponse(body, 49900)

	assert.Error(t, err)
}
