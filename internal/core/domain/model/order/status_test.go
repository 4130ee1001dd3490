package order_test

import (
	"fmt"
	"testing"

	"routeboard/internal/core/domain/model/order"
	"routeboard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.Registered))
		assert.Equal(t, 2, int(order.Delivered))
		assert.Equal(t, 3, int(order.Cancelled))
	})
}

func TestStatus_Validate(t *testing.T) {
	for _, status := range []order.Status{order.Registered, order.Delivered, order.Cancelled} {
		t.Run(fmt.Sprintf("should validate %s status", status), func(t *testing.T) {
			require.NoError(t, status.Validate())
		})
	}

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := order.Unknown.Validate()

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "0 is not a valid status")
	})

	t.Run("should reject out of range values", func(t *testing.T) {
		require.Error(t, order.Status(42).Validate())
		require.Error(t, order.Status(-1).Validate())
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Registered", order.Registered.String())
	assert.Equal(t, "Delivered", order.Delivered.String())
	assert.Equal(t, "Cancelled", order.Cancelled.String())
	assert.Equal(t, "Unknown", order.Status(42).String())
}

func TestParseStatus(t *testing.T) {
	t.Run("should round trip valid statuses", func(t *testing.T) {
		for _, status := range []order.Status{order.Registered, order.Delivered, order.Cancelled} {
			parsed, err := order.ParseStatus(status.String())
			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("should reject Unknown and garbage", func(t *testing.T) {
		for _, input := range []string{"Unknown", "registered", ""} {
			_, err := order.ParseStatus(input)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, "input %q", input)
		}
	})
}

func TestStatus_Transitions(t *testing.T) {
	testCases := []struct {
		name      string
		from      order.Status
		transit   func(order.Status) (order.Status, error)
		want      order.Status
		wantError bool
	}{
		{name: "registered to delivered", from: order.Registered, transit: order.Status.Deliver, want: order.Delivered},
		{name: "registered to cancelled", from: order.Registered, transit: order.Status.Cancel, want: order.Cancelled},
		{name: "delivered cannot be delivered", from: order.Delivered, transit: order.Status.Deliver, wantError: true},
		{name: "delivered cannot be cancelled", from: order.Delivered, transit: order.Status.Cancel, wantError: true},
		{name: "cancelled cannot be cancelled", from: order.Cancelled, transit: order.Status.Cancel, wantError: true},
		{name: "unknown cannot be delivered", from: order.Unknown, transit: order.Status.Deliver, wantError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.transit(tc.from)

			if tc.wantError {
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestStatus_IsFinal(t *testing.T) {
	assert.False(t, order.Registered.IsFinal())
	assert.True(t, order.Delivered.IsFinal())
	assert.True(t, order.Cancelled.IsFinal())
}
