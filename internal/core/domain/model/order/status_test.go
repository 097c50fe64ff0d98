package order_test

import (
	"fmt"
	"testing"

	"sales/internal/core/domain/model/order"
	"sales/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.Created))
		assert.Equal(t, 2, int(order.Approved))
		assert.Equal(t, 3, int(order.Rejected))
		assert.Equal(t, 4, int(order.Shipped))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		for _, status := range []order.Status{order.Created, order.Approved, order.Rejected, order.Shipped} {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := order.Unknown.Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "0 is not a valid status")
	})

	t.Run("should reject out of range status", func(t *testing.T) {
		err := order.Status(99).Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "99 is not a valid status")
	})
}

func TestStatus_String(t *testing.T) {
	tests := []struct {
		status   order.Status
		expected string
	}{
		{order.Unknown, "Unknown"},
		{order.Created, "Created"},
		{order.Approved, "Approved"},
		{order.Rejected, "Rejected"},
		{order.Shipped, "Shipped"},
		{order.Status(42), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("should return %s", tt.expected), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.status.String())
		})
	}
}

func TestStatus_Transitions(t *testing.T) {
	type step func(order.Status) (order.Status, error)

	approve := func(s order.Status) (order.Status, error) { return s.Approve() }
	reject := func(s order.Status) (order.Status, error) { return s.Reject() }
	ship := func(s order.Status) (order.Status, error) { return s.Ship() }

	tests := []struct {
		name    string
		from    order.Status
		step    step
		want    order.Status
		wantErr error
	}{
		{"should approve created", order.Created, approve, order.Approved, nil},
		{"should reject created", order.Created, reject, order.Rejected, nil},
		{"should ship approved", order.Approved, ship, order.Shipped, nil},

		{"should not ship created", order.Created, ship, 0, order.ErrOrderNotReadyForShipment},
		{"should not ship rejected", order.Rejected, ship, 0, order.ErrOrderNotReadyForShipment},
		{"should not ship shipped twice", order.Shipped, ship, 0, order.ErrOrderCannotBeShippedTwice},

		{"should not approve rejected", order.Rejected, approve, 0, order.ErrRejectedOrderCannotBeApproved},
		{"should not approve approved", order.Approved, approve, 0, order.ErrOrderAlreadyApproved},
		{"should not approve shipped", order.Shipped, approve, 0, order.ErrShippedOrdersCannotBeChanged},

		{"should not reject approved", order.Approved, reject, 0, order.ErrApprovedOrderCannotBeRejected},
		{"should not reject rejected", order.Rejected, reject, 0, order.ErrOrderAlreadyRejected},
		{"should not reject shipped", order.Shipped, reject, 0, order.ErrShippedOrdersCannotBeChanged},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.step(tt.from)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, order.Status(0), got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("should refuse every transition from Unknown", func(t *testing.T) {
		for _, s := range []step{approve, reject, ship} {
			_, err := s(order.Unknown)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Contains(t, err.Error(), "Unknown is not a valid status to")
		}
	})
}
