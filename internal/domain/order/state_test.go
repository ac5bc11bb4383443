//go:build unit

package order_test

import (
	"testing"

	"repairshop/internal/domain/order"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllowedOperations(t *testing.T) {
	cases := []struct {
		status order.Status
		want   []order.Operation
	}{
		{status: order.StatusWaiting, want: []order.Operation{order.OpStartInspection, order.OpCancel}},
		{status: order.StatusInspecting, want: []order.Operation{order.OpStartService, order.OpCancel}},
		{status: order.StatusInService, want: []order.Operation{order.OpAddPart, order.OpFinishService, order.OpCancel}},
		{status: order.StatusFinalized, want: nil},
		{status: order.StatusCancelled, want: nil},
	}
	for _, c := range cases {
		t.Run(c.status.String(), func(t *testing.T) {
			if diff := cmp.Diff(c.want, order.AllowedOperations(c.status)); diff != "" {
				t.Errorf("AllowedOperations mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseStatus(t *testing.T) {
	for _, tag := range []string{"Waiting", "Inspecting", "InService", "Finalized", "Cancelled"} {
		s, err := order.ParseStatus(tag)
		require.NoError(t, err)
		assert.Equal(t, tag, s.String())
		assert.True(t, s.IsValid())
	}

	_, err := order.ParseStatus("Paused")
	assert.ErrorIs(t, err, order.ErrUnknownStatus)
	assert.False(t, order.Status("waiting").IsValid())

	assert.True(t, order.StatusFinalized.IsTerminal())
	assert.True(t, order.StatusCancelled.IsTerminal())
	assert.False(t, order.StatusInService.IsTerminal())
}
