//go:build unit

package agenda_test

import (
	"testing"
	"time"

	"repairshop/internal/domain/agenda"
	"repairshop/internal/domain/party"
	"repairshop/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.AppointmentBuilder)
	errIs  error
}

func TestAppointment(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewAppointmentBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, agenda.ServiceRepair, actual.ServiceType())
		assert.Equal(t, 9, actual.Hour())
		assert.Equal(t, "2025-03-10", actual.Date().String())
		require.NotNil(t, actual.Lift())
		assert.Equal(t, 1, actual.Lift().ID())
	})

	t.Run("required references", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "client without id",
				mutate: func(b *builder.AppointmentBuilder) { b.Client.ID = uuid.Nil },
				errIs:  agenda.ErrMissingClient,
			},
			{
				name:   "blank client name",
				mutate: func(b *builder.AppointmentBuilder) { b.Client.Name = "  " },
				errIs:  agenda.ErrMissingClient,
			},
			{
				name:   "vehicle without plate",
				mutate: func(b *builder.AppointmentBuilder) { b.Vehicle = party.Vehicle{Model: "Onix"} },
				errIs:  agenda.ErrMissingVehicle,
			},
			{
				name:   "no mechanic",
				mutate: func(b *builder.AppointmentBuilder) { b.Mechanic = party.Mechanic{} },
				errIs:  agenda.ErrMissingMechanic,
			},
			{
				name:   "no schedule",
				mutate: func(b *builder.AppointmentBuilder) { b.ScheduledAt = time.Time{} },
				errIs:  agenda.ErrMissingSchedule,
			},
		})
	})

	t.Run("service type and lift", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "unknown service type",
				mutate: func(b *builder.AppointmentBuilder) { b.ServiceType = "painting" },
				errIs:  agenda.ErrInvalidServiceType,
			},
			{
				name:   "oil change service",
				mutate: func(b *builder.AppointmentBuilder) { b.ServiceType = "oil_change" },
			},
			{
				name:   "no lift",
				mutate: func(b *builder.AppointmentBuilder) { b.LiftID = nil },
			},
			{
				name:   "lift above range",
				mutate: func(b *builder.AppointmentBuilder) { b.LiftID = intPtr(agenda.MaxLiftID + 1) },
				errIs:  agenda.ErrInvalidLift,
			},
			{
				name:   "lift below range",
				mutate: func(b *builder.AppointmentBuilder) { b.LiftID = intPtr(0) },
				errIs:  agenda.ErrInvalidLift,
			},
			{
				name:   "last lift",
				mutate: func(b *builder.AppointmentBuilder) { b.LiftID = intPtr(agenda.MaxLiftID) },
			},
		})
	})

	t.Run("equality is by identity", func(t *testing.T) {
		a := builder.NewAppointmentBuilder().MustBuildDomain()
		same := agenda.ReconstructAppointment(a.ID(), a.Client(), party.Vehicle{Plate: "OTHER"}, a.Mechanic(), a.ServiceType(), nil, a.ScheduledAt())
		other := builder.NewAppointmentBuilder().MustBuildDomain()

		assert.True(t, a.Equals(same))
		assert.False(t, a.Equals(other))
		assert.False(t, a.Equals(nil))
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewAppointmentBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}

func intPtr(v int) *int { return &v }
