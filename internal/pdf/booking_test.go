package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingConfirmation(t *testing.T) {
	gen := NewConfirmationGenerator()

	out, err := gen.BookingConfirmation(BookingData{
		Name:             "Pat Doe",
		Email:            "pat@example.test",
		ConsultationType: "General Consultation",
		ConfirmedAt:      time.Date(2026, 3, 11, 14, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}
