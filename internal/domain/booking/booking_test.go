package booking

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func newTestBooking(t *testing.T) *Booking {
	t.Helper()
	b, err := NewBooking(uuid.New(), uuid.New(), uuid.New(), uuid.New(), uuid.New(),
		decimal.NewFromInt(2500000))
	require.NoError(t, err)
	return b
}

func TestNewBooking(t *testing.T) {
	t.Run("creates booking with required links", func(t *testing.T) {
		b := newTestBooking(t)

		assert.NotEqual(t, uuid.Nil, b.ID)
		assert.Empty(t, b.Status)
		assert.Nil(t, b.BrokerID)
		assert.Nil(t, b.CompanyDiscount)
		assert.Nil(t, b.BrokerDiscount)
	})

	t.Run("negative basic price is rejected before persistence", func(t *testing.T) {
		b, err := NewBooking(uuid.New(), uuid.New(), uuid.New(), uuid.New(), uuid.New(),
			decimal.NewFromInt(-1))

		assert.Error(t, err)
		assert.Nil(t, b)
		assert.Contains(t, err.Error(), "negative")
	})

	t.Run("zero basic price is allowed", func(t *testing.T) {
		b, err := NewBooking(uuid.New(), uuid.New(), uuid.New(), uuid.New(), uuid.New(),
			decimal.Zero)

		require.NoError(t, err)
		assert.True(t, b.BasicPrice.IsZero())
	})

	t.Run("missing relation id is rejected", func(t *testing.T) {
		b, err := NewBooking(uuid.New(), uuid.Nil, uuid.New(), uuid.New(), uuid.New(),
			decimal.NewFromInt(100))

		assert.Error(t, err)
		assert.Nil(t, b)
	})
}

func TestBooking_Status(t *testing.T) {
	b := newTestBooking(t)

	t.Run("stays empty until set", func(t *testing.T) {
		assert.Empty(t, b.Status)
	})

	t.Run("accepts closed-set value", func(t *testing.T) {
		require.NoError(t, b.SetStatus(BookingStatusPending))
		assert.Equal(t, BookingStatusPending, b.Status)
	})

	t.Run("rejects label outside closed set", func(t *testing.T) {
		assert.Error(t, b.SetStatus(BookingStatus("confirmed")))
	})
}

func TestBooking_Relink(t *testing.T) {
	b := newTestBooking(t)
	originalProject := b.ProjectID

	t.Run("only supplied ids are rewritten", func(t *testing.T) {
		newProperty := uuid.New()
		require.NoError(t, b.Relink(nil, &newProperty, nil, nil, nil))

		assert.Equal(t, newProperty, b.PropertyID)
		assert.Equal(t, originalProject, b.ProjectID)
	})

	t.Run("supplied nil uuid is rejected", func(t *testing.T) {
		empty := uuid.Nil
		assert.Error(t, b.Relink(&empty, nil, nil, nil, nil))
		assert.Equal(t, originalProject, b.ProjectID)
	})
}

func TestDiscount_RoundTrip(t *testing.T) {
	t.Run("value then scan preserves structure", func(t *testing.T) {
		d := Discount{Rebate: strPtr("5000"), Percentage: strPtr("2")}

		raw, err := d.Value()
		require.NoError(t, err)

		var back Discount
		require.NoError(t, back.Scan(raw))

		require.NotNil(t, back.Rebate)
		require.NotNil(t, back.Percentage)
		assert.Equal(t, "5000", *back.Rebate)
		assert.Equal(t, "2", *back.Percentage)
		assert.Nil(t, back.InauguralDiscount)
		assert.Nil(t, back.PerArea)
	})

	t.Run("fields stay opaque strings in json", func(t *testing.T) {
		d := Discount{Rebate: strPtr("5000.50"), Percentage: strPtr("02")}

		data, err := json.Marshal(d)
		require.NoError(t, err)
		assert.JSONEq(t, `{"rebate":"5000.50","percentage":"02"}`, string(data))
	})

	t.Run("empty discount persists as NULL", func(t *testing.T) {
		raw, err := Discount{}.Value()
		require.NoError(t, err)
		assert.Nil(t, raw)
	})

	t.Run("scan of NULL yields empty discount", func(t *testing.T) {
		var d Discount
		require.NoError(t, d.Scan(nil))
		assert.True(t, d.IsEmpty())
	})
}

func TestBooking_SetDiscounts(t *testing.T) {
	b := newTestBooking(t)

	company := &Discount{Rebate: strPtr("5000"), Percentage: strPtr("2")}
	b.SetDiscounts(company, nil)

	require.NotNil(t, b.CompanyDiscount)
	assert.Equal(t, "5000", *b.CompanyDiscount.Rebate)
	assert.Nil(t, b.BrokerDiscount)
}

func TestBooking_SetApplicant(t *testing.T) {
	b := newTestBooking(t)

	t.Run("rejects blank name", func(t *testing.T) {
		assert.Error(t, b.SetApplicant(Applicant{Name: "  "}))
	})

	t.Run("records applicant", func(t *testing.T) {
		require.NoError(t, b.SetApplicant(Applicant{
			Name:  "Ramesh Patel",
			Email: "ramesh@example.com",
			PAN:   "ABCPE1234F",
		}))
		assert.Equal(t, "Ramesh Patel", b.Applicant.Name)
	})
}
