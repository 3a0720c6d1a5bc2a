package approval

import (
	"errors"
	"testing"
	"time"

	"github.com/estate/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInvoicePayload() InvoicePayload {
	return InvoicePayload{
		ClientID: uuid.New(),
		Amount:   decimal.NewFromInt(50000),
		Date:     "2024-01-01",
		DueDate:  "2024-02-01",
	}
}

func TestNewApproval(t *testing.T) {
	t.Run("creates pending approval from payload kind", func(t *testing.T) {
		a, err := NewApproval(uuid.New(), validInvoicePayload())

		require.NoError(t, err)
		assert.Equal(t, ApprovalTypeInvoice, a.Type)
		assert.Equal(t, ApprovalStatusPending, a.Status)
		assert.True(t, a.IsPending())
		assert.Nil(t, a.DecidedAt)
	})

	t.Run("rejects payload missing client", func(t *testing.T) {
		p := validInvoicePayload()
		p.ClientID = uuid.Nil

		a, err := NewApproval(uuid.New(), p)

		assert.Error(t, err)
		assert.Nil(t, a)
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		p := validInvoicePayload()
		p.Amount = decimal.Zero

		_, err := NewApproval(uuid.New(), p)

		assert.Error(t, err)
	})

	t.Run("rejects missing requester", func(t *testing.T) {
		_, err := NewApproval(uuid.Nil, validInvoicePayload())

		assert.Error(t, err)
	})
}

func TestApproval_Decide(t *testing.T) {
	t.Run("pending to approved", func(t *testing.T) {
		a, err := NewApproval(uuid.New(), validInvoicePayload())
		require.NoError(t, err)

		require.NoError(t, a.Decide(ApprovalStatusApproved))
		assert.True(t, a.IsApproved())
		assert.NotNil(t, a.DecidedAt)
	})

	t.Run("pending to rejected", func(t *testing.T) {
		a, err := NewApproval(uuid.New(), validInvoicePayload())
		require.NoError(t, err)

		require.NoError(t, a.Decide(ApprovalStatusRejected))
		assert.True(t, a.Status.IsTerminal())
	})

	t.Run("second decision is a conflict", func(t *testing.T) {
		a, err := NewApproval(uuid.New(), validInvoicePayload())
		require.NoError(t, err)
		require.NoError(t, a.Decide(ApprovalStatusApproved))

		err = a.Decide(ApprovalStatusApproved)

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, "ALREADY_DECIDED", domainErr.Code)
	})

	t.Run("cannot decide back to pending", func(t *testing.T) {
		a, err := NewApproval(uuid.New(), validInvoicePayload())
		require.NoError(t, err)

		assert.Error(t, a.Decide(ApprovalStatusPending))
		assert.True(t, a.IsPending())
	})
}

func TestInvoicePayload_Dates(t *testing.T) {
	t.Run("coerces wire format dates", func(t *testing.T) {
		issue, due, err := validInvoicePayload().Dates()

		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), issue)
		assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), due)
	})

	t.Run("rejects malformed date", func(t *testing.T) {
		p := validInvoicePayload()
		p.DueDate = "01/02/2024"

		_, _, err := p.Dates()

		assert.Error(t, err)
	})
}

func TestPayloadCodec(t *testing.T) {
	t.Run("round trips invoice payload", func(t *testing.T) {
		p := validInvoicePayload()
		p.Description = "Q1"

		data, err := EncodePayload(p)
		require.NoError(t, err)

		decoded, err := DecodePayload(ApprovalTypeInvoice, data)
		require.NoError(t, err)

		back, ok := decoded.(InvoicePayload)
		require.True(t, ok)
		assert.Equal(t, p.ClientID, back.ClientID)
		assert.True(t, p.Amount.Equal(back.Amount))
		assert.Equal(t, "Q1", back.Description)
	})

	t.Run("unknown type is rejected", func(t *testing.T) {
		_, err := DecodePayload(ApprovalType("REFUND"), []byte(`{}`))

		assert.Error(t, err)
	})
}
