package planning

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptPtr(t PaymentType) *PaymentType {
	return &t
}

func TestParsePlanType(t *testing.T) {
	cases := map[string]PlanType{
		"Construction Plan": PlanTypeConstruction,
		"Down Payment Plan": PlanTypeDownPayment,
		"Flexi Plan":        PlanTypeFlexi,
		"Time Plan":         PlanTypeTime,
		"Emi Plan":          PlanTypeEMI,
	}

	for label, want := range cases {
		got, err := ParsePlanType(label)
		require.NoError(t, err, label)
		assert.Equal(t, want, got)
		assert.Equal(t, label, got.Label())
	}

	t.Run("unknown label is rejected", func(t *testing.T) {
		_, err := ParsePlanType("Installment Plan")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Installment Plan")
	})
}

func TestParseEmiCycle(t *testing.T) {
	got, err := ParseEmiCycle("Half Yearly")
	require.NoError(t, err)
	assert.Equal(t, EmiCycleHalfYearly, got)

	_, err = ParseEmiCycle("Weekly")
	assert.Error(t, err)
}

func TestParseDiscountCalcMode(t *testing.T) {
	got, err := ParseDiscountCalcMode("Fix")
	require.NoError(t, err)
	assert.Equal(t, DiscountCalcFix, got)

	_, err = ParseDiscountCalcMode("Flat")
	assert.Error(t, err)
}

func TestNewPaymentPlan(t *testing.T) {
	projectID := uuid.New()

	t.Run("construction plan needs no payment type", func(t *testing.T) {
		plan, err := NewPaymentPlan(projectID, "CLP Schedule", PlanTypeConstruction, nil, nil, nil)

		require.NoError(t, err)
		assert.Nil(t, plan.PaymentType)
		assert.Nil(t, plan.EMI)
	})

	t.Run("non-construction plan requires payment type", func(t *testing.T) {
		plan, err := NewPaymentPlan(projectID, "Flexi 40-60", PlanTypeFlexi, nil, nil, nil)

		assert.Error(t, err)
		assert.Nil(t, plan)
		assert.Contains(t, err.Error(), "Payment type is required")
	})

	t.Run("emi plan requires roi and cycle", func(t *testing.T) {
		plan, err := NewPaymentPlan(projectID, "EMI 36", PlanTypeEMI,
			ptPtr(PaymentTypeFixed), nil, nil)

		assert.Error(t, err)
		assert.Nil(t, plan)
		assert.Contains(t, err.Error(), "EMI cycle")
	})

	t.Run("emi plan with terms succeeds and keeps canonical cycle", func(t *testing.T) {
		cycle, err := ParseEmiCycle("Quarterly")
		require.NoError(t, err)

		plan, err := NewPaymentPlan(projectID, "EMI 36", PlanTypeEMI,
			ptPtr(PaymentTypeFixed), &EMITerms{ROI: decimal.NewFromFloat(9.5), Cycle: cycle}, nil)

		require.NoError(t, err)
		require.NotNil(t, plan.EMI)
		assert.Equal(t, EmiCycleQuarterly, plan.EMI.Cycle)
	})

	t.Run("non-emi plan creates without roi or cycle", func(t *testing.T) {
		plan, err := NewPaymentPlan(projectID, "Time 12", PlanTypeTime,
			ptPtr(PaymentTypePercentage), nil, nil)

		require.NoError(t, err)
		assert.Nil(t, plan.EMI)
	})

	t.Run("emi terms on a non-emi plan are rejected", func(t *testing.T) {
		plan, err := NewPaymentPlan(projectID, "Time 12", PlanTypeTime,
			ptPtr(PaymentTypePercentage),
			&EMITerms{ROI: decimal.NewFromInt(9), Cycle: EmiCycleMonthly}, nil)

		assert.Error(t, err)
		assert.Nil(t, plan)
	})

	t.Run("fails without project", func(t *testing.T) {
		plan, err := NewPaymentPlan(uuid.Nil, "CLP Schedule", PlanTypeConstruction, nil, nil, nil)

		assert.Error(t, err)
		assert.Nil(t, plan)
	})
}

func TestNewPaymentPlan_TimelyDiscount(t *testing.T) {
	projectID := uuid.New()

	t.Run("down payment plan with full timely discount", func(t *testing.T) {
		mode, err := ParseDiscountCalcMode("Fix")
		require.NoError(t, err)
		pct := decimal.NewFromInt(5)

		plan, err := NewPaymentPlan(projectID, "DP 20-80", PlanTypeDownPayment,
			ptPtr(PaymentTypePercentage), nil,
			&TimelyDiscountTerms{
				PerArea:    decimal.NewFromInt(10),
				Percentage: &pct,
				CalcMode:   &mode,
			})

		require.NoError(t, err)
		require.NotNil(t, plan.TimelyDiscount)
		assert.Equal(t, DiscountCalcFix, *plan.TimelyDiscount.CalcMode)
		assert.True(t, plan.HasTimelyDiscount())
	})

	t.Run("down payment plan missing discount percentage", func(t *testing.T) {
		plan, err := NewPaymentPlan(projectID, "DP 20-80", PlanTypeDownPayment,
			ptPtr(PaymentTypePercentage), nil,
			&TimelyDiscountTerms{PerArea: decimal.NewFromInt(10)})

		assert.Error(t, err)
		assert.Nil(t, plan)
		assert.Contains(t, err.Error(), "Discount percentage")
	})

	t.Run("other plan types only need per-area", func(t *testing.T) {
		plan, err := NewPaymentPlan(projectID, "Flexi 40-60", PlanTypeFlexi,
			ptPtr(PaymentTypeFixed), nil,
			&TimelyDiscountTerms{PerArea: decimal.NewFromInt(10)})

		require.NoError(t, err)
		assert.Nil(t, plan.TimelyDiscount.Percentage)
	})

	t.Run("zero per-area is rejected", func(t *testing.T) {
		plan, err := NewPaymentPlan(projectID, "Flexi 40-60", PlanTypeFlexi,
			ptPtr(PaymentTypeFixed), nil,
			&TimelyDiscountTerms{PerArea: decimal.Zero})

		assert.Error(t, err)
		assert.Nil(t, plan)
	})
}

func TestPaymentPlan_Updates(t *testing.T) {
	plan, err := NewPaymentPlan(uuid.New(), "CLP Schedule", PlanTypeConstruction, nil, nil, nil)
	require.NoError(t, err)

	t.Run("rename", func(t *testing.T) {
		require.NoError(t, plan.Rename("CLP Schedule v2"))
		assert.Equal(t, "CLP Schedule v2", plan.Name)

		assert.Error(t, plan.Rename("  "))
	})

	t.Run("invalid payment type rolls back", func(t *testing.T) {
		err := plan.SetPaymentType(PaymentType("INSTALLMENT"))

		assert.Error(t, err)
		assert.Nil(t, plan.PaymentType)
	})

	t.Run("emi terms rejected on construction plan", func(t *testing.T) {
		err := plan.SetEMITerms(EMITerms{ROI: decimal.NewFromInt(9), Cycle: EmiCycleMonthly})

		assert.Error(t, err)
		assert.Nil(t, plan.EMI)
	})

	t.Run("attachment reference", func(t *testing.T) {
		require.NoError(t, plan.SetAttachment("plans/clp-schedule.pdf"))
		assert.Equal(t, "plans/clp-schedule.pdf", plan.AttachmentURL)
	})
}
