package planning

import "github.com/estate/backend/internal/domain/shared"

// PlanType is the canonical payment-plan variant
type PlanType string

const (
	PlanTypeConstruction PlanType = "CONSTRUCTION"
	PlanTypeDownPayment  PlanType = "DOWN_PAYMENT"
	PlanTypeFlexi        PlanType = "FLEXI"
	PlanTypeTime         PlanType = "TIME"
	PlanTypeEMI          PlanType = "EMI"
)

// IsValid checks if the plan type is one of the five closed variants
func (t PlanType) IsValid() bool {
	switch t {
	case PlanTypeConstruction, PlanTypeDownPayment, PlanTypeFlexi, PlanTypeTime, PlanTypeEMI:
		return true
	}
	return false
}

// Label returns the human-readable form used on submission forms
func (t PlanType) Label() string {
	switch t {
	case PlanTypeConstruction:
		return "Construction Plan"
	case PlanTypeDownPayment:
		return "Down Payment Plan"
	case PlanTypeFlexi:
		return "Flexi Plan"
	case PlanTypeTime:
		return "Time Plan"
	case PlanTypeEMI:
		return "Emi Plan"
	}
	return string(t)
}

// ParsePlanType maps a human-readable plan-type label to its canonical value
// An unknown label is a validation failure, never a silent default
func ParsePlanType(label string) (PlanType, error) {
	switch label {
	case "Construction Plan":
		return PlanTypeConstruction, nil
	case "Down Payment Plan":
		return PlanTypeDownPayment, nil
	case "Flexi Plan":
		return PlanTypeFlexi, nil
	case "Time Plan":
		return PlanTypeTime, nil
	case "Emi Plan":
		return PlanTypeEMI, nil
	}
	return "", shared.NewDomainError("INVALID_PLAN_TYPE", "Unknown plan type: "+label)
}

// PaymentType is how installments under a plan are quoted
type PaymentType string

const (
	PaymentTypePercentage PaymentType = "PERCENTAGE"
	PaymentTypeFixed      PaymentType = "FIXED"
)

// IsValid checks if the payment type is one of the allowed values
func (t PaymentType) IsValid() bool {
	switch t {
	case PaymentTypePercentage, PaymentTypeFixed:
		return true
	}
	return false
}

// ParsePaymentType maps a payment-type label to its canonical value
func ParsePaymentType(label string) (PaymentType, error) {
	switch label {
	case "Percentage":
		return PaymentTypePercentage, nil
	case "Fix":
		return PaymentTypeFixed, nil
	}
	return "", shared.NewDomainError("INVALID_PAYMENT_TYPE", "Unknown payment type: "+label)
}

// EmiCycle is the repayment interval of an EMI plan
type EmiCycle string

const (
	EmiCycleMonthly    EmiCycle = "MONTHLY"
	EmiCycleQuarterly  EmiCycle = "QUARTERLY"
	EmiCycleHalfYearly EmiCycle = "HALF_YEARLY"
	EmiCycleAnnually   EmiCycle = "ANNUALLY"
)

// IsValid checks if the EMI cycle is one of the allowed values
func (c EmiCycle) IsValid() bool {
	switch c {
	case EmiCycleMonthly, EmiCycleQuarterly, EmiCycleHalfYearly, EmiCycleAnnually:
		return true
	}
	return false
}

// ParseEmiCycle maps an EMI-cycle label to its canonical value
func ParseEmiCycle(label string) (EmiCycle, error) {
	switch label {
	case "Monthly":
		return EmiCycleMonthly, nil
	case "Quarterly":
		return EmiCycleQuarterly, nil
	case "Half Yearly":
		return EmiCycleHalfYearly, nil
	case "Annually":
		return EmiCycleAnnually, nil
	}
	return "", shared.NewDomainError("INVALID_EMI_CYCLE", "Unknown EMI cycle: "+label)
}

// DiscountCalcMode is how a timely discount is computed
type DiscountCalcMode string

const (
	DiscountCalcFix        DiscountCalcMode = "FIX"
	DiscountCalcPercentage DiscountCalcMode = "PERCENTAGE"
)

// IsValid checks if the calculation mode is one of the allowed values
func (m DiscountCalcMode) IsValid() bool {
	switch m {
	case DiscountCalcFix, DiscountCalcPercentage:
		return true
	}
	return false
}

// ParseDiscountCalcMode maps a discount-calculation label to its canonical value
func ParseDiscountCalcMode(label string) (DiscountCalcMode, error) {
	switch label {
	case "Fix":
		return DiscountCalcFix, nil
	case "Percentage":
		return DiscountCalcPercentage, nil
	}
	return "", shared.NewDomainError("INVALID_DISCOUNT_CALC", "Unknown discount calculation mode: "+label)
}
