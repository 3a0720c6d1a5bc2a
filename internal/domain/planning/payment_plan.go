package planning

import (
	"strings"
	"time"

	"github.com/estate/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EMITerms carries the fields that only an EMI plan has
type EMITerms struct {
	ROI   decimal.Decimal `json:"roi"`
	Cycle EmiCycle        `json:"cycle"`
}

// TimelyDiscountTerms carries the early-payment discount fields
// Percentage and CalcMode are only meaningful for down-payment plans
type TimelyDiscountTerms struct {
	PerArea    decimal.Decimal   `json:"per_area"`
	Percentage *decimal.Decimal  `json:"percentage,omitempty"`
	CalcMode   *DiscountCalcMode `json:"calc_mode,omitempty"`
}

// PaymentPlan represents a payment schedule template attached to a project
// Each plan-type variant carries exactly its applicable fields: the EMI and
// timely-discount sub-structs stay nil on variants that do not use them
type PaymentPlan struct {
	shared.BaseAggregateRoot
	ProjectID      uuid.UUID            `gorm:"type:uuid;not null;index"`
	Name           string               `gorm:"type:varchar(200);not null"`
	Type           PlanType             `gorm:"type:varchar(20);not null"`
	PaymentType    *PaymentType         `gorm:"type:varchar(20)"`
	EMI            *EMITerms            `gorm:"type:jsonb"`
	TimelyDiscount *TimelyDiscountTerms `gorm:"type:jsonb"`
	Description    string               `gorm:"type:text"`
	AttachmentURL  string               `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (PaymentPlan) TableName() string {
	return "payment_plans"
}

// NewPaymentPlan creates a plan from already-canonicalized values and enforces
// the variant invariants of its plan type
func NewPaymentPlan(projectID uuid.UUID, name string, planType PlanType,
	paymentType *PaymentType, emi *EMITerms, timely *TimelyDiscountTerms) (*PaymentPlan, error) {

	if projectID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PROJECT_ID", "Project ID cannot be empty")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Plan name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_NAME", "Plan name cannot exceed 200 characters")
	}

	plan := &PaymentPlan{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ProjectID:         projectID,
		Name:              name,
		Type:              planType,
		PaymentType:       paymentType,
		EMI:               emi,
		TimelyDiscount:    timely,
	}

	if err := plan.validateVariant(); err != nil {
		return nil, err
	}

	return plan, nil
}

// validateVariant checks the conditional shape of the plan against its type
// The switch is exhaustive over the closed variant set
func (p *PaymentPlan) validateVariant() error {
	if !p.Type.IsValid() {
		return shared.NewDomainError("INVALID_PLAN_TYPE", "Invalid plan type: "+string(p.Type))
	}

	switch p.Type {
	case PlanTypeConstruction:
		// Payment type is the one field construction plans do without
	case PlanTypeDownPayment, PlanTypeFlexi, PlanTypeTime:
		if p.PaymentType == nil {
			return shared.NewDomainError("PAYMENT_TYPE_REQUIRED",
				"Payment type is required for "+p.Type.Label())
		}
	case PlanTypeEMI:
		if p.PaymentType == nil {
			return shared.NewDomainError("PAYMENT_TYPE_REQUIRED",
				"Payment type is required for "+p.Type.Label())
		}
		if p.EMI == nil {
			return shared.NewDomainError("EMI_TERMS_REQUIRED",
				"ROI and EMI cycle are required for "+p.Type.Label())
		}
	}

	if p.PaymentType != nil && !p.PaymentType.IsValid() {
		return shared.NewDomainError("INVALID_PAYMENT_TYPE", "Invalid payment type: "+string(*p.PaymentType))
	}

	if p.EMI != nil {
		if p.Type != PlanTypeEMI {
			return shared.NewDomainError("EMI_TERMS_NOT_APPLICABLE",
				"EMI terms are only applicable to "+PlanTypeEMI.Label())
		}
		if p.EMI.ROI.LessThanOrEqual(decimal.Zero) {
			return shared.NewDomainError("INVALID_ROI", "ROI must be greater than zero")
		}
		if !p.EMI.Cycle.IsValid() {
			return shared.NewDomainError("INVALID_EMI_CYCLE", "Invalid EMI cycle: "+string(p.EMI.Cycle))
		}
	}

	if p.TimelyDiscount != nil {
		if p.TimelyDiscount.PerArea.LessThanOrEqual(decimal.Zero) {
			return shared.NewDomainError("INVALID_DISCOUNT_PER_AREA",
				"Discount per area must be greater than zero")
		}
		if p.Type == PlanTypeDownPayment {
			if p.TimelyDiscount.Percentage == nil {
				return shared.NewDomainError("DISCOUNT_PERCENTAGE_REQUIRED",
					"Discount percentage is required for a timely discount on "+p.Type.Label())
			}
			if p.TimelyDiscount.CalcMode == nil {
				return shared.NewDomainError("DISCOUNT_CALC_REQUIRED",
					"Discount calculation mode is required for a timely discount on "+p.Type.Label())
			}
		}
		if p.TimelyDiscount.CalcMode != nil && !p.TimelyDiscount.CalcMode.IsValid() {
			return shared.NewDomainError("INVALID_DISCOUNT_CALC",
				"Invalid discount calculation mode: "+string(*p.TimelyDiscount.CalcMode))
		}
	}

	return nil
}

// Rename updates the plan's display name
func (p *PaymentPlan) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Plan name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Plan name cannot exceed 200 characters")
	}

	p.Name = name
	p.touch()
	return nil
}

// SetPaymentType replaces the payment type, re-checking the variant shape
func (p *PaymentPlan) SetPaymentType(paymentType PaymentType) error {
	prev := p.PaymentType
	p.PaymentType = &paymentType
	if err := p.validateVariant(); err != nil {
		p.PaymentType = prev
		return err
	}

	p.touch()
	return nil
}

// SetEMITerms replaces the EMI terms, re-checking the variant shape
func (p *PaymentPlan) SetEMITerms(terms EMITerms) error {
	prev := p.EMI
	p.EMI = &terms
	if err := p.validateVariant(); err != nil {
		p.EMI = prev
		return err
	}

	p.touch()
	return nil
}

// SetTimelyDiscount attaches or replaces the timely-discount terms
func (p *PaymentPlan) SetTimelyDiscount(terms TimelyDiscountTerms) error {
	prev := p.TimelyDiscount
	p.TimelyDiscount = &terms
	if err := p.validateVariant(); err != nil {
		p.TimelyDiscount = prev
		return err
	}

	p.touch()
	return nil
}

// ClearTimelyDiscount removes the timely-discount terms
func (p *PaymentPlan) ClearTimelyDiscount() {
	p.TimelyDiscount = nil
	p.touch()
}

// SetDescription sets the plan's free-text description
func (p *PaymentPlan) SetDescription(description string) {
	p.Description = description
	p.touch()
}

// SetAttachment records the stored reference of the plan's attachment
func (p *PaymentPlan) SetAttachment(url string) error {
	if len(url) > 500 {
		return shared.NewDomainError("INVALID_ATTACHMENT", "Attachment reference cannot exceed 500 characters")
	}

	p.AttachmentURL = strings.TrimSpace(url)
	p.touch()
	return nil
}

// HasTimelyDiscount returns true if early-payment discount terms are attached
func (p *PaymentPlan) HasTimelyDiscount() bool {
	return p.TimelyDiscount != nil
}

func (p *PaymentPlan) touch() {
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}
