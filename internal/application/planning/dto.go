package planning

import (
	"time"

	"github.com/estate/backend/internal/domain/planning"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreatePaymentPlanRequest carries a payment-plan submission with its
// human-readable labels; the service canonicalizes them before persistence
type CreatePaymentPlanRequest struct {
	PlanName           string           `json:"plan_name" binding:"required,min=1,max=200"`
	PlanType           string           `json:"plan_type" binding:"required"`
	PaymentType        *string          `json:"payment_type"`
	ROI                *decimal.Decimal `json:"roi"`
	EmiCycle           *string          `json:"emi_cycle"`
	TimelyDiscount     bool             `json:"timely_discount"`
	DiscountPerArea    *decimal.Decimal `json:"discount_per_area"`
	DiscountPercentage *decimal.Decimal `json:"discount_percentage"`
	DiscountCalculate  *string          `json:"discount_calculate"`
	Description        string           `json:"description"`
	AttachmentName     string           `json:"attachment_name" binding:"max=200"`
	Attachment         []byte           `json:"attachment,omitempty"`
	AttachmentRef      string           `json:"attachment_ref" binding:"max=500"`
}

// UpdatePaymentPlanRequest patches a plan; only supplied fields are
// re-validated and applied, and the project link is never touched
type UpdatePaymentPlanRequest struct {
	PlanName           *string          `json:"plan_name" binding:"omitempty,min=1,max=200"`
	PaymentType        *string          `json:"payment_type"`
	ROI                *decimal.Decimal `json:"roi"`
	EmiCycle           *string          `json:"emi_cycle"`
	TimelyDiscount     *bool            `json:"timely_discount"`
	DiscountPerArea    *decimal.Decimal `json:"discount_per_area"`
	DiscountPercentage *decimal.Decimal `json:"discount_percentage"`
	DiscountCalculate  *string          `json:"discount_calculate"`
	Description        *string          `json:"description"`
}

// PaymentPlanResponse represents a plan in API responses
type PaymentPlanResponse struct {
	ID                 uuid.UUID        `json:"id"`
	ProjectID          uuid.UUID        `json:"project_id"`
	PlanName           string           `json:"plan_name"`
	PlanType           string           `json:"plan_type"`
	PlanTypeLabel      string           `json:"plan_type_label"`
	PaymentType        *string          `json:"payment_type,omitempty"`
	ROI                *decimal.Decimal `json:"roi,omitempty"`
	EmiCycle           *string          `json:"emi_cycle,omitempty"`
	TimelyDiscount     bool             `json:"timely_discount"`
	DiscountPerArea    *decimal.Decimal `json:"discount_per_area,omitempty"`
	DiscountPercentage *decimal.Decimal `json:"discount_percentage,omitempty"`
	DiscountCalculate  *string          `json:"discount_calculate,omitempty"`
	Description        string           `json:"description"`
	AttachmentURL      string           `json:"attachment_url,omitempty"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
	Version            int              `json:"version"`
}

// ToPaymentPlanResponse maps a domain plan to its API shape
func ToPaymentPlanResponse(p *planning.PaymentPlan) *PaymentPlanResponse {
	resp := &PaymentPlanResponse{
		ID:            p.ID,
		ProjectID:     p.ProjectID,
		PlanName:      p.Name,
		PlanType:      string(p.Type),
		PlanTypeLabel: p.Type.Label(),
		Description:   p.Description,
		AttachmentURL: p.AttachmentURL,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
		Version:       p.Version,
	}

	if p.PaymentType != nil {
		pt := string(*p.PaymentType)
		resp.PaymentType = &pt
	}
	if p.EMI != nil {
		roi := p.EMI.ROI
		cycle := string(p.EMI.Cycle)
		resp.ROI = &roi
		resp.EmiCycle = &cycle
	}
	if p.TimelyDiscount != nil {
		resp.TimelyDiscount = true
		perArea := p.TimelyDiscount.PerArea
		resp.DiscountPerArea = &perArea
		resp.DiscountPercentage = p.TimelyDiscount.Percentage
		if p.TimelyDiscount.CalcMode != nil {
			mode := string(*p.TimelyDiscount.CalcMode)
			resp.DiscountCalculate = &mode
		}
	}

	return resp
}

// ListPaymentPlansResponse is a paginated plan listing
type ListPaymentPlansResponse struct {
	Items      []PaymentPlanResponse `json:"items"`
	Total      int64                 `json:"total"`
	Page       int                   `json:"page"`
	PageSize   int                   `json:"page_size"`
	TotalPages int                   `json:"total_pages"`
}
