package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code   string
		status int
	}{
		{"NOT_FOUND", http.StatusNotFound},
		{"ALREADY_EXISTS", http.StatusConflict},
		{"ALREADY_DECIDED", http.StatusConflict},
		{"LINKED_ENTITY_NOT_FOUND", http.StatusUnprocessableEntity},
		{"MATERIALIZATION_FAILED", http.StatusInternalServerError},
		{"INVALID_CREDENTIALS", http.StatusUnauthorized},
		{"INVALID_BASIC_PRICE", http.StatusBadRequest},
		{"INVALID_PLAN_TYPE", http.StatusBadRequest},
		{"ROI_REQUIRED", http.StatusBadRequest},
		{"EMI_CYCLE_REQUIRED", http.StatusBadRequest},
		{"EMI_TERMS_REQUIRED", http.StatusBadRequest},
		{"EMI_TERMS_NOT_APPLICABLE", http.StatusBadRequest},
		{"PAYMENT_TYPE_REQUIRED", http.StatusBadRequest},
		{"DISCOUNT_PER_AREA_REQUIRED", http.StatusBadRequest},
		{"DISCOUNT_PERCENTAGE_REQUIRED", http.StatusBadRequest},
		{"DISCOUNT_CALC_REQUIRED", http.StatusBadRequest},
		{"ALREADY_PAID", http.StatusConflict},
		{"ALREADY_DEACTIVATED", http.StatusConflict},
		{"SOMETHING_UNEXPECTED", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.status, GetHTTPStatus(tt.code))
		})
	}
}
