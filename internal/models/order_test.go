package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestCreateOrderRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateOrderRequest
		wantErr bool
	}{
		{
			name: "valid request",
			req: CreateOrderRequest{
				TableNumber: 3,
				Items:       []CreateOrderLine{{MenuItemID: 1, Quantity: 2}},
			},
			wantErr: false,
		},
		{
			name: "valid request with contact info",
			req: CreateOrderRequest{
				TableNumber: 3,
				Email:       strPtr("guest@example.com"),
				Phone:       strPtr("+1-555-0100"),
				Items:       []CreateOrderLine{{MenuItemID: 1, Quantity: 1}},
			},
			wantErr: false,
		},
		{
			name: "zero quantity",
			req: CreateOrderRequest{
				TableNumber: 3,
				Items:       []CreateOrderLine{{MenuItemID: 1, Quantity: 0}},
			},
			wantErr: true,
		},
		{
			name: "negative quantity",
			req: CreateOrderRequest{
				TableNumber: 3,
				Items:       []CreateOrderLine{{MenuItemID: 1, Quantity: -2}},
			},
			wantErr: true,
		},
		{
			name: "missing menu item id",
			req: CreateOrderRequest{
				TableNumber: 3,
				Items:       []CreateOrderLine{{MenuItemID: 0, Quantity: 1}},
			},
			wantErr: true,
		},
		{
			name: "oversized email",
			req: CreateOrderRequest{
				TableNumber: 3,
				Email:       strPtr(strings.Repeat("a", 250) + "@example.com"),
				Items:       []CreateOrderLine{{MenuItemID: 1, Quantity: 1}},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdateStatusRequestValidate(t *testing.T) {
	assert.Error(t, (&UpdateStatusRequest{Status: ""}).Validate())
	assert.Error(t, (&UpdateStatusRequest{Status: strings.Repeat("x", 65)}).Validate())
	assert.NoError(t, (&UpdateStatusRequest{Status: StatusReady}).Validate())
	assert.NoError(t, (&UpdateStatusRequest{Status: "out_for_delivery"}).Validate())
}
