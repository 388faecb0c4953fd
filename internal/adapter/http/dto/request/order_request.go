package request

import (
	"strings"

	"nexus_settlement/internal/usecase"
)

type PlaceOrderRequest struct {
	ProductID  string `json:"productId" binding:"required"`
	Quantity   int    `json:"quantity" binding:"required,gt=0"`
	FunderID   string `json:"funderId" binding:"required"`
	SupplierID string `json:"supplierId" binding:"required"`
	RequestID  string `json:"requestId" binding:"required"`
}

func (r PlaceOrderRequest) ToInput() usecase.PlaceOrderInput {
	return usecase.PlaceOrderInput{
		ProductID:  strings.TrimSpace(r.ProductID),
		Quantity:   r.Quantity,
		FunderID:   strings.TrimSpace(r.FunderID),
		SupplierID: strings.TrimSpace(r.SupplierID),
		RequestID:  strings.TrimSpace(r.RequestID),
	}
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
