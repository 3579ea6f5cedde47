package response

import "book-courier/internal/usecase/commands"

type CheckoutSessionResponse struct {
	URL string `json:"url"`
}

type PaymentSuccessResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	TransactionID string `json:"transactionId"`
	OrderID       string `json:"orderId"`
	IsExisting    bool   `json:"isExisting"`
}

func FromConfirmPaymentResult(r *commands.ConfirmPaymentResult) *PaymentSuccessResponse {
	msg := "Order created successfully"
	if r.IsExisting {
		msg = "Order already exists"
	}
	return &PaymentSuccessResponse{
		Success:       true,
		Message:       msg,
		TransactionID: r.TransactionID,
		OrderID:       r.OrderID,
		IsExisting:    r.IsExisting,
	}
}
