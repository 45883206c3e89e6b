package model

// PaymentOrder is a pending checkout order created for a paid course. The
// learner approves it out-of-band via the approval URL before the capture
// call.
type PaymentOrder struct {
	OrderID     string `json:"orderID"`
	ApprovalURL string `json:"approvalUrl"`
}
