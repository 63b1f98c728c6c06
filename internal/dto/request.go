package dto

// ItemInput is one submitted document line.
type ItemInput struct {
	Name   string   `json:"name" validate:"required"`
	Model  string   `json:"model"`
	Code   string   `json:"code"`
	Qty    float64  `json:"qty" validate:"required,gt=0"`
	Unit   string   `json:"unit" validate:"required"`
	Detail string   `json:"detail"`
	Remark string   `json:"remark"`
	Price  float64  `json:"price" validate:"gte=0"`
	Photos []string `json:"photos"`
}

// ApprovalsInput carries the PR sign-off identities.
type ApprovalsInput struct {
	PreparedBy string `json:"preparedBy"`
	OrderedBy  string `json:"orderedBy"`
	ApprovedBy string `json:"approvedBy"`
}

// CreateRequestRequest is the submission payload for both document kinds.
type CreateRequestRequest struct {
	Kind      string `json:"kind" validate:"required,oneof=QR PR"`
	DocDate   string `json:"docDate"`
	Requester string `json:"requester" validate:"required"`
	Phone     string `json:"phone" validate:"required"`

	// Quotation request fields.
	Project string `json:"project"`
	Urgency string `json:"urgency"`
	Note    string `json:"note"`

	// Purchase requisition fields.
	Subject   string          `json:"subject"`
	ForJob    string          `json:"forJob"`
	Remark    string          `json:"remark"`
	Approvals *ApprovalsInput `json:"approvals"`

	Items []ItemInput `json:"items" validate:"required,min=1,dive"`
}

// ListFilter scopes a register listing.
type ListFilter struct {
	Kind  string `form:"kind"`
	Query string `form:"q"`
}
