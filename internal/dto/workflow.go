package dto

// ApplyEventRequest advances a document through the state machine.
type ApplyEventRequest struct {
	Event  string `json:"event" validate:"required"`
	Actor  string `json:"actor"`
	Detail string `json:"detail"`
}

// AddAttachmentRequest records a filename in one of the document's buckets.
type AddAttachmentRequest struct {
	Bucket   string `json:"bucket" validate:"required"`
	Filename string `json:"filename" validate:"required"`
	Uploader string `json:"uploader"`
}

// UpdateShippingRequest replaces the QR shipping sub-record.
type UpdateShippingRequest struct {
	ETD      string `json:"etd"`
	ETA      string `json:"eta"`
	Tracking string `json:"tracking"`
	Notes    string `json:"notes"`
	Actor    string `json:"actor"`
}

// SetRoleRequest toggles the shared session role flag.
type SetRoleRequest struct {
	Admin bool `json:"admin"`
}

// RoleResponse reports the current session role.
type RoleResponse struct {
	Admin bool `json:"admin"`
}

// HitsResponse reports the number of matching field groups in one document.
type HitsResponse struct {
	DocNo string `json:"docNo"`
	Query string `json:"query"`
	Hits  int    `json:"hits"`
}
