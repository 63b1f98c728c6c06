package models

import "time"

// Kind discriminates the two document collections.
type Kind string

const (
	KindQR Kind = "QR"
	KindPR Kind = "PR"
)

// Valid reports whether the kind is one of the two known prefixes.
func (k Kind) Valid() bool {
	return k == KindQR || k == KindPR
}

// Status values a document can hold. PR documents only use Submitted,
// EditRequested and Closed in practice; Unlocked is reserved.
type Status string

const (
	StatusSubmitted     Status = "Submitted"
	StatusEditRequested Status = "EditRequested"
	StatusQuoted        Status = "Quoted"
	StatusPOIssued      Status = "PO Issued"
	StatusShipping      Status = "Shipping"
	StatusClosed        Status = "Closed"
	StatusCancelled     Status = "Cancelled"
	StatusUnlocked      Status = "Unlocked"
)

// Event tags recorded in the activity log and fed to the state machine.
type Event string

const (
	EventSubmit         Event = "SUBMIT"
	EventRequestEdit    Event = "REQUEST_EDIT"
	EventAddQuotation   Event = "ADD_QUOTATION"
	EventAddPO          Event = "ADD_PO"
	EventUpdateShipping Event = "UPDATE_SHIPPING"
	EventAddReceipt     Event = "ADD_RECEIPT"
	EventClose          Event = "CLOSE"
)

// Attachment bucket names, fixed per kind.
const (
	BucketQuotation = "quotation"
	BucketPO        = "po"
	BucketShipping  = "shipping"
	BucketReceipts  = "receipts"
)

// BucketsFor returns the named attachment buckets a document of the given
// kind owns.
func BucketsFor(kind Kind) []string {
	if kind == KindPR {
		return []string{BucketReceipts}
	}
	return []string{BucketQuotation, BucketPO, BucketShipping}
}

// Request is a tracked document. QR and PR share the common shape and differ
// in the kind-specific fields; kind-specific required fields are enforced at
// submission time.
type Request struct {
	Kind      Kind      `json:"kind"`
	ID        string    `json:"id"`
	DocNo     string    `json:"docNo"`
	DocDate   string    `json:"docDate"`
	Requester string    `json:"requester"`
	Phone     string    `json:"phone"`
	Status    Status    `json:"status"`
	EditToken string    `json:"editToken"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Items    []Item                        `json:"items"`
	Files    map[string][]AttachmentRecord `json:"files"`
	Activity []ActivityEntry               `json:"activity"`

	// Quotation request fields.
	Project  string    `json:"project,omitempty"`
	Urgency  string    `json:"urgency,omitempty"`
	Note     string    `json:"note,omitempty"`
	Shipping *Shipping `json:"shipping,omitempty"`

	// Purchase requisition fields.
	Subject   string     `json:"subject,omitempty"`
	ForJob    string     `json:"forJob,omitempty"`
	Remark    string     `json:"remark,omitempty"`
	Approvals *Approvals `json:"approvals,omitempty"`
}

// Item is one document line. PR items additionally carry a price and the
// derived total; photos are filename records only.
type Item struct {
	LineNo int      `json:"lineNo"`
	Name   string   `json:"name"`
	Model  string   `json:"model,omitempty"`
	Code   string   `json:"code,omitempty"`
	Qty    float64  `json:"qty"`
	Unit   string   `json:"unit"`
	Detail string   `json:"detail,omitempty"`
	Remark string   `json:"remark,omitempty"`
	Price  float64  `json:"price,omitempty"`
	Total  float64  `json:"total,omitempty"`
	Photos []string `json:"photos,omitempty"`
}

// Shipping holds the QR shipping sub-record.
type Shipping struct {
	ETD      string `json:"etd,omitempty"`
	ETA      string `json:"eta,omitempty"`
	Tracking string `json:"tracking,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// Approvals holds the PR sign-off identities.
type Approvals struct {
	PreparedBy string `json:"preparedBy,omitempty"`
	OrderedBy  string `json:"orderedBy,omitempty"`
	ApprovedBy string `json:"approvedBy,omitempty"`
}

// ActivityEntry is one audit record. Entries are never edited or removed.
type ActivityEntry struct {
	At     time.Time `json:"at"`
	Actor  string    `json:"actor"`
	Action Event     `json:"action"`
	Detail string    `json:"detail,omitempty"`
}

// AttachmentRecord is a filename record; no byte content is ever stored.
type AttachmentRecord struct {
	ID   string    `json:"id"`
	Name string    `json:"name"`
	By   string    `json:"by"`
	At   time.Time `json:"at"`
}

// PrependActivity inserts an audit entry at the front of the log and
// refreshes the document's updatedAt stamp.
func (r *Request) PrependActivity(at time.Time, actor string, action Event, detail string) {
	entry := ActivityEntry{At: at, Actor: actor, Action: action, Detail: detail}
	r.Activity = append([]ActivityEntry{entry}, r.Activity...)
	r.UpdatedAt = at
}

// EnsureBuckets initialises the attachment buckets the kind owns.
func (r *Request) EnsureBuckets() {
	if r.Files == nil {
		r.Files = make(map[string][]AttachmentRecord)
	}
	for _, bucket := range BucketsFor(r.Kind) {
		if _, ok := r.Files[bucket]; !ok {
			r.Files[bucket] = []AttachmentRecord{}
		}
	}
}

// HasBucket reports whether the named bucket belongs to this document's kind.
func (r *Request) HasBucket(bucket string) bool {
	for _, b := range BucketsFor(r.Kind) {
		if b == bucket {
			return true
		}
	}
	return false
}
