package model

import "time"

// InquiryStatus is the local lifecycle of an inquiry row before (or instead
// of) it being handed over to the CRM.
type InquiryStatus string

const (
	InquiryStatusNew       InquiryStatus = "new"
	InquiryStatusRead      InquiryStatus = "Read"
	InquiryStatusResponded InquiryStatus = "Responded"
	InquiryStatusArchived  InquiryStatus = "Archived"
)

// LeadStatus is the admin pipeline vocabulary used when an inquiry is managed
// as a CRM lead. It is deliberately a separate type from InquiryStatus: the
// two vocabularies serve different call paths and have no documented mapping
// onto each other. The CRM is authoritative for this one.
type LeadStatus string

const (
	LeadStatusNew          LeadStatus = "New"
	LeadStatusQualified    LeadStatus = "Qualified"
	LeadStatusProposalSent LeadStatus = "Proposal Sent"
	LeadStatusWon          LeadStatus = "Won"
	LeadStatusLost         LeadStatus = "Lost"
)

// LeadStages maps the admin pipeline status onto the CRM's numeric stage ids.
var LeadStages = map[LeadStatus]int{
	LeadStatusNew:          1,
	LeadStatusQualified:    2,
	LeadStatusProposalSent: 3,
	LeadStatusWon:          4,
	LeadStatusLost:         5,
}

// Valid reports whether s is one of the admin pipeline statuses.
func (s LeadStatus) Valid() bool {
	_, ok := LeadStages[s]
	return ok
}

// Inquiry is a contact/career/vendor submission. A row exists locally only
// when the CRM was unreachable at submission time; OdooLeadID is populated
// once the row has been pushed to the CRM.
type Inquiry struct {
	ID         int           `json:"id"`
	Name       string        `json:"name"`
	Email      string        `json:"email"`
	Phone      *string       `json:"phone"`
	Subject    *string       `json:"subject"`
	Message    string        `json:"message"`
	Type       string        `json:"type"`
	Company    *string       `json:"company"`
	Status     InquiryStatus `json:"status"`
	OdooLeadID *int          `json:"odooLeadId"`
	CreatedAt  time.Time     `json:"createdAt"`
}

// InquiryFilter narrows admin listings; zero values mean "no filter".
type InquiryFilter struct {
	Type   string
	Status string
	Page   int
	Limit  int
}
