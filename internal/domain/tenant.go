package domain

import "time"

type TenantStatus string

const (
	TenantStatusActive   TenantStatus = "active"
	TenantStatusPast     TenantStatus = "past"
	TenantStatusProspect TenantStatus = "prospect"
)

// NegotiationStatus tracks where a lease-renewal negotiation stands. It is
// only meaningful while the lease is active and the property is long_term.
type NegotiationStatus string

const (
	NegotiationStatusNegotiating    NegotiationStatus = "negotiating" // default when unset
	NegotiationStatusOwnerContacted NegotiationStatus = "owner_contacted"
	NegotiationStatusTenantContact  NegotiationStatus = "tenant_contacted"
	NegotiationStatusVacating       NegotiationStatus = "vacating"
	NegotiationStatusClosed         NegotiationStatus = "closed"
)

var knownNegotiationStatuses = map[NegotiationStatus]bool{
	NegotiationStatusNegotiating: true, NegotiationStatusOwnerContacted: true,
	NegotiationStatusTenantContact: true, NegotiationStatusVacating: true,
	NegotiationStatusClosed: true,
}

func (s NegotiationStatus) Valid() bool { return knownNegotiationStatuses[s] }

type Tenant struct {
	ID                         int32             `json:"id"`
	PropertyID                 int32             `json:"property_id"`
	UserID                     *int32            `json:"user_id,omitempty"` // portal account, when one exists
	Name                       string            `json:"name"`
	Email                      string            `json:"email"`
	PhoneNumber                string            `json:"phone_number"`
	LeaseStart                 string            `json:"lease_start"` // yyyy-mm-dd
	LeaseEnd                   string            `json:"lease_end"`   // yyyy-mm-dd
	RentValueCents             int32             `json:"rent_value_cents"`
	Status                     TenantStatus      `json:"status"`
	NegotiationStatus          NegotiationStatus `json:"negotiation_status"`
	SuggestedRenewalPriceCents *int32            `json:"suggested_renewal_price_cents,omitempty"`
	CreatedOn                  string            `json:"created_on"`
	UpdatedOn                  string            `json:"updated_on"`
}

type NegotiationLog struct {
	ID        int32             `json:"id"`
	TenantID  int32             `json:"tenant_id"`
	Status    NegotiationStatus `json:"status"`
	Note      string            `json:"note"`
	CreatedBy int32             `json:"created_by"`
	CreatedOn time.Time         `json:"created_on"`
}

// Document is a stored contract or attachment tied to a tenant. The ID is a
// storage key, not a database sequence.
type Document struct {
	ID         string    `json:"id"`
	TenantID   int32     `json:"tenant_id"`
	Name       string    `json:"name"`
	FilePath   string    `json:"file_path"`
	MimeType   string    `json:"mime_type"`
	UploadedBy int32     `json:"uploaded_by"`
	CreatedOn  time.Time `json:"created_on"`
}

// RenewalCandidate is the denormalized row the renewals board works on:
// tenant joined with its property and owner.
type RenewalCandidate struct {
	Tenant       Tenant      `json:"tenant"`
	PropertyID   int32       `json:"property_id"`
	PropertyName string      `json:"property_name"`
	ProfileType  ProfileType `json:"profile_type"`
	OwnerID      int32       `json:"owner_id"`
	OwnerName    string      `json:"owner_name"`
}
