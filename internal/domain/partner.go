package domain

type PartnerStatus string

const (
	PartnerStatusActive   PartnerStatus = "ACTIVE"
	PartnerStatusInactive PartnerStatus = "INACTIVE"
)

// Partner is a service company (cleaning, maintenance, inspection crews).
// Its portal users are Users with role PARTNER or PARTNER_EMPLOYEE whose
// ParentID points back here through the partner's primary user.
type Partner struct {
	ID          int32         `json:"id"`
	UserID      *int32        `json:"user_id,omitempty"` // primary portal account
	Name        string        `json:"name"`
	Email       string        `json:"email"`
	PhoneNumber string        `json:"phone_number"`
	Services    []string      `json:"services"`
	Status      PartnerStatus `json:"status"`
	CreatedOn   string        `json:"created_on"`
	UpdatedOn   string        `json:"updated_on"`
}
