package domain

type ProfileType string

const (
	ProfileTypeLongTerm  ProfileType = "long_term"
	ProfileTypeShortTerm ProfileType = "short_term"
)

type PropertyStatus string

const (
	PropertyStatusActive   PropertyStatus = "ACTIVE"
	PropertyStatusInactive PropertyStatus = "INACTIVE"
)

type Property struct {
	ID             int32          `json:"id"`
	OwnerID        int32          `json:"owner_id"`
	Owner          *User          `json:"owner,omitempty"` // populated when fetching details
	Name           string         `json:"name"`
	Address        string         `json:"address"`
	City           string         `json:"city"`
	ProfileType    ProfileType    `json:"profile_type"`
	Status         PropertyStatus `json:"status"`
	CondominiumID  *int32         `json:"condominium_id,omitempty"`
	RentValueCents int32          `json:"rent_value_cents"`
	CreatedOn      string         `json:"created_on"`
	UpdatedOn      string         `json:"updated_on"`
}

type Condominium struct {
	ID        int32  `json:"id"`
	Name      string `json:"name"`
	Address   string `json:"address"`
	City      string `json:"city"`
	AdminName string `json:"admin_name"`
	AdminFee  int32  `json:"admin_fee_cents"`
	CreatedOn string `json:"created_on"`
	UpdatedOn string `json:"updated_on"`
}
