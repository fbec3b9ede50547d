package models

import "time"

// OfferingMode distinguishes in-shop from mobile (at-home) offerings.
type OfferingMode string

const (
	OfferingFixed  OfferingMode = "fixed"
	OfferingMobile OfferingMode = "mobile"
)

// Offering is a bookable service with duration, price and mandatory recovery
// buffer appended after each booking.
type Offering struct {
	ID              string       `bson:"id" json:"id"`
	Name            string       `bson:"name" json:"name"`
	DurationMinutes int          `bson:"durationMinutes" json:"durationMinutes"`
	BufferMinutes   int          `bson:"bufferMinutes" json:"bufferMinutes"`
	Price           float64      `bson:"price" json:"price"`
	Currency        string       `bson:"currency,omitempty" json:"currency,omitempty"`
	Mode            OfferingMode `bson:"mode" json:"mode"`
	Active          bool         `bson:"active" json:"active"`
}

// Staff is one bookable member of a provider's roster.
type Staff struct {
	ID           string         `bson:"id" json:"id"`
	Name         string         `bson:"name" json:"name"`
	Email        string         `bson:"email,omitempty" json:"email,omitempty"`
	Role         string         `bson:"role" json:"role"` // e.g., "owner", "manager", "member"
	OfferingIDs  []string       `bson:"offeringIds" json:"offeringIds"` // offerings this member performs
	CustomRoleID string         `bson:"customRoleId,omitempty" json:"customRoleId,omitempty"`
	DirectGrant  *PermissionSet `bson:"directGrant,omitempty" json:"directGrant,omitempty"`
	Active       bool           `bson:"active" json:"active"`
}

// Security carries credential material; hashes only are persisted.
type Security struct {
	Password     string `bson:"-" json:"password,omitempty"`
	PasswordHash string `bson:"passwordHash" json:"-"`
	Token        string `bson:"-" json:"token,omitempty"`
	TokenHash    string `bson:"tokenHash" json:"-"`
}

// Provider is the tenant document: profile, credentials, offering catalogue
// and staff roster are embedded, matching how bookings reference them.
type Provider struct {
	ID                 string       `bson:"id" json:"id,omitempty"`
	Name               string       `bson:"name" json:"name"`
	Email              string       `bson:"email" json:"email"`
	Phone              string       `bson:"phone,omitempty" json:"phone,omitempty"`
	Timezone           string       `bson:"timezone" json:"timezone"` // IANA name, e.g., "Europe/Berlin"
	Security           Security     `bson:"security" json:"security"`
	Offerings          []Offering   `bson:"offerings" json:"offerings"`
	Staff              []Staff      `bson:"staff" json:"staff"`
	CustomRoles        []CustomRole `bson:"customRoles,omitempty" json:"customRoles,omitempty"`
	WorkHoursEnforced  bool         `bson:"workHoursEnforced" json:"workHoursEnforced"` // fail closed on days without shifts
	MobileTravelBuffer int          `bson:"mobileTravelBuffer" json:"mobileTravelBuffer"` // minutes added for mobile offerings
	Status             string       `bson:"status" json:"status"` // e.g., "active", "suspended"
	CreatedAt          time.Time    `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time    `bson:"updatedAt" json:"updatedAt"`
}

// OfferingByID returns the offering with the given id, if present.
func (p *Provider) OfferingByID(id string) (*Offering, bool) {
	for i := range p.Offerings {
		if p.Offerings[i].ID == id {
			return &p.Offerings[i], true
		}
	}
	return nil, false
}

// StaffByID returns the staff member with the given id, if present.
func (p *Provider) StaffByID(id string) (*Staff, bool) {
	for i := range p.Staff {
		if p.Staff[i].ID == id {
			return &p.Staff[i], true
		}
	}
	return nil, false
}

// StaffForOffering returns the first active staff member performing the offering.
func (p *Provider) StaffForOffering(offeringID string) (*Staff, bool) {
	for i := range p.Staff {
		if !p.Staff[i].Active {
			continue
		}
		for _, oid := range p.Staff[i].OfferingIDs {
			if oid == offeringID {
				return &p.Staff[i], true
			}
		}
	}
	return nil, false
}
