package hubspot

import "time"

// The four contact properties this service surfaces. Everything else the CRM
// tracks is out of scope.
const (
	PropertyFirstname = "firstname"
	PropertyLastname  = "lastname"
	PropertyEmail     = "email"
	PropertyPhone     = "phone"
)

// TrackedProperties is the property list requested on every read.
var TrackedProperties = []string{PropertyFirstname, PropertyLastname, PropertyEmail, PropertyPhone}

type ContactProperties struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// Contact is a CRM contact identified by an opaque id. Contacts are never
// deleted by this service.
type Contact struct {
	Id         string            `json:"id"`
	Properties ContactProperties `json:"properties"`
	CreatedAt  time.Time         `json:"createdAt"`
	UpdatedAt  time.Time         `json:"updatedAt"`
	Archived   bool              `json:"archived"`
}

// ContactFields is caller-supplied contact data. All fields are optional; no
// local validation is performed before handing them to the CRM.
type ContactFields struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

func (fields ContactFields) properties() map[string]string {
	return map[string]string{
		PropertyFirstname: fields.FirstName,
		PropertyLastname:  fields.LastName,
		PropertyEmail:     fields.Email,
		PropertyPhone:     fields.Phone,
	}
}
