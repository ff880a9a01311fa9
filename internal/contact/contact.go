package contact

import (
	"regexp"
	"strings"
)

// Number is one phone/fax candidate attached to a contact, tagged with its
// type and location the way the billing platform stores them.
type Number struct {
	Number   string
	Type     string
	Location string
}

// Info is the contact/customer record the billing collaborator supplies for
// a checkout.
type Info struct {
	ClientID  string
	FirstName string
	LastName  string
	Email     string
	Address1  string
	Address2  string
	City      string
	State     string
	Zip       string
	Country   string
	Numbers   []Number
}

var nonDigitRegex = regexp.MustCompile(`[^0-9]`)

// FullName joins first and last name with a single space, skipping empties.
func (i Info) FullName() string {
	parts := []string{}
	if i.FirstName != "" {
		parts = append(parts, i.FirstName)
	}
	if i.LastName != "" {
		parts = append(parts, i.LastName)
	}
	return strings.Join(parts, " ")
}

// Address prefers address1 and falls back to address2.
func (i Info) Address() string {
	if i.Address1 != "" {
		return i.Address1
	}
	return i.Address2
}

// PrimaryPhone picks the phone-typed number among home/work/mobile
// locations; when several match, the last one wins. The result is reduced to
// digits only, or empty when no candidate exists.
func (i Info) PrimaryPhone() string {
	phone := ""
	for _, n := range i.Numbers {
		switch n.Location {
		case "home", "work", "mobile":
			if n.Type == "phone" {
				phone = n.Number
			}
		}
	}
	if phone == "" {
		return ""
	}
	return nonDigitRegex.ReplaceAllString(phone, "")
}
