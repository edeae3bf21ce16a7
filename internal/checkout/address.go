package checkout

import (
	"regexp"
	"strconv"
	"strings"
)

// Address is the delivery form. Apartment and Instructions are optional and
// only appear in the order message when filled.
type Address struct {
	FullName     string `json:"fullName"`
	Phone        string `json:"phone"`
	Street       string `json:"street"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zipCode"`
	Apartment    string `json:"apartment,omitempty"`
	Instructions string `json:"instructions,omitempty"`
}

var (
	phonePattern = regexp.MustCompile(`^01[3-9]\d{8}$`)
	zipPattern   = regexp.MustCompile(`^\d{4}$`)
)

// Validate applies the field-level delivery rules. The returned map is keyed
// by field name and empty when the address is acceptable; a non-empty map
// blocks checkout before anything else runs.
func Validate(address Address) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(address.FullName) == "" {
		errs["fullName"] = "Full name is required"
	}

	if strings.TrimSpace(address.Phone) == "" {
		errs["phone"] = "Phone number is required"
	} else if !phonePattern.MatchString(address.Phone) {
		errs["phone"] = "Please enter a valid 11-digit Bangladesh mobile number (e.g., 01323376571)"
	}

	if strings.TrimSpace(address.Street) == "" {
		errs["street"] = "Street address is required"
	}

	if strings.TrimSpace(address.City) == "" {
		errs["city"] = "City is required"
	}

	if strings.TrimSpace(address.State) == "" {
		errs["state"] = "State is required"
	}

	if strings.TrimSpace(address.ZipCode) == "" {
		errs["zipCode"] = "Postal code is required"
	} else if zip, err := strconv.Atoi(address.ZipCode); err != nil || !zipPattern.MatchString(address.ZipCode) || zip < 1000 {
		errs["zipCode"] = "Please enter a valid Bangladesh postal code (e.g., 1205)"
	}

	return errs
}
