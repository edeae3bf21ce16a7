package checkout

import "testing"

func validAddress() Address {
	return Address{
		FullName: "Rahim Uddin",
		Phone:    "01323376571",
		Street:   "12 Road",
		City:     "Dhaka",
		State:    "Dhaka",
		ZipCode:  "1205",
	}
}

func TestValidateAcceptsCompleteAddress(t *testing.T) {
	if errs := Validate(validAddress()); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidateRequiredFields(t *testing.T) {
	errs := Validate(Address{})

	for _, field := range []string{"fullName", "phone", "street", "city", "state", "zipCode"} {
		if errs[field] == "" {
			t.Errorf("expected error for %s", field)
		}
	}
}

func TestValidatePhoneFormat(t *testing.T) {
	cases := []struct {
		phone string
		ok    bool
	}{
		{"01323376571", true},
		{"01923376571", true},
		{"01123376571", false}, // 011 prefix not a BD mobile range
		{"0132337657", false},  // too short
		{"013233765712", false},
		{"+8801323376571", false}, // country code not accepted by the form
		{"abcdefghijk", false},
	}

	for _, tc := range cases {
		addr := validAddress()
		addr.Phone = tc.phone
		errs := Validate(addr)
		if tc.ok && errs["phone"] != "" {
			t.Errorf("phone %q rejected: %s", tc.phone, errs["phone"])
		}
		if !tc.ok && errs["phone"] == "" {
			t.Errorf("phone %q accepted", tc.phone)
		}
	}
}

func TestValidateZipCode(t *testing.T) {
	cases := []struct {
		zip string
		ok  bool
	}{
		{"1205", true},
		{"1000", true},
		{"0999", false}, // below the valid range
		{"120", false},
		{"12050", false},
		{"abcd", false},
	}

	for _, tc := range cases {
		addr := validAddress()
		addr.ZipCode = tc.zip
		errs := Validate(addr)
		if tc.ok && errs["zipCode"] != "" {
			t.Errorf("zip %q rejected: %s", tc.zip, errs["zipCode"])
		}
		if !tc.ok && errs["zipCode"] == "" {
			t.Errorf("zip %q accepted", tc.zip)
		}
	}
}

func TestValidateWhitespaceOnlyFields(t *testing.T) {
	addr := validAddress()
	addr.FullName = "   "

	if errs := Validate(addr); errs["fullName"] == "" {
		t.Fatal("whitespace-only name accepted")
	}
}
