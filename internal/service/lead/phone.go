package lead

import (
	"github.com/nyaruka/phonenumbers"
)

// normalizePhone formats a phone number in international notation for the
// notification body. Best effort only: validation already happened against
// the form pattern, so anything libphonenumber can't parse is rendered as
// the user typed it.
func (s *leadService) normalizePhone(raw string) string {
	region := s.cfg.DefaultPhoneRegion
	if region == "" {
		region = "IN"
	}

	num, err := phonenumbers.Parse(raw, region)
	if err != nil || !phonenumbers.IsValidNumber(num) {
		return raw
	}
	return phonenumbers.Format(num, phonenumbers.INTERNATIONAL)
}
