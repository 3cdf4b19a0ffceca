package lead

// Kind distinguishes which optional fields a lead submission requires.
type Kind string

const (
	KindContact          Kind = "CONTACT"
	KindJobApplication   Kind = "JOB_APPLICATION"
	KindCourseEnrollment Kind = "COURSE_ENROLLMENT"
	KindProjectPurchase  Kind = "PROJECT_PURCHASE"
)

// RequiresResume reports whether this kind needs an uploaded document URL
// before the submission may proceed.
func (k Kind) RequiresResume() bool {
	return k == KindJobApplication || k == KindCourseEnrollment
}

// Field is one free-form key/value pair from the request body. Order is
// preserved from the body so the notification renders fields the way the
// form sent them.
type Field struct {
	Key   string
	Value string
}

// Submission is the payload crossing the client/server boundary. It is
// transient: built at request time, consumed once by the notifier, never
// persisted.
type Submission struct {
	Kind    Kind
	Subject string
	Name    string
	Email   string
	Phone   string
	Message string
	Extras  []Field
}

// Extra returns the value of the named free-form field, or "".
func (s Submission) Extra(key string) string {
	for _, f := range s.Extras {
		if f.Key == key {
			return f.Value
		}
	}
	return ""
}

// ApplyDefaults fills the gateway defaults: an absent kind means a general
// inquiry, an absent subject line gets the generic one.
func (s *Submission) ApplyDefaults() {
	if s.Kind == "" {
		s.Kind = KindContact
	}
	if s.Subject == "" {
		s.Subject = "New Inquiry"
	}
}

// Result is what every submission path returns, HTTP or in-process.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
