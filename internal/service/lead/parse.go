package lead

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ParseSubmission decodes a JSON request body into a Submission. It walks
// the object token by token instead of binding to a map so that free-form
// fields keep the order they had in the body; that order carries through to
// the rendered notification.
func ParseSubmission(body []byte) (Submission, error) {
	var sub Submission

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return sub, fmt.Errorf("parse submission: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return sub, fmt.Errorf("parse submission: expected a JSON object")
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return sub, fmt.Errorf("parse submission: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return sub, fmt.Errorf("parse submission: unexpected key token")
		}

		var raw any
		if err := dec.Decode(&raw); err != nil {
			return sub, fmt.Errorf("parse submission: field %q: %w", key, err)
		}
		val := stringifyValue(raw)

		switch key {
		case "type":
			sub.Kind = Kind(val)
		case "subject":
			sub.Subject = val
		case "name":
			sub.Name = val
		case "email":
			sub.Email = val
		case "message":
			sub.Message = val
		case "phone":
			// Phone is validated as an identity field but still rendered
			// among the details, at the position the form sent it.
			sub.Phone = val
			sub.Extras = append(sub.Extras, Field{Key: key, Value: val})
		default:
			sub.Extras = append(sub.Extras, Field{Key: key, Value: val})
		}
	}

	if _, err := dec.Token(); err != nil { // closing brace
		return sub, fmt.Errorf("parse submission: %w", err)
	}

	return sub, nil
}

func stringifyValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(b)
	}
}
