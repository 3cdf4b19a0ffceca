package email

import (
	"fmt"
	"html"
	"strings"
	"unicode"
)

// LeadEmailData contains everything needed to render a lead notification.
type LeadEmailData struct {
	Kind      string
	Subject   string
	FromName  string
	FromEmail string
	Details   []Detail

	CompanyName  string
	CompanyEmail string
	LogoURL      string
}

// BuildLeadEmail renders the fixed lead notification template and addresses
// it to the company inbox, with Reply-To set to the lead so the team can
// answer directly.
func BuildLeadEmail(d LeadEmailData) Message {
	company := d.CompanyName
	if company == "" {
		company = "BytSmartz"
	}

	subject := fmt.Sprintf("[LEAD] %s - %s", d.Subject, d.FromName)
	kindLabel := strings.ReplaceAll(d.Kind, "_", " ")

	var rows strings.Builder
	rows.WriteString(detailRow("Type", d.Kind, false))
	rows.WriteString(detailRow("From", fmt.Sprintf("%s (%s)", d.FromName, d.FromEmail), false))
	for _, det := range d.Details {
		if det.Value == "" {
			continue
		}
		rows.WriteString(detailRow(humanizeLabel(det.Label), det.Value, det.Link))
	}

	var logo string
	if d.LogoURL != "" {
		logo = fmt.Sprintf(`<img src="%s" alt="%s Logo" style="width: 150px; height: auto; margin-bottom: 10px; filter: brightness(0) invert(1);">`,
			d.LogoURL, html.EscapeString(company))
	}

	htmlBody := fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; border: 1px solid #ddd; border-radius: 10px;">
    <div style="background: linear-gradient(to right, #3b82f6, #8b5cf6); padding: 20px; text-align: center; border-radius: 8px 8px 0 0;">
        %s
        <h1 style="color: white; margin: 0;">%s Lead</h1>
        <p style="color: #eee; margin: 5px 0 0;">New %s Inquiry</p>
    </div>
    <div style="padding: 20px;">
        <h2 style="color: #333;">Lead Details</h2>
        <table style="width: 100%%; border-collapse: collapse;">
            %s
        </table>
    </div>
    <div style="padding: 20px; background: #f9f9f9; text-align: center; border-radius: 0 0 10px 10px;">
        <p style="color: #666; font-size: 12px; margin: 0;">This is an automated notification from the %s website.</p>
    </div>
</div>`,
		logo,
		html.EscapeString(company),
		html.EscapeString(kindLabel),
		rows.String(),
		html.EscapeString(company),
	)

	var text strings.Builder
	fmt.Fprintf(&text, "New %s inquiry\n\n", kindLabel)
	fmt.Fprintf(&text, "Type: %s\n", d.Kind)
	fmt.Fprintf(&text, "From: %s (%s)\n", d.FromName, d.FromEmail)
	for _, det := range d.Details {
		if det.Value == "" {
			continue
		}
		fmt.Fprintf(&text, "%s: %s\n", humanizeLabel(det.Label), det.Value)
	}

	return Message{
		To:       []string{d.CompanyEmail},
		Subject:  subject,
		TextBody: text.String(),
		HTMLBody: htmlBody,
		Headers:  map[string]string{"Reply-To": d.FromEmail},
	}
}

// detailRow renders a single table row. Link values become a "View Attachment"
// anchor; the URL goes into the href verbatim so the recipient gets exactly
// what the storage provider returned.
func detailRow(label, value string, link bool) string {
	display := html.EscapeString(value)
	if link {
		display = fmt.Sprintf(`<a href="%s" target="_blank" style="color: #3b82f6; text-decoration: underline;">View Attachment</a>`, value)
	}
	return fmt.Sprintf(`<tr><td style="padding: 8px; border-bottom: 1px solid #eee;"><strong>%s:</strong></td><td style="padding: 8px; border-bottom: 1px solid #eee;">%s</td></tr>`,
		html.EscapeString(label), display)
}

// humanizeLabel turns a camel-cased field key into a display label:
// "jobTitle" -> "Job Title", "Message" -> "Message".
func humanizeLabel(key string) string {
	var b strings.Builder
	for i, r := range key {
		if i == 0 {
			b.WriteRune(unicode.ToUpper(r))
			continue
		}
		if unicode.IsUpper(r) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}
