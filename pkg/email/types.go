package email

type Message struct {
	To       []string
	CC       []string
	BCC      []string
	Subject  string
	TextBody string
	HTMLBody string
	Headers  map[string]string
}

// Detail is one labelled row of a lead notification. Link-tagged values
// render as a "View Attachment" anchor instead of literal text; the producer
// decides what counts as a link, not the renderer.
type Detail struct {
	Label string
	Value string
	Link  bool
}
