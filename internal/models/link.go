package models

// Link is a hypermedia link to an available endpoint
type Link struct {
	Href string `json:"href"`
	Rel  string `json:"rel"`
	Type string `json:"type"`
}

// Links is the body of a discovery response
type Links struct {
	Links []Link `json:"links"`
}
