package model

// MonitoredTender is a hypothetical tender advertisement produced by a keyword search.
type MonitoredTender struct {
	Title            string   `json:"title"`
	IssuingEntity    string   `json:"issuingEntity"`
	Source           string   `json:"source"`
	Summary          string   `json:"summary"`
	Keywords         []string `json:"keywords"`
	HypotheticalLink string   `json:"hypotheticalLink"`
}
