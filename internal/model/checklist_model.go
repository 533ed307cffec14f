package model

type ChecklistSection struct {
	Category  string   `json:"category"`
	Items     []string `json:"items"`
	Notes     string   `json:"notes"`
	UserNotes string   `json:"userNotes,omitempty"`
}

type Checklist []ChecklistSection

// WithoutUserNotes returns a copy with every user note cleared.
func (c Checklist) WithoutUserNotes() Checklist {
	out := make(Checklist, len(c))
	for i, s := range c {
		s.Items = append([]string(nil), s.Items...)
		s.UserNotes = ""
		out[i] = s
	}
	return out
}

// WithUserNotes returns a copy with notes applied by section index.
// Extra notes beyond the checklist length are ignored.
func (c Checklist) WithUserNotes(notes []string) Checklist {
	out := c.WithoutUserNotes()
	for i := range out {
		if i < len(notes) {
			out[i].UserNotes = notes[i]
		}
	}
	return out
}

// TenderType values offered by the checklist view.
var TenderTypes = []string{
	"Public/Government (PRAZ)",
	"Private Corporation",
	"Parastatal Entity (e.g., ZINWA, ZESA)",
}
