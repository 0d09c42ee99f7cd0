package pipeline

// RunStats tracks what a run discovered and wrote.
type RunStats struct {
	Discovered   int
	Elements     int
	Backgrounds  int
	Written      int
	BytesWritten int64

	Artifacts Artifacts
}

// Artifacts lists the files a run produced (or would produce in dry-run).
// ContactSheetPDF is empty unless the PDF export is enabled.
type Artifacts struct {
	ContactSheet    string
	ContactSheetPDF string
	Normalized      []string
	Summary         string
}

// All returns every artifact path in write order.
func (a *Artifacts) All() []string {
	out := []string{a.ContactSheet}
	if a.ContactSheetPDF != "" {
		out = append(out, a.ContactSheetPDF)
	}
	out = append(out, a.Normalized...)
	return append(out, a.Summary)
}
