package models

// Field names used by fixtures, JSON output and comparison tables.
const (
	FieldRtype            = "rtype"
	FieldMime             = "mime"
	FieldUnitID           = "unitid"
	FieldTitleID          = "title_id"
	FieldDOI              = "doi"
	FieldVol              = "vol"
	FieldIssue            = "issue"
	FieldFirstPage        = "first_page"
	FieldPublicationDate  = "publication_date"
	FieldPrintIdentifier  = "print_identifier"
	FieldOnlineIdentifier = "online_identifier"
	FieldGranted          = "_granted"
)

// Resource types produced by the built-in platforms.
const (
	RtypeArticle     = "ARTICLE"
	RtypeAbstract    = "ABS"
	RtypeTOC         = "TOC"
	RtypeBook        = "BOOK"
	RtypeBookPage    = "BOOK_PAGE"
	RtypeBookSection = "BOOK_SECTION"
	RtypeBookSeries  = "BOOKSERIE"
	RtypeIssue       = "ISSUE"
	RtypeRecordView  = "RECORD_VIEW"
	RtypeSearch      = "SEARCH"
	RtypeSuppl       = "SUPPL"
	RtypeFigure      = "FIGURE"
)

// Media types produced by the built-in platforms.
const (
	MimeHTML    = "HTML"
	MimePDF     = "PDF"
	MimePDFPlus = "PDFPLUS"
	MimeMisc    = "MISC"
)

// Result is the classification of one access event.
// An empty string or a nil Granted means the field is unset.
type Result struct {
	Rtype            string `json:"rtype,omitempty"`
	Mime             string `json:"mime,omitempty"`
	UnitID           string `json:"unitid,omitempty"`
	TitleID          string `json:"title_id,omitempty"`
	DOI              string `json:"doi,omitempty"`
	Vol              string `json:"vol,omitempty"`
	Issue            string `json:"issue,omitempty"`
	FirstPage        string `json:"first_page,omitempty"`
	PublicationDate  string `json:"publication_date,omitempty"`
	PrintIdentifier  string `json:"print_identifier,omitempty"`
	OnlineIdentifier string `json:"online_identifier,omitempty"`
	Granted          *bool  `json:"_granted,omitempty"`
}

// SetGranted sets the access-granted flag.
func (r *Result) SetGranted(granted bool) {
	r.Granted = &granted
}

// IsEmpty reports whether no field is set.
func (r Result) IsEmpty() bool {
	return len(r.Fields()) == 0
}

// DiscardUntyped returns the zero Result when neither Rtype nor Mime is set,
// and r unchanged otherwise. Other fields never survive on their own.
func (r Result) DiscardUntyped() Result {
	if r.Rtype == "" && r.Mime == "" {
		return Result{}
	}
	return r
}

// Fields returns the set fields keyed by their field name.
// String fields map to string values, Granted maps to a bool.
func (r Result) Fields() map[string]any {
	fields := make(map[string]any)

	strs := []struct {
		name  string
		value string
	}{
		{FieldRtype, r.Rtype},
		{FieldMime, r.Mime},
		{FieldUnitID, r.UnitID},
		{FieldTitleID, r.TitleID},
		{FieldDOI, r.DOI},
		{FieldVol, r.Vol},
		{FieldIssue, r.Issue},
		{FieldFirstPage, r.FirstPage},
		{FieldPublicationDate, r.PublicationDate},
		{FieldPrintIdentifier, r.PrintIdentifier},
		{FieldOnlineIdentifier, r.OnlineIdentifier},
	}
	for _, s := range strs {
		if s.value != "" {
			fields[s.name] = s.value
		}
	}

	if r.Granted != nil {
		fields[FieldGranted] = *r.Granted
	}

	return fields
}
