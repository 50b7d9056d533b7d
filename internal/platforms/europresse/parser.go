// Package europresse recognizes accesses to the Europresse press database.
package europresse

import (
	"strings"

	"github.com/aleister1102/ecverify/internal/classifier"
	"github.com/aleister1102/ecverify/internal/models"
	"github.com/aleister1102/ecverify/internal/rules"
)

// Name is the platform identifier.
const Name = "europresse"

// Separator of the document name elements (U+00B7 MIDDLE DOT).
const docNameSeparator = "·"

type parser struct {
	rules *rules.Set
}

// New builds the classifier.
func New() (classifier.Classifier, error) {
	set, err := rules.NewBuilder().
		// /WebPages/Pdf/Document.aspx?DocName=pdf%c2%b720140606%c2%b7LM_p%c2%b7LIV6
		Add("pdf document", `^/WebPages/Pdf/Document.aspx$`, func(m rules.Match, r *models.Result) {
			r.Rtype = models.RtypeArticle
			r.Mime = models.MimePDF
			if docName := m.URL.Query.Get("DocName"); docName != "" {
				r.TitleID = docNameElement(docName, 2)
				r.UnitID = docName
			}
		}).
		// /WebPages/Search/Doc.aspx?DocName=news%C2%B720140606%C2%B7ML%C2%B76225112&ContainerType=SearchResult
		// /WebPages/Search/Doc.aspx?DocName=bio%C2%B7EVI%C2%B72944&ContainerType=SearchResultBio
		Add("search document", `^/WebPages/Search/Doc.aspx$`, func(m rules.Match, r *models.Result) {
			r.Rtype = models.RtypeArticle
			r.Mime = models.MimeHTML
			docName := m.URL.Query.Get("DocName")
			if docName == "" {
				return
			}
			r.UnitID = docName
			switch m.URL.Query.Get("ContainerType") {
			case "SearchResult":
				r.TitleID = docNameElement(docName, 2)
			case "SearchResultBio":
				r.TitleID = docNameElement(docName, 1)
			}
		}).
		// /Pdf/ImageList?docName=news%C2%B720190103%C2%B7LM%C2%B7123
		Add("image list", `^/Pdf/ImageList$`, func(m rules.Match, r *models.Result) {
			if docName := m.URL.Query.Get("docName"); docName != "" {
				r.UnitID = docName
			}
			r.Rtype = models.RtypeArticle
			r.Mime = models.MimePDF
		}).
		Build()
	if err != nil {
		return nil, err
	}
	return &parser{rules: set}, nil
}

func (p *parser) Classify(u *models.ParsedURL, meta models.AccessMeta) models.Result {
	var r models.Result
	p.rules.Apply(u.Path, u, meta, &r)
	return r
}

// docNameElement returns element i of a document name with its first "_p"
// marker removed, or "" when the name is too short.
func docNameElement(docName string, i int) string {
	elements := strings.Split(docName, docNameSeparator)
	if i >= len(elements) {
		return ""
	}
	return strings.Replace(elements[i], "_p", "", 1)
}
