// Package lexisnexis recognizes accesses to the LexisNexis legal research platform.
package lexisnexis

import (
	"github.com/aleister1102/ecverify/internal/classifier"
	"github.com/aleister1102/ecverify/internal/models"
	"github.com/aleister1102/ecverify/internal/rules"
)

// Name is the platform identifier.
const Name = "lexisnexis"

// Document formats of the docview pages. Other formats only carry identifiers.
var formatKinds = rules.Kinds{
	"GNBFULL":  {Rtype: models.RtypeArticle, Mime: models.MimeHTML},
	"AUTRECAS": {Rtype: models.RtypeArticle, Mime: models.MimeHTML},
}

type parser struct {
	rules *rules.Set
}

// New builds the classifier.
func New() (classifier.Classifier, error) {
	set, err := rules.NewBuilder().
		// /fr/droit/results/docview/docview.do?docLinkInd=true&risb=21_T17183418923&format=GNBFULL
		Add("docview", `/droit/results/docview/docview`, func(m rules.Match, r *models.Result) {
			if risb := m.URL.Query.Get("risb"); risb != "" {
				r.TitleID = risb
				r.UnitID = risb
			}
			if format := m.URL.Query.Get("format"); format != "" {
				formatKinds.Lookup(format, rules.Kind{}).Set(r)
			}
		}).
		// /uk/legal/results/enhdocview.do?docLinkInd=true&ersKey=23_T520044311&format=GNBFULL
		// /uk/legal/results/tocBrowseNodeClick.do?rand=0.23421785867541522&tocCSI=281055&clickedNode=TAAD
		Add("document", `^/[a-z]+/[a-z]+/results/(enhdocview|tocBrowseNodeClick)\.do$`, func(m rules.Match, r *models.Result) {
			r.Rtype = models.RtypeArticle
			r.Mime = models.MimeHTML
			r.UnitID = m.URL.Query.Get("tocCSI")
		}).
		// /uk/legal/results/renderTocBrowse.do?rand=0.9940351116863005&pap=quicklinks&sourceId=Q_CAT6000003.T9929409
		Add("toc", `^/[a-z]+/[a-z]+/results/renderTocBrowse\.do$`, func(m rules.Match, r *models.Result) {
			r.Rtype = models.RtypeTOC
			r.Mime = models.MimeHTML
			r.UnitID = m.URL.Query.Get("sourceId")
		}).
		// /uk/legal/search/homesubmitForm.do
		Add("search", `^/[a-z]+/[a-z]+/search/homesubmitForm\.do$`, func(m rules.Match, r *models.Result) {
			r.Rtype = models.RtypeSearch
			r.Mime = models.MimeHTML
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
