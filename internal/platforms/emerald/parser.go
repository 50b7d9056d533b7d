// Package emerald recognizes accesses to Emerald Insight journals, books and
// book series.
package emerald

import (
	"github.com/aleister1102/ecverify/internal/classifier"
	"github.com/aleister1102/ecverify/internal/models"
	"github.com/aleister1102/ecverify/internal/rules"
)

// Name is the platform identifier.
const Name = "emerald"

// Kinds of /doi/<format>/ pages for book series identifiers.
var seriesDOIKinds = rules.Kinds{
	"abs":     {Rtype: models.RtypeAbstract, Mime: models.MimeMisc},
	"book":    {Rtype: models.RtypeBookSeries, Mime: models.MimeMisc},
	"full":    {Rtype: models.RtypeArticle, Mime: models.MimeHTML},
	"pdfplus": {Rtype: models.RtypeArticle, Mime: models.MimePDFPlus},
}

// Kinds of /doi/<format>/ pages for journal article identifiers.
var articleDOIKinds = rules.Kinds{
	"abs":     {Rtype: models.RtypeAbstract, Mime: models.MimeMisc},
	"full":    {Rtype: models.RtypeArticle, Mime: models.MimeHTML},
	"pdfplus": {Rtype: models.RtypeArticle, Mime: models.MimePDFPlus},
}

type parser struct {
	rules *rules.Set
}

// New builds the classifier.
func New() (classifier.Classifier, error) {
	set, err := rules.NewBuilder().
		// /series/ail
		Add("series", `(?i)^/series/([a-z]+)$`, func(m rules.Match, r *models.Result) {
			r.Rtype = models.RtypeBookSeries
			r.Mime = models.MimeMisc
			r.TitleID = m.Group(1)
			r.UnitID = m.Group(1)
		}).
		// /doi/book/10.1108/S0065-2830%282012%2935
		// /doi/pdfplus/10.1108/S0882-614520170000034003
		Add("series doi", `(?i)^/doi/([a-z]+)/(10\.[0-9]{4,5}/([A-Z]([0-9]{4}-[0-9]{4})\(?([0-9]{4})\)?[0-9]+))$`, func(m rules.Match, r *models.Result) {
			r.DOI = m.Group(2)
			r.UnitID = m.Group(3)
			r.OnlineIdentifier = m.Group(4)
			r.PublicationDate = m.Group(5)
			seriesDOIKinds.Lookup(m.Group(1), rules.Kind{Rtype: models.RtypeArticle, Mime: models.MimeMisc}).Set(r)
		}).
		// /loi/ejim
		Add("issue list", `(?i)^/loi/([a-z]+)$`, func(m rules.Match, r *models.Result) {
			r.Mime = models.MimeMisc
			r.TitleID = m.Group(1)
			r.UnitID = m.Group(1)
		}).
		// /toc/ejim/18/3
		Add("toc", `^/toc/(([a-z]+)/[0-9]+/[0-9]+)`, func(m rules.Match, r *models.Result) {
			r.Rtype = models.RtypeTOC
			r.Mime = models.MimeMisc
			r.TitleID = m.Group(2)
			r.UnitID = m.Group(1)
		}).
		// /doi/abs/10.1108/EJIM-10-2013-0115
		// /doi/pdfplus/10.1108/14601061211272358
		Add("article doi", `(?i)^/doi/([a-z]+)/([0-9]{2}\.[0-9]{4,5}/(([a-z]*)[0-9-]+))$`, func(m rules.Match, r *models.Result) {
			r.UnitID = m.Group(3)
			r.DOI = m.Group(2)
			if title := m.Group(4); title != "" {
				r.TitleID = title
			}
			articleDOIKinds.Lookup(m.Group(1), rules.Kind{Rtype: models.RtypeArticle}).Set(r)
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
