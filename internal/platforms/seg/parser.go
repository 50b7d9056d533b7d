// Package seg recognizes accesses to the Society of Exploration Geophysicists library.
package seg

import (
	"github.com/aleister1102/ecverify/internal/classifier"
	"github.com/aleister1102/ecverify/internal/models"
	"github.com/aleister1102/ecverify/internal/rules"
)

// Name is the platform identifier.
const Name = "seg"

var doiKinds = rules.Kinds{
	"abs":     {Rtype: models.RtypeAbstract, Mime: models.MimeHTML},
	"pdf":     {Rtype: models.RtypeArticle, Mime: models.MimePDF},
	"ref":     {Rtype: models.RtypeRecordView, Mime: models.MimeHTML},
	"full":    {Rtype: models.RtypeArticle, Mime: models.MimeHTML},
	"pdfplus": {Rtype: models.RtypeArticle, Mime: models.MimePDFPlus},
}

type parser struct {
	rules *rules.Set
}

// New builds the classifier.
func New() (classifier.Classifier, error) {
	set, err := rules.NewBuilder().
		// /toc/gpysa7/81/3
		Add("toc", `^/toc/([a-z0-9]+)/([0-9]*)/([0-9]*)$`, func(m rules.Match, r *models.Result) {
			r.Rtype = models.RtypeTOC
			r.Mime = models.MimeHTML
			r.UnitID = m.Group(1)
		}).
		// /doi/abs/10.1190/geo2015-0100.1
		Add("doi", `^/doi/([a-z]+)/(10\.[0-9]{4,5}/([a-z0-9]+-[0-9]+\.[0-9]+))$`, func(m rules.Match, r *models.Result) {
			r.DOI = m.Group(2)
			doiKinds.Lookup(m.Group(1), rules.Kind{}).Set(r)
		}).
		// /action/showFullPopup?id=f1&doi=10.1190%2Fgeo2015-0100.1
		Add("figure", `^/action/([a-zA-Z]+)$`, func(m rules.Match, r *models.Result) {
			r.Rtype = models.RtypeFigure
			r.Mime = models.MimeHTML
			r.DOI = m.URL.Query.Get("doi")
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
