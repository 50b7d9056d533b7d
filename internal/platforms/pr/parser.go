// Package pr recognizes accesses to PressReader newspaper and magazine issues.
package pr

import (
	"fmt"

	"github.com/aleister1102/ecverify/internal/classifier"
	"github.com/aleister1102/ecverify/internal/models"
	"github.com/aleister1102/ecverify/internal/rules"
)

// Name is the platform identifier.
const Name = "pr"

type parser struct {
	rules *rules.Set
}

// New builds the classifier.
func New() (classifier.Classifier, error) {
	set, err := rules.NewBuilder().
		// /usa/the-washington-post/20180906
		// /france/la-recherche/20171123/textview
		// /usa/forbes/20201001/page/56/textview
		Add("issue", `(?i)^/[a-z-]+/(([^/]+)/([0-9]{4})([0-9]{2})([0-9]{2}))(?:/page/[0-9]+)?(?:/textview)?$`, func(m rules.Match, r *models.Result) {
			r.Rtype = models.RtypeIssue
			r.Mime = models.MimeHTML
			r.TitleID = m.Group(2)
			r.UnitID = m.Group(1)
			r.PublicationDate = fmt.Sprintf("%s-%s-%s", m.Group(3), m.Group(4), m.Group(5))
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
