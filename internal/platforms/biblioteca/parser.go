// Package biblioteca recognizes accesses to the Biblioteca Duoc UC e-books.
package biblioteca

import (
	"github.com/aleister1102/ecverify/internal/classifier"
	"github.com/aleister1102/ecverify/internal/models"
	"github.com/aleister1102/ecverify/internal/rules"
)

// Name is the platform identifier.
const Name = "biblioteca"

type parser struct {
	rules *rules.Set
}

// New builds the classifier.
func New() (classifier.Classifier, error) {
	set, err := rules.NewBuilder().
		// /bdigital/elibros/a47198-Practical%20Audio/94/
		Add("book page", `(?i)^/bdigital/elibros/([a-z0-9]+-(.+?))/[0-9]+/$`, func(m rules.Match, r *models.Result) {
			r.Rtype = models.RtypeBookPage
			r.Mime = models.MimeHTML
			r.TitleID = m.Group(2)
			r.UnitID = m.Group(1)
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
