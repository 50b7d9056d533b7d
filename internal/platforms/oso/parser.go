// Package oso recognizes accesses to Oxford Scholarship Online books and chapters.
package oso

import (
	"strings"

	"github.com/aleister1102/ecverify/internal/classifier"
	"github.com/aleister1102/ecverify/internal/models"
	"github.com/aleister1102/ecverify/internal/rules"
)

// Name is the platform identifier.
const Name = "oso"

// Chapters smaller than this are a landing page, not the chapter itself.
const minChapterSize = 18000

// Encoded slashes used by the download links.
var slashReplacer = strings.NewReplacer("$002f", "/")

type parser struct {
	rules *rules.Set
}

// New builds the classifier.
func New() (classifier.Classifier, error) {
	set, err := rules.NewBuilder().
		// /view/10.1093/0199242666.001.0001/acprof-9780199242665
		// /view/10.1093/0199242666.001.0001/acprof-9780199242665-chapter-1
		// /view/10.1093/acprof:oso/9780199575008.001.0001/acprof-9780199575008
		Add("view", `(?i)^(?:/mobile)?/view/(10\.[0-9]+)/(((?:[a-z:]+/)?[0-9]+)\.[0-9]+\.[0-9]+)/[a-z]+-([0-9]+)(-chapter-[0-9]+)?$`, func(m rules.Match, r *models.Result) {
			r.Rtype = models.RtypeTOC
			if m.Group(5) != "" {
				r.Rtype = models.RtypeBookSection
			}
			r.Mime = models.MimeHTML
			setIdentifiers(m, r)

			if r.Rtype == models.RtypeBookSection && m.Meta.Size != nil && *m.Meta.Size != 0 && *m.Meta.Size < minChapterSize {
				r.SetGranted(false)
			}
		}).
		// /oso/downloaddoclightbox.downloaddoc:download/$002f10.1093$002f0199242666.001.0001$002facprof-9780199242665-chapter-1/Introduction
		Add("chapter download", `(?i)^/[a-z]+/download[a-z.:]+//?(10\.[0-9]+)/(((?:[a-z:]+/)?[0-9]+)\.[0-9]+\.[0-9]+)/[a-z]+-([0-9]+)-chapter-[0-9]+/.*`, func(m rules.Match, r *models.Result) {
			r.Rtype = models.RtypeBookSection
			r.Mime = models.MimePDF
			setIdentifiers(m, r)
		}).
		Build()
	if err != nil {
		return nil, err
	}
	return &parser{rules: set}, nil
}

// setIdentifiers fills the fields shared by view and download links
func setIdentifiers(m rules.Match, r *models.Result) {
	r.DOI = m.Group(1) + "/" + m.Group(2)
	r.UnitID = m.Group(2)
	r.TitleID = m.Group(3)
	r.PrintIdentifier = m.Group(4)
}

func (p *parser) Classify(u *models.ParsedURL, meta models.AccessMeta) models.Result {
	var r models.Result
	p.rules.Apply(slashReplacer.Replace(u.Path), u, meta, &r)
	return r
}
