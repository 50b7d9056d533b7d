// Package hw recognizes accesses to journals hosted by HighWire Press.
//
// HighWire serves many publishers from their own hostnames, so the hostname is
// the title identifier and prefixes most unit identifiers. A result that ends
// up with neither a resource type nor a media type is discarded entirely.
package hw

import (
	"regexp"
	"strings"

	"github.com/aleister1102/ecverify/internal/classifier"
	"github.com/aleister1102/ecverify/internal/models"
	"github.com/aleister1102/ecverify/internal/rules"
)

// Name is the platform identifier.
const Name = "hw"

// Pages smaller than this are a login page, not the requested document.
const minDocumentSize = 10000

// Optional page extension closing every /content pattern.
const extensionExpr = `(?:\.(abstract|long|short|full|full\.pdf|pdf|toc|summary))?$`

var extensionKinds = rules.Kinds{
	"abstract": {Rtype: models.RtypeAbstract, Mime: models.MimeHTML},
	"summary":  {Rtype: models.RtypeAbstract, Mime: models.MimeHTML},
	"short":    {Rtype: models.RtypeAbstract, Mime: models.MimeHTML},
	"full":     {Rtype: models.RtypeArticle, Mime: models.MimeHTML},
	"long":     {Rtype: models.RtypeArticle, Mime: models.MimeHTML},
	"full.pdf": {Rtype: models.RtypeArticle, Mime: models.MimePDF},
	"pdf":      {Rtype: models.RtypeArticle, Mime: models.MimePDF},
	"toc":      {Rtype: models.RtypeTOC, Mime: models.MimeHTML},
}

var doiKinds = rules.Kinds{
	"":      {Rtype: models.RtypeArticle, Mime: models.MimeHTML},
	"/pdf":  {Rtype: models.RtypeArticle, Mime: models.MimePDF},
	"/epdf": {Rtype: models.RtypeArticle, Mime: models.MimePDF},
	"/full": {Rtype: models.RtypeArticle, Mime: models.MimeHTML},
	"/abs":  {Rtype: models.RtypeAbstract, Mime: models.MimeHTML},
}

// Hosts serving the abstract when a /content page has no extension.
var abstractByDefault = []string{".sciencemag.org", ".jbc.org", ".asm.org"}

// Hosts serving the abstract for early articles without extension.
var earlyAbstractByDefault = []string{".biologists.org"}

type parser struct {
	suppl       *regexp.Regexp
	volume      *regexp.Regexp
	journal     *regexp.Regexp
	shortVolume *regexp.Regexp
	supplement  *regexp.Regexp
	numeric     *regexp.Regexp
	reprint     *regexp.Regexp
	docserver   *regexp.Regexp
	legacyFile  *regexp.Regexp
	legacyTOC   *regexp.Regexp
	toc         *regexp.Regexp
	doi         *regexp.Regexp
}

// New builds the classifier.
func New() (classifier.Classifier, error) {
	var err error
	compile := func(expr string) *regexp.Regexp {
		if err != nil {
			return nil
		}
		var re *regexp.Regexp
		re, err = regexp.Compile(expr)
		return re
	}

	p := &parser{
		// /content/suppl/2014/02/03/JCO.2013.50.9539.DC1/DS1_JCO.2013.50.9539.pdf
		suppl: compile(`^/content/suppl/(\d+)/(\d+/\d+/([\w.]+/)?[\w.]+?)\.pdf`),
		// /content/6/4/458.full, /content/78/2/B49.full, /content/2012/5/pdb.top069344.full.pdf
		volume: compile(`^/content/(?:[a-z]+/)?((\d+)/(\d+(?:-\d+)?)/([\w.]+?))` + extensionExpr),
		// /content/bmj/343/bmj.d4464.full.pdf, /content/bloodjournal/early/2015/02/25/blood-2014-10-608596.full.pdf
		journal: compile(`^/content/\w+/(early/)?((?:\d+/\d+/)?\d+/[\w.-]+?)` + extensionExpr),
		// /content/343/bmj.d4285, /content/188/3.toc
		shortVolume: compile(`^/content/(\d+)/([\w.]+?)` + extensionExpr),
		// /content/jexbio/221/Suppl_1/jeb164970.full.pdf, /content/221/Suppl_1/jeb164970
		supplement: compile(`^/content(?:/[a-z]+)?/([0-9]+)/Suppl_[a-z0-9]+/([a-z0-9.-]+?)` + extensionExpr),
		numeric:    compile(`^\d+$`),
		// /cgi/reprint/canres;74/16/4378
		reprint: compile(`^/cgi/reprint/(\w+;(\d+)/(\d+)/(\d+))$`),
		// /docserver/fulltext/ijsem/65/8/2410_ijs000272.pdf
		docserver: compile(`^/docserver/\w+/(\w+/\d+/\d+/\w+)\.pdf$`),
		// /bj/467/bj4670193.htm, /bst/028/0575/0280575.pdf, /bst/042/1/default.htm
		legacyFile: compile(`(?i)^/\w+/(\d+/(?:\w+/)?\w+)\.(pdf|htm)`),
		// /bsr/toc.htm
		legacyTOC: compile(`^/\w+/toc\.htm`),
		// /toc/mboc/26/24
		toc: compile(`(?i)^/toc/([a-z]+/([0-9]+)/([0-9]+))$`),
		// /doi/10.1091/mbc.e09-12-1011, /doi/pdf/10.1091/mbc.e09-12-1011
		doi: compile(`(?i)^/doi(/[a-z]+)?/(10\.[0-9]+/([a-z0-9.-]+))$`),
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (p *parser) Classify(u *models.ParsedURL, meta models.AccessMeta) models.Result {
	path := u.Path
	host := u.Hostname

	r := models.Result{TitleID: host}
	if meta.Size != nil && *meta.Size != 0 && *meta.Size < minDocumentSize {
		r.SetGranted(false)
	}

	switch {
	case strings.HasPrefix(path, "/content/suppl"):
		if m := p.suppl.FindStringSubmatch(path); m != nil {
			r.Rtype = models.RtypeSuppl
			r.Mime = models.MimePDF
			r.UnitID = host + "/" + m[2]
		}

	case strings.HasPrefix(path, "/content"):
		if u.Query.Get("abspop") != "" {
			return models.Result{}
		}
		extensionKinds.Lookup(p.content(path, host, &r), rules.Kind{}).Set(&r)

	case strings.HasPrefix(path, "/cgi/reprint"):
		if m := p.reprint.FindStringSubmatch(path); m != nil {
			r.UnitID = host + "/" + m[1]
			r.Rtype = models.RtypeArticle
			r.Mime = models.MimePDF
			r.Vol = m[2]
			r.Issue = m[3]
			r.FirstPage = m[4]
		}

	case strings.HasPrefix(path, "/docserver"):
		if m := p.docserver.FindStringSubmatch(path); m != nil {
			r.UnitID = host + "/" + m[1]
			r.Rtype = models.RtypeArticle
			r.Mime = models.MimePDF
		}

	default:
		p.other(path, host, &r)
	}

	return r.DiscardUntyped()
}

// content fills the identifiers of a /content page and returns its extension
func (p *parser) content(path, host string, r *models.Result) string {
	if m := p.volume.FindStringSubmatch(path); m != nil {
		r.UnitID = host + "/" + m[1]
		if firstPage, _, _ := strings.Cut(m[4], "."); firstPage != "pdb" {
			r.Vol = m[2]
			r.Issue = m[3]
			r.FirstPage = firstPage
		}
		return extensionOr(m[5], defaultExtension(host, abstractByDefault))
	}

	if m := p.journal.FindStringSubmatch(path); m != nil {
		r.UnitID = host + "/" + m[2]
		if m[1] != "" {
			return extensionOr(m[3], defaultExtension(host, earlyAbstractByDefault))
		}
		return extensionOr(m[3], defaultExtension(host, abstractByDefault))
	}

	if m := p.shortVolume.FindStringSubmatch(path); m != nil {
		r.Vol = m[1]
		r.UnitID = host + "/" + m[1] + "/" + m[2]
		if p.numeric.MatchString(m[2]) {
			r.Issue = m[2]
		}
		return extensionOr(m[3], "toc")
	}

	if m := p.supplement.FindStringSubmatch(path); m != nil {
		r.UnitID = m[2]
		r.Vol = m[1]
		return extensionOr(m[3], defaultExtension(host, abstractByDefault))
	}

	return ""
}

// other handles legacy file paths, tables of contents and DOI pages
func (p *parser) other(path, host string, r *models.Result) {
	if m := p.legacyFile.FindStringSubmatch(path); m != nil {
		if issue, ok := strings.CutSuffix(m[1], "/default"); ok {
			r.UnitID = host + "/" + issue
			r.Rtype = models.RtypeTOC
			r.Mime = models.MimeHTML
			return
		}
		r.UnitID = host + "/" + m[1]
		r.Rtype = models.RtypeArticle
		r.Mime = models.MimeHTML
		if m[2] == "pdf" {
			r.Mime = models.MimePDF
		}
		return
	}

	if p.legacyTOC.MatchString(path) {
		r.UnitID = host
		r.Rtype = models.RtypeTOC
		r.Mime = models.MimeHTML
		return
	}

	if m := p.toc.FindStringSubmatch(path); m != nil {
		r.UnitID = m[1]
		r.Vol = m[2]
		r.Issue = m[3]
		r.Rtype = models.RtypeTOC
		r.Mime = models.MimeHTML
		return
	}

	if m := p.doi.FindStringSubmatch(path); m != nil {
		r.DOI = m[2]
		r.UnitID = m[3]
		doiKinds.Lookup(m[1], rules.Kind{}).Set(r)
	}
}

func extensionOr(extension, fallback string) string {
	if extension != "" {
		return extension
	}
	return fallback
}

// defaultExtension returns "abstract" for hosts under one of suffixes, "full" otherwise
func defaultExtension(host string, suffixes []string) string {
	for _, suffix := range suffixes {
		if strings.HasSuffix(host, suffix) {
			return "abstract"
		}
	}
	return "full"
}
