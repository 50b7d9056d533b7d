// Package ovid recognizes accesses to the Ovid journals and books platform.
// Ovid encodes the accessed resource in query parameters only.
package ovid

import (
	"strings"

	"github.com/aleister1102/ecverify/internal/classifier"
	"github.com/aleister1102/ecverify/internal/models"
)

// Name is the platform identifier.
const Name = "ovid"

const (
	paramLinkSet           = "Link Set"
	paramPDFIndex          = "pdf_index"
	paramAbstract          = "Abstract"
	paramCompleteReference = "Complete Reference"
	paramBookReader        = "Book Reader"
	paramBookContent       = "FTS Book Reader Content"
	paramCounter5Data      = "Counter5Data"
)

type parser struct{}

// New builds the classifier.
func New() (classifier.Classifier, error) {
	return parser{}, nil
}

func (parser) Classify(u *models.ParsedURL, _ models.AccessMeta) models.Result {
	var r models.Result
	q := u.Query

	switch {
	case q.Get(paramLinkSet) != "" && !q.Has(paramCounter5Data):
		// ovidweb.cgi?&S=NKDIFPLLDDDDHPEINCKKEDDCPAJLAA00&Link+Set=S.sh.29.30.34.48%7c1%7csl_10
		r.Rtype = models.RtypeArticle
		r.Mime = models.MimeHTML
		r.UnitID = q.Get(paramLinkSet)

	case q.Get(paramPDFIndex) != "":
		// ovidweb.cgi?WebLinkFrameset=1&pdf_key=FPDDNCDCEDEIDD00&pdf_index=/fs047/ovft/live/gv031/00007890/00007890-200512270-00001
		r.Rtype = models.RtypeArticle
		r.Mime = models.MimePDF
		r.UnitID = q.Get(paramPDFIndex)

	case q.Get(paramAbstract) != "":
		// ovidweb.cgi?&S=NKDIFPLLDDDDHPEINCKKEDDCPAJLAA00&Abstract=S.sh.29.30.34.48%7c1%7c1
		r.Rtype = models.RtypeAbstract
		r.Mime = models.MimeHTML
		r.UnitID = q.Get(paramAbstract)

	case q.Get(paramCompleteReference) != "":
		// ovidweb.cgi?&S=NKDIFPLLDDDDHPEINCKKEDDCPAJLAA00&Complete+Reference=S.sh.29.30.34.48%7c1%7c1
		r.Rtype = models.RtypeRecordView
		r.Mime = models.MimeHTML
		r.UnitID = q.Get(paramCompleteReference)

	case q.Get(paramBookReader) != "" || strings.Contains(q.Get(paramCounter5Data), "books"):
		// ovidweb.cgi?&Link+Set=S.sh.46%7c1%7csl_10&Counter5Data=02191022%2f29th_Edition%2f4%7cbooks%7cbookdb%7cbooks1
		// ovidweb.cgi?&Book+Reader=1&FTS+Book+Reader+Content=S.sh.32104_1607538556_70%7c19%7c%2fbookdb%2f01838292%2f2nd_Edition%2f3%2fPG%280%29
		r.Rtype = models.RtypeBook
		r.Mime = models.MimeHTML
		if content := q.Get(paramBookContent); content != "" {
			r.UnitID = content
		} else {
			r.UnitID = q.Get(paramLinkSet)
		}
	}

	return r
}
