package rules

import "github.com/aleister1102/ecverify/internal/models"

// Kind is a resource type / media type pair. Empty members are left unset.
type Kind struct {
	Rtype string
	Mime  string
}

// Set writes the non-empty members of k into r.
func (k Kind) Set(r *models.Result) {
	if k.Rtype != "" {
		r.Rtype = k.Rtype
	}
	if k.Mime != "" {
		r.Mime = k.Mime
	}
}

// IsZero reports whether k sets nothing.
func (k Kind) IsZero() bool {
	return k.Rtype == "" && k.Mime == ""
}

// Kinds maps an extracted token (an URL segment, an extension, a format
// parameter) to the kind it denotes.
type Kinds map[string]Kind

// Get returns the kind of token and whether the token is known.
func (k Kinds) Get(token string) (Kind, bool) {
	kind, ok := k[token]
	return kind, ok
}

// Lookup returns the kind of token, or fallback for unknown tokens.
func (k Kinds) Lookup(token string, fallback Kind) Kind {
	if kind, ok := k[token]; ok {
		return kind
	}
	return fallback
}
