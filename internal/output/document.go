package output

import (
	"github.com/jacoelho/uriparse/internal/keyval"
	"github.com/jacoelho/uriparse/internal/uri"
)

// Document is the serializable view of a parsed URI. Absent components are
// nil so every encoding can omit them.
type Document struct {
	Scheme   string        `json:"scheme" yaml:"scheme"`
	UserInfo *string       `json:"userinfo,omitempty" yaml:"userinfo,omitempty"`
	Host     *string       `json:"host,omitempty" yaml:"host,omitempty"`
	Port     uint16        `json:"port,omitempty" yaml:"port,omitempty"`
	Path     string        `json:"path" yaml:"path"`
	Query    *keyval.Store `json:"query,omitempty" yaml:"query,omitempty"`
	Fragment *string       `json:"fragment,omitempty" yaml:"fragment,omitempty"`
}

// NewDocument builds the view of u. The query store is shared, not copied.
func NewDocument(u *uri.URI) Document {
	doc := Document{
		Scheme:   u.Scheme,
		Path:     u.Path,
		Query:    u.Query,
		Fragment: u.Fragment,
	}

	if u.Authority != nil {
		host := u.Authority.Host
		doc.Host = &host
		doc.UserInfo = u.Authority.UserInfo
		doc.Port = u.Authority.Port
	}

	return doc
}
