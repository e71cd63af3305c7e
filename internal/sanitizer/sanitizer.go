package sanitizer

import (
	"crypto/sha256"
	"encoding/hex"
	"slices"
	"strings"

	"github.com/jacoelho/uriparse/internal/keyval"
	"github.com/jacoelho/uriparse/internal/output"
)

// Redactor hides secrets in parsed URIs before they are printed: the
// password part of userinfo and the values of selected query keys.
// Secrets are replaced with [S256:hash] so equal secrets stay comparable.
type Redactor struct {
	keys []string
	salt string
}

// New creates a redactor for the given query keys. Key comparison is exact.
func New(keys []string, salt string) *Redactor {
	return &Redactor{
		keys: slices.Clone(keys),
		salt: salt,
	}
}

// Redact returns a copy of doc with secrets replaced. doc is not modified.
func (r *Redactor) Redact(doc output.Document) output.Document {
	if r == nil {
		return doc
	}

	if doc.UserInfo != nil {
		if user, password, ok := strings.Cut(*doc.UserInfo, ":"); ok && password != "" {
			userinfo := user + ":" + hashToken(password, r.salt)
			doc.UserInfo = &userinfo
		}
	}

	if doc.Query != nil && len(r.keys) > 0 {
		query := keyval.New()
		for key, value := range doc.Query.All() {
			if value != "" && slices.Contains(r.keys, key) {
				value = hashToken(value, r.salt)
			}
			query = query.Append(key, value)
		}
		doc.Query = query
	}

	return doc
}

// Mask hides a whole value, such as a raw URI written to a log, so that
// equal inputs still produce equal tokens. A nil redactor returns value.
func (r *Redactor) Mask(value string) string {
	if r == nil {
		return value
	}
	return hashToken(value, r.salt)
}

func hashToken(secret, salt string) string {
	sum := sha256.Sum256([]byte(salt + secret))
	return "[S256:" + hex.EncodeToString(sum[:8]) + "]"
}
