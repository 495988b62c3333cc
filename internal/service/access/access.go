package access

import "strings"

// Gate checks a caller identity against a fixed admin allow-list. The
// identity is taken as asserted by the caller and is not verified.
type Gate struct {
	admins map[string]struct{}
}

// New normalizes allowList to trimmed lower-case entries. Blank entries are
// ignored, so an empty list rejects everyone.
func New(allowList []string) *Gate {
	admins := make(map[string]struct{}, len(allowList))
	for _, email := range allowList {
		email = normalize(email)
		if email == "" {
			continue
		}
		admins[email] = struct{}{}
	}
	return &Gate{admins: admins}
}

func (g *Gate) Authorize(identity string) error {
	identity = normalize(identity)
	if identity == "" {
		return ErrUnauthenticated
	}
	if _, ok := g.admins[identity]; !ok {
		return ErrForbidden
	}
	return nil
}

func normalize(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
