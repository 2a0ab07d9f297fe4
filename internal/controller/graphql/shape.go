package graphql

import (
	"time"

	"blog-api/internal/auth"
	"blog-api/internal/entity"

	"github.com/graphql-go/graphql"
)

// entityKey holds the source entity on every shaped object. GraphQL reserves
// names starting with "__", so it can never collide with a schema field.
const entityKey = "__entity"

const timeLayout = "2006-01-02T15:04:05.000Z"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func optionalTime(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return formatTime(*t)
}

func optionalString(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}

func optionalInt(i *int) interface{} {
	if i == nil {
		return nil
	}
	return *i
}

func sourceOf[T any](p graphql.ResolveParams) *T {
	m, ok := p.Source.(map[string]interface{})
	if !ok {
		return nil
	}
	e, _ := m[entityKey].(*T)
	return e
}

func shapeUser(u *entity.User) interface{} {
	if u == nil {
		return nil
	}
	return map[string]interface{}{
		entityKey:       u,
		"id":            u.ID,
		"email":         u.Email,
		"name":          optionalString(u.Name),
		"image":         optionalString(u.Image),
		"role":          string(u.Role),
		"emailVerified": optionalTime(u.EmailVerified),
		"createdAt":     formatTime(u.CreatedAt),
		"updatedAt":     formatTime(u.UpdatedAt),
	}
}

// shapeAccount leaves out stored secrets: password hashes and provider tokens.
func shapeAccount(a *entity.Account) interface{} {
	if a == nil {
		return nil
	}
	return map[string]interface{}{
		entityKey:           a,
		"id":                a.ID,
		"userId":            a.UserID,
		"type":              a.Type,
		"provider":          a.Provider,
		"providerAccountId": a.ProviderAccountID,
		"expires_at":        optionalInt(a.ExpiresAt),
		"token_type":        optionalString(a.TokenType),
		"scope":             optionalString(a.Scope),
		"session_state":     optionalString(a.SessionState),
		"createdAt":         formatTime(a.CreatedAt),
		"updatedAt":         formatTime(a.UpdatedAt),
	}
}

func shapePost(p *entity.Post) interface{} {
	if p == nil {
		return nil
	}
	return map[string]interface{}{
		entityKey:   p,
		"id":        p.ID,
		"title":     p.Title,
		"content":   p.Content,
		"imageUrl":  optionalString(p.ImageURL),
		"authorId":  p.AuthorID,
		"createdAt": formatTime(p.CreatedAt),
		"updatedAt": formatTime(p.UpdatedAt),
	}
}

func shapeComment(c *entity.Comment) interface{} {
	if c == nil {
		return nil
	}
	return map[string]interface{}{
		entityKey:   c,
		"id":        c.ID,
		"content":   c.Content,
		"postId":    c.PostID,
		"userId":    c.UserID,
		"createdAt": formatTime(c.CreatedAt),
		"updatedAt": formatTime(c.UpdatedAt),
	}
}

func shapeLike(l *entity.Like) interface{} {
	if l == nil {
		return nil
	}
	return map[string]interface{}{
		entityKey:   l,
		"id":        l.ID,
		"postId":    l.PostID,
		"userId":    l.UserID,
		"createdAt": formatTime(l.CreatedAt),
	}
}

func shapeTag(t *entity.Tag) interface{} {
	if t == nil {
		return nil
	}
	return map[string]interface{}{entityKey: t, "id": t.ID, "name": t.Name, "slug": t.Slug}
}

func shapeCategory(c *entity.Category) interface{} {
	if c == nil {
		return nil
	}
	return map[string]interface{}{entityKey: c, "id": c.ID, "name": c.Name, "slug": c.Slug}
}

func shapePostTag(pt *entity.PostTag) interface{} {
	if pt == nil {
		return nil
	}
	return map[string]interface{}{
		entityKey:    pt,
		"postId":     pt.PostID,
		"tagId":      pt.TagID,
		"assignedAt": formatTime(pt.AssignedAt),
	}
}

func shapePostCategory(pc *entity.PostCategory) interface{} {
	if pc == nil {
		return nil
	}
	return map[string]interface{}{
		entityKey:    pc,
		"postId":     pc.PostID,
		"categoryId": pc.CategoryID,
		"assignedAt": formatTime(pc.AssignedAt),
	}
}

func shapeMedia(m *entity.Media) interface{} {
	if m == nil {
		return nil
	}
	return map[string]interface{}{
		entityKey:   m,
		"id":        m.ID,
		"url":       m.URL,
		"type":      m.Type,
		"postId":    optionalString(m.PostID),
		"userId":    optionalString(m.UserID),
		"createdAt": formatTime(m.CreatedAt),
	}
}

func shapeVerificationToken(v *entity.VerificationToken) interface{} {
	if v == nil {
		return nil
	}
	return map[string]interface{}{
		"identifier": v.Identifier,
		"token":      v.Token,
		"expires":    formatTime(v.Expires),
	}
}

func shapeAuthPayload(p *auth.Payload) interface{} {
	if p == nil {
		return nil
	}
	return map[string]interface{}{
		"token":        p.Token,
		"refreshToken": p.RefreshToken,
		"user":         shapeUser(p.User),
	}
}

// shapeList converts a slice of entity pointers, always yielding a non-nil list.
func shapeList[T any](items []*T, shape func(*T) interface{}) []interface{} {
	out := make([]interface{}, 0, len(items))
	for _, item := range items {
		out = append(out, shape(item))
	}
	return out
}

// shapeValues is shapeList for slices of values, as found on eager-loaded relations.
func shapeValues[T any](items []T, shape func(*T) interface{}) []interface{} {
	out := make([]interface{}, 0, len(items))
	for i := range items {
		out = append(out, shape(&items[i]))
	}
	return out
}

// as adapts a typed shaper to the op shape signature.
func as[T any](shape func(*T) interface{}) func(interface{}) interface{} {
	return func(v interface{}) interface{} {
		switch typed := v.(type) {
		case *T:
			return shape(typed)
		case []*T:
			return shapeList(typed, shape)
		}
		return v
	}
}
