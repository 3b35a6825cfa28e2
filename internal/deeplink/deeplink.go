// Package deeplink parses cookstemma:// app links into a closed set of destinations.
package deeplink

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/cookstemma/edge/internal/locale"
)

const Scheme = "cookstemma"

var (
	ErrUnsupportedScheme  = errors.New("unsupported deep link scheme")
	ErrUnknownDestination = errors.New("unknown deep link destination")
	ErrInvalidID          = errors.New("invalid deep link id")
	ErrMissingHashtag     = errors.New("deep link hashtag is empty")
)

type Kind string

const (
	KindRecipe  Kind = "recipe"
	KindLog     Kind = "log"
	KindUser    Kind = "user"
	KindHashtag Kind = "hashtag"
)

// Destination is where a deep link points. ID is set for recipe, log and user links, Hashtag
// for hashtag links, and CommentID only for log links that carry ?comment=.
type Destination struct {
	Kind      Kind
	ID        uuid.UUID
	CommentID *uuid.UUID
	Hashtag   string
}

// Parse interprets raw as a cookstemma:// link. Both cookstemma://recipes/{id} and
// cookstemma:///recipes/{id} are accepted.
func Parse(raw string) (Destination, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return Destination{}, fmt.Errorf("parse deep link: %w", err)
	}
	if !strings.EqualFold(u.Scheme, Scheme) {
		return Destination{}, fmt.Errorf("%w: %q", ErrUnsupportedScheme, u.Scheme)
	}

	segments := make([]string, 0, 2)
	if u.Host != "" {
		segments = append(segments, u.Host)
	}
	for _, s := range strings.Split(u.Path, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	if len(segments) != 2 {
		return Destination{}, fmt.Errorf("%w: %q", ErrUnknownDestination, raw)
	}

	resource, value := strings.ToLower(segments[0]), segments[1]
	switch resource {
	case "recipes":
		return withID(KindRecipe, value)
	case "users":
		return withID(KindUser, value)
	case "logs":
		dest, err := withID(KindLog, value)
		if err != nil {
			return Destination{}, err
		}
		if c := u.Query().Get("comment"); c != "" {
			commentID, err := uuid.Parse(c)
			if err != nil {
				return Destination{}, fmt.Errorf("%w: comment %q", ErrInvalidID, c)
			}
			dest.CommentID = &commentID
		}
		return dest, nil
	case "hashtags":
		name := strings.TrimPrefix(value, "#")
		if strings.TrimSpace(name) == "" {
			return Destination{}, ErrMissingHashtag
		}
		return Destination{Kind: KindHashtag, Hashtag: name}, nil
	}
	return Destination{}, fmt.Errorf("%w: %q", ErrUnknownDestination, resource)
}

func withID(kind Kind, value string) (Destination, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return Destination{}, fmt.Errorf("%w: %s %q", ErrInvalidID, kind, value)
	}
	return Destination{Kind: kind, ID: id}, nil
}

// WebPath is the locale-prefixed page for d. Unsupported locales fall back to the default.
func (d Destination) WebPath(loc string) string {
	if !locale.IsSupported(loc) {
		loc = locale.Default
	}
	var p string
	switch d.Kind {
	case KindRecipe:
		p = "/recipes/" + d.ID.String()
	case KindLog:
		p = "/logs/" + d.ID.String()
		if d.CommentID != nil {
			p += "?comment=" + d.CommentID.String()
		}
	case KindUser:
		p = "/users/" + d.ID.String()
	case KindHashtag:
		p = "/hashtags/" + url.PathEscape(d.Hashtag)
	default:
		p = "/"
	}
	return locale.WithLocale(loc, p)
}

// URL renders d back into its cookstemma:// form.
func (d Destination) URL() string {
	switch d.Kind {
	case KindRecipe:
		return Scheme + "://recipes/" + d.ID.String()
	case KindLog:
		s := Scheme + "://logs/" + d.ID.String()
		if d.CommentID != nil {
			s += "?comment=" + d.CommentID.String()
		}
		return s
	case KindUser:
		return Scheme + "://users/" + d.ID.String()
	case KindHashtag:
		return Scheme + "://hashtags/" + url.PathEscape(d.Hashtag)
	}
	return ""
}
