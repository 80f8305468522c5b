package dispatch

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/andaru/apixml/cursor"
	"github.com/andaru/apixml/registry"
	"github.com/andaru/apixml/types"
	"github.com/andaru/apixml/xmlerr"
	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// Getter retrieves the document at href.
type Getter interface {
	Get(ctx context.Context, href string) (io.ReadCloser, error)
}

// GetterFunc adapts a function to a Getter.
type GetterFunc func(ctx context.Context, href string) (io.ReadCloser, error)

// Get calls f.
func (f GetterFunc) Get(ctx context.Context, href string) (io.ReadCloser, error) { return f(ctx, href) }

// HTTPGetter gets documents over HTTP. Hrefs are resolved against Base.
type HTTPGetter struct {
	Client   *http.Client
	Base     *url.URL
	Registry *registry.Registry
	Header   http.Header
}

// Get issues a GET for href. A response with a non-2xx status is returned
// as a fault error.
func (g *HTTPGetter) Get(ctx context.Context, href string) (io.ReadCloser, error) {
	u, err := url.Parse(href)
	if err != nil {
		return nil, errors.Wrapf(err, "bad href %q", href)
	}
	if g.Base != nil {
		u = g.Base.ResolveReference(u)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	for k, v := range g.Header {
		req.Header[k] = v
	}
	req.Header.Set("Accept", "application/xml")
	client := g.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		return nil, CheckFault(g.Registry, resp.StatusCode, body)
	}
	return resp.Body, nil
}

// Follow retrieves the elements of a placeholder collection from its href.
// A list which is nil, has no href or already holds elements is returned
// as is.
func Follow[T any](ctx context.Context, g Getter, r *registry.Registry, l *types.List[T]) (*types.List[T], error) {
	if !l.Placeholder() {
		return l, nil
	}
	v, err := get(ctx, g, r, l.Href)
	if err != nil {
		return nil, err
	}
	out, ok := v.(*types.List[T])
	if !ok {
		return nil, xmlerr.TypeMismatch(l.Href, fmt.Sprintf("%T", l), v)
	}
	if out.Href == "" {
		out.Href = l.Href
	}
	return out, nil
}

// FollowRel retrieves the target of the top-level <link> with relation rel
// in doc, and decodes it by its root tag.
func FollowRel(ctx context.Context, g Getter, r *registry.Registry, doc []byte, rel string) (interface{}, error) {
	links, err := Links(doc)
	if err != nil {
		return nil, err
	}
	href, ok := links[rel]
	if !ok {
		return nil, errors.Errorf("no link with rel %q", rel)
	}
	return get(ctx, g, r, href)
}

func get(ctx context.Context, g Getter, r *registry.Registry, href string) (interface{}, error) {
	glog.V(3).Infof("dispatch: get %s", href)
	rc, err := g.Get(ctx, href)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return Decode(r, rc, cursor.WithContext(ctx))
}

var xpLinks = xpath.MustCompile(`/*/link[@rel and @href]`)

// Links returns the href of every <link> child of the root element of doc,
// keyed by relation. The first link of a relation wins.
func Links(doc []byte) (map[string]string, error) {
	root, err := xmlquery.Parse(bytes.NewReader(doc))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse document")
	}
	links := map[string]string{}
	for _, n := range xmlquery.QuerySelectorAll(root, xpLinks) {
		rel := n.SelectAttr("rel")
		if _, ok := links[rel]; !ok {
			links[rel] = n.SelectAttr("href")
		}
	}
	return links, nil
}
