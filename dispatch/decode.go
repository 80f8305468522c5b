package dispatch

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/andaru/apixml/cursor"
	"github.com/andaru/apixml/reader"
	"github.com/andaru/apixml/registry"
	"github.com/andaru/apixml/types"
	"github.com/andaru/apixml/xmlerr"
	"github.com/davecgh/go-spew/spew"
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// Decode decodes the document in src with the function r registers for
// its root tag.
func Decode(r *registry.Registry, src io.Reader, opts ...cursor.Option) (interface{}, error) {
	v, err := reader.Read(r, src, opts...)
	if err != nil {
		return nil, err
	}
	glog.V(3).Infof("dispatch: decoded %T", v)
	if glog.V(4) {
		glog.Infof("dispatch: %s", spew.Sdump(v))
	}
	return v, nil
}

// DecodeResponse checks resp for a fault, then decodes its body. The body
// is closed.
func DecodeResponse(ctx context.Context, r *registry.Registry, resp *http.Response) (interface{}, error) {
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response body")
	}
	if err := CheckFault(r, resp.StatusCode, body); err != nil {
		return nil, err
	}
	return Decode(r, bytes.NewReader(body), cursor.WithContext(ctx))
}

// CheckFault returns nil for a 2xx status code. Otherwise it returns an
// *xmlerr.Error of kind fault carrying code, along with the reason and
// detail of the <fault> in body, or of the fault in an <action> body.
func CheckFault(r *registry.Registry, code int, body []byte) error {
	if code >= 200 && code < 300 {
		return nil
	}
	var fault *types.Fault
	if r != nil && len(bytes.TrimSpace(body)) > 0 {
		v, err := Decode(r, bytes.NewReader(body))
		if err != nil {
			glog.V(2).Infof("dispatch: undecodable error body (status %d): %v", code, err)
		}
		switch v := v.(type) {
		case *types.Fault:
			fault = v
		case *types.Action:
			fault = v.Fault
		}
	}
	if fault == nil {
		return xmlerr.Fault(code, "", "", xmlerr.WithMessage(http.StatusText(code)))
	}
	return faultError(code, fault)
}

// CheckAction checks an action response. It returns the decoded action, or
// a fault error if the status code is not 2xx or the action carries a
// fault.
func CheckAction(r *registry.Registry, code int, body []byte) (*types.Action, error) {
	if err := CheckFault(r, code, body); err != nil {
		return nil, err
	}
	action, err := reader.ReadOne[types.Action](r, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	if action == nil {
		return nil, errors.New("empty action response")
	}
	if action.Fault != nil {
		return action, faultError(code, action.Fault)
	}
	return action, nil
}

func faultError(code int, f *types.Fault) error {
	var reason, detail string
	if f.Reason != nil {
		reason = *f.Reason
	}
	if f.Detail != nil {
		detail = *f.Detail
	}
	return xmlerr.Fault(code, reason, detail)
}
