package writer

import (
	"bytes"
	"encoding/xml"
	"io"
	"reflect"
	"time"

	"github.com/andaru/apixml/scalar"
	"github.com/andaru/apixml/types"
	"github.com/andaru/apixml/xmlutil"
	"github.com/pkg/errors"
)

// Writer encodes objects to an output stream. The first encoding error
// is kept and returned by Write; later output is discarded.
type Writer struct {
	e   *xml.Encoder
	err error
}

// New returns a Writer writing to w.
func New(w io.Writer, opts ...Option) *Writer {
	wr := &Writer{e: xml.NewEncoder(w)}
	for _, opt := range opts {
		opt(wr)
	}
	return wr
}

// Write encodes obj, a pointer to a types value or a *types.List, as an
// element named tag. An empty tag selects the type's own tag. A nil obj
// writes nothing.
func (w *Writer) Write(obj interface{}, tag string) error {
	ent, ok := writers[reflect.TypeOf(obj)]
	if !ok {
		return errors.Errorf("writer: no writer for %T", obj)
	}
	if tag == "" {
		tag = ent.tag
	}
	ent.write(w, tag, obj)
	if w.err == nil {
		w.err = w.e.Flush()
	}
	return errors.WithStack(w.err)
}

// Marshal returns the encoding of obj.
func Marshal(obj interface{}, tag string, opts ...Option) ([]byte, error) {
	var b bytes.Buffer
	if err := New(&b, opts...).Write(obj, tag); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func (w *Writer) token(t xml.Token) {
	if w.err == nil {
		w.err = w.e.EncodeToken(t)
	}
}

func (w *Writer) start(tag string, attrs ...xml.Attr) {
	w.token(xmlutil.StartElement(tag, attrs...))
}

func (w *Writer) end(tag string) {
	w.token(xml.EndElement{Name: xmlutil.XMLName(tag)})
}

// leaf writes <tag>text</tag>.
func (w *Writer) leaf(tag, text string) {
	w.start(tag)
	w.token(xml.CharData(text))
	w.end(tag)
}

func (w *Writer) string(tag string, v *string) {
	if v != nil {
		w.leaf(tag, *v)
	}
}

func (w *Writer) boolean(tag string, v *bool) {
	if v != nil {
		w.leaf(tag, scalar.FormatBoolean(*v))
	}
}

func (w *Writer) integer(tag string, v *int64) {
	if v != nil {
		w.leaf(tag, scalar.FormatInteger(*v))
	}
}

func (w *Writer) decimal(tag string, v *float64) {
	if v != nil {
		w.leaf(tag, scalar.FormatDecimal(*v))
	}
}

func (w *Writer) date(tag string, v *time.Time) {
	if v != nil {
		w.leaf(tag, scalar.FormatDate(*v))
	}
}

// strings writes items as children named item. A nil slice is omitted.
func (w *Writer) strings(tag, item string, items []string) {
	if items == nil {
		return
	}
	w.start(tag)
	for _, s := range items {
		w.leaf(item, s)
	}
	w.end(tag)
}

// identified writes the start tag of an identified object, followed by
// its name, description and comment.
func (w *Writer) identified(tag string, i *types.Identified) {
	w.start(tag, xmlutil.Attr("href", i.Href), xmlutil.Attr("id", i.Id))
	w.string("name", i.Name)
	w.string("description", i.Description)
	w.string("comment", i.Comment)
}

type symbol interface{ String() string }

func enum[E symbol](w *Writer, tag string, v *E) {
	if v != nil {
		w.leaf(tag, (*v).String())
	}
}

func enums[E symbol](w *Writer, tag, item string, items []E) {
	if items == nil {
		return
	}
	w.start(tag)
	for _, v := range items {
		w.leaf(item, v.String())
	}
	w.end(tag)
}

// object writes obj with fn unless it is nil.
func object[T any](w *Writer, tag string, obj *T, fn func(*Writer, string, *T)) {
	if obj != nil {
		fn(w, tag, obj)
	}
}

// list writes l as a container named tag holding one element named item
// per entry.
func list[T any](w *Writer, tag, item string, l *types.List[T], fn func(*Writer, string, *T)) {
	if l == nil {
		return
	}
	w.start(tag, xmlutil.Attr("href", l.Href))
	for _, obj := range l.Items {
		object(w, item, obj, fn)
	}
	w.end(tag)
}

type entry struct {
	tag   string
	write func(w *Writer, tag string, obj interface{})
}

// writers maps *T and *types.List[T] to their writers.
var writers = map[reflect.Type]entry{}

// add registers fn for *T under tag one, and for *types.List[T] under tag
// many when many is not empty.
func add[T any](one, many string, fn func(*Writer, string, *T)) {
	writers[reflect.TypeOf((*T)(nil))] = entry{
		tag:   one,
		write: func(w *Writer, tag string, obj interface{}) { object(w, tag, obj.(*T), fn) },
	}
	if many == "" {
		return
	}
	writers[reflect.TypeOf((*types.List[T])(nil))] = entry{
		tag:   many,
		write: func(w *Writer, tag string, obj interface{}) { list(w, tag, one, obj.(*types.List[T]), fn) },
	}
}
