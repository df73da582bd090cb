package transxchange

import (
	"encoding/xml"
	"os"

	"github.com/cockroachdb/errors"
)

// ErrMalformedDocument is returned for documents that do not describe
// exactly one consistent service.
var ErrMalformedDocument = errors.New("malformed TransXChange document")

// File is a single TransXChange document, decoded on first use.
type File struct {
	path string
	doc  *document
}

// NewFile returns a reader for path.
func NewFile(path string) *File {
	return &File{path: path}
}

// Path returns the file's location.
func (f *File) Path() string { return f.path }

// Reset discards the decoded contents so the next access rereads the file.
func (f *File) Reset() { f.doc = nil }

func (f *File) root() (*document, error) {
	if f.doc != nil {
		return f.doc, nil
	}
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", f.path)
	}
	doc, err := parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", f.path)
	}
	f.doc = doc
	return doc, nil
}

func parse(data []byte) (*document, error) {
	var doc document
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Mark(err, ErrMalformedDocument)
	}
	if err := validateService(doc.Services); err != nil {
		return nil, err
	}
	for _, rs := range doc.RouteSections {
		if len(rs.RouteLinks) == 0 {
			return nil, errors.Wrapf(ErrMalformedDocument, "route section %s has no links", rs.ID)
		}
	}
	return &doc, nil
}

func validateService(services []Service) error {
	if len(services) != 1 {
		return errors.Wrapf(ErrMalformedDocument, "expected one service, found %d", len(services))
	}
	s := services[0]
	if len(s.Lines) != 1 {
		return errors.Wrapf(ErrMalformedDocument, "expected one line in service %s, found %d", s.ServiceCode, len(s.Lines))
	}
	if s.Lines[0].ID != s.ServiceCode {
		return errors.Wrapf(ErrMalformedDocument, "line id %s does not match service code %s", s.Lines[0].ID, s.ServiceCode)
	}
	if s.PrivateCode != s.ServiceCode {
		return errors.Wrapf(ErrMalformedDocument, "private code %s does not match service code %s", s.PrivateCode, s.ServiceCode)
	}
	return nil
}

// StopPoints returns the document's stop points in document order.
func (f *File) StopPoints() ([]StopPoint, error) {
	doc, err := f.root()
	if err != nil {
		return nil, err
	}
	return doc.StopPoints, nil
}

// RouteSections returns the document's route sections in document order.
func (f *File) RouteSections() ([]RouteSection, error) {
	doc, err := f.root()
	if err != nil {
		return nil, err
	}
	return doc.RouteSections, nil
}

// Routes returns the document's routes in document order.
func (f *File) Routes() ([]Route, error) {
	doc, err := f.root()
	if err != nil {
		return nil, err
	}
	return doc.Routes, nil
}

// Service returns the document's only service.
func (f *File) Service() (Service, error) {
	doc, err := f.root()
	if err != nil {
		return Service{}, err
	}
	return doc.Services[0], nil
}
