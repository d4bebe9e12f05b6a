package models

// UploadedDocument carries one resume upload through extraction. It lives for
// a single request; the bytes are never written to disk.
type UploadedDocument struct {
	Name      string
	MediaType string
	Data      []byte
}

// IsZero reports whether no file was supplied at all.
func (d UploadedDocument) IsZero() bool {
	return d.Name == "" && d.MediaType == "" && len(d.Data) == 0
}
