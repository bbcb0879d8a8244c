package document

import "time"

// Author identifies who wrote a document. It only exists embedded in a Document.
type Author struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Document is the stored record. An empty ID means the document has not been
// saved yet; Save assigns one.
type Document struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	Content string    `json:"content"`
	Author  Author    `json:"author"`
	Created time.Time `json:"created"`
}

// IsNew reports whether the document still needs an id.
func (d *Document) IsNew() bool {
	return d.ID == ""
}

// Clone returns a copy that shares no state with d.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	c := *d
	return &c
}
