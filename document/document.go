// Package document holds the content guarded by the lease lock.
package document

import (
	"github.com/git-hulk/go-lease/lease"
)

// Document is the payload protected by a Store.
type Document struct {
	Title  string `yaml:"title"`
	Body   string `yaml:"body"`
	Footer string `yaml:"footer"`
}

// Default returns the document a new Store starts with.
func Default() Document {
	return Document{
		Title:  "Document",
		Body:   "This is a document",
		Footer: "End of document",
	}
}

// Store is a lease lock over a Document.
type Store = lease.Lock[Document]

// NewStore creates an unlocked Store seeded with Default.
func NewStore(opts ...lease.Option) (*Store, error) {
	return lease.New(Default(), opts...)
}
