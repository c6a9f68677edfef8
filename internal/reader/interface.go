package reader

// Reader loads transcript files, tolerating a fixed list of text encodings.
type Reader interface {
	Read(path string) (string, error)
}
