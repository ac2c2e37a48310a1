package models

// Document is an uploaded résumé held in memory for the duration of one run.
type Document struct {
	Name        string
	ContentType string
	Data        []byte
}

func (d Document) Size() int64 {
	return int64(len(d.Data))
}
