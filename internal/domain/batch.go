package domain

// Batch is a group of up to batch-size consecutive records plus a reference
// to the shared header block. Batches partition the input records with no
// overlap and no gaps, and are consumed exactly once by the writer.
type Batch struct {
	// Header is the header block shared by all batches of a run.
	Header *HeaderBlock

	// Records contains this batch's data lines in original order.
	Records []string

	// Index is the 1-based batch number used for output file naming.
	Index int
}

// NewBatch creates an empty batch with the given header and index.
func NewBatch(header *HeaderBlock, index int) *Batch {
	return &Batch{Header: header, Index: index}
}

// Add appends a record to the batch.
func (b *Batch) Add(record string) {
	b.Records = append(b.Records, record)
}

// Size returns the number of records in the batch.
func (b *Batch) Size() int {
	return len(b.Records)
}

// Empty returns true if the batch has no records.
func (b *Batch) Empty() bool {
	return len(b.Records) == 0
}
