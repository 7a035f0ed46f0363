package splinter

import (
	"github.com/TomTonic/splinter/partition"
)

// SplinterRef borrows an encoded buffer and exposes read-only set
// operations over it without copying its contents. Unlike *Splinter, it
// never materializes a mutable hierarchy up front: each read method is
// backed by a partition.Ref, which parses only the fixed-size trailer
// of each container it visits and descends into exactly one child per
// query, so Contains/Cardinality on a deeply nested Tree never decodes
// a sibling subtree it doesn't need.
type SplinterRef struct {
	payload []byte // encoded partition, with the Footer already stripped and verified
	ref     partition.Ref
}

// DecodeSplinterRef validates data's Footer (magic trailer and
// CRC-64/NVMe checksum) and returns a SplinterRef borrowing it. data
// must not be mutated while the SplinterRef is in use.
func DecodeSplinterRef(data []byte) (*SplinterRef, error) {
	payload, err := validateFooter(data)
	if err != nil {
		return nil, err
	}
	ref, err := partition.NewRef(payload, partition.High)
	if err != nil {
		return nil, err
	}
	return &SplinterRef{payload: payload, ref: ref}, nil
}

// Contains reports whether v is a member, returning an error only if
// the borrowed buffer is itself malformed. It descends at most one
// child per level of the hierarchy.
func (r *SplinterRef) Contains(v uint32) (bool, error) {
	return r.ref.Contains(v)
}

// Cardinality returns the number of members.
func (r *SplinterRef) Cardinality() (int, error) {
	return r.ref.Cardinality()
}

// Values returns every member in ascending order. Unlike Contains and
// Cardinality this necessarily visits the whole tree: it is the one
// SplinterRef query that is not cheaper than a full Decode.
func (r *SplinterRef) Values() ([]uint32, error) {
	return r.ref.Values()
}

// ToSplinter fully decodes the borrowed buffer into an owned, mutable
// Splinter.
func (r *SplinterRef) ToSplinter() (*Splinter, error) {
	p, err := r.ref.ToPartition()
	if err != nil {
		return nil, err
	}
	return &Splinter{root: p}, nil
}

// Bytes returns the raw encoded payload this SplinterRef borrows
// (without its Footer).
func (r *SplinterRef) Bytes() []byte {
	return r.payload
}

// Decode parses data (a full Splinter encoding, including its Footer)
// into an owned Splinter.
func Decode(data []byte) (*Splinter, error) {
	payload, err := validateFooter(data)
	if err != nil {
		return nil, err
	}
	p, err := partition.Decode(payload, partition.High)
	if err != nil {
		return nil, err
	}
	return &Splinter{root: p}, nil
}
