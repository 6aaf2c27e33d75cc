package layout

// Kind identifies the variant of a Content node. The set is closed: the
// traversal engine switches over it exhaustively and adding a kind is a
// deliberate engine change.
type Kind uint8

const (
	KindLeaf Kind = iota
	KindList
	KindRecord
)

func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "leaf"
	case KindList:
		return "list"
	case KindRecord:
		return "record"
	default:
		return "unknown"
	}
}

// Content is one node of a layout tree. Implementations are *Leaf,
// *ListOffset and *Record. Nodes are immutable after construction.
type Content interface {
	// Length returns the number of top-level elements.
	Length() int
	// Kind returns the variant tag.
	Kind() Kind
}
