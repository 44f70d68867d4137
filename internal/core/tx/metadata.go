package tx

// NodeKind is the mutation an affected node records.
type NodeKind uint8

const (
	CreatedNode NodeKind = iota + 1
	ModifiedNode
	DeletedNode
)

var nodeKinds = []NodeKind{CreatedNode, ModifiedNode, DeletedNode}

func (k NodeKind) String() string {
	switch k {
	case CreatedNode:
		return "CreatedNode"
	case ModifiedNode:
		return "ModifiedNode"
	case DeletedNode:
		return "DeletedNode"
	}
	return "UnknownNode"
}

// AffectedNode is one ledger object created, modified or deleted by a
// transaction.
type AffectedNode struct {
	Kind            NodeKind
	LedgerEntryType string
	LedgerIndex     string
	FinalFields     Object
	PreviousFields  Object
	NewFields       Object
}

// Metadata is the execution outcome attached to a validated transaction.
type Metadata struct {
	TransactionResult string
	TransactionIndex  *uint32
	DeliveredAmount   *Amount
	NFTokenID         *string
	AffectedNodes     []AffectedNode
}

// ParseMetadata decodes raw metadata. It returns nil when raw is empty or not
// a JSON object.
func ParseMetadata(raw []byte) *Metadata {
	o := ParseObject(raw)
	if o.IsEmpty() {
		return nil
	}

	m := &Metadata{
		TransactionIndex: o.Uint32("TransactionIndex"),
		NFTokenID:        o.Str("nftoken_id"),
	}
	if r := o.Str("TransactionResult"); r != nil {
		m.TransactionResult = *r
	}
	// delivered_amount may be the literal "unavailable" for old partial
	// payments, which fails amount parsing and stays absent.
	m.DeliveredAmount = o.Amount("delivered_amount")
	if m.DeliveredAmount == nil {
		m.DeliveredAmount = o.Amount("DeliveredAmount")
	}

	for _, wrapper := range o.Array("AffectedNodes") {
		for _, kind := range nodeKinds {
			node := wrapper.Object(kind.String())
			if node.IsEmpty() {
				continue
			}
			m.AffectedNodes = append(m.AffectedNodes, AffectedNode{
				Kind:            kind,
				LedgerEntryType: deref(node.Str("LedgerEntryType")),
				LedgerIndex:     deref(node.Str("LedgerIndex")),
				FinalFields:     node.Object("FinalFields"),
				PreviousFields:  node.Object("PreviousFields"),
				NewFields:       node.Object("NewFields"),
			})
			break
		}
	}
	return m
}

// Any reports whether pred holds for at least one affected node. Every node
// is visited.
func (m *Metadata) Any(pred func(AffectedNode) bool) bool {
	if m == nil {
		return false
	}
	found := false
	for _, n := range m.AffectedNodes {
		if pred(n) {
			found = true
		}
	}
	return found
}

// Nodes returns the affected nodes of the given kind and ledger entry type,
// in metadata order.
func (m *Metadata) Nodes(kind NodeKind, ledgerEntryType string) []AffectedNode {
	if m == nil {
		return nil
	}
	var out []AffectedNode
	for _, n := range m.AffectedNodes {
		if n.Kind == kind && n.LedgerEntryType == ledgerEntryType {
			out = append(out, n)
		}
	}
	return out
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
