package observable

import "github.com/google/uuid"

// Property names carried by PropertyChangedEvent.
const (
	PropertyCount   = "Count"
	PropertyIndexer = "Item[]"
)

// CollectionChange is the kind of structural change. Values follow the
// platform collection-change enumeration data-binding hosts already know.
type CollectionChange uint8

const (
	Reset CollectionChange = iota
	ItemInserted
	ItemRemoved
	// ItemChanged is part of the enumeration for hosts and forwarders;
	// Vector itself never raises it because Set is silent.
	ItemChanged
)

var collectionChangeNames = [...]string{
	Reset:        "reset",
	ItemInserted: "item-inserted",
	ItemRemoved:  "item-removed",
	ItemChanged:  "item-changed",
}

func (c CollectionChange) String() string {
	if int(c) < len(collectionChangeNames) {
		return collectionChangeNames[c]
	}
	return "unknown"
}

// PropertyChangedEvent names a property whose value changed.
type PropertyChangedEvent struct {
	Vector       uuid.UUID
	PropertyName string
}

// VectorChangedEvent describes one structural change.
// Index is 0 and meaningless for Reset.
type VectorChangedEvent struct {
	Vector uuid.UUID
	Change CollectionChange
	Index  uint32
}

// PropertyChangedFunc observes property changes. A non-nil error aborts the
// rest of the notification burst and is returned by the mutating call.
type PropertyChangedFunc func(e PropertyChangedEvent) error

// VectorChangedFunc observes structural changes, with the same error contract
// as PropertyChangedFunc.
type VectorChangedFunc func(e VectorChangedEvent) error
