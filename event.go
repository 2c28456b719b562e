package hasharray

// EventKind tags an observer notification.
type EventKind string

const (
	// EventConstruct is sent once when a collection with an observer is created.
	EventConstruct EventKind = "construct"
	// EventAdd is sent by Add and AddAll with the newly accepted items.
	EventAdd EventKind = "add"
	// EventAddMap is sent by AddMap with the aliased item.
	EventAddMap EventKind = "addMap"
	// EventRemove is sent by Remove and RemoveAll with the removed items.
	EventRemove EventKind = "remove"
	// EventRemoveByKey is sent by RemoveByKey with every removed item.
	EventRemoveByKey EventKind = "removeByKey"
)

// Observer is notified synchronously after every mutating call.
//
// It runs after the mutation has been fully applied and before the mutating
// call returns. The items slice is owned by the observer. An observer must
// not mutate the collection that is notifying it; doing so is undefined.
type Observer[T comparable] func(kind EventKind, items []T)
