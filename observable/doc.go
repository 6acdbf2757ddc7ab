/*
Package observable provides [Vector], an ordered, index-addressable list that
tells its observers about every change, for keeping a bound view in sync with
the data behind it.

Two independent notification channels are offered, matching the two
conventions data-binding consumers expect:

  - Property changes ([Vector.OnPropertyChanged]): the name of a logical
    property that changed, [PropertyCount] ("Count") or [PropertyIndexer]
    ("Item[]").
  - Vector changes ([Vector.OnVectorChanged]): a structural record
    ([VectorChangedEvent]) with the kind of change and the affected index.

Every mutating call updates the buffer first and then fires its burst
synchronously, in this order:

	Add, Insert   Count, Item[], ItemInserted@index
	RemoveAt      Count, Item[], ItemRemoved@index
	Remove        same as RemoveAt when found, nothing otherwise
	Clear         Count, Item[], Reset

Set overwrites in place and fires nothing.

# Errors

Bad index arguments return an [*IndexError] matching [ErrIndexOutOfRange].
[Vector.CopyTo] reports a short destination with [ErrCapacityExceeded].
An observer returning an error stops the burst and the same error is returned
from the mutating call; the mutation itself has already been applied.

# Iteration

[Vector.Values] and [Vector.All] start a fresh pass over the current contents
each time they are ranged over. A structural change made while ranging panics
with an error matching [ErrConcurrentModification]; [Vector.Iterator] reports
the same condition through its Err method instead.

A Vector is not safe for concurrent use.
*/
package observable
