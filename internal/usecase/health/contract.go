package health

// CardCounter reports the size of the active card collection.
type CardCounter interface {
	CardCount() int
}
