package Sets

// Partition tracks a partition of elements into disjoint sets.
type Partition[E any] interface {
	//Find the representative of the set holding x.
	Find(x E) (E, error)
	//Union merges the sets holding x and y.
	Union(x, y E) error
	//Connected reports whether x and y are in the same set.
	Connected(x, y E) (bool, error)
	//MakeSet adds x as a new singleton set.
	MakeSet(x E) error
	//Size is the number of elements.
	Size() int
	//Count is the number of disjoint sets.
	Count() int
}
