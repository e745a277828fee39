package model

// Options configures the behaviour of the Builder. Options are constructed by
// the public adapter in pkg/model and passed into New.
type Options struct {
	Sorter         func([]WorldRef)
	AnonymousOwner string
}

func defaultOptions() Options {
	return Options{
		Sorter: DefaultSorter,
	}
}
