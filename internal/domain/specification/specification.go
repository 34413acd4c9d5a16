package specification

// Specification decides whether a candidate matches a query criterion.
type Specification[T any] interface {
	IsSatisfiedBy(candidate T) bool
}

// Func adapts a predicate to a Specification.
type Func[T any] func(candidate T) bool

// IsSatisfiedBy calls f.
func (f Func[T]) IsSatisfiedBy(candidate T) bool {
	return f(candidate)
}

// All matches every candidate.
func All[T any]() Specification[T] {
	return Func[T](func(T) bool { return true })
}

// And matches candidates satisfying every spec. Nil specs are skipped.
func And[T any](specs ...Specification[T]) Specification[T] {
	return andSpecification[T](compact(specs))
}

// Or matches candidates satisfying at least one spec.
func Or[T any](specs ...Specification[T]) Specification[T] {
	return orSpecification[T](compact(specs))
}

// Not inverts spec.
func Not[T any](spec Specification[T]) Specification[T] {
	return notSpecification[T]{spec: spec}
}

// Filter returns the candidates satisfying spec, preserving order.
func Filter[T any](candidates []T, spec Specification[T]) []T {
	out := make([]T, 0, len(candidates))
	for _, c := range candidates {
		if spec.IsSatisfiedBy(c) {
			out = append(out, c)
		}
	}
	return out
}

type andSpecification[T any] []Specification[T]

func (s andSpecification[T]) IsSatisfiedBy(candidate T) bool {
	for _, spec := range s {
		if !spec.IsSatisfiedBy(candidate) {
			return false
		}
	}
	return true
}

type orSpecification[T any] []Specification[T]

func (s orSpecification[T]) IsSatisfiedBy(candidate T) bool {
	for _, spec := range s {
		if spec.IsSatisfiedBy(candidate) {
			return true
		}
	}
	return false
}

type notSpecification[T any] struct {
	spec Specification[T]
}

func (s notSpecification[T]) IsSatisfiedBy(candidate T) bool {
	return !s.spec.IsSatisfiedBy(candidate)
}

func compact[T any](specs []Specification[T]) []Specification[T] {
	out := make([]Specification[T], 0, len(specs))
	for _, s := range specs {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}
