package specification_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/narwhalmedia/catalog/internal/domain/specification"
)

func TestComposition(t *testing.T) {
	even := specification.Func[int](func(n int) bool { return n%2 == 0 })
	big := specification.Func[int](func(n int) bool { return n > 3 })
	nums := []int{1, 2, 3, 4, 5, 6}

	assert.Equal(t, []int{4, 6}, specification.Filter(nums, specification.And[int](even, big)))
	assert.Equal(t, []int{2, 4, 5, 6}, specification.Filter(nums, specification.Or[int](even, big)))
	assert.Equal(t, []int{1, 3, 5}, specification.Filter(nums, specification.Not[int](even)))
	assert.Equal(t, nums, specification.Filter(nums, specification.All[int]()))
}

func TestNilSpecsAreSkipped(t *testing.T) {
	even := specification.Func[int](func(n int) bool { return n%2 == 0 })

	spec := specification.And[int](nil, even, nil)

	assert.True(t, spec.IsSatisfiedBy(2))
	assert.False(t, spec.IsSatisfiedBy(3))
	assert.True(t, specification.And[int]().IsSatisfiedBy(7))
	assert.False(t, specification.Or[int]().IsSatisfiedBy(7))
}
