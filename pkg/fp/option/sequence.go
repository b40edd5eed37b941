package option

import "github.com/benbjohnson/immutable"

// SequenceList turns an ordered list of Options into an Option of an
// ordered list. The first None short-circuits; elements after it are not
// inspected. An empty input yields Some of an empty list.
func SequenceList[A any](items *immutable.List[Option[A]]) Option[*immutable.List[A]] {
	return TraverseList(items, func(o Option[A]) Option[A] { return o })
}

// TraverseList applies f to each element in order, collecting results into
// an ordered list. The first None returned by f stops the traversal and f
// is not invoked on the remaining elements.
func TraverseList[A, B any](items *immutable.List[A], f func(A) Option[B]) Option[*immutable.List[B]] {
	b := immutable.NewListBuilder[B]()
	it := items.Iterator()
	for !it.Done() {
		_, v := it.Next()
		o := f(v)
		if !o.some {
			return None[*immutable.List[B]]()
		}
		b.Append(o.value)
	}
	return Some(b.List())
}
