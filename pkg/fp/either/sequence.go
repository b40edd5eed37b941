package either

import "github.com/benbjohnson/immutable"

// SequenceList turns an ordered list of Eithers into an Either of an
// ordered list. The first Left is returned as-is; elements after it are not
// inspected. An empty input yields Right of an empty list.
func SequenceList[E, A any](items *immutable.List[Either[E, A]]) Either[E, *immutable.List[A]] {
	return TraverseList(items, func(e Either[E, A]) Either[E, A] { return e })
}

// TraverseList applies f to each element in order, collecting success
// payloads into an ordered list. The first Left returned by f stops the
// traversal and f is not invoked on the remaining elements.
func TraverseList[E, A, B any](items *immutable.List[A], f func(A) Either[E, B]) Either[E, *immutable.List[B]] {
	b := immutable.NewListBuilder[B]()
	it := items.Iterator()
	for !it.Done() {
		_, v := it.Next()
		e := f(v)
		if !e.isRight {
			return Left[E, *immutable.List[B]](e.left)
		}
		b.Append(e.right)
	}
	return Right[E, *immutable.List[B]](b.List())
}
