package cmd

import "context"

// nodeResult carries one node's outcome from a cluster-wide fan-out:
// either a value or the error that node produced. One node's failure never
// cancels or blocks its siblings.
type nodeResult[T any] struct {
	Node  *node
	Value T
	Err   error
}

// fanOut runs op against every node concurrently and collects the per-node
// outcomes. The returned slice is index-aligned with nodes. When ctx
// expires, operations still in flight are abandoned, their slots report
// the context error, and results already collected are returned as-is.
func fanOut[T any](ctx context.Context, nodes []*node, op func(*node) (T, error)) []nodeResult[T] {
	type indexed struct {
		i   int
		val T
		err error
	}

	results := make([]nodeResult[T], len(nodes))
	for i, n := range nodes {
		results[i].Node = n
	}

	// Buffered to the node count so abandoned operations can still finish
	// their send and exit; nothing reads ch after the deadline path returns.
	ch := make(chan indexed, len(nodes))
	for i, n := range nodes {
		go func(i int, n *node) {
			val, err := op(n)
			ch <- indexed{i: i, val: val, err: err}
		}(i, n)
	}

	filled := make([]bool, len(nodes))
	for pending := len(nodes); pending > 0; pending-- {
		select {
		case r := <-ch:
			results[r.i].Value = r.val
			results[r.i].Err = r.err
			filled[r.i] = true
		case <-ctx.Done():
			for i := range results {
				if !filled[i] {
					results[i].Err = ctx.Err()
				}
			}
			return results
		}
	}
	return results
}
