/*
Package seqs provides lazy sequence helpers for Go 1.23+ iterators (iter.Seq).

Every helper works the same over slices (via [slices.Values]), strings (via [Chars]
or [Runes]) and any other iter.Seq, including infinite ones:

  - **Windowing**: [Pairwise], [Chunked].
  - **Reshaping**: [Flatten], [FlattenSlices], [Intersperse], [RoundRobin].
  - **Deduplication**: [UniqueJustseen] drops adjacent repeats only, [UniqueEverseen]
    drops every repeat. The *By variants compare derived keys but yield the original elements.
  - **Bounded consumption**: [ITake], [Take], [First], [FirstFunc].
  - **Eager splitting**: [Partition].

# Laziness

Helpers returning an iter.Seq do no work until the result is ranged over, and draw
from their input only as far as the consumer asks. Breaking out of a range loop is the
only cancellation needed: nothing is left running.

[Take] and [Partition] return slices. Take stops after n elements, so it is safe on
infinite input; Partition reads its whole input and must only be given finite sequences.

# Cursors

[Cursor] is the pull-style counterpart of iter.Seq, for code that needs to advance
several sequences independently. [Pull] adapts any iter.Seq; a [PullCursor] must be
stopped unless it has been read to the end.

# Errors

Invalid arguments fail at the call, before any element is drawn:

	chunks, err := seqs.Chunked(seq, 0) // errors.Is(err, seqs.ErrInvalidSize)

Short or empty input is never an error.
*/
package seqs
