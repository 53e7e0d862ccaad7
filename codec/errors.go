package codec

import "errors"

// ErrLogicError signals that an invariant this package's algorithms depend
// on failed to hold. It is never expected in normal operation; seeing it
// means the inputs violated a precondition the caller was responsible for
// (Interval/bit-width pairing) or there is a bug in the arithmetic above.
var ErrLogicError = errors.New("codec: internal invariant violated")
