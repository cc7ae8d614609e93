package bank

import "errors"

// Domain errors. Business-rule failures are expected outcomes and are
// returned as values for the caller to translate; they never indicate a
// fault in the system itself.
var (
	// ErrInvalidArgument means the input was malformed: empty name,
	// non-4-digit PIN, non-positive amount, unknown account type.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnauthorized means the supplied PIN did not match.
	ErrUnauthorized = errors.New("invalid pin")

	// ErrPolicyViolation means the operation would breach the overdraft
	// floor, the minimum-balance rule, or a conversion eligibility check.
	ErrPolicyViolation = errors.New("operation violates account policy")

	// ErrNotFound means the account id or name did not resolve. Reported
	// distinctly from ErrUnauthorized so callers can tell "no such
	// account" from "wrong PIN".
	ErrNotFound = errors.New("account not found")

	// ErrDuplicate means the account name is already taken.
	ErrDuplicate = errors.New("account name already in use")

	// ErrSameAccount means a transfer named the same account twice.
	ErrSameAccount = errors.New("from and to accounts are the same")

	// ErrNoInterestDue means there was nothing to apply: the computed
	// interest was zero or negative. A no-op, not a system fault.
	ErrNoInterestDue = errors.New("no interest due")

	// ErrCorruptSnapshot means a restore blob failed validation.
	ErrCorruptSnapshot = errors.New("snapshot is corrupt")
)
