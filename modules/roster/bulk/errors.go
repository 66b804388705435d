package bulk

import "github.com/iota-uz/roster/pkg/serrors"

// Every validation failure is detected before any record is touched and is
// reported as a single coded error bound to the offending field. There is no
// partial-apply state to roll back.
var (
	ErrEmptyMutation    = serrors.NewError("BULK_EMPTY_MUTATION", "no field action and no comment supplied", "")
	ErrMissingValue     = serrors.NewError("BULK_MISSING_VALUE", "a value is required for this action", "")
	ErrUnknownReference = serrors.NewError("BULK_UNKNOWN_REFERENCE", "referenced entity does not exist", "")
	ErrInvalidNumber    = serrors.NewError("BULK_INVALID_NUMBER", "value must be a positive number", "")
	ErrEmptyList        = serrors.NewError("BULK_EMPTY_LIST", "the action needs at least one entry", "")
	ErrCardinality      = serrors.NewError("BULK_CARDINALITY", "tag limit exceeded", "")
)
