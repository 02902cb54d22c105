package domain

import (
	"errors"
	"fmt"
)

// Code is a machine-readable error code attached to every rejection the
// engine produces. Transport adapters map codes to their own status values.
type Code string

const (
	CodeUnknown Code = "UNKNOWN"

	// Validation
	CodeInvalidConfig      Code = "INVALID_CONFIG"
	CodeInvalidAmount      Code = "INVALID_AMOUNT"
	CodeInvalidAccount     Code = "INVALID_ACCOUNT"
	CodeBelowMinAllocation Code = "BELOW_MIN_ALLOCATION"
	CodeCampaignNotFound   Code = "CAMPAIGN_NOT_FOUND"

	// Timing
	CodeNotJoinPeriod Code = "NOT_JOIN_PERIOD"
	CodeTooEarly      Code = "TOO_EARLY"

	// Capacity
	CodeAllocationExhausted Code = "ALLOCATION_EXHAUSTED"
	CodeGoalReached         Code = "GOAL_REACHED"

	// State
	CodeAlreadyResolved Code = "ALREADY_RESOLVED"
	CodeNotClaimable    Code = "NOT_CLAIMABLE"
	CodeNotRefundable   Code = "NOT_REFUNDABLE"

	// Ledger
	CodeNothingToClaim  Code = "NOTHING_TO_CLAIM"
	CodeAllClaimed      Code = "ALL_CLAIMED"
	CodeNothingToRefund Code = "NOTHING_TO_REFUND"

	// Token gateway
	CodeInsufficientBalance   Code = "INSUFFICIENT_BALANCE"
	CodeInsufficientAllowance Code = "INSUFFICIENT_ALLOWANCE"
)

// Error is a coded domain error. Two errors are considered equal by
// errors.Is when their codes match, so callers can compare against the
// exported sentinels regardless of the message.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target carries the same code.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// NewError creates a domain error with a code and message.
func NewError(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap creates a domain error that keeps cause in the chain.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// CodeOf extracts the code of the first domain error in err's chain.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeUnknown
}

var (
	ErrInvalidAmount      = NewError(CodeInvalidAmount, "amount must be positive")
	ErrInvalidAccount     = NewError(CodeInvalidAccount, "account is required")
	ErrBelowMinAllocation = NewError(CodeBelowMinAllocation, "amount is below min allocation")
	ErrCampaignNotFound   = NewError(CodeCampaignNotFound, "campaign not found")

	ErrNotJoinPeriod = NewError(CodeNotJoinPeriod, "not right time to join this campaign")
	ErrTooEarly      = NewError(CodeTooEarly, "too early for approve")

	ErrAllocationExhausted = NewError(CodeAllocationExhausted, "user has max allocation")
	ErrGoalReached         = NewError(CodeGoalReached, "goal amount already collected")

	ErrAlreadyResolved = NewError(CodeAlreadyResolved, "campaign already resolved")
	ErrNotClaimable    = NewError(CodeNotClaimable, "campaign is not claiming")
	ErrNotRefundable   = NewError(CodeNotRefundable, "campaign is not refunding")

	ErrNothingToClaim  = NewError(CodeNothingToClaim, "nothing to claim yet")
	ErrAllClaimed      = NewError(CodeAllClaimed, "entire entitlement already claimed")
	ErrNothingToRefund = NewError(CodeNothingToRefund, "nothing to refund")

	ErrInsufficientBalance   = NewError(CodeInsufficientBalance, "insufficient balance")
	ErrInsufficientAllowance = NewError(CodeInsufficientAllowance, "insufficient allowance")
)

func invalidConfig(format string, args ...any) *Error {
	return NewError(CodeInvalidConfig, "invalid campaign config: "+fmt.Sprintf(format, args...))
}
