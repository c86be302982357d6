package engine

import "fmt"

// Error codes. Every rule violation raised by the engine carries one of
// these; the processor is the only layer that turns them into results.
const (
	CodeNotFound             = "NOT_FOUND"
	CodeInvalidTurn          = "INVALID_TURN"
	CodeInvalidState         = "INVALID_STATE"
	CodeInsufficientFunds    = "INSUFFICIENT_FUNDS"
	CodeOwnershipViolation   = "OWNERSHIP_VIOLATION"
	CodeAuctionRuleViolation = "AUCTION_RULE_VIOLATION"
	CodeTradeRuleViolation   = "TRADE_RULE_VIOLATION"
	CodeBuildRuleViolation   = "BUILD_RULE_VIOLATION"
)

// GameError is a coded rule violation.
type GameError struct {
	Code string `json:"code"`
	Msg  string `json:"message"`
}

func (e *GameError) Error() string     { return e.Msg }
func (e *GameError) ErrorCode() string { return e.Code }

func errNotFound(format string, args ...interface{}) *GameError {
	return &GameError{CodeNotFound, fmt.Sprintf(format, args...)}
}

func errInvalidTurn(format string, args ...interface{}) *GameError {
	return &GameError{CodeInvalidTurn, fmt.Sprintf(format, args...)}
}

func errInvalidState(format string, args ...interface{}) *GameError {
	return &GameError{CodeInvalidState, fmt.Sprintf(format, args...)}
}

func errInsufficientFunds(format string, args ...interface{}) *GameError {
	return &GameError{CodeInsufficientFunds, fmt.Sprintf(format, args...)}
}

func errOwnership(format string, args ...interface{}) *GameError {
	return &GameError{CodeOwnershipViolation, fmt.Sprintf(format, args...)}
}

func errAuctionRule(format string, args ...interface{}) *GameError {
	return &GameError{CodeAuctionRuleViolation, fmt.Sprintf(format, args...)}
}

func errTradeRule(format string, args ...interface{}) *GameError {
	return &GameError{CodeTradeRuleViolation, fmt.Sprintf(format, args...)}
}

func errBuildRule(format string, args ...interface{}) *GameError {
	return &GameError{CodeBuildRuleViolation, fmt.Sprintf(format, args...)}
}
