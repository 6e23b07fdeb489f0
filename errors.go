package roozh

import "errors"

// ErrInvalidArgument reports a malformed input such as an empty literal or an impossible date.
var ErrInvalidArgument = errors.New("roozh: invalid argument")

// ErrInvalidState reports an operation attempted before its preconditions hold.
var ErrInvalidState = errors.New("roozh: invalid state")

// ErrOutOfRange marks a Jalali year outside the break-point table.
var ErrOutOfRange = errors.New("roozh: year out of range")

// ErrInvalidConfig marks locale data that does not satisfy the name table contract.
var ErrInvalidConfig = errors.New("roozh: invalid locale configuration")

// ErrUnknownLocale indicates that a locale identifier matched no supported locale.
var ErrUnknownLocale = errors.New("roozh: unknown locale")
