package domain

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// OtpStep is a state of the password reset flow.
type OtpStep string

const (
	OtpAwaitingEmail       OtpStep = "awaiting-email"
	OtpAwaitingCode        OtpStep = "awaiting-code"
	OtpAwaitingNewPassword OtpStep = "awaiting-new-password"
	OtpDone                OtpStep = "done"
)

// Password rules applied by the reset flow. bcrypt ignores input past 72
// bytes, so longer passwords are rejected instead of silently truncated.
const (
	MinPasswordLength = 8
	MaxPasswordBytes  = 72
)

// Messages shown to the user when a step is rejected.
const (
	MsgInvalidCode      = "Invalid OTP. Please try again."
	MsgPasswordMismatch = "Passwords do not match"
	MsgPasswordTooShort = "Password must be at least 8 characters long"
	MsgPasswordTooLong  = "Password must be at most 72 bytes long"
	MsgEmailRequired    = "Email is required"
)

const minOtpCode, maxOtpCode = 100000, 999999

// OtpEventKind names an input to the reset flow.
type OtpEventKind int

const (
	OtpSubmitEmail OtpEventKind = iota + 1
	OtpResend
	OtpSubmitCode
	OtpSubmitPassword
	OtpBack
)

func (k OtpEventKind) String() string {
	switch k {
	case OtpSubmitEmail:
		return "submit-email"
	case OtpResend:
		return "resend"
	case OtpSubmitCode:
		return "submit-code"
	case OtpSubmitPassword:
		return "submit-password"
	case OtpBack:
		return "back"
	default:
		return "unknown"
	}
}

// OtpEvent carries the payload of one reset flow input. For OtpSubmitEmail
// and OtpResend, Code is the freshly generated code to issue.
type OtpEvent struct {
	Kind     OtpEventKind
	Email    string
	Code     string
	Password string
	Confirm  string
}

// OtpSession is the state of one password reset. Code is never serialized
// to callers.
type OtpSession struct {
	Step           OtpStep `json:"step"`
	Email          string  `json:"email,omitempty"`
	Code           string  `json:"-"`
	Error          string  `json:"error,omitempty"`
	FailedAttempts int     `json:"failed_attempts"`
	Sends          int     `json:"sends"`
}

// NewOtpSession returns a session waiting for an email address.
func NewOtpSession() OtpSession {
	return OtpSession{Step: OtpAwaitingEmail}
}

// GenerateOtpCode draws a six digit code uniformly from 100000..999999.
// intn must behave like rand.IntN.
func GenerateOtpCode(intn func(n int) int) string {
	return strconv.Itoa(minOtpCode + intn(maxOtpCode-minOtpCode+1))
}

// Apply is the transition function of the reset flow. It returns the next
// state and, when the event was rejected, an error. A rejected code or
// password still returns a state carrying the user-facing message; any
// other rejection returns s unchanged.
func (s OtpSession) Apply(ev OtpEvent) (OtpSession, error) {
	switch {
	case s.Step == OtpAwaitingEmail && ev.Kind == OtpSubmitEmail:
		email := strings.TrimSpace(ev.Email)
		if email == "" {
			return s, Invalid("email", MsgEmailRequired)
		}
		if !isOtpCode(ev.Code) {
			return s, Invalid("code", "must be six digits")
		}
		return OtpSession{Step: OtpAwaitingCode, Email: email, Code: ev.Code, Sends: 1}, nil

	case s.Step == OtpAwaitingCode && ev.Kind == OtpResend:
		if !isOtpCode(ev.Code) {
			return s, Invalid("code", "must be six digits")
		}
		s.Code = ev.Code
		s.Error = ""
		s.Sends++
		return s, nil

	case s.Step == OtpAwaitingCode && ev.Kind == OtpSubmitCode:
		if ev.Code != s.Code {
			s.Error = MsgInvalidCode
			s.FailedAttempts++
			return s, ErrVerification
		}
		s.Step = OtpAwaitingNewPassword
		s.Error = ""
		return s, nil

	case s.Step == OtpAwaitingNewPassword && ev.Kind == OtpSubmitPassword:
		if msg := passwordProblem(ev.Password, ev.Confirm); msg != "" {
			s.Error = msg
			return s, Invalid("password", msg)
		}
		s.Step = OtpDone
		s.Error = ""
		return s, nil

	case s.Step == OtpAwaitingCode && ev.Kind == OtpBack:
		return OtpSession{Step: OtpAwaitingEmail, Email: s.Email}, nil

	case s.Step == OtpAwaitingNewPassword && ev.Kind == OtpBack:
		s.Step = OtpAwaitingCode
		s.Error = ""
		return s, nil
	}
	return s, fmt.Errorf("%w: %s while %s", ErrInvalidTransition, ev.Kind, s.Step)
}

func passwordProblem(password, confirm string) string {
	switch {
	case password != confirm:
		return MsgPasswordMismatch
	case utf8.RuneCountInString(password) < MinPasswordLength:
		return MsgPasswordTooShort
	case len(password) > MaxPasswordBytes:
		return MsgPasswordTooLong
	}
	return ""
}

func isOtpCode(code string) bool {
	n, err := strconv.Atoi(code)
	return err == nil && len(code) == 6 && n >= minOtpCode && n <= maxOtpCode
}
