package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"campaign-wizard/internal/adapter/system/fake"
	"campaign-wizard/internal/core/domain"
	"campaign-wizard/internal/core/port/mocks"
)

type resetFixture struct {
	delivery *mocks.MockCodeDelivery
	sink     *mocks.MockPasswordSink
	reset    *PasswordResetUseCase
}

const resetTTL = 15 * time.Minute

// newResetFixture issues the codes 123456, 754321, 100007 in turn.
func newResetFixture(t *testing.T, verifyLatency time.Duration) (*resetFixture, *fake.Clock) {
	clock := fake.NewClock(fixedNow)
	f := &resetFixture{
		delivery: mocks.NewMockCodeDelivery(t),
		sink:     mocks.NewMockPasswordSink(t),
	}
	random := fake.NewRandom([]int{23456, 654321, 7}, nil)
	f.reset = NewPasswordResetUseCase(clock, random, fake.NewIDs("reset"), f.delivery, f.sink, verifyLatency, resetTTL, discardLogger())
	return f, clock
}

func TestPasswordResetHappyPath(t *testing.T) {
	ctx := context.Background()
	f, _ := newResetFixture(t, 0)

	f.delivery.EXPECT().DeliverCode(mock.Anything, "user@acme.test", "123456").Return(nil).Once()
	f.sink.EXPECT().SetPassword(mock.Anything, "user@acme.test", "abcdefgh").Return(nil).Once()

	id, s, err := f.reset.Start(ctx, " user@acme.test ")
	require.NoError(t, err)
	assert.Equal(t, "reset-1", id)
	assert.Equal(t, domain.OtpAwaitingCode, s.Step)

	s, err = f.reset.SubmitCode(ctx, id, "123456")
	require.NoError(t, err)
	assert.Equal(t, domain.OtpAwaitingNewPassword, s.Step)

	s, err = f.reset.SubmitPassword(ctx, id, "abcdefgh", "abcdefgh")
	require.NoError(t, err)
	assert.Equal(t, domain.OtpDone, s.Step)

	_, err = f.reset.Session(id)
	require.ErrorIs(t, err, domain.ErrNotFound, "a finished reset is forgotten")
	assert.Empty(t, f.reset.sessions)
	assert.Zero(t, f.reset.locks.size())
}

func TestPasswordResetWrongCodeAndResend(t *testing.T) {
	ctx := context.Background()
	f, _ := newResetFixture(t, 0)

	f.delivery.EXPECT().DeliverCode(mock.Anything, "user@acme.test", "123456").Return(nil).Once()
	f.delivery.EXPECT().DeliverCode(mock.Anything, "user@acme.test", "754321").Return(nil).Once()

	id, _, err := f.reset.Start(ctx, "user@acme.test")
	require.NoError(t, err)

	s, err := f.reset.SubmitCode(ctx, id, "000000")
	require.ErrorIs(t, err, domain.ErrVerification)
	assert.Equal(t, domain.OtpAwaitingCode, s.Step)
	assert.Equal(t, domain.MsgInvalidCode, s.Error)

	stored, _ := f.reset.Session(id)
	assert.Equal(t, 1, stored.FailedAttempts, "the failed attempt is recorded")

	s, err = f.reset.Resend(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, s.Error)
	assert.Equal(t, 2, s.Sends)

	_, err = f.reset.SubmitCode(ctx, id, "123456")
	require.ErrorIs(t, err, domain.ErrVerification, "resend invalidates the old code")

	s, err = f.reset.SubmitCode(ctx, id, "754321")
	require.NoError(t, err)
	assert.Equal(t, domain.OtpAwaitingNewPassword, s.Step)
}

func TestPasswordResetPasswordRules(t *testing.T) {
	ctx := context.Background()
	f, _ := newResetFixture(t, 0)
	f.delivery.EXPECT().DeliverCode(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

	id, _, err := f.reset.Start(ctx, "user@acme.test")
	require.NoError(t, err)
	_, err = f.reset.SubmitCode(ctx, id, "123456")
	require.NoError(t, err)

	s, err := f.reset.SubmitPassword(ctx, id, "abc123", "abc123")
	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, domain.MsgPasswordTooShort, s.Error)

	s, err = f.reset.SubmitPassword(ctx, id, "abcdefgh", "abcdefgx")
	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, domain.MsgPasswordMismatch, s.Error)
	assert.Equal(t, domain.OtpAwaitingNewPassword, s.Step)

	f.sink.EXPECT().SetPassword(mock.Anything, "user@acme.test", "abcdefgh").Return(errors.New("db down")).Once()
	_, err = f.reset.SubmitPassword(ctx, id, "abcdefgh", "abcdefgh")
	require.Error(t, err)
	stored, _ := f.reset.Session(id)
	assert.Equal(t, domain.OtpAwaitingNewPassword, stored.Step, "sink failure keeps the step")
}

func TestPasswordResetBackTransitions(t *testing.T) {
	ctx := context.Background()
	f, _ := newResetFixture(t, 0)
	f.delivery.EXPECT().DeliverCode(mock.Anything, "user@acme.test", "123456").Return(nil).Once()
	f.delivery.EXPECT().DeliverCode(mock.Anything, "other@acme.test", "754321").Return(nil).Once()

	id, _, err := f.reset.Start(ctx, "user@acme.test")
	require.NoError(t, err)
	_, err = f.reset.SubmitCode(ctx, id, "123456")
	require.NoError(t, err)

	s, err := f.reset.Back(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.OtpAwaitingCode, s.Step)

	s, err = f.reset.Back(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.OtpAwaitingEmail, s.Step)
	assert.Equal(t, "user@acme.test", s.Email)

	_, err = f.reset.Back(ctx, id)
	require.ErrorIs(t, err, domain.ErrInvalidTransition)

	s, err = f.reset.SubmitEmail(ctx, id, "other@acme.test")
	require.NoError(t, err)
	assert.Equal(t, domain.OtpAwaitingCode, s.Step)
	assert.Equal(t, "other@acme.test", s.Email)
}

func TestPasswordResetDeliveryFailure(t *testing.T) {
	ctx := context.Background()
	f, _ := newResetFixture(t, 0)
	f.delivery.EXPECT().DeliverCode(mock.Anything, mock.Anything, mock.Anything).Return(errors.New("smtp down")).Once()

	_, _, err := f.reset.Start(ctx, "user@acme.test")
	require.Error(t, err)

	_, err = f.reset.Session("reset-1")
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, _, err = f.reset.Start(ctx, "")
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestPasswordResetVerifyLatency(t *testing.T) {
	ctx := context.Background()
	f, clock := newResetFixture(t, time.Second)
	f.delivery.EXPECT().DeliverCode(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

	id, _, err := f.reset.Start(ctx, "user@acme.test")
	require.NoError(t, err)

	done := make(chan domain.OtpSession, 1)
	go func() {
		s, _ := f.reset.SubmitCode(ctx, id, "123456")
		done <- s
	}()

	require.Eventually(t, func() bool {
		clock.Advance(250 * time.Millisecond)
		select {
		case s := <-done:
			assert.Equal(t, domain.OtpAwaitingNewPassword, s.Step)
			return true
		default:
			return false
		}
	}, time.Second, time.Millisecond)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = f.reset.SubmitCode(cancelled, id, "123456")
	require.ErrorIs(t, err, context.Canceled)
}

func TestPasswordResetExpiresIdleSessions(t *testing.T) {
	ctx := context.Background()
	f, clock := newResetFixture(t, 0)
	f.delivery.EXPECT().DeliverCode(mock.Anything, mock.Anything, mock.Anything).Return(nil)

	idle, _, err := f.reset.Start(ctx, "idle@acme.test")
	require.NoError(t, err)

	clock.Advance(resetTTL - time.Second)
	_, err = f.reset.Session(idle)
	require.NoError(t, err, "still within the TTL")

	clock.Advance(time.Second)
	_, err = f.reset.SubmitCode(ctx, idle, "123456")
	require.ErrorIs(t, err, domain.ErrNotFound)

	for i := 0; i < 100; i++ {
		_, _, err = f.reset.Start(ctx, "flood@acme.test")
		require.NoError(t, err)
	}
	clock.Advance(resetTTL)
	fresh, _, err := f.reset.Start(ctx, "user@acme.test")
	require.NoError(t, err)

	f.reset.mu.Lock()
	assert.Len(t, f.reset.sessions, 1, "expired resets are swept on start")
	_, ok := f.reset.sessions[fresh]
	f.reset.mu.Unlock()
	assert.True(t, ok)
	assert.Zero(t, f.reset.locks.size())
}
