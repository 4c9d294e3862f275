package middleware

import (
	"sync"
)

var _ tokenValidator = &tokenValidatorMock{}

type tokenValidatorMock struct {
	ValidateAdminTokenFunc func(token string) error

	calls struct {
		ValidateAdminToken []struct {
			Token string
		}
	}
	lockValidateAdminToken sync.RWMutex
}

func (mock *tokenValidatorMock) ValidateAdminToken(token string) error {
	if mock.ValidateAdminTokenFunc == nil {
		panic("tokenValidatorMock.ValidateAdminTokenFunc: method is nil but tokenValidator.ValidateAdminToken was just called")
	}
	callInfo := struct {
		Token string
	}{Token: token}
	mock.lockValidateAdminToken.Lock()
	mock.calls.ValidateAdminToken = append(mock.calls.ValidateAdminToken, callInfo)
	mock.lockValidateAdminToken.Unlock()
	return mock.ValidateAdminTokenFunc(token)
}

func (mock *tokenValidatorMock) ValidateAdminTokenCalls() []struct {
	Token string
} {
	mock.lockValidateAdminToken.RLock()
	calls := mock.calls.ValidateAdminToken
	mock.lockValidateAdminToken.RUnlock()
	return calls
}
