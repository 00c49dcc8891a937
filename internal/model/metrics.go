package model

// Metrics records authentication outcomes.
type Metrics interface {
	LoginAttempt(result string)
	RefreshAttempt(result string)
	RefreshReuse()
	Logout(scope string)
	PasswordResetRequested()
	PasswordResetConfirmed(result string)
	RefreshTokensPurged(n int64)
}

// NopMetrics discards everything.
type NopMetrics struct{}

func (NopMetrics) LoginAttempt(string)           {}
func (NopMetrics) RefreshAttempt(string)         {}
func (NopMetrics) RefreshReuse()                 {}
func (NopMetrics) Logout(string)                 {}
func (NopMetrics) PasswordResetRequested()       {}
func (NopMetrics) PasswordResetConfirmed(string) {}
func (NopMetrics) RefreshTokensPurged(int64)     {}
